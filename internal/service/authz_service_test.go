package service

import (
	"testing"

	"cerebro-wallet/internal/core/domain"
	"cerebro-wallet/internal/core/ports"

	"github.com/stretchr/testify/assert"
)

func TestStaticAuthorizationService_HasPermission(t *testing.T) {
	svc := NewStaticAuthorizationService()

	tests := []struct {
		name   string
		roles  []domain.Role
		action string
		want   bool
	}{
		{"owner views", []domain.Role{domain.RoleOwner}, ports.ActionWalletView, true},
		{"guardian views", []domain.Role{domain.RoleGuardian}, ports.ActionWalletView, true},
		{"operator cannot view", []domain.Role{domain.RoleOperator}, ports.ActionWalletView, false},
		{"owner transfers", []domain.Role{domain.RoleOwner}, ports.ActionWalletTransfer, true},
		{"guardian cannot transfer", []domain.Role{domain.RoleGuardian}, ports.ActionWalletTransfer, false},
		{"owner releases", []domain.Role{domain.RoleOwner}, ports.ActionWalletRelease, true},
		{"guardian cannot release", []domain.Role{domain.RoleGuardian}, ports.ActionWalletRelease, false},
		{"guardian blocks", []domain.Role{domain.RoleGuardian}, ports.ActionWalletBlock, true},
		{"operator creates subsidies", []domain.Role{domain.RoleOperator}, ports.ActionSubsidyCreate, true},
		{"owner cannot create subsidies", []domain.Role{domain.RoleOwner}, ports.ActionSubsidyCreate, false},
		{"owner accepts subsidies", []domain.Role{domain.RoleOwner}, ports.ActionSubsidyAccept, true},
		{"admin cannot accept subsidies", []domain.Role{domain.RoleAdmin}, ports.ActionSubsidyAccept, false},
		{"any of multiple roles suffices", []domain.Role{domain.RoleGuardian, domain.RoleAdmin}, ports.ActionWalletTransfer, true},
		{"no roles", nil, ports.ActionWalletView, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := svc.HasPermission(tt.roles, tt.action)
			assert.Equal(t, tt.want, decision.Allowed)
			if !tt.want {
				assert.NotEmpty(t, decision.Reason)
			}
		})
	}
}

func TestStaticAuthorizationService_UnknownActionDenies(t *testing.T) {
	svc := NewStaticAuthorizationService()

	decision := svc.HasPermission([]domain.Role{domain.RoleAdmin}, "wallet.teleport")
	assert.False(t, decision.Allowed)
	assert.Contains(t, decision.Reason, "unknown action")
	assert.Empty(t, decision.RequiredRoles)
}

func TestStaticAuthorizationService_ReportsRequiredRoles(t *testing.T) {
	svc := NewStaticAuthorizationService()

	decision := svc.HasPermission([]domain.Role{domain.RoleOperator}, ports.ActionWalletTransfer)
	assert.False(t, decision.Allowed)
	assert.ElementsMatch(t, []domain.Role{domain.RoleOwner, domain.RoleAdmin}, decision.RequiredRoles)
}
