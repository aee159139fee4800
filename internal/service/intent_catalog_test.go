package service

import (
	"testing"

	"cerebro-wallet/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntentCatalog_Lookup(t *testing.T) {
	catalog := NewIntentCatalog()

	def, ok := catalog.Lookup(domain.IntentWalletViewBalance)
	require.True(t, ok)
	assert.Equal(t, domain.ResultKindExecute, def.Kind)
	assert.Equal(t, "/wallet/balance", def.NavigationTarget)

	_, ok = catalog.Lookup("summon_dragon")
	assert.False(t, ok)
}

func TestIntentCatalog_TransferRequiresValidation(t *testing.T) {
	catalog := NewIntentCatalog()

	def, ok := catalog.Lookup(domain.IntentWalletTransfer)
	require.True(t, ok)
	assert.True(t, def.RequiresValidation)
	assert.ElementsMatch(t, []domain.Role{domain.RoleOwner, domain.RoleAdmin}, def.AllowedRoles)
}

func TestIntentCatalog_RoleAllows(t *testing.T) {
	catalog := NewIntentCatalog()

	tests := []struct {
		role   domain.Role
		intent string
		want   bool
	}{
		{domain.RoleOwner, domain.IntentWalletTransfer, true},
		{domain.RoleOwner, domain.IntentSubsidyAccept, true},
		{domain.RoleGuardian, domain.IntentWalletViewBalance, true},
		{domain.RoleGuardian, domain.IntentWalletTransfer, false},
		{domain.RoleGuardian, domain.IntentWalletBlockTx, true},
		{domain.RoleGuardian, domain.IntentWalletReleaseTx, false},
		{domain.RoleOperator, domain.IntentSubsidyList, true},
		{domain.RoleOperator, domain.IntentWalletOpen, false},
		{domain.RoleOperator, domain.IntentStartChat, false},
		{domain.RoleAdmin, domain.IntentWalletTransfer, true},
		{domain.RoleAdmin, domain.IntentOpenMap, true},
		{domain.RoleAdmin, "summon_dragon", false},
		{domain.Role("stranger"), domain.IntentOpenHome, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role)+"/"+tt.intent, func(t *testing.T) {
			assert.Equal(t, tt.want, catalog.RoleAllows(tt.role, tt.intent))
		})
	}
}

func TestIntentCatalog_EveryDefHasMessages(t *testing.T) {
	catalog := NewIntentCatalog()

	for id, def := range catalog.defs {
		assert.NotEmpty(t, def.DefaultMessage, "intent %s", id)
		assert.NotEmpty(t, def.DeniedMessage, "intent %s", id)
	}
}
