package service

import (
	"fmt"

	"cerebro-wallet/internal/core/domain"
	"cerebro-wallet/internal/core/ports"
)

// StaticAuthorizationService implements ports.AuthorizationService over a
// closed action table. The switch is exhaustive over every action id the
// engine uses; an unknown id denies rather than panics, so the collaborator
// stays total.
type StaticAuthorizationService struct{}

// NewStaticAuthorizationService creates the built-in authorization table.
func NewStaticAuthorizationService() *StaticAuthorizationService {
	return &StaticAuthorizationService{}
}

func (s *StaticAuthorizationService) HasPermission(roles []domain.Role, actionID string) ports.PermissionDecision {
	required := requiredRolesFor(actionID)
	if required == nil {
		return ports.PermissionDecision{
			Allowed: false,
			Reason:  fmt.Sprintf("unknown action %q", actionID),
		}
	}

	for _, r := range required {
		if domain.HasRole(roles, r) {
			return ports.PermissionDecision{Allowed: true}
		}
	}
	return ports.PermissionDecision{
		Allowed:       false,
		Reason:        fmt.Sprintf("action %q requires one of the permitted roles", actionID),
		RequiredRoles: required,
	}
}

// requiredRolesFor returns nil for unknown actions.
func requiredRolesFor(actionID string) []domain.Role {
	switch actionID {
	case ports.ActionWalletView:
		return []domain.Role{domain.RoleOwner, domain.RoleGuardian, domain.RoleAdmin}
	case ports.ActionWalletTransfer:
		return []domain.Role{domain.RoleOwner, domain.RoleAdmin}
	case ports.ActionWalletRelease:
		return []domain.Role{domain.RoleOwner, domain.RoleAdmin}
	case ports.ActionWalletBlock:
		return []domain.Role{domain.RoleOwner, domain.RoleGuardian, domain.RoleAdmin}
	case ports.ActionSubsidyCreate:
		return []domain.Role{domain.RoleOperator, domain.RoleAdmin}
	case ports.ActionSubsidyAccept:
		return []domain.Role{domain.RoleOwner}
	}
	return nil
}
