package service

import "cerebro-wallet/internal/core/domain"

// IntentCatalog is the static intent table plus the independent role
// behavior sets. An intent is authorized only when both authorities agree:
// the catalog's role list (when non-empty) and the per-role behavior set.
// Two tables mean a role added to one cannot silently widen access.
type IntentCatalog struct {
	defs map[string]domain.IntentDefinition
}

// NewIntentCatalog builds the built-in catalog.
func NewIntentCatalog() *IntentCatalog {
	return &IntentCatalog{defs: map[string]domain.IntentDefinition{
		domain.IntentWalletOpen: {
			Kind:             domain.ResultKindNavigate,
			NavigationTarget: "/wallet",
			DefaultMessage:   "Opening your wallet.",
			DeniedMessage:    "You cannot open this wallet.",
		},
		domain.IntentWalletViewBalance: {
			AllowedRoles:     []domain.Role{domain.RoleOwner, domain.RoleGuardian, domain.RoleAdmin},
			Kind:             domain.ResultKindExecute,
			NavigationTarget: "/wallet/balance",
			DefaultMessage:   "Here is your balance.",
			DeniedMessage:    "You are not allowed to see this balance.",
		},
		domain.IntentWalletTransfer: {
			AllowedRoles:       []domain.Role{domain.RoleOwner, domain.RoleAdmin},
			Kind:               domain.ResultKindExecute,
			RequiresValidation: true,
			DefaultMessage:     "Transfer prepared.",
			DeniedMessage:      "You are not allowed to transfer from this wallet.",
		},
		domain.IntentWalletReleaseTx: {
			AllowedRoles:   []domain.Role{domain.RoleOwner, domain.RoleAdmin},
			Kind:           domain.ResultKindExecute,
			DefaultMessage: "Transaction released.",
			DeniedMessage:  "You are not allowed to release this transaction.",
		},
		domain.IntentWalletBlockTx: {
			AllowedRoles:   []domain.Role{domain.RoleOwner, domain.RoleGuardian, domain.RoleAdmin},
			Kind:           domain.ResultKindExecute,
			DefaultMessage: "Transaction blocked.",
			DeniedMessage:  "You are not allowed to block this transaction.",
		},
		domain.IntentSubsidyList: {
			Kind:             domain.ResultKindNavigate,
			NavigationTarget: "/subsidies",
			DefaultMessage:   "Here are the available subsidies.",
			DeniedMessage:    "Subsidies are not available for you.",
		},
		domain.IntentSubsidyAccept: {
			AllowedRoles:       []domain.Role{domain.RoleOwner},
			Kind:               domain.ResultKindExecute,
			RequiresValidation: true,
			DefaultMessage:     "Subsidy acceptance started.",
			DeniedMessage:      "You are not eligible to accept subsidies.",
		},
		domain.IntentOpenHome: {
			Kind:             domain.ResultKindNavigate,
			NavigationTarget: "/home",
			DefaultMessage:   "Going home.",
			DeniedMessage:    "Cannot navigate home.",
		},
		domain.IntentOpenProfile: {
			Kind:             domain.ResultKindNavigate,
			NavigationTarget: "/profile",
			DefaultMessage:   "Opening your profile.",
			DeniedMessage:    "Cannot open the profile.",
		},
		domain.IntentOpenMap: {
			Kind:             domain.ResultKindNavigate,
			NavigationTarget: "/map",
			DefaultMessage:   "Opening the map.",
			DeniedMessage:    "The map is not available.",
		},
		domain.IntentStartChat: {
			AllowedRoles:     []domain.Role{domain.RoleOwner, domain.RoleGuardian, domain.RoleAdmin},
			Kind:             domain.ResultKindNavigate,
			NavigationTarget: "/chat",
			DefaultMessage:   "Starting a chat.",
			DeniedMessage:    "Chat is not available for you.",
		},
		domain.IntentSearchHelp: {
			Kind:             domain.ResultKindSearch,
			NavigationTarget: "/help",
			DefaultMessage:   "Searching help.",
			DeniedMessage:    "Help search is unavailable.",
		},
	}}
}

// Lookup returns the catalog row for an intent id.
func (c *IntentCatalog) Lookup(intentID string) (domain.IntentDefinition, bool) {
	def, ok := c.defs[intentID]
	return def, ok
}

// RoleAllows is the role behavior table: the per-role set of intents each
// role may even attempt. Exhaustive over the closed role set.
func (c *IntentCatalog) RoleAllows(role domain.Role, intentID string) bool {
	switch role {
	case domain.RoleAdmin:
		_, known := c.defs[intentID]
		return known
	case domain.RoleOwner:
		switch intentID {
		case domain.IntentWalletOpen, domain.IntentWalletViewBalance,
			domain.IntentWalletTransfer, domain.IntentWalletReleaseTx,
			domain.IntentWalletBlockTx, domain.IntentSubsidyList,
			domain.IntentSubsidyAccept, domain.IntentOpenHome,
			domain.IntentOpenProfile, domain.IntentOpenMap,
			domain.IntentStartChat, domain.IntentSearchHelp:
			return true
		}
		return false
	case domain.RoleGuardian:
		switch intentID {
		case domain.IntentWalletOpen, domain.IntentWalletViewBalance,
			domain.IntentWalletBlockTx, domain.IntentSubsidyList,
			domain.IntentOpenHome, domain.IntentOpenProfile,
			domain.IntentOpenMap, domain.IntentStartChat,
			domain.IntentSearchHelp:
			return true
		}
		return false
	case domain.RoleOperator:
		switch intentID {
		case domain.IntentSubsidyList, domain.IntentOpenHome,
			domain.IntentOpenProfile, domain.IntentSearchHelp:
			return true
		}
		return false
	}
	return false
}
