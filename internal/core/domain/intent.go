package domain

// IntentSource identifies where an intent originated.
type IntentSource string

const (
	IntentSourceChip   IntentSource = "chip"
	IntentSourceChat   IntentSource = "chat"
	IntentSourceVoice  IntentSource = "voice"
	IntentSourceSystem IntentSource = "system"
)

// Known intent ids. The money-moving ids bypass the generic catalog path
// and are routed to the wallet transaction service.
const (
	IntentWalletOpen        = "wallet_open"
	IntentWalletViewBalance = "wallet_view_balance"
	IntentWalletTransfer    = "wallet_transfer"
	IntentWalletReleaseTx   = "wallet_release_transaction"
	IntentWalletBlockTx     = "wallet_block_transaction"
	IntentSubsidyList       = "subsidy_list"
	IntentSubsidyAccept     = "subsidy_accept"
	IntentOpenHome          = "open_home"
	IntentOpenProfile       = "open_profile"
	IntentOpenMap           = "open_map"
	IntentStartChat         = "start_chat"
	IntentSearchHelp        = "search_help"
)

// Intent is a structured request representing what the user wants to do.
// Constructed per call, never persisted.
type Intent struct {
	ID           string         `json:"id"`
	Source       IntentSource   `json:"source"`
	Payload      map[string]any `json:"payload,omitempty"`
	Role         Role           `json:"role,omitempty"` // overrides the context role when set
	RequiresAuth bool           `json:"requires_auth"`
}

// Severity is the traffic-light classification of a decision.
type Severity string

const (
	SeverityGreen  Severity = "green"
	SeverityYellow Severity = "yellow"
	SeverityRed    Severity = "red"
)

// DeriveSeverity computes severity from the decision outcome. Severity is
// derived, never stored.
func DeriveSeverity(allowed, requiresValidation bool) Severity {
	switch {
	case !allowed:
		return SeverityRed
	case requiresValidation:
		return SeverityYellow
	default:
		return SeverityGreen
	}
}

// ResultKind classifies what the caller should do with an allowed intent.
type ResultKind string

const (
	ResultKindNavigate ResultKind = "navigate"
	ResultKindExecute  ResultKind = "execute"
	ResultKindSearch   ResultKind = "search"
)

// CerebroResult is the decision engine's answer for one intent.
// Constructed per call, never persisted.
type CerebroResult struct {
	Allowed                bool     `json:"allowed"`
	Message                string   `json:"message"`
	Severity               Severity `json:"severity"`
	RequiresValidation     bool     `json:"requires_validation,omitempty"`
	RequiredBiometricLevel int      `json:"required_biometric_level,omitempty"`
	NavigationTarget       string   `json:"navigation_target,omitempty"`
	SuggestedActions       []string `json:"suggested_actions,omitempty"`
	State                  string   `json:"state,omitempty"`   // transaction status, when relevant
	Balance                *Balance `json:"balance,omitempty"` // sender balance after a money move
}

// IntentDefinition is one row of the static intent catalog.
type IntentDefinition struct {
	AllowedRoles       []Role     // empty = no catalog-level role restriction
	Kind               ResultKind
	NavigationTarget   string
	RequiresValidation bool
	DefaultMessage     string
	DeniedMessage      string
}
