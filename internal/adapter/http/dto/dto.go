package dto

// RegisterRequest is the request body for user registration.
type RegisterRequest struct {
	Username string   `json:"username" binding:"required,min=3,max=50,safe_id"`
	Password string   `json:"password" binding:"required,min=8,max=128"`
	Roles    []string `json:"roles,omitempty"`
}

// LoginRequest is the request body for user login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterResponse is the response body for successful registration.
type RegisterResponse struct {
	UserID   string   `json:"user_id"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
	WalletID string   `json:"wallet_id"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// Location is an optional caller location attached to guarded requests.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// DecideRequest is the request body for a decision engine query.
// The caller's identity and roles come from the JWT, never the body.
type DecideRequest struct {
	IntentID string         `json:"intent_id" binding:"required,max=100"`
	Source   string         `json:"source,omitempty"`
	Payload  map[string]any `json:"payload,omitempty"`
	Location *Location      `json:"location,omitempty"`
}

// ValidateBiometricRequest asks the engine to run one biometric check.
type ValidateBiometricRequest struct {
	Kind string `json:"kind" binding:"required,safe_id"`
}

// ValidateBiometricResponse reports a stored freshness token.
type ValidateBiometricResponse struct {
	Level       int   `json:"level"`
	ValidatedAt int64 `json:"validated_at"` // Unix timestamp
	ExpiresIn   int64 `json:"expires_in"`   // seconds
}

// TransferRequest is the request body for starting a transfer from the
// caller's own wallet.
type TransferRequest struct {
	ToWalletID string    `json:"to_wallet_id" binding:"required,safe_id"`
	Amount     int64     `json:"amount" binding:"required,gt=0"`
	Location   *Location `json:"location,omitempty"`
}

// TransactionStepRequest is the request body for apply/release/block steps.
type TransactionStepRequest struct {
	Location *Location `json:"location,omitempty"`
}

// TransactionResponse is the wire form of a transaction.
type TransactionResponse struct {
	ID           string  `json:"id"`
	FromWalletID string  `json:"from_wallet_id"`
	ToWalletID   string  `json:"to_wallet_id"`
	Amount       int64   `json:"amount"`
	Type         string  `json:"type"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"created_at"`
	ProcessedAt  *string `json:"processed_at,omitempty"`
}

// SubsidyConditionsDTO mirrors domain.SubsidyConditions on the wire.
type SubsidyConditionsDTO struct {
	RequiredBiometricLevel int      `json:"required_biometric_level,omitempty"`
	MinTrustScore          float64  `json:"min_trust_score,omitempty"`
	AllowedTerritoryIDs    []string `json:"allowed_territory_ids,omitempty"`
}

// CreateSubsidyRequest is the request body for creating a subsidy program.
type CreateSubsidyRequest struct {
	Source            string               `json:"source" binding:"required"`
	TargetRoles       []string             `json:"target_roles" binding:"required,min=1"`
	Amount            int64                `json:"amount" binding:"required,gt=0"`
	Conditions        SubsidyConditionsDTO `json:"conditions"`
	RequiredShieldIDs []string             `json:"required_shield_ids,omitempty"`
}

// AcceptSubsidyRequest is the request body for eligibility checks and
// acceptance.
type AcceptSubsidyRequest struct {
	TerritoryID string    `json:"territory_id,omitempty"`
	Location    *Location `json:"location,omitempty"`
}
