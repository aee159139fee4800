package ports

import (
	"context"
	"time"

	"cerebro-wallet/internal/core/domain"

	"github.com/google/uuid"
)

// --- Collaborator Ports (external boundary, stubbed in-process) ---

// PermissionDecision is the authorization collaborator's answer.
type PermissionDecision struct {
	Allowed       bool
	Reason        string
	RequiredRoles []domain.Role
}

// AuthorizationService answers role/permission questions. It must be total
// over every action id used by the engine and side-effect-free.
type AuthorizationService interface {
	HasPermission(roles []domain.Role, actionID string) PermissionDecision
}

// Canonical action ids consumed by the guard, decision engine and subsidy
// service.
const (
	ActionWalletView     = "wallet.view"
	ActionWalletTransfer = "wallet.transfer"
	ActionWalletRelease  = "wallet.release"
	ActionWalletBlock    = "wallet.block"
	ActionSubsidyCreate  = "subsidy.create"
	ActionSubsidyAccept  = "subsidy.accept"
)

// BiometricVerification is the provider's verdict on a captured payload.
type BiometricVerification struct {
	Success bool
	Reason  string
	Level   int
}

// BiometricProvider is the hardware boundary. Only the validation endpoint
// invokes it; the guard reads pre-supplied freshness tokens instead.
type BiometricProvider interface {
	IsAvailable(kind string) bool
	Capture(ctx context.Context, kind string) ([]byte, error)
	Verify(ctx context.Context, payload []byte) (BiometricVerification, error)
}

// SemaphoreState is the territory semaphore's answer for a location.
type SemaphoreState struct {
	State  domain.TerritoryState
	Reason string
}

// TerritorySemaphore reports the traffic-light state of a location.
type TerritorySemaphore interface {
	GetState(ctx context.Context, loc domain.GeoPoint) (SemaphoreState, error)
}

// Profile is the identity collaborator's view of a user.
type Profile struct {
	UserID            string
	VerificationLevel int
	TrustScore        float64
	Badges            []string
}

// IdentityProfileService exposes verification data for eligibility checks.
type IdentityProfileService interface {
	GetProfile(ctx context.Context, userID string) (*Profile, error)
}

// ValidationTokenStore holds biometric freshness tokens keyed by user id.
// Get returns (nil, nil) when no fresh token exists.
type ValidationTokenStore interface {
	Put(ctx context.Context, userID string, v domain.BiometricValidation, ttl time.Duration) error
	Get(ctx context.Context, userID string) (*domain.BiometricValidation, error)
}

// --- Guard ---

// GuardAction is the canonical action a guard check covers.
type GuardAction string

const (
	GuardActionView     GuardAction = "view"
	GuardActionTransfer GuardAction = "transfer"
	// GuardActionRelease gates held -> released. The amount was escrowed by
	// the hold, so the guard does not re-check the spendable balance.
	GuardActionRelease GuardAction = "release"
)

// GuardContext carries everything the guard needs for one check.
type GuardContext struct {
	UserID             string
	WalletID           string // wallet being acted on (owner id)
	Roles              []domain.Role
	Action             GuardAction
	Amount             int64 // money movement only
	Location           *domain.GeoPoint
	BiometricValidated *domain.BiometricValidation
}

// GuardPass proves a successful guard check. The ledger refuses hold and
// release effects without one; only the guard service issues passes.
type GuardPass struct {
	WalletID string
	Amount   int64
	IssuedAt time.Time
}

// GuardDecision is the guard's verdict. Pass is non-nil only when the check
// fully succeeded (allowed and no pending validation).
type GuardDecision struct {
	Allowed                bool            `json:"allowed"`
	Reason                 string          `json:"reason,omitempty"`
	RequiresValidation     bool            `json:"requires_validation,omitempty"`
	RequiredBiometricLevel int             `json:"required_biometric_level,omitempty"`
	RequiresCerebro        bool            `json:"requires_cerebro,omitempty"`
	Pass                   *GuardPass      `json:"-"`
	Severity               domain.Severity `json:"severity"`
}

// GuardService is the sole gate before any ledger mutation.
type GuardService interface {
	Check(ctx context.Context, gctx GuardContext) (*GuardDecision, error)
}

// --- Ledger ---

// LedgerService is the single mutator of balances and transaction effects.
type LedgerService interface {
	CreateWallet(ctx context.Context, ownerID string) (*domain.Wallet, error)
	GetWallet(ctx context.Context, ownerID string) (*domain.Wallet, error)
	GetBalance(ctx context.Context, ownerID string) (*domain.Balance, error)
	// RecordTransaction applies the balance effect of moving tx to status.
	// Idempotent per (tx.ID, status). Hold and release require a GuardPass.
	RecordTransaction(ctx context.Context, tx *domain.Transaction, status domain.TransactionStatus, pass *GuardPass) error
	ApplyLock(ctx context.Context, ownerID string, amount int64) error
	ApplyUnlock(ctx context.Context, ownerID string, amount int64) error
	Credit(ctx context.Context, ownerID string, amount int64) error
	// SpentSince sums released outgoing transactions for the wallet since t.
	SpentSince(ctx context.Context, walletID string, t time.Time) (int64, error)
}

// --- Transactions ---

// CerebroApproval proves the decision engine authorized a release. Only the
// decision engine issues approvals.
type CerebroApproval struct {
	TransactionID uuid.UUID
	IssuedAt      time.Time
}

// TransactionOutcome pairs the (possibly advanced) transaction with the
// guard decision that gated the step.
type TransactionOutcome struct {
	Transaction *domain.Transaction
	Decision    *GuardDecision
}

// TransactionService drives transactions through the state machine, calling
// the guard before every step.
type TransactionService interface {
	Create(ctx context.Context, from, to string, amount int64, txType domain.TransactionType) (*domain.Transaction, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	// Apply advances exactly one step. Advancing held -> released requires a
	// CerebroApproval; pass nil for pending -> held.
	Apply(ctx context.Context, id uuid.UUID, gctx GuardContext, approval *CerebroApproval) (*TransactionOutcome, error)
	// Block terminates from pending or held, returning held funds.
	Block(ctx context.Context, id uuid.UUID, gctx GuardContext) (*domain.Transaction, error)
}

// --- Subsidies ---

// CreateSubsidyRequest holds validated input for creating a program.
type CreateSubsidyRequest struct {
	CallerRoles      []domain.Role
	Source           domain.SubsidySource
	TargetRoles      []domain.Role
	Amount           int64
	Conditions       domain.SubsidyConditions
	RequiredShieldID []string
}

// EligibilityContext carries everything needed to judge one user against a
// program.
type EligibilityContext struct {
	UserID             string
	Roles              []domain.Role
	TerritoryID        string
	Location           *domain.GeoPoint
	BiometricValidated *domain.BiometricValidation
}

// EligibilityDecision is the subsidy pipeline's verdict.
type EligibilityDecision struct {
	Eligible               bool   `json:"eligible"`
	Reason                 string `json:"reason,omitempty"`
	RequiresValidation     bool   `json:"requires_validation,omitempty"`
	RequiredBiometricLevel int    `json:"required_biometric_level,omitempty"`
}

// AcceptOutcome pairs the eligibility verdict with the acceptance record
// created when the verdict was positive.
type AcceptOutcome struct {
	Decision   *EligibilityDecision
	Acceptance *domain.SubsidyAcceptance
}

// SubsidyService manages programs and runs the acceptance pipeline.
type SubsidyService interface {
	Create(ctx context.Context, req CreateSubsidyRequest) (*domain.Subsidy, error)
	List(ctx context.Context) ([]domain.Subsidy, error)
	ValidateEligibility(ctx context.Context, subsidyID uuid.UUID, ectx EligibilityContext) (*EligibilityDecision, error)
	Accept(ctx context.Context, subsidyID uuid.UUID, ectx EligibilityContext) (*AcceptOutcome, error)
}

// --- Decision engine ---

// DecisionContext is the caller's situation when asking Cerebro to decide.
type DecisionContext struct {
	UserID             string
	Authenticated      bool
	Role               domain.Role // effective role fallback
	Roles              []domain.Role
	Location           *domain.GeoPoint
	BiometricValidated *domain.BiometricValidation
}

// CerebroService resolves an intent plus context to an authorization
// result. It is the only legitimate entry point for triggering a release.
type CerebroService interface {
	Decide(ctx context.Context, intent domain.Intent, dctx DecisionContext) (*domain.CerebroResult, error)
}

// --- Identity & auth ---

// RegisterRequest holds input for user registration.
type RegisterRequest struct {
	Username string
	Password string
	Roles    []domain.Role
}

// IdentityService manages users and sessions.
type IdentityService interface {
	Register(ctx context.Context, req RegisterRequest) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, time.Time, error) // token, expiry
	GetUser(ctx context.Context, id string) (*domain.User, error)
}

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	UserID string
	Roles  []domain.Role
}

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(userID string, roles []domain.Role) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// HealthChecker reports the health of one backing dependency.
type HealthChecker interface {
	Name() string
	Check(ctx context.Context) error
}
