package service

import (
	"context"
	"math"
	"time"

	"cerebro-wallet/internal/core/domain"
	"cerebro-wallet/internal/core/ports"
	"cerebro-wallet/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// fallbackActions are suggested on every denial so the caller is never
// left with nothing to do.
var fallbackActions = []string{domain.IntentOpenHome, domain.IntentOpenProfile}

// CerebroServiceImpl implements ports.CerebroService: the top-level
// decision engine. Money-moving intents delegate to the transaction
// service; everything else resolves through the intent catalog. Results
// are constructed per call and never persisted.
type CerebroServiceImpl struct {
	catalog *IntentCatalog
	authz   ports.AuthorizationService
	txSvc   ports.TransactionService
	ledger  ports.LedgerService
	log     zerolog.Logger
	now     func() time.Time
}

// NewCerebroService creates a new CerebroServiceImpl.
func NewCerebroService(
	catalog *IntentCatalog,
	authz ports.AuthorizationService,
	txSvc ports.TransactionService,
	ledger ports.LedgerService,
	log zerolog.Logger,
) *CerebroServiceImpl {
	return &CerebroServiceImpl{
		catalog: catalog,
		authz:   authz,
		txSvc:   txSvc,
		ledger:  ledger,
		log:     log,
		now:     time.Now,
	}
}

// Decide resolves one intent against the caller's context.
func (s *CerebroServiceImpl) Decide(ctx context.Context, intent domain.Intent, dctx ports.DecisionContext) (*domain.CerebroResult, error) {
	// 1. Authentication gate.
	if intent.RequiresAuth && (!dctx.Authenticated || dctx.UserID == "") {
		return &domain.CerebroResult{
			Allowed:          false,
			Message:          "You need to sign in first.",
			Severity:         domain.SeverityRed,
			NavigationTarget: "/login",
			SuggestedActions: []string{"login"},
		}, nil
	}

	// 2. Effective role: the intent's role wins over the context role.
	role := dctx.Role
	if intent.Role != "" {
		role = intent.Role
	}

	// 3. Money-moving intents bypass the generic catalog path.
	switch intent.ID {
	case domain.IntentWalletTransfer:
		return s.decideTransfer(ctx, intent, dctx)
	case domain.IntentWalletReleaseTx:
		return s.decideRelease(ctx, intent, dctx)
	case domain.IntentWalletBlockTx:
		return s.decideBlock(ctx, intent, dctx)
	}

	// 4. Generic path: role behavior, then catalog, then catalog roles.
	roleAllowed := s.catalog.RoleAllows(role, intent.ID)

	def, known := s.catalog.Lookup(intent.ID)
	if !known {
		s.log.Info().Str("intent_id", intent.ID).Msg("unrecognized intent")
		return &domain.CerebroResult{
			Allowed:          false,
			Message:          "I don't recognize that action.",
			Severity:         domain.SeverityRed,
			NavigationTarget: "/home",
			SuggestedActions: fallbackActions,
		}, nil
	}

	if !roleAllowed || !catalogRoleAllows(def, role) {
		return &domain.CerebroResult{
			Allowed:          false,
			Message:          def.DeniedMessage,
			Severity:         domain.SeverityRed,
			SuggestedActions: fallbackActions,
		}, nil
	}

	return &domain.CerebroResult{
		Allowed:            true,
		Message:            def.DefaultMessage,
		Severity:           domain.DeriveSeverity(true, def.RequiresValidation),
		RequiresValidation: def.RequiresValidation,
		NavigationTarget:   def.NavigationTarget,
	}, nil
}

// catalogRoleAllows checks the catalog's own role list; an empty list
// means no catalog-level restriction.
func catalogRoleAllows(def domain.IntentDefinition, role domain.Role) bool {
	if len(def.AllowedRoles) == 0 {
		return true
	}
	return domain.HasRole(def.AllowedRoles, role)
}

// decideTransfer creates a transfer and applies the hold step.
func (s *CerebroServiceImpl) decideTransfer(ctx context.Context, intent domain.Intent, dctx ports.DecisionContext) (*domain.CerebroResult, error) {
	to, _ := intent.Payload["to"].(string)
	amount, ok := payloadAmount(intent.Payload)
	if !ok || to == "" {
		return nil, apperror.Validation("transfer requires a recipient and a positive amount")
	}

	tx, err := s.txSvc.Create(ctx, dctx.UserID, to, amount, domain.TransactionTypeTransfer)
	if err != nil {
		return nil, err
	}

	outcome, err := s.txSvc.Apply(ctx, tx.ID, s.guardContext(dctx), nil)
	if err != nil {
		return nil, err
	}
	res := resultFromOutcome(outcome, "Funds are on hold. Release requires a confirmed decision.")
	if outcome.Decision.Allowed && !outcome.Decision.RequiresValidation {
		res.SuggestedActions = []string{domain.IntentWalletReleaseTx, domain.IntentWalletBlockTx}
		res.Balance = s.senderBalance(ctx, dctx.UserID)
	}
	return res, nil
}

// senderBalance reads the caller's balance for inclusion in a result. A
// read failure only costs the caller the balance view, never the decision.
func (s *CerebroServiceImpl) senderBalance(ctx context.Context, userID string) *domain.Balance {
	balance, err := s.ledger.GetBalance(ctx, userID)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("balance lookup for decision result failed")
		return nil
	}
	return balance
}

// decideRelease authorizes and performs held -> released. Cerebro is the
// only issuer of release approvals.
func (s *CerebroServiceImpl) decideRelease(ctx context.Context, intent domain.Intent, dctx ports.DecisionContext) (*domain.CerebroResult, error) {
	txID, err := payloadTransactionID(intent.Payload)
	if err != nil {
		return nil, err
	}

	perm := s.authz.HasPermission(dctx.Roles, ports.ActionWalletRelease)
	if !perm.Allowed {
		return &domain.CerebroResult{
			Allowed:          false,
			Message:          "Your role cannot release transactions.",
			Severity:         domain.SeverityRed,
			SuggestedActions: fallbackActions,
		}, nil
	}

	approval := &ports.CerebroApproval{TransactionID: txID, IssuedAt: s.now().UTC()}
	outcome, err := s.txSvc.Apply(ctx, txID, s.guardContext(dctx), approval)
	if err != nil {
		return nil, err
	}
	res := resultFromOutcome(outcome, "Transaction released.")
	if outcome.Decision.Allowed && !outcome.Decision.RequiresValidation {
		res.Balance = s.senderBalance(ctx, dctx.UserID)
	}
	return res, nil
}

// decideBlock terminates a transaction and returns held funds.
func (s *CerebroServiceImpl) decideBlock(ctx context.Context, intent domain.Intent, dctx ports.DecisionContext) (*domain.CerebroResult, error) {
	txID, err := payloadTransactionID(intent.Payload)
	if err != nil {
		return nil, err
	}

	perm := s.authz.HasPermission(dctx.Roles, ports.ActionWalletBlock)
	if !perm.Allowed {
		return &domain.CerebroResult{
			Allowed:          false,
			Message:          "Your role cannot block transactions.",
			Severity:         domain.SeverityRed,
			SuggestedActions: fallbackActions,
		}, nil
	}

	tx, err := s.txSvc.Block(ctx, txID, s.guardContext(dctx))
	if err != nil {
		return nil, err
	}
	return &domain.CerebroResult{
		Allowed:  true,
		Message:  "Transaction blocked and held funds returned.",
		Severity: domain.SeverityGreen,
		State:    string(tx.Status),
	}, nil
}

func (s *CerebroServiceImpl) guardContext(dctx ports.DecisionContext) ports.GuardContext {
	return ports.GuardContext{
		UserID:             dctx.UserID,
		Roles:              dctx.Roles,
		Location:           dctx.Location,
		BiometricValidated: dctx.BiometricValidated,
	}
}

// resultFromOutcome maps a transaction outcome onto a decision result.
func resultFromOutcome(outcome *ports.TransactionOutcome, successMsg string) *domain.CerebroResult {
	d := outcome.Decision
	res := &domain.CerebroResult{
		Allowed:                d.Allowed,
		Severity:               domain.DeriveSeverity(d.Allowed, d.RequiresValidation),
		RequiresValidation:     d.RequiresValidation,
		RequiredBiometricLevel: d.RequiredBiometricLevel,
		State:                  string(outcome.Transaction.Status),
	}
	switch {
	case !d.Allowed:
		res.Message = d.Reason
		res.SuggestedActions = fallbackActions
	case d.RequiresValidation:
		res.Message = "Validation required before this operation can continue."
	default:
		res.Message = successMsg
	}
	return res
}

// payloadAmount extracts a whole positive amount. JSON numbers arrive as
// float64; a fractional value is rejected rather than silently truncated.
func payloadAmount(payload map[string]any) (int64, bool) {
	switch v := payload["amount"].(type) {
	case int64:
		return v, v > 0
	case int:
		return int64(v), v > 0
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		return int64(v), v > 0
	}
	return 0, false
}

func payloadTransactionID(payload map[string]any) (uuid.UUID, error) {
	raw, _ := payload["transaction_id"].(string)
	if raw == "" {
		return uuid.Nil, apperror.Validation("transaction_id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperror.Validation("transaction_id is not a valid uuid")
	}
	return id, nil
}
