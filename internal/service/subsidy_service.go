package service

import (
	"context"
	"fmt"
	"time"

	"cerebro-wallet/internal/core/domain"
	"cerebro-wallet/internal/core/ports"
	"cerebro-wallet/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// systemWalletID is the synthetic sending wallet used when running the
// shield chain for subsidy eligibility.
const systemWalletID = "system"

// SubsidyServiceImpl implements ports.SubsidyService. A subsidy is a
// program: acceptance credits one user and never consumes the program.
type SubsidyServiceImpl struct {
	store    ports.SubsidyStore
	ledger   ports.LedgerService
	authz    ports.AuthorizationService
	profiles ports.IdentityProfileService
	registry ports.ShieldRegistry
	shields  *ShieldEngine
	log      zerolog.Logger
	now      func() time.Time
}

// NewSubsidyService creates a new SubsidyServiceImpl.
func NewSubsidyService(
	store ports.SubsidyStore,
	ledger ports.LedgerService,
	authz ports.AuthorizationService,
	profiles ports.IdentityProfileService,
	registry ports.ShieldRegistry,
	shields *ShieldEngine,
	log zerolog.Logger,
) *SubsidyServiceImpl {
	return &SubsidyServiceImpl{
		store:    store,
		ledger:   ledger,
		authz:    authz,
		profiles: profiles,
		registry: registry,
		shields:  shields,
		log:      log,
		now:      time.Now,
	}
}

// Create stores a program definition. Privileged roles only.
func (s *SubsidyServiceImpl) Create(ctx context.Context, req ports.CreateSubsidyRequest) (*domain.Subsidy, error) {
	perm := s.authz.HasPermission(req.CallerRoles, ports.ActionSubsidyCreate)
	if !perm.Allowed {
		return nil, apperror.New("SUB_003", "Creating subsidies requires an operator or admin role", 403)
	}
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if len(req.TargetRoles) == 0 {
		return nil, apperror.Validation("subsidy must target at least one role")
	}
	switch req.Source {
	case domain.SubsidySourceGovernment, domain.SubsidySourceEnterprise, domain.SubsidySourceSponsor:
	default:
		return nil, apperror.Validation(fmt.Sprintf("unknown subsidy source %q", req.Source))
	}

	sub := &domain.Subsidy{
		ID:               uuid.New(),
		Source:           req.Source,
		TargetRoles:      req.TargetRoles,
		Amount:           req.Amount,
		Conditions:       req.Conditions,
		RequiredShieldID: req.RequiredShieldID,
		Status:           domain.SubsidyStatusAvailable,
		CreatedAt:        s.now().UTC(),
	}
	if err := s.store.Create(ctx, sub); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create subsidy: %w", err))
	}

	s.log.Info().
		Str("subsidy_id", sub.ID.String()).
		Str("source", string(sub.Source)).
		Int64("amount", sub.Amount).
		Msg("subsidy program created")
	return sub, nil
}

func (s *SubsidyServiceImpl) List(ctx context.Context) ([]domain.Subsidy, error) {
	subs, err := s.store.List(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list subsidies: %w", err))
	}
	return subs, nil
}

// ValidateEligibility runs the acceptance pipeline without crediting:
// role targeting, program conditions, then the required shield chain with
// the synthetic system wallet as sender.
func (s *SubsidyServiceImpl) ValidateEligibility(ctx context.Context, subsidyID uuid.UUID, ectx ports.EligibilityContext) (*ports.EligibilityDecision, error) {
	sub, err := s.store.Get(ctx, subsidyID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get subsidy: %w", err))
	}
	if sub == nil {
		return nil, apperror.ErrSubsidyNotFound(subsidyID.String())
	}
	if sub.Status != domain.SubsidyStatusAvailable {
		return nil, apperror.ErrSubsidyUnavailable(subsidyID.String())
	}
	if ectx.UserID == "" {
		return nil, apperror.ErrMissingUserID()
	}

	// Role targeting.
	if !anyRoleTargeted(ectx.Roles, sub.TargetRoles) {
		return &ports.EligibilityDecision{Eligible: false, Reason: "role not targeted by this subsidy"}, nil
	}

	// Program conditions.
	if decision, err := s.checkConditions(ctx, sub, ectx); err != nil || decision != nil {
		return decision, err
	}

	// Shield chain, system wallet as sender.
	now := s.now().UTC()
	sctx := ShieldContext{
		WalletID:           systemWalletID,
		Roles:              ectx.Roles,
		Amount:             sub.Amount,
		Location:           ectx.Location,
		BiometricValidated: ectx.BiometricValidated,
		Now:                now,
	}
	for _, shieldID := range sub.RequiredShieldID {
		shield, ok := s.registry.Get(shieldID)
		if !ok {
			s.log.Warn().Str("shield_id", shieldID).Str("subsidy_id", sub.ID.String()).
				Msg("subsidy references unregistered shield, skipping")
			continue
		}
		if !shield.Enabled {
			continue
		}
		result, err := s.shields.Evaluate(ctx, shield, sctx)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("evaluate shield %s: %w", shieldID, err))
		}
		if !result.Allowed {
			return &ports.EligibilityDecision{Eligible: false, Reason: result.Reason}, nil
		}
		if result.RequiresValidation {
			return &ports.EligibilityDecision{
				Eligible:               true,
				Reason:                 result.Reason,
				RequiresValidation:     true,
				RequiredBiometricLevel: result.RequiredBiometricLevel,
			}, nil
		}
	}

	return &ports.EligibilityDecision{Eligible: true}, nil
}

// checkConditions returns a non-nil decision when a condition blocks or
// escalates; (nil, nil) means all conditions pass.
func (s *SubsidyServiceImpl) checkConditions(ctx context.Context, sub *domain.Subsidy, ectx ports.EligibilityContext) (*ports.EligibilityDecision, error) {
	cond := sub.Conditions

	profile, err := s.profiles.GetProfile(ctx, ectx.UserID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get profile: %w", err))
	}
	if profile == nil {
		return &ports.EligibilityDecision{Eligible: false, Reason: "unknown user"}, nil
	}

	if cond.RequiredBiometricLevel > 0 && profile.VerificationLevel < cond.RequiredBiometricLevel {
		// A fresh validation token at the required level also satisfies.
		if ectx.BiometricValidated == nil ||
			!ectx.BiometricValidated.Satisfies(cond.RequiredBiometricLevel, s.now().UTC(), s.shields.freshness) {
			return &ports.EligibilityDecision{
				Eligible:               true,
				RequiresValidation:     true,
				RequiredBiometricLevel: cond.RequiredBiometricLevel,
				Reason:                 fmt.Sprintf("biometric verification level %d required", cond.RequiredBiometricLevel),
			}, nil
		}
	}

	if cond.MinTrustScore > 0 && profile.TrustScore < cond.MinTrustScore {
		return &ports.EligibilityDecision{
			Eligible: false,
			Reason:   fmt.Sprintf("trust score %.1f below required %.1f", profile.TrustScore, cond.MinTrustScore),
		}, nil
	}

	if len(cond.AllowedTerritoryIDs) > 0 {
		found := false
		for _, id := range cond.AllowedTerritoryIDs {
			if id == ectx.TerritoryID {
				found = true
				break
			}
		}
		if !found {
			return &ports.EligibilityDecision{Eligible: false, Reason: "territory not covered by this subsidy"}, nil
		}
	}

	return nil, nil
}

// Accept runs the eligibility pipeline and, on success, credits the amount
// and locks it into the protected balance, recording an immutable
// acceptance. The program itself stays available.
func (s *SubsidyServiceImpl) Accept(ctx context.Context, subsidyID uuid.UUID, ectx ports.EligibilityContext) (*ports.AcceptOutcome, error) {
	decision, err := s.ValidateEligibility(ctx, subsidyID, ectx)
	if err != nil {
		return nil, err
	}
	if !decision.Eligible || decision.RequiresValidation {
		return &ports.AcceptOutcome{Decision: decision}, nil
	}

	sub, err := s.store.Get(ctx, subsidyID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get subsidy: %w", err))
	}

	if _, err := s.ledger.CreateWallet(ctx, ectx.UserID); err != nil {
		return nil, err
	}
	if err := s.ledger.Credit(ctx, ectx.UserID, sub.Amount); err != nil {
		return nil, err
	}
	if err := s.ledger.ApplyLock(ctx, ectx.UserID, sub.Amount); err != nil {
		return nil, err
	}

	acc := &domain.SubsidyAcceptance{
		ID:                  uuid.New(),
		SubsidyID:           sub.ID,
		UserID:              ectx.UserID,
		Amount:              sub.Amount,
		CreditedToProtected: true,
		ConditionsSnapshot:  sub.Conditions,
		CreatedAt:           s.now().UTC(),
	}
	if err := s.store.CreateAcceptance(ctx, acc); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("record acceptance: %w", err))
	}

	s.log.Info().
		Str("subsidy_id", sub.ID.String()).
		Str("user_id", ectx.UserID).
		Int64("amount", sub.Amount).
		Msg("subsidy accepted and credited to protected balance")
	return &ports.AcceptOutcome{Decision: decision, Acceptance: acc}, nil
}

func anyRoleTargeted(have, target []domain.Role) bool {
	for _, t := range target {
		if domain.HasRole(have, t) {
			return true
		}
	}
	return false
}
