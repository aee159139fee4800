package service

import (
	"context"
	"fmt"
	"time"

	"cerebro-wallet/internal/core/domain"
	"cerebro-wallet/internal/core/ports"
	"cerebro-wallet/pkg/apperror"

	"github.com/rs/zerolog"
)

// GuardServiceImpl implements ports.GuardService: the sole gate before any
// ledger mutation. Checks run in a strict short-circuit order; the first
// failing step decides the outcome.
type GuardServiceImpl struct {
	wallets  ports.WalletStore
	authz    ports.AuthorizationService
	registry ports.ShieldRegistry
	shields  *ShieldEngine
	log      zerolog.Logger
	now      func() time.Time
}

// NewGuardService creates a new GuardServiceImpl.
func NewGuardService(
	wallets ports.WalletStore,
	authz ports.AuthorizationService,
	registry ports.ShieldRegistry,
	shields *ShieldEngine,
	log zerolog.Logger,
) *GuardServiceImpl {
	return &GuardServiceImpl{
		wallets:  wallets,
		authz:    authz,
		registry: registry,
		shields:  shields,
		log:      log,
		now:      time.Now,
	}
}

func deny(reason string) *ports.GuardDecision {
	return &ports.GuardDecision{
		Allowed:  false,
		Reason:   reason,
		Severity: domain.SeverityRed,
	}
}

// Check evaluates the full guard pipeline for one context. Denials are
// normal results, not errors; errors mean the check itself could not run.
func (s *GuardServiceImpl) Check(ctx context.Context, gctx ports.GuardContext) (*ports.GuardDecision, error) {
	// 1. Caller identified.
	if gctx.UserID == "" {
		return deny("caller is not identified"), nil
	}

	// 2. Wallet exists.
	wallet, err := s.wallets.Get(ctx, gctx.WalletID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return deny(fmt.Sprintf("wallet %s does not exist", gctx.WalletID)), nil
	}

	// 3. Wallet state.
	switch wallet.State {
	case domain.WalletStateActive:
	case domain.WalletStateLocked:
		return deny("wallet is locked"), nil
	case domain.WalletStateSuspended:
		return deny("wallet is suspended"), nil
	default:
		return deny(fmt.Sprintf("wallet is in unknown state %q", wallet.State)), nil
	}

	// 4. Role permission for the canonical action.
	perm := s.authz.HasPermission(gctx.Roles, actionForGuard(gctx.Action))
	if !perm.Allowed {
		reason := perm.Reason
		if reason == "" {
			reason = "caller roles do not permit this action"
		}
		return deny(reason), nil
	}

	// 5. Shields in registration order. First denial wins; first escalation
	// stops evaluation, since validation must happen before further shields
	// can be meaningfully checked.
	now := s.now().UTC()
	sctx := ShieldContext{
		WalletID:           gctx.WalletID,
		Roles:              gctx.Roles,
		Amount:             gctx.Amount,
		Location:           gctx.Location,
		BiometricValidated: gctx.BiometricValidated,
		Now:                now,
	}
	for _, shieldID := range wallet.ActiveShieldIDs {
		shield, ok := s.registry.Get(shieldID)
		if !ok {
			s.log.Warn().Str("shield_id", shieldID).Str("wallet_id", wallet.OwnerID).
				Msg("wallet references unregistered shield, skipping")
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
			s.log.Info().Str("shield_id", shieldID).Str("reason", result.Reason).
				Msg("shield denied operation")
			return deny(result.Reason), nil
		}
		if result.RequiresValidation {
			return &ports.GuardDecision{
				Allowed:                true,
				Reason:                 result.Reason,
				RequiresValidation:     true,
				RequiredBiometricLevel: result.RequiredBiometricLevel,
				Severity:               domain.SeverityYellow,
			}, nil
		}
	}

	// 6. Balance sufficiency when funds move. The protected balance acts as
	// a reserve floor below which available funds cannot be spent. The floor
	// applies only when funds leave the available balance: a release spends
	// the amount the hold already escrowed, so it is never re-checked here.
	if gctx.Action == ports.GuardActionTransfer || gctx.Action == ports.GuardActionRelease {
		if gctx.Amount <= 0 {
			return deny("transfer amount must be positive"), nil
		}
	}
	if gctx.Action == ports.GuardActionTransfer {
		spendable := wallet.BalanceAvailable - wallet.BalanceProtected
		if spendable < gctx.Amount {
			return deny(fmt.Sprintf("insufficient funds: short by %d", gctx.Amount-spendable)), nil
		}
	}

	decision := &ports.GuardDecision{
		Allowed:  true,
		Severity: domain.SeverityGreen,
		Pass: &ports.GuardPass{
			WalletID: gctx.WalletID,
			Amount:   gctx.Amount,
			IssuedAt: now,
		},
	}
	// 7. Releases must still be authorized by the decision engine.
	if gctx.Action == ports.GuardActionTransfer {
		decision.RequiresCerebro = true
	}
	return decision, nil
}

func actionForGuard(a ports.GuardAction) string {
	switch a {
	case ports.GuardActionTransfer:
		return ports.ActionWalletTransfer
	case ports.GuardActionRelease:
		return ports.ActionWalletRelease
	default:
		return ports.ActionWalletView
	}
}
