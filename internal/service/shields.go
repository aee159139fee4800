package service

import (
	"context"
	"fmt"
	"time"

	"cerebro-wallet/internal/core/domain"
	"cerebro-wallet/internal/core/ports"

	"github.com/rs/zerolog"
)

// territorialEscalationLevel is the biometric level forced by a yellow
// semaphore or an unverifiable location.
const territorialEscalationLevel = 2

// SpentReader is the slice of the ledger the amount-limit rule needs.
type SpentReader interface {
	SpentSince(ctx context.Context, walletID string, t time.Time) (int64, error)
}

// ShieldContext carries the facts one shield evaluation runs against.
type ShieldContext struct {
	WalletID           string
	Roles              []domain.Role
	Amount             int64
	Location           *domain.GeoPoint
	BiometricValidated *domain.BiometricValidation
	Now                time.Time
}

// ShieldEngine evaluates shields against a context. Validators are pure
// over (rule, context) except the territorial rule, which consults the
// external territory semaphore, and the amount limit, which reads released
// spend from the ledger.
type ShieldEngine struct {
	semaphore ports.TerritorySemaphore
	spent     SpentReader
	freshness time.Duration
	log       zerolog.Logger
}

// NewShieldEngine creates a shield engine. freshness is the window within
// which a biometric validation token still counts.
func NewShieldEngine(semaphore ports.TerritorySemaphore, spent SpentReader, freshness time.Duration, log zerolog.Logger) *ShieldEngine {
	return &ShieldEngine{
		semaphore: semaphore,
		spent:     spent,
		freshness: freshness,
		log:       log,
	}
}

// Evaluate runs one shield. Disabled shields must be filtered by the
// caller; the switch is exhaustive over the rule set with no default-allow.
func (e *ShieldEngine) Evaluate(ctx context.Context, shield domain.Shield, sctx ShieldContext) (domain.ShieldResult, error) {
	switch rule := shield.Rule.(type) {
	case domain.BiometricRule:
		return e.evaluateBiometric(rule, sctx), nil
	case domain.TimeDelayRule:
		return evaluateTimeDelay(rule), nil
	case domain.AmountLimitRule:
		return e.evaluateAmountLimit(ctx, rule, sctx)
	case domain.TerritorialRule:
		return e.evaluateTerritorial(ctx, rule, sctx), nil
	case domain.RoleBasedRule:
		return evaluateRoleBased(rule, sctx), nil
	default:
		return domain.ShieldResult{}, fmt.Errorf("shield %s: unknown rule kind %T", shield.ID, shield.Rule)
	}
}

func (e *ShieldEngine) evaluateBiometric(rule domain.BiometricRule, sctx ShieldContext) domain.ShieldResult {
	if sctx.BiometricValidated != nil &&
		sctx.BiometricValidated.Satisfies(rule.MinLevel, sctx.Now, e.freshness) {
		return domain.ShieldResult{Allowed: true}
	}
	return domain.ShieldResult{
		Allowed:                true,
		RequiresValidation:     true,
		RequiredBiometricLevel: rule.MinLevel,
		Reason:                 fmt.Sprintf("biometric validation level %d required", rule.MinLevel),
	}
}

// evaluateTimeDelay never denies: the waiting period is expressed as an
// escalation the caller must resolve out of band.
func evaluateTimeDelay(rule domain.TimeDelayRule) domain.ShieldResult {
	return domain.ShieldResult{
		Allowed:            true,
		RequiresValidation: true,
		Reason:             fmt.Sprintf("operation delayed by %s", rule.Delay),
	}
}

func (e *ShieldEngine) evaluateAmountLimit(ctx context.Context, rule domain.AmountLimitRule, sctx ShieldContext) (domain.ShieldResult, error) {
	remaining := rule.Limit
	if rule.PerDay {
		midnight := sctx.Now.UTC().Truncate(24 * time.Hour)
		spent, err := e.spent.SpentSince(ctx, sctx.WalletID, midnight)
		if err != nil {
			return domain.ShieldResult{}, fmt.Errorf("computing daily spend: %w", err)
		}
		remaining -= spent
		if remaining < 0 {
			remaining = 0
		}
	}
	if sctx.Amount > remaining {
		return domain.ShieldResult{
			Allowed: false,
			Reason:  fmt.Sprintf("amount %d exceeds remaining limit %d", sctx.Amount, remaining),
		}, nil
	}
	return domain.ShieldResult{Allowed: true}, nil
}

func (e *ShieldEngine) evaluateTerritorial(ctx context.Context, rule domain.TerritorialRule, sctx ShieldContext) domain.ShieldResult {
	if sctx.Location == nil {
		return domain.ShieldResult{
			Allowed:                true,
			RequiresValidation:     true,
			RequiredBiometricLevel: territorialEscalationLevel,
			Reason:                 "location unavailable, territorial rule cannot be verified",
		}
	}

	if rule.UseSemaphore && e.semaphore != nil {
		state, err := e.semaphore.GetState(ctx, *sctx.Location)
		if err != nil {
			e.log.Warn().Err(err).Msg("territory semaphore unavailable, falling back to geofence")
		} else {
			switch state.State {
			case domain.TerritoryStateRed:
				reason := state.Reason
				if reason == "" {
					reason = "territory semaphore reports red"
				}
				return domain.ShieldResult{Allowed: false, Reason: reason}
			case domain.TerritoryStateYellow:
				return domain.ShieldResult{
					Allowed:                true,
					RequiresValidation:     true,
					RequiredBiometricLevel: territorialEscalationLevel,
					Reason:                 "territory semaphore reports yellow",
				}
			case domain.TerritoryStateGreen:
				// Fall through to the shield's own geofence.
			}
		}
	}

	for _, zone := range rule.RedZones {
		if zone.Contains(*sctx.Location) {
			return domain.ShieldResult{
				Allowed: false,
				Reason:  fmt.Sprintf("location is inside red zone %s", zone.ID),
			}
		}
	}
	return domain.ShieldResult{Allowed: true}
}

func evaluateRoleBased(rule domain.RoleBasedRule, sctx ShieldContext) domain.ShieldResult {
	for _, allowed := range rule.AllowedRoles {
		if domain.HasRole(sctx.Roles, allowed) {
			return domain.ShieldResult{Allowed: true}
		}
	}
	return domain.ShieldResult{
		Allowed: false,
		Reason:  "none of the caller roles are allowed by this shield",
	}
}
