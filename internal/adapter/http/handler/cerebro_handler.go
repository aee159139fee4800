package handler

import (
	"time"

	"cerebro-wallet/internal/adapter/http/dto"
	"cerebro-wallet/internal/core/domain"
	"cerebro-wallet/internal/core/ports"
	"cerebro-wallet/pkg/apperror"
	"cerebro-wallet/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// CerebroHandler exposes the decision engine and the biometric validation
// endpoint.
type CerebroHandler struct {
	cerebroSvc      ports.CerebroService
	biometric       ports.BiometricProvider
	tokenStore      ports.ValidationTokenStore // nil = freshness tokens disabled
	freshnessWindow time.Duration
	log             zerolog.Logger
}

// NewCerebroHandler creates a new CerebroHandler.
func NewCerebroHandler(
	cerebroSvc ports.CerebroService,
	biometric ports.BiometricProvider,
	tokenStore ports.ValidationTokenStore,
	freshnessWindow time.Duration,
	log zerolog.Logger,
) *CerebroHandler {
	return &CerebroHandler{
		cerebroSvc:      cerebroSvc,
		biometric:       biometric,
		tokenStore:      tokenStore,
		freshnessWindow: freshnessWindow,
		log:             log,
	}
}

// Decide handles POST /api/v1/cerebro/decide.
func (h *CerebroHandler) Decide(c *gin.Context) {
	userID, roles, ok := callerIdentity(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.DecideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	source := domain.IntentSource(req.Source)
	if source == "" {
		source = domain.IntentSourceChip
	}

	intent := domain.Intent{
		ID:           req.IntentID,
		Source:       source,
		Payload:      req.Payload,
		RequiresAuth: true,
	}

	dctx := ports.DecisionContext{
		UserID:             userID,
		Authenticated:      true,
		Roles:              roles,
		Location:           toGeoPoint(req.Location),
		BiometricValidated: freshBiometric(c, h.tokenStore, userID),
	}
	if len(roles) > 0 {
		dctx.Role = roles[0]
	}

	result, err := h.cerebroSvc.Decide(c.Request.Context(), intent, dctx)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}

// ValidateBiometric handles POST /api/v1/cerebro/validate. It runs one
// capture-and-verify round against the biometric provider and, on success,
// stores a freshness token the guard will honor for the freshness window.
func (h *CerebroHandler) ValidateBiometric(c *gin.Context) {
	userID, _, ok := callerIdentity(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.ValidateBiometricRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	if !h.biometric.IsAvailable(req.Kind) {
		response.Error(c, apperror.Validation("biometric kind not available: "+req.Kind))
		return
	}

	payload, err := h.biometric.Capture(c.Request.Context(), req.Kind)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	verdict, err := h.biometric.Verify(c.Request.Context(), payload)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	if !verdict.Success {
		response.Error(c, apperror.Validation("biometric verification failed: "+verdict.Reason))
		return
	}

	now := time.Now().UTC()
	validation := domain.BiometricValidation{Level: verdict.Level, At: now}
	if h.tokenStore != nil {
		if err := h.tokenStore.Put(c.Request.Context(), userID, validation, h.freshnessWindow); err != nil {
			h.log.Error().Err(err).Str("user_id", userID).Msg("failed to store validation token")
			response.Error(c, apperror.InternalError(err))
			return
		}
	}

	response.OK(c, dto.ValidateBiometricResponse{
		Level:       verdict.Level,
		ValidatedAt: now.Unix(),
		ExpiresIn:   int64(h.freshnessWindow.Seconds()),
	})
}
