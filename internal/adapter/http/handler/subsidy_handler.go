package handler

import (
	"errors"
	"io"

	"cerebro-wallet/internal/adapter/http/dto"
	"cerebro-wallet/internal/core/domain"
	"cerebro-wallet/internal/core/ports"
	"cerebro-wallet/pkg/apperror"
	"cerebro-wallet/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SubsidyHandler handles subsidy program endpoints.
type SubsidyHandler struct {
	subsidySvc ports.SubsidyService
	tokenStore ports.ValidationTokenStore
}

// NewSubsidyHandler creates a new SubsidyHandler.
func NewSubsidyHandler(subsidySvc ports.SubsidyService, tokenStore ports.ValidationTokenStore) *SubsidyHandler {
	return &SubsidyHandler{
		subsidySvc: subsidySvc,
		tokenStore: tokenStore,
	}
}

// Create handles POST /api/v1/subsidies.
func (h *SubsidyHandler) Create(c *gin.Context) {
	_, roles, ok := callerIdentity(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.CreateSubsidyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	sub, err := h.subsidySvc.Create(c.Request.Context(), ports.CreateSubsidyRequest{
		CallerRoles: roles,
		Source:      domain.SubsidySource(req.Source),
		TargetRoles: domain.RolesFromStrings(req.TargetRoles),
		Amount:      req.Amount,
		Conditions: domain.SubsidyConditions{
			RequiredBiometricLevel: req.Conditions.RequiredBiometricLevel,
			MinTrustScore:          req.Conditions.MinTrustScore,
			AllowedTerritoryIDs:    req.Conditions.AllowedTerritoryIDs,
		},
		RequiredShieldID: req.RequiredShieldIDs,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, sub)
}

// List handles GET /api/v1/subsidies.
func (h *SubsidyHandler) List(c *gin.Context) {
	subs, err := h.subsidySvc.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, subs)
}

// CheckEligibility handles POST /api/v1/subsidies/:id/eligibility.
func (h *SubsidyHandler) CheckEligibility(c *gin.Context) {
	id, ectx, ok := h.eligibilityInputs(c)
	if !ok {
		return
	}

	decision, err := h.subsidySvc.ValidateEligibility(c.Request.Context(), id, ectx)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, decision)
}

// Accept handles POST /api/v1/subsidies/:id/accept.
func (h *SubsidyHandler) Accept(c *gin.Context) {
	id, ectx, ok := h.eligibilityInputs(c)
	if !ok {
		return
	}

	outcome, err := h.subsidySvc.Accept(c.Request.Context(), id, ectx)
	if err != nil {
		response.Error(c, err)
		return
	}

	if outcome.Acceptance == nil {
		response.OK(c, gin.H{"decision": outcome.Decision})
		return
	}
	response.Created(c, gin.H{
		"decision":   outcome.Decision,
		"acceptance": outcome.Acceptance,
	})
}

func (h *SubsidyHandler) eligibilityInputs(c *gin.Context) (uuid.UUID, ports.EligibilityContext, bool) {
	userID, roles, ok := callerIdentity(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return uuid.Nil, ports.EligibilityContext{}, false
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("subsidy id is not a valid uuid"))
		return uuid.Nil, ports.EligibilityContext{}, false
	}

	var req dto.AcceptSubsidyRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, apperror.Validation(err.Error()))
		return uuid.Nil, ports.EligibilityContext{}, false
	}
	dto.SanitizeStruct(&req)

	ectx := ports.EligibilityContext{
		UserID:             userID,
		Roles:              roles,
		TerritoryID:        req.TerritoryID,
		Location:           toGeoPoint(req.Location),
		BiometricValidated: freshBiometric(c, h.tokenStore, userID),
	}
	return id, ectx, true
}
