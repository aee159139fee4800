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

// TransactionHandler drives transactions through their lifecycle. Release
// goes through the decision engine: only it may authorize held -> released.
type TransactionHandler struct {
	txSvc      ports.TransactionService
	cerebroSvc ports.CerebroService
	tokenStore ports.ValidationTokenStore
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(txSvc ports.TransactionService, cerebroSvc ports.CerebroService, tokenStore ports.ValidationTokenStore) *TransactionHandler {
	return &TransactionHandler{
		txSvc:      txSvc,
		cerebroSvc: cerebroSvc,
		tokenStore: tokenStore,
	}
}

// Get handles GET /api/v1/transactions/:id.
func (h *TransactionHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("transaction id is not a valid uuid"))
		return
	}

	tx, err := h.txSvc.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toTransactionResponse(tx))
}

// Apply handles POST /api/v1/transactions/:id/apply, advancing one step
// without a release authorization (pending -> held).
func (h *TransactionHandler) Apply(c *gin.Context) {
	id, gctx, ok := h.stepInputs(c)
	if !ok {
		return
	}

	outcome, err := h.txSvc.Apply(c.Request.Context(), id, gctx, nil)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{
		"transaction": toTransactionResponse(outcome.Transaction),
		"decision":    outcome.Decision,
	})
}

// Release handles POST /api/v1/transactions/:id/release by routing through
// the decision engine, which issues the release authorization itself.
func (h *TransactionHandler) Release(c *gin.Context) {
	userID, roles, ok := callerIdentity(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("transaction id is not a valid uuid"))
		return
	}

	var req dto.TransactionStepRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	intent := domain.Intent{
		ID:           domain.IntentWalletReleaseTx,
		Source:       domain.IntentSourceSystem,
		Payload:      map[string]any{"transaction_id": id.String()},
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

// Block handles POST /api/v1/transactions/:id/block.
func (h *TransactionHandler) Block(c *gin.Context) {
	id, gctx, ok := h.stepInputs(c)
	if !ok {
		return
	}

	tx, err := h.txSvc.Block(c.Request.Context(), id, gctx)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toTransactionResponse(tx))
}

// stepInputs parses the transaction id and builds the guard context for a
// lifecycle step. Writes the error response itself on failure.
func (h *TransactionHandler) stepInputs(c *gin.Context) (uuid.UUID, ports.GuardContext, bool) {
	userID, roles, ok := callerIdentity(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return uuid.Nil, ports.GuardContext{}, false
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("transaction id is not a valid uuid"))
		return uuid.Nil, ports.GuardContext{}, false
	}

	var req dto.TransactionStepRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, apperror.Validation(err.Error()))
		return uuid.Nil, ports.GuardContext{}, false
	}

	gctx := ports.GuardContext{
		UserID:             userID,
		Roles:              roles,
		Location:           toGeoPoint(req.Location),
		BiometricValidated: freshBiometric(c, h.tokenStore, userID),
	}
	return id, gctx, true
}
