package handler

import (
	"cerebro-wallet/internal/adapter/http/dto"
	"cerebro-wallet/internal/core/domain"
	"cerebro-wallet/internal/core/ports"
	"cerebro-wallet/pkg/apperror"
	"cerebro-wallet/pkg/response"

	"github.com/gin-gonic/gin"
)

// WalletHandler handles wallet endpoints. The authenticated user operates
// only on their own wallet.
type WalletHandler struct {
	ledgerSvc  ports.LedgerService
	txSvc      ports.TransactionService
	tokenStore ports.ValidationTokenStore
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(ledgerSvc ports.LedgerService, txSvc ports.TransactionService, tokenStore ports.ValidationTokenStore) *WalletHandler {
	return &WalletHandler{
		ledgerSvc:  ledgerSvc,
		txSvc:      txSvc,
		tokenStore: tokenStore,
	}
}

// GetBalance handles GET /api/v1/wallets/balance.
func (h *WalletHandler) GetBalance(c *gin.Context) {
	userID, _, ok := callerIdentity(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	balance, err := h.ledgerSvc.GetBalance(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, balance)
}

// Transfer handles POST /api/v1/wallets/transfer. It creates the transfer
// and applies the hold step; the caller then releases or blocks it.
func (h *WalletHandler) Transfer(c *gin.Context) {
	userID, roles, ok := callerIdentity(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	tx, err := h.txSvc.Create(c.Request.Context(), userID, req.ToWalletID, req.Amount, domain.TransactionTypeTransfer)
	if err != nil {
		response.Error(c, err)
		return
	}

	gctx := ports.GuardContext{
		UserID:             userID,
		Roles:              roles,
		Location:           toGeoPoint(req.Location),
		BiometricValidated: freshBiometric(c, h.tokenStore, userID),
	}

	outcome, err := h.txSvc.Apply(c.Request.Context(), tx.ID, gctx, nil)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, gin.H{
		"transaction": toTransactionResponse(outcome.Transaction),
		"decision":    outcome.Decision,
	})
}
