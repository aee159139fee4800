package handler

import (
	"time"

	"cerebro-wallet/internal/adapter/http/dto"
	"cerebro-wallet/internal/adapter/http/middleware"
	"cerebro-wallet/internal/core/domain"
	"cerebro-wallet/internal/core/ports"

	"github.com/gin-gonic/gin"
)

// callerIdentity pulls the authenticated user id and roles injected by the
// JWT middleware.
func callerIdentity(c *gin.Context) (string, []domain.Role, bool) {
	uid, ok := c.Get(middleware.CtxUserID)
	if !ok {
		return "", nil, false
	}
	userID, ok := uid.(string)
	if !ok || userID == "" {
		return "", nil, false
	}
	var roles []domain.Role
	if raw, ok := c.Get(middleware.CtxRoles); ok {
		if rs, ok := raw.([]domain.Role); ok {
			roles = rs
		}
	}
	return userID, roles, true
}

func toGeoPoint(loc *dto.Location) *domain.GeoPoint {
	if loc == nil {
		return nil
	}
	return &domain.GeoPoint{Lat: loc.Lat, Lon: loc.Lng}
}

// freshBiometric loads the caller's biometric freshness token, if any. A nil
// store (redis disabled) and a missing token both yield nil.
func freshBiometric(c *gin.Context, store ports.ValidationTokenStore, userID string) *domain.BiometricValidation {
	if store == nil {
		return nil
	}
	v, err := store.Get(c.Request.Context(), userID)
	if err != nil {
		return nil
	}
	return v
}

func toTransactionResponse(tx *domain.Transaction) dto.TransactionResponse {
	resp := dto.TransactionResponse{
		ID:           tx.ID.String(),
		FromWalletID: tx.FromWalletID,
		ToWalletID:   tx.ToWalletID,
		Amount:       tx.Amount,
		Type:         string(tx.Type),
		Status:       string(tx.Status),
		CreatedAt:    tx.CreatedAt.UTC().Format(time.RFC3339),
	}
	if tx.ProcessedAt != nil {
		s := tx.ProcessedAt.UTC().Format(time.RFC3339)
		resp.ProcessedAt = &s
	}
	return resp
}
