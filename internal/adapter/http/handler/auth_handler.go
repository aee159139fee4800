package handler

import (
	"cerebro-wallet/internal/adapter/http/dto"
	"cerebro-wallet/internal/core/domain"
	"cerebro-wallet/internal/core/ports"
	"cerebro-wallet/pkg/apperror"
	"cerebro-wallet/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	identitySvc ports.IdentityService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(identitySvc ports.IdentityService) *AuthHandler {
	return &AuthHandler{identitySvc: identitySvc}
}

// Register handles POST /api/v1/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	user, err := h.identitySvc.Register(c.Request.Context(), ports.RegisterRequest{
		Username: req.Username,
		Password: req.Password,
		Roles:    domain.RolesFromStrings(req.Roles),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.RegisterResponse{
		UserID:   user.ID,
		Username: user.Username,
		Roles:    domain.RolesToStrings(user.Roles),
		WalletID: user.ID,
	})
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	token, expiry, err := h.identitySvc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.LoginResponse{
		Token:  token,
		Expiry: expiry.Unix(),
	})
}
