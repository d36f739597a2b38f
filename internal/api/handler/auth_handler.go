package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/L4U04/salvaluno/internal/dto"
	"github.com/L4U04/salvaluno/internal/service"
	"github.com/L4U04/salvaluno/pkg/jwt"
	"github.com/L4U04/salvaluno/pkg/response"
)

// AuthHandler handles signup, login and the token lifecycle.
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Register creates an account
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "dados inválidos")
		return
	}

	result, err := h.authSvc.Register(c.Request.Context(), &req)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.Created(c, result)
}

// Login authenticates with e-mail and password
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "dados inválidos")
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.OK(c, result)
}

// RefreshToken exchanges a refresh token for a new pair
// POST /api/v1/auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "dados inválidos")
		return
	}

	result, err := h.authSvc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.OK(c, result)
}

// Logout revokes the current session tokens
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.RefreshTokenRequest
	_ = c.ShouldBindJSON(&req) // the refresh token is optional here

	accessToken := c.GetString("access_token")
	if err := h.authSvc.Logout(c.Request.Context(), accessToken, req.RefreshToken); err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}

// ChangePassword updates the authenticated user's password
// PUT /api/v1/auth/password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "dados inválidos")
		return
	}

	if err := h.authSvc.ChangePassword(c.Request.Context(), userID, &req); err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleAuthError maps auth business errors onto the envelope.
func (h *AuthHandler) handleAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmailTaken):
		response.Conflict(c, 10101, service.ErrEmailTaken.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, 10102, service.ErrInvalidCredentials.Error())
	case errors.Is(err, service.ErrCampusNotFound):
		response.BadRequest(c, 10103, service.ErrCampusNotFound.Error())
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, 10104, service.ErrUserNotFound.Error())
	case errors.Is(err, service.ErrWrongPassword):
		response.BadRequest(c, 10105, service.ErrWrongPassword.Error())
	case errors.Is(err, service.ErrNotRefreshToken):
		response.BadRequest(c, 10106, service.ErrNotRefreshToken.Error())
	case errors.Is(err, service.ErrTokenRevoked):
		response.Error(c, http.StatusUnauthorized, 10107, service.ErrTokenRevoked.Error())
	case errors.Is(err, jwt.ErrTokenExpired), errors.Is(err, jwt.ErrTokenInvalid):
		response.Error(c, http.StatusUnauthorized, 10108, "token inválido ou expirado")
	default:
		response.InternalError(c)
	}
}
