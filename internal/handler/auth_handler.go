package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shoplite/storeapi/internal/dto"
	"github.com/shoplite/storeapi/internal/middleware"
	"github.com/shoplite/storeapi/internal/service"
)

// AuthHandler exposes registration, login and account endpoints.
type AuthHandler struct {
	auth service.AuthService
}

// NewAuthHandler creates the auth handler.
func NewAuthHandler(auth service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	user, err := h.auth.Register(c.Request().Context(), &req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondOK(c, http.StatusCreated, "User registered", user)
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	result, err := h.auth.Login(c.Request().Context(), &req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondOK(c, http.StatusOK, "Login successful", result)
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(c echo.Context) error {
	claims := middleware.ClaimsFromEcho(c)
	if claims == nil {
		return respondError(c, http.StatusUnauthorized, "Authentication required")
	}

	user, err := h.auth.Profile(c.Request().Context(), claims.UserID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondOK(c, http.StatusOK, "Profile retrieved", user)
}

// ChangePassword handles PUT /api/auth/password
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	claims := middleware.ClaimsFromEcho(c)
	if claims == nil {
		return respondError(c, http.StatusUnauthorized, "Authentication required")
	}

	var req dto.ChangePasswordRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	if err := h.auth.ChangePassword(c.Request().Context(), claims.UserID, &req); err != nil {
		return respondServiceError(c, err)
	}
	return respondOK(c, http.StatusOK, "Password changed", nil)
}
