package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/carelink/practice-api/internal/auth"
	"github.com/carelink/practice-api/internal/dto"
	"github.com/carelink/practice-api/internal/metrics"
	"github.com/carelink/practice-api/internal/middleware"
	"github.com/carelink/practice-api/internal/service"
)

// AuthHandler exposes session endpoints. Tokens travel in an HTTP-only
// cookie rather than a response body.
type AuthHandler struct {
	authService *service.AuthService
	sessions    *auth.SessionManager
	log         zerolog.Logger
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(authService *service.AuthService, sessions *auth.SessionManager, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions, log: log}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return Error(c, http.StatusBadRequest, err.Error())
	}

	token, principal, err := h.authService.Login(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			metrics.LoginAttempts.WithLabelValues("denied").Inc()
			return Error(c, http.StatusUnauthorized, "invalid credentials")
		case errors.Is(err, service.ErrProviderUnavailable):
			metrics.LoginAttempts.WithLabelValues("error").Inc()
			return Error(c, http.StatusInternalServerError, "unable to authenticate")
		default:
			return respondError(c, h.log, err)
		}
	}

	metrics.LoginAttempts.WithLabelValues("granted").Inc()
	c.SetCookie(h.sessions.Cookie(token))
	return Success(c, http.StatusOK, principal)
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return Error(c, http.StatusBadRequest, err.Error())
	}

	token, principal, err := h.authService.Register(c.Request().Context(), req)
	if err != nil {
		return respondError(c, h.log, err)
	}

	c.SetCookie(h.sessions.Cookie(token))
	return Success(c, http.StatusCreated, principal)
}

// Logout handles POST /auth/logout. It always succeeds, even without a
// live session.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(h.sessions.ClearCookie())
	return Success(c, http.StatusOK, nil)
}

// Me handles GET /auth/me and returns the authenticated principal.
func (h *AuthHandler) Me(c echo.Context) error {
	subject, ok := c.Get(middleware.ContextKeyUserID).(string)
	if !ok || subject == "" {
		return Error(c, http.StatusUnauthorized, "authentication required")
	}
	principal, err := h.authService.Principal(c.Request().Context(), subject)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return Success(c, http.StatusOK, principal)
}
