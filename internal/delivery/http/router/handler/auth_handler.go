// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"folio/config"
	"folio/internal/delivery/http/response"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// refreshCookieName is the cookie the refresh token travels in. The browser
// is the only holder; scripts never see it.
const refreshCookieName = "refreshToken"

// refreshCookieMaxAge mirrors the refresh token's own lifetime.
const refreshCookieMaxAge = 7 * 24 * time.Hour

// AuthHandler holds dependencies for the authentication endpoints.
type AuthHandler struct {
	uc           usecase.AuthUsecase
	logger       *slog.Logger
	cookieSecure bool
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	cookieSecure := false
	if cfg.Auth != nil {
		cookieSecure = cfg.Auth.CookieSecure
	}

	return &AuthHandler{
		uc:           uc,
		logger:       logger,
		cookieSecure: cookieSecure,
	}
}

type signupRequest struct {
	Email           string `json:"email" validate:"required"`
	Password        string `json:"password" validate:"required"`
	Name            string `json:"name"`
	Mobile          string `json:"mobile"`
	SessionDuration string `json:"sessionDuration"`
}

type loginRequest struct {
	Email           string `json:"email" validate:"required"`
	Password        string `json:"password" validate:"required"`
	SessionDuration string `json:"sessionDuration"`
}

// Signup handles account registration. On success the client receives the
// access token in the body and the refresh token in an HttpOnly cookie.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrEmailPasswordRequired
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrEmailPasswordRequired
	}

	output, err := h.uc.Signup(c.Request().Context(), &usecase.SignupInput{
		Email:           req.Email,
		Password:        req.Password,
		Name:            req.Name,
		Mobile:          req.Mobile,
		SessionDuration: req.SessionDuration,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setRefreshCookie(c, output.RefreshToken)

	return response.Token(c, http.StatusOK, output.AccessToken)
}

// Login handles the user login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrEmailPasswordRequired
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrEmailPasswordRequired
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:           req.Email,
		Password:        req.Password,
		SessionDuration: req.SessionDuration,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setRefreshCookie(c, output.RefreshToken)

	return response.Token(c, http.StatusOK, output.AccessToken)
}

// Refresh mints a replacement access token from the refresh cookie. The
// cookie is the only accepted carrier; there is no body.
func (h *AuthHandler) Refresh(c echo.Context) error {
	cookie, err := c.Cookie(refreshCookieName)
	if err != nil || cookie.Value == "" {
		return domainerrors.ErrNoRefreshToken
	}

	output, err := h.uc.Refresh(c.Request().Context(), cookie.Value)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.AccessToken(c, http.StatusOK, output.AccessToken)
}

// Logout clears the refresh cookie. The tokens themselves stay valid until
// expiry; logout is purely a client-side state reset.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.clearRefreshCookie(c)

	return response.Message(c, http.StatusOK, "Logged out")
}

func (h *AuthHandler) setRefreshCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     refreshCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(refreshCookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteStrictMode,
	})
}

func (h *AuthHandler) clearRefreshCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteStrictMode,
	})
}
