package middleware

import (
	"strings"

	domainerrors "folio/internal/domain/errors"
	"folio/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for downstream handlers.
const (
	KeyUserID    = "userID"
	KeyUserEmail = "userEmail"
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and attaches the caller's
// identity to the echo context. Every failure maps to a 401 through the
// central error handler; a missing header and an expired token produce the
// same class of response.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrNoToken
		}

		// The scheme is matched case-insensitively, per RFC 7235.
		const bearerPrefix = "Bearer "
		if len(authHeader) <= len(bearerPrefix) || !strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			return domainerrors.ErrNoToken
		}
		tokenString := authHeader[len(bearerPrefix):]

		claims, err := m.tokenSvc.VerifyAccess(tokenString)
		if err != nil {
			return domainerrors.ErrInvalidToken
		}

		c.Set(KeyUserID, claims.UserID)
		c.Set(KeyUserEmail, claims.Email)

		return next(c)
	}
}

// UserID reads the authenticated user's id from the echo context.
// It is only meaningful behind Authenticate.
func UserID(c echo.Context) (int64, bool) {
	id, ok := c.Get(KeyUserID).(int64)

	return id, ok
}
