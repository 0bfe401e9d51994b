// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"folio/config"
	"folio/internal/domain/service"
)

const (
	// defaultAccessTTL is used whenever a session duration is absent or unparseable.
	defaultAccessTTL = time.Hour

	// refreshTTL is fixed and not configurable per call.
	refreshTTL = 7 * 24 * time.Hour
)

// ErrTokenInvalid is returned for every verification failure. Expired and
// tampered tokens deliberately collapse into the same error so callers cannot
// distinguish them.
var ErrTokenInvalid = errors.New("invalid or expired token")

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  string // Secret key for signing access tokens.
	refreshSecret string // Secret key for signing refresh tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}
	if cfg.SecretKey.Access == cfg.SecretKey.Refresh {
		return nil, errors.New("access and refresh secrets must differ")
	}

	return &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
	}, nil
}

// IssueAccess creates a signed access token whose lifetime is taken from the
// client-supplied session duration.
func (s *jwtService) IssueAccess(userID int64, email, sessionDuration string) (string, error) {
	return s.signToken(userID, email, parseSessionDuration(sessionDuration), s.accessSecret)
}

// IssueRefresh creates a signed refresh token with the fixed 7-day lifetime.
func (s *jwtService) IssueRefresh(userID int64, email string) (string, error) {
	return s.signToken(userID, email, refreshTTL, s.refreshSecret)
}

// VerifyAccess validates a token against the access secret.
func (s *jwtService) VerifyAccess(token string) (*service.Claims, error) {
	return s.verify(token, s.accessSecret)
}

// VerifyRefresh validates a token against the refresh secret.
func (s *jwtService) VerifyRefresh(token string) (*service.Claims, error) {
	return s.verify(token, s.refreshSecret)
}

// signToken is a private helper to create a JWT with the shared claim shape.
func (s *jwtService) signToken(userID int64, email string, ttl time.Duration, secret string) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(secret))
}

func (s *jwtService) verify(tokenString, secret string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}

// parseSessionDuration interprets "<int>h" as hours and "<int>d" as days.
// Any other shape falls back to the one-hour default. Zero and negative values
// pass through untouched and produce an already-expired token.
func parseSessionDuration(s string) time.Duration {
	if n, ok := cutIntSuffix(s, "h"); ok {
		return time.Duration(n) * time.Hour
	}
	if n, ok := cutIntSuffix(s, "d"); ok {
		return time.Duration(n) * 24 * time.Hour
	}

	return defaultAccessTTL
}

func cutIntSuffix(s, unit string) (int, bool) {
	num, found := strings.CutSuffix(s, unit)
	if !found {
		return 0, false
	}

	n, err := strconv.Atoi(num)
	if err != nil {
		return 0, false
	}

	return n, true
}
