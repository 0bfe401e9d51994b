package service

import "github.com/golang-jwt/jwt/v5"

// Claims is the decoded payload of an access or refresh token.
type Claims struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService mints and verifies the two token families. Access and refresh
// tokens are signed with independent secrets, so leaking one secret does not
// let an attacker forge the other family.
type TokenService interface {
	// IssueAccess creates a signed access token. sessionDuration accepts an
	// integer followed by "h" or "d"; anything else falls back to one hour.
	// The duration is deliberately not validated for positivity: a zero or
	// negative duration yields an already-expired token.
	IssueAccess(userID int64, email, sessionDuration string) (string, error)

	// IssueRefresh creates a signed refresh token with a fixed 7-day lifetime.
	IssueRefresh(userID int64, email string) (string, error)

	// VerifyAccess validates an access token's signature and expiry.
	// Expired and tampered tokens are indistinguishable to the caller.
	VerifyAccess(token string) (*Claims, error)

	// VerifyRefresh validates a refresh token against the refresh secret.
	VerifyRefresh(token string) (*Claims, error)
}
