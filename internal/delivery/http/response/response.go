// Package response holds the wire shapes shared by all handlers. Bodies are
// deliberately flat; the frontend consumes "token", "accessToken", "error" and
// "message" as top-level fields.
package response

import "github.com/labstack/echo/v4"

// TokenBody carries a freshly minted access token after signup or login.
type TokenBody struct {
	Token string `json:"token"`
}

// AccessTokenBody carries the replacement access token from a refresh.
type AccessTokenBody struct {
	AccessToken string `json:"accessToken"`
}

// MessageBody carries an informational message, e.g. after logout.
type MessageBody struct {
	Message string `json:"message"`
}

// ErrorBody is the single error shape for every failure on the API.
type ErrorBody struct {
	Error string `json:"error"`
}

// Token writes a 200 with the access token.
func Token(c echo.Context, status int, token string) error {
	return c.JSON(status, TokenBody{Token: token})
}

// AccessToken writes a 200 with the refreshed access token.
func AccessToken(c echo.Context, status int, token string) error {
	return c.JSON(status, AccessTokenBody{AccessToken: token})
}

// Message writes an informational body.
func Message(c echo.Context, status int, message string) error {
	return c.JSON(status, MessageBody{Message: message})
}

// Error writes the flat error body.
func Error(c echo.Context, status int, message string) error {
	return c.JSON(status, ErrorBody{Error: message})
}
