// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// EchoValidator wraps a validator instance for echo.
type EchoValidator struct {
	validate *validator.Validate
}

// New constructs the validator used by the echo server.
func New() *EchoValidator {
	return &EchoValidator{validate: validator.New()}
}

// Validate implements echo.Validator. Struct tag violations surface as 400s.
func (v *EchoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
