// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"folio/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new account.
type SignupInput struct {
	Email           string
	Password        string
	Name            string
	Mobile          string
	SessionDuration string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email           string
	Password        string
	SessionDuration string
}

// --- Output DTOs ---

// AuthOutput returns the generated tokens after a successful signup or login.
type AuthOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RefreshOutput returns the replacement access token minted from a refresh token.
type RefreshOutput struct {
	AccessToken string
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Signup(ctx context.Context, input *SignupInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	Refresh(ctx context.Context, refreshToken string) (*RefreshOutput, error)
}
