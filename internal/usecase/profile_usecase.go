package usecase

import (
	"context"

	"folio/internal/domain/entity"
)

// UpdateProfileInput defines a partial profile update. Nil fields are left
// unchanged; at least one must be set.
type UpdateProfileInput struct {
	Name   *string
	Mobile *string
}

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID int64) (*entity.PublicUser, error)
	UpdateProfile(ctx context.Context, userID int64, input *UpdateProfileInput) (*entity.PublicUser, error)
}
