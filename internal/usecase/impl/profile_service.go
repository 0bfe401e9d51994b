package impl

import (
	"context"
	"log/slog"

	deliverycontext "folio/internal/delivery/context"
	"folio/internal/domain/entity"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/domain/repository"
	"folio/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves the public view of the authenticated user.
func (srv *profileService) GetProfile(ctx context.Context, userID int64) (*entity.PublicUser, error) {
	srv.log(ctx).Debug("Getting user profile", slog.Int64("userID", userID))

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		srv.log(ctx).Error("Failed to get user profile", slog.Int64("userID", userID), slog.Any("error", err))

		return nil, domainerrors.ErrDatabase.WrapMessage("failed to get user profile")
	}

	return user, nil
}

// UpdateProfile applies a partial update. A patch with neither field present
// is rejected before touching the store.
func (srv *profileService) UpdateProfile(ctx context.Context, userID int64, input *usecase.UpdateProfileInput) (*entity.PublicUser, error) {
	if input == nil || (input.Name == nil && input.Mobile == nil) {
		return nil, domainerrors.ErrNothingToUpdate
	}

	srv.log(ctx).Info("Updating user profile", slog.Int64("userID", userID))

	user, err := srv.userRepo.UpdateProfile(ctx, userID, repository.ProfileUpdate{
		Name:   input.Name,
		Mobile: input.Mobile,
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		srv.log(ctx).Error("Failed to update user profile", slog.Int64("userID", userID), slog.Any("error", err))

		return nil, domainerrors.ErrDatabase.WrapMessage("failed to update user profile")
	}

	return user, nil
}
