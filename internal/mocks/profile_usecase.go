package mocks

import (
	"context"

	"folio/internal/domain/entity"
	"folio/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// ProfileUsecase is a mock implementation of usecase.ProfileUsecase.
type ProfileUsecase struct {
	mock.Mock
}

func (m *ProfileUsecase) GetProfile(ctx context.Context, userID int64) (*entity.PublicUser, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.PublicUser), args.Error(1)
}

func (m *ProfileUsecase) UpdateProfile(ctx context.Context, userID int64, input *usecase.UpdateProfileInput) (*entity.PublicUser, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.PublicUser), args.Error(1)
}
