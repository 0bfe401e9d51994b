package mocks

import (
	"context"

	"folio/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// AuthUsecase is a mock implementation of usecase.AuthUsecase.
type AuthUsecase struct {
	mock.Mock
}

func (m *AuthUsecase) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.AuthOutput), args.Error(1)
}

func (m *AuthUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.AuthOutput), args.Error(1)
}

func (m *AuthUsecase) Refresh(ctx context.Context, refreshToken string) (*usecase.RefreshOutput, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.RefreshOutput), args.Error(1)
}
