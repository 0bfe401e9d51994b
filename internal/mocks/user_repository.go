// Package mocks provides hand-written testify mocks for the domain interfaces.
package mocks

import (
	"context"

	"folio/internal/domain/entity"
	"folio/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// UserRepository is a mock implementation of repository.UserRepository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *UserRepository) FindByID(ctx context.Context, id int64) (*entity.PublicUser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.PublicUser), args.Error(1)
}

func (m *UserRepository) UpdateProfile(ctx context.Context, id int64, update repository.ProfileUpdate) (*entity.PublicUser, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.PublicUser), args.Error(1)
}
