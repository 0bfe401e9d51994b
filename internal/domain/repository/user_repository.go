// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"folio/internal/domain/entity"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when creating a user whose email is already
	// registered. The unique constraint in the store, not a pre-check, is the
	// source of truth so concurrent signups cannot race into duplicates.
	ErrEmailTaken = errors.New("email already registered")
)

// ProfileUpdate carries a partial profile change. A nil field leaves the
// stored value untouched.
type ProfileUpdate struct {
	Name   *string
	Mobile *string
}

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// Create persists a new user. The store's uniqueness guarantee on email
	// maps violations to ErrEmailTaken. The generated ID and CreatedAt are
	// written back into the entity.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a single user, credential hash included, by email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves the public view of a user by ID.
	FindByID(ctx context.Context, id int64) (*entity.PublicUser, error)

	// UpdateProfile applies a partial update to name and/or mobile and
	// returns the resulting public view. Returns ErrUserNotFound when the id
	// has no row.
	UpdateProfile(ctx context.Context, id int64, update ProfileUpdate) (*entity.PublicUser, error)
}
