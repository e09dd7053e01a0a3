// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer; both the Postgres implementation and the
// in-memory test double satisfy them.
package repository

import (
	"context"
	"errors"

	"thoughts/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrUserNameTaken is returned by Create when the user name is already registered.
var ErrUserNameTaken = errors.New("user name already taken")

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUserName retrieves a single user by their (lowercase) user name.
	FindByUserName(ctx context.Context, userName string) (*entity.User, error)

	// FindByAccessToken resolves a bearer token to the owning user.
	FindByAccessToken(ctx context.Context, token string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error
}
