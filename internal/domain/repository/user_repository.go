package repository

import (
	"context"
	"errors"

	"scribe/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// Create persists a new user entity and fills in its generated ID and timestamps.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user by their ID, with owned blogs attached.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}
