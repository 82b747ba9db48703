package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/questparty/questparty-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by their normalized email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// EmailExists reports whether any user is registered with the normalized email.
	EmailExists(ctx context.Context, email string) (bool, error)

	// UpdateProfile applies the set fields of update to the user in one statement
	// and returns the resulting user.
	// Returns ErrUserNotFound if the user does not exist.
	UpdateProfile(ctx context.Context, id uuid.UUID, update domain.ProfileUpdate) (*domain.User, error)

	// UpdateUser applies the set fields of update to the user in one statement
	// and returns the resulting user.
	// Returns ErrUserNotFound if the user does not exist.
	UpdateUser(ctx context.Context, id uuid.UUID, update domain.UserUpdate) (*domain.User, error)

	// DeleteByEmail removes the user registered with email and returns the
	// number of rows deleted. Party memberships cascade.
	DeleteByEmail(ctx context.Context, email string) (int64, error)
}
