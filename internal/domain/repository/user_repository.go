package repository

import (
	"context"

	"mazao/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrUserNotFound is returned when a user record is absent.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines back-office account storage.
type UserRepository interface {
	// FindByID retrieves a user by id.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByUsername retrieves a user by their unique username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create persists a new user with an assigned id. The password must
	// already be hashed by the caller.
	Create(ctx context.Context, user *entity.User) error
}
