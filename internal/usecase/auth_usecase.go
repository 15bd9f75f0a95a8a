// Package usecase defines the application's use case interfaces and the
// input types their callers bind into.
package usecase

import (
	"context"

	"mazao/internal/domain/entity"
)

// LoginResult is the outcome of a successful login.
type LoginResult struct {
	User  *entity.User `json:"user"`
	Token string       `json:"token"`
}

// AuthUsecase defines the interface for back-office authentication use cases
type AuthUsecase interface {
	// Login checks the credentials and returns the sanitized user together
	// with a signed session token.
	Login(ctx context.Context, username, password string) (*LoginResult, error)

	// Me resolves the authenticated user from a validated token subject.
	Me(ctx context.Context, userID string) (*entity.User, error)
}
