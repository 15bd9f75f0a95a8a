// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"mazao/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrClientNotFound is returned when a client record is absent.
var ErrClientNotFound = errors.New("client not found")

// ClientUpdate carries the mutable client fields for a partial update.
// Nil fields are left untouched.
type ClientUpdate struct {
	Name       *string
	Location   *string
	Phone      *string
	Status     *entity.ClientStatus
	LastActive *time.Time
}

// ClientRepository defines client-related database operations.
type ClientRepository interface {
	// FindAll retrieves all clients, newest first.
	FindAll(ctx context.Context) ([]*entity.Client, error)

	// FindByID retrieves a single client by id.
	FindByID(ctx context.Context, id int64) (*entity.Client, error)

	// Create persists a new client, assigning id and created_at.
	Create(ctx context.Context, client *entity.Client) error

	// Update applies a partial update; ErrClientNotFound when no row matched.
	Update(ctx context.Context, id int64, update ClientUpdate) (*entity.Client, error)

	// Delete removes a client; ErrClientNotFound when no row matched.
	Delete(ctx context.Context, id int64) error
}
