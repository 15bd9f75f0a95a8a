package repository

import (
	"context"

	"mazao/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for license persistence.
var (
	// ErrLicenseNotFound is returned when a license record is absent.
	ErrLicenseNotFound = errors.New("license not found")
	// ErrDuplicateLicenseKey is returned when an insert hits the unique key
	// constraint. The issuance loop regenerates and retries on it.
	ErrDuplicateLicenseKey = errors.New("license key already exists")
)

// LicenseUpdate carries the mutable license fields for a partial update.
type LicenseUpdate struct {
	Status   *entity.LicenseStatus
	Shop     *string
	Expiry   *string
	Phone    *string
	ClientID *int64
}

// LicenseRepository defines license-related database operations.
type LicenseRepository interface {
	// FindAll retrieves all licenses, newest first.
	FindAll(ctx context.Context) ([]*entity.License, error)

	// FindByID retrieves a single license by id.
	FindByID(ctx context.Context, id int64) (*entity.License, error)

	// FindByKey retrieves a single license by its unique key, used by the
	// POS activation flow.
	FindByKey(ctx context.Context, key string) (*entity.License, error)

	// Create persists a new license. Returns ErrDuplicateLicenseKey when the
	// generated key collides with an existing row.
	Create(ctx context.Context, license *entity.License) error

	// Update applies a partial update; ErrLicenseNotFound when no row matched.
	Update(ctx context.Context, id int64, update LicenseUpdate) (*entity.License, error)

	// Delete removes a license; ErrLicenseNotFound when no row matched.
	Delete(ctx context.Context, id int64) error
}
