package usecase

import (
	"context"

	"mazao/internal/domain/entity"
	"mazao/internal/domain/repository"
)

// IssueLicenseInput carries the fields accepted when issuing a new license.
// The key, status and dates are always server-assigned.
type IssueLicenseInput struct {
	Plan     string `json:"plan"`
	Shop     string `json:"shop"`
	Phone    string `json:"phone"`
	ClientID *int64 `json:"clientId"`
}

// LicenseUsecase defines the interface for license management use cases
type LicenseUsecase interface {
	// ListLicenses retrieves all licenses, newest first.
	ListLicenses(ctx context.Context) ([]*entity.License, error)

	// GetLicense retrieves a single license.
	GetLicense(ctx context.Context, id int64) (*entity.License, error)

	// GetLicenseByKey retrieves a license by its unique key. The POS app
	// calls this during activation.
	GetLicenseByKey(ctx context.Context, key string) (*entity.License, error)

	// IssueLicense generates a fresh unique key and persists the license.
	IssueLicense(ctx context.Context, input *IssueLicenseInput) (*entity.License, error)

	// UpdateLicense applies a partial update.
	UpdateLicense(ctx context.Context, id int64, update repository.LicenseUpdate) (*entity.License, error)

	// AssignLicense hands a license to a shop. When a client is referenced
	// the client's last_active is refreshed in the same transaction.
	AssignLicense(ctx context.Context, id int64, shop string, clientID *int64) (*entity.License, error)

	// DeleteLicense removes a license record.
	DeleteLicense(ctx context.Context, id int64) error

	// LicenseQR renders the license key as a PNG QR code.
	LicenseQR(ctx context.Context, id int64) ([]byte, error)
}
