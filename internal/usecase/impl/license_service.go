package impl

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"mazao/internal/domain/entity"
	domainerrors "mazao/internal/domain/errors"
	"mazao/internal/domain/repository"
	"mazao/internal/domain/service"
	"mazao/internal/errors"
	"mazao/internal/usecase"
)

const (
	// keyGenAttempts bounds the regenerate-and-retry loop when a generated
	// key collides with an existing row.
	keyGenAttempts = 5

	// lifetimeExpiry is the fixed far-future expiry for lifetime plans.
	lifetimeExpiry = "2099-12-31"

	trialDays  = 30
	annualDays = 365
)

type licenseService struct {
	licenseRepo repository.LicenseRepository
	txManager   repository.TransactionManager
	qrService   service.QRCodeService
	now         func() time.Time
}

// NewLicenseService creates a new license service instance
func NewLicenseService(
	licenseRepo repository.LicenseRepository,
	txManager repository.TransactionManager,
	qrService service.QRCodeService,
) usecase.LicenseUsecase {
	return &licenseService{
		licenseRepo: licenseRepo,
		txManager:   txManager,
		qrService:   qrService,
		now:         time.Now,
	}
}

// generateKey draws a fresh key of the form AGRO-####-####-####, each group
// uniform in 1000..9999.
func generateKey() string {
	group := func() int {
		return rand.IntN(9000) + 1000
	}

	return fmt.Sprintf("AGRO-%d-%d-%d", group(), group(), group())
}

// expiryFor computes the plan's expiry as a UTC calendar date.
func expiryFor(plan entity.LicensePlan, issued time.Time) (string, error) {
	switch plan {
	case entity.LicensePlanLifetime:
		return lifetimeExpiry, nil
	case entity.LicensePlanTrial:
		return issued.UTC().AddDate(0, 0, trialDays).Format(entity.DateLayout), nil
	case entity.LicensePlanAnnual:
		return issued.UTC().AddDate(0, 0, annualDays).Format(entity.DateLayout), nil
	default:
		return "", domainerrors.ErrInvalidLicensePlan
	}
}

// withDerivedStatus marks a license Expired when its expiry date has passed.
// The stored row is left untouched; expiry is derived on read.
func (s *licenseService) withDerivedStatus(license *entity.License) *entity.License {
	if license.Status != entity.LicenseStatusExpired && license.IsExpired(s.now()) {
		license.Status = entity.LicenseStatusExpired
	}

	return license
}

func (s *licenseService) ListLicenses(ctx context.Context) ([]*entity.License, error) {
	licenses, err := s.licenseRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list licenses")
	}

	for _, license := range licenses {
		s.withDerivedStatus(license)
	}

	return licenses, nil
}

func (s *licenseService) GetLicense(ctx context.Context, id int64) (*entity.License, error) {
	license, err := s.licenseRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrLicenseNotFound) {
			return nil, domainerrors.ErrLicenseNotFound
		}

		return nil, errors.Wrap(err, "failed to get license")
	}

	return s.withDerivedStatus(license), nil
}

func (s *licenseService) GetLicenseByKey(ctx context.Context, key string) (*entity.License, error) {
	license, err := s.licenseRepo.FindByKey(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrLicenseNotFound) {
			return nil, domainerrors.ErrLicenseNotFound
		}

		return nil, errors.Wrap(err, "failed to get license by key")
	}

	return s.withDerivedStatus(license), nil
}

func (s *licenseService) IssueLicense(ctx context.Context, input *usecase.IssueLicenseInput) (*entity.License, error) {
	issued := s.now()

	expiry, err := expiryFor(entity.LicensePlan(input.Plan), issued)
	if err != nil {
		return nil, err
	}

	shop := input.Shop
	if shop == "" {
		shop = entity.UnassignedShop
	}

	// The unique constraint on key is the arbiter; on collision a new key
	// is drawn and the insert retried.
	for attempt := 0; attempt < keyGenAttempts; attempt++ {
		license := &entity.License{
			Key:      generateKey(),
			Status:   entity.LicenseStatusUnused,
			Shop:     shop,
			Expiry:   expiry,
			Created:  issued.UTC().Format(entity.DateLayout),
			Phone:    input.Phone,
			ClientID: input.ClientID,
		}

		err := s.licenseRepo.Create(ctx, license)
		if err == nil {
			return license, nil
		}
		if errors.Is(err, repository.ErrDuplicateLicenseKey) {
			continue
		}

		return nil, errors.Wrap(err, "failed to create license")
	}

	return nil, domainerrors.ErrLicenseKeyConflict
}

func (s *licenseService) UpdateLicense(ctx context.Context, id int64, update repository.LicenseUpdate) (*entity.License, error) {
	license, err := s.licenseRepo.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, repository.ErrLicenseNotFound) {
			return nil, domainerrors.ErrLicenseNotFound
		}

		return nil, errors.Wrap(err, "failed to update license")
	}

	return s.withDerivedStatus(license), nil
}

// AssignLicense hands a license to a shop and activates it. When a client is
// referenced, the client's last_active is refreshed inside the same
// transaction so the two rows cannot drift apart.
func (s *licenseService) AssignLicense(ctx context.Context, id int64, shop string, clientID *int64) (*entity.License, error) {
	var assigned *entity.License

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		licenseRepo := repoFactory.NewLicenseRepository()

		status := entity.LicenseStatusActive
		update := repository.LicenseUpdate{
			Status:   &status,
			Shop:     &shop,
			ClientID: clientID,
		}

		license, err := licenseRepo.Update(ctx, id, update)
		if err != nil {
			return err
		}
		assigned = license

		if clientID == nil {
			return nil
		}

		now := s.now().UTC()
		_, err = repoFactory.NewClientRepository().Update(ctx, *clientID, repository.ClientUpdate{
			LastActive: &now,
		})

		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrLicenseNotFound):
			return nil, domainerrors.ErrLicenseNotFound
		case errors.Is(err, repository.ErrClientNotFound):
			return nil, domainerrors.ErrClientNotFound
		}

		return nil, errors.Wrap(err, "failed to assign license")
	}

	return s.withDerivedStatus(assigned), nil
}

func (s *licenseService) DeleteLicense(ctx context.Context, id int64) error {
	if err := s.licenseRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrLicenseNotFound) {
			return domainerrors.ErrLicenseNotFound
		}

		return errors.Wrap(err, "failed to delete license")
	}

	return nil
}

func (s *licenseService) LicenseQR(ctx context.Context, id int64) ([]byte, error) {
	license, err := s.GetLicense(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := s.qrService.GenerateLicenseQR(license.Key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render license QR")
	}

	return png, nil
}
