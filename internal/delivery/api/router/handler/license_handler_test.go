package handler

import (
	"log/slog"
	"net/http"
	"testing"

	"mazao/internal/delivery/api/validator"
	"mazao/internal/domain/entity"
	domainerrors "mazao/internal/domain/errors"
	mockusecase "mazao/internal/mocks/usecase"
	"mazao/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type licenseHandlerFixtures struct {
	handler   *LicenseHandler
	licenseUC *mockusecase.MockLicenseUsecase
	echo      *echo.Echo
}

func createTestLicenseHandler(t *testing.T) licenseHandlerFixtures {
	t.Helper()

	licenseUC := mockusecase.NewMockLicenseUsecase(t)
	h := NewLicenseHandler(LicenseHandlerParams{
		LicenseUC: licenseUC,
		Logger:    slog.New(slog.DiscardHandler),
	})

	e := echo.New()
	e.Validator = validator.New()

	return licenseHandlerFixtures{handler: h, licenseUC: licenseUC, echo: e}
}

func TestLicenseHandler_IssueLicense(t *testing.T) {
	t.Parallel()

	fx := createTestLicenseHandler(t)

	fx.licenseUC.EXPECT().
		IssueLicense(mock.Anything, mock.MatchedBy(func(input *usecase.IssueLicenseInput) bool {
			return input.Plan == "trial" && input.Shop == "Kilimo Fresh"
		})).
		Return(&entity.License{
			ID:     1,
			Key:    "AGRO-1234-5678-9012",
			Status: entity.LicenseStatusUnused,
			Shop:   "Kilimo Fresh",
		}, nil).
		Once()

	body := `{"plan":"trial","shop":"Kilimo Fresh"}`
	c, rec := newJSONContext(fx.echo, http.MethodPost, "/api/licenses", body)

	require.NoError(t, fx.handler.IssueLicense(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "AGRO-1234-5678-9012")
}

func TestLicenseHandler_IssueLicense_UnknownPlan(t *testing.T) {
	t.Parallel()

	fx := createTestLicenseHandler(t)

	c, rec := newJSONContext(fx.echo, http.MethodPost, "/api/licenses", `{"plan":"weekly"}`)

	require.NoError(t, fx.handler.IssueLicense(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestLicenseHandler_GetLicenseByKey_NotFound(t *testing.T) {
	t.Parallel()

	fx := createTestLicenseHandler(t)

	fx.licenseUC.EXPECT().
		GetLicenseByKey(mock.Anything, "AGRO-0000-0000-0000").
		Return(nil, domainerrors.ErrLicenseNotFound).
		Once()

	c, rec := newJSONContext(fx.echo, http.MethodGet, "/api/licenses/key/AGRO-0000-0000-0000", "")
	c.SetParamNames("key")
	c.SetParamValues("AGRO-0000-0000-0000")

	require.NoError(t, fx.handler.GetLicenseByKey(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLicenseHandler_AssignLicense(t *testing.T) {
	t.Parallel()

	fx := createTestLicenseHandler(t)

	clientID := int64(4)
	fx.licenseUC.EXPECT().
		AssignLicense(mock.Anything, int64(2), "Soko Mjinga", &clientID).
		Return(&entity.License{ID: 2, Status: entity.LicenseStatusActive, Shop: "Soko Mjinga"}, nil).
		Once()

	c, rec := newJSONContext(fx.echo, http.MethodPost, "/api/licenses/2/assign", `{"shop":"Soko Mjinga","clientId":4}`)
	c.SetParamNames("id")
	c.SetParamValues("2")

	require.NoError(t, fx.handler.AssignLicense(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"Active"`)
}

func TestLicenseHandler_LicenseQR(t *testing.T) {
	t.Parallel()

	fx := createTestLicenseHandler(t)

	png := []byte{0x89, 0x50, 0x4E, 0x47}
	fx.licenseUC.EXPECT().LicenseQR(mock.Anything, int64(9)).Return(png, nil).Once()

	c, rec := newJSONContext(fx.echo, http.MethodGet, "/api/licenses/9/qr", "")
	c.SetParamNames("id")
	c.SetParamValues("9")

	require.NoError(t, fx.handler.LicenseQR(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestLicenseHandler_UpdateLicense_BadExpiry(t *testing.T) {
	t.Parallel()

	fx := createTestLicenseHandler(t)

	c, rec := newJSONContext(fx.echo, http.MethodPatch, "/api/licenses/2", `{"expiry":"31-12-2026"}`)
	c.SetParamNames("id")
	c.SetParamValues("2")

	require.NoError(t, fx.handler.UpdateLicense(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
