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

type authHandlerFixtures struct {
	handler *AuthHandler
	authUC  *mockusecase.MockAuthUsecase
	echo    *echo.Echo
}

func createTestAuthHandler(t *testing.T) authHandlerFixtures {
	t.Helper()

	authUC := mockusecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{
		AuthUC: authUC,
		Logger: slog.New(slog.DiscardHandler),
	})

	e := echo.New()
	e.Validator = validator.New()

	return authHandlerFixtures{handler: h, authUC: authUC, echo: e}
}

func TestAuthHandler_Login(t *testing.T) {
	t.Parallel()

	fx := createTestAuthHandler(t)

	fx.authUC.EXPECT().
		Login(mock.Anything, "admin", "admin123").
		Return(&usecase.LoginResult{
			User:  &entity.User{ID: "u-1", Username: "admin"},
			Token: "signed-token",
		}, nil).
		Once()

	c, rec := newJSONContext(fx.echo, http.MethodPost, "/api/auth/login", `{"username":"admin","password":"admin123"}`)

	require.NoError(t, fx.handler.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"signed-token"`)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	t.Parallel()

	fx := createTestAuthHandler(t)

	fx.authUC.EXPECT().
		Login(mock.Anything, "admin", "nope").
		Return(nil, domainerrors.ErrInvalidCredentials).
		Once()

	c, rec := newJSONContext(fx.echo, http.MethodPost, "/api/auth/login", `{"username":"admin","password":"nope"}`)

	require.NoError(t, fx.handler.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	t.Parallel()

	fx := createTestAuthHandler(t)

	c, rec := newJSONContext(fx.echo, http.MethodPost, "/api/auth/login", `{"username":"admin"}`)

	require.NoError(t, fx.handler.Login(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestAuthHandler_Me(t *testing.T) {
	t.Parallel()

	fx := createTestAuthHandler(t)

	fx.authUC.EXPECT().
		Me(mock.Anything, "u-1").
		Return(&entity.User{ID: "u-1", Username: "admin"}, nil).
		Once()

	c, rec := newJSONContext(fx.echo, http.MethodGet, "/api/auth/me", "")
	c.Set("userID", "u-1")

	require.NoError(t, fx.handler.Me(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"admin"`)
}

func TestAuthHandler_Me_NoIdentity(t *testing.T) {
	t.Parallel()

	fx := createTestAuthHandler(t)

	c, rec := newJSONContext(fx.echo, http.MethodGet, "/api/auth/me", "")

	require.NoError(t, fx.handler.Me(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
