package handler

import (
	"log/slog"
	"net/http"
	"testing"

	"mazao/internal/delivery/api/validator"
	"mazao/internal/domain/entity"
	domainerrors "mazao/internal/domain/errors"
	mockusecase "mazao/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type aiHandlerFixtures struct {
	handler      *AIHandler
	generationUC *mockusecase.MockGenerationUsecase
	echo         *echo.Echo
}

func createTestAIHandler(t *testing.T) aiHandlerFixtures {
	t.Helper()

	generationUC := mockusecase.NewMockGenerationUsecase(t)
	h := NewAIHandler(AIHandlerParams{
		GenerationUC: generationUC,
		Logger:       slog.New(slog.DiscardHandler),
	})

	e := echo.New()
	e.Validator = validator.New()

	return aiHandlerFixtures{handler: h, generationUC: generationUC, echo: e}
}

func TestAIHandler_GenerateContent(t *testing.T) {
	t.Parallel()

	fx := createTestAIHandler(t)

	fx.generationUC.EXPECT().
		GenerateDraft(mock.Anything, "maize storage tips", "blog").
		Return(&entity.Draft{Title: "Maize Storage Tips", Body: "Body", Excerpt: "Body..."}, nil).
		Once()

	body := `{"topic":"maize storage tips","type":"blog"}`
	c, rec := newJSONContext(fx.echo, http.MethodPost, "/api/ai/generate-content", body)

	require.NoError(t, fx.handler.GenerateContent(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Maize Storage Tips")
}

func TestAIHandler_GenerateContent_MissingTopic(t *testing.T) {
	t.Parallel()

	fx := createTestAIHandler(t)

	c, rec := newJSONContext(fx.echo, http.MethodPost, "/api/ai/generate-content", `{"type":"blog"}`)

	require.NoError(t, fx.handler.GenerateContent(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAIHandler_GenerateContent_NotConfigured(t *testing.T) {
	t.Parallel()

	fx := createTestAIHandler(t)

	fx.generationUC.EXPECT().
		GenerateDraft(mock.Anything, "maize storage tips", "").
		Return(nil, domainerrors.ErrAINotConfigured).
		Once()

	c, rec := newJSONContext(fx.echo, http.MethodPost, "/api/ai/generate-content", `{"topic":"maize storage tips"}`)

	require.NoError(t, fx.handler.GenerateContent(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
