package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mazao/internal/delivery/api/validator"
	"mazao/internal/domain/entity"
	"mazao/internal/domain/repository"
	mockusecase "mazao/internal/mocks/usecase"
	"mazao/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reviewHandlerFixtures struct {
	handler  *ReviewHandler
	reviewUC *mockusecase.MockReviewUsecase
	echo     *echo.Echo
}

func createTestReviewHandler(t *testing.T) reviewHandlerFixtures {
	t.Helper()

	reviewUC := mockusecase.NewMockReviewUsecase(t)
	h := NewReviewHandler(ReviewHandlerParams{
		ReviewUC: reviewUC,
		Logger:   slog.New(slog.DiscardHandler),
	})

	e := echo.New()
	e.Validator = validator.New()

	return reviewHandlerFixtures{handler: h, reviewUC: reviewUC, echo: e}
}

func newJSONContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestReviewHandler_CreateReview(t *testing.T) {
	t.Parallel()

	fx := createTestReviewHandler(t)

	fx.reviewUC.EXPECT().
		CreateReview(mock.Anything, mock.MatchedBy(func(input *usecase.CreateReviewInput) bool {
			return input.ClientName == "Wanjiku" && input.Rating == 5
		})).
		Return(&entity.Review{ID: 1, ClientName: "Wanjiku", Rating: 5, Approved: entity.ReviewPending}, nil).
		Once()

	body := `{"clientName":"Wanjiku","business":"Mama Mboga Store","rating":5,"text":"Great system"}`
	c, rec := newJSONContext(fx.echo, http.MethodPost, "/api/reviews", body)

	require.NoError(t, fx.handler.CreateReview(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"clientName":"Wanjiku"`)
}

func TestReviewHandler_CreateReview_RatingOutOfRange(t *testing.T) {
	t.Parallel()

	fx := createTestReviewHandler(t)

	body := `{"clientName":"Wanjiku","rating":6,"text":"Too good"}`
	c, rec := newJSONContext(fx.echo, http.MethodPost, "/api/reviews", body)

	require.NoError(t, fx.handler.CreateReview(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestReviewHandler_CreateReview_MissingText(t *testing.T) {
	t.Parallel()

	fx := createTestReviewHandler(t)

	body := `{"clientName":"Wanjiku","rating":4}`
	c, rec := newJSONContext(fx.echo, http.MethodPost, "/api/reviews", body)

	require.NoError(t, fx.handler.CreateReview(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReviewHandler_UpdateReview_Moderation(t *testing.T) {
	t.Parallel()

	fx := createTestReviewHandler(t)

	fx.reviewUC.EXPECT().
		UpdateReview(mock.Anything, int64(7), mock.MatchedBy(func(update repository.ReviewUpdate) bool {
			return update.Approved != nil && *update.Approved == entity.ReviewApproved
		})).
		Return(&entity.Review{ID: 7, Approved: entity.ReviewApproved}, nil).
		Once()

	c, rec := newJSONContext(fx.echo, http.MethodPatch, "/api/reviews/7", `{"approved":"approved"}`)
	c.SetParamNames("id")
	c.SetParamValues("7")

	require.NoError(t, fx.handler.UpdateReview(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"approved":"approved"`)
}

func TestReviewHandler_GetReview_InvalidID(t *testing.T) {
	t.Parallel()

	fx := createTestReviewHandler(t)

	c, rec := newJSONContext(fx.echo, http.MethodGet, "/api/reviews/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.NoError(t, fx.handler.GetReview(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ID")
}

func TestReviewHandler_DeleteReview(t *testing.T) {
	t.Parallel()

	fx := createTestReviewHandler(t)

	fx.reviewUC.EXPECT().DeleteReview(mock.Anything, int64(3)).Return(nil).Once()

	c, rec := newJSONContext(fx.echo, http.MethodDelete, "/api/reviews/3", "")
	c.SetParamNames("id")
	c.SetParamValues("3")

	require.NoError(t, fx.handler.DeleteReview(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
