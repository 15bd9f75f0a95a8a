package handler

import (
	"log/slog"
	"net/http"

	"mazao/internal/delivery/api/response"
	"mazao/internal/domain/entity"
	"mazao/internal/domain/repository"
	"mazao/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Logger   *slog.Logger
}

// ReviewHandler holds dependencies for testimonial handlers
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
	logger   *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: params.ReviewUC,
		logger:   params.Logger,
	}
}

// CreateReviewRequest represents a submitted testimonial
type CreateReviewRequest struct {
	ClientName string `json:"clientName" validate:"required"`
	Business   string `json:"business"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	Text       string `json:"text" validate:"required"`
}

// UpdateReviewRequest represents a partial review update, including moderation
type UpdateReviewRequest struct {
	ClientName *string `json:"clientName" validate:"omitempty,min=1"`
	Business   *string `json:"business"`
	Rating     *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Text       *string `json:"text" validate:"omitempty,min=1"`
	Approved   *string `json:"approved" validate:"omitempty,oneof=pending approved rejected"`
}

// ListReviews handles retrieving all reviews for moderation
func (h *ReviewHandler) ListReviews(c echo.Context) error {
	reviews, err := h.reviewUC.ListReviews(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reviews)
}

// ListApprovedReviews handles retrieving approved reviews for the public site
func (h *ReviewHandler) ListApprovedReviews(c echo.Context) error {
	reviews, err := h.reviewUC.ListApprovedReviews(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reviews)
}

// GetReview handles retrieving a single review
func (h *ReviewHandler) GetReview(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid review ID")
	}

	review, err := h.reviewUC.GetReview(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, review)
}

// CreateReview handles recording a submitted testimonial
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	var req CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.CreateReviewInput{
		ClientName: req.ClientName,
		Business:   req.Business,
		Rating:     req.Rating,
		Text:       req.Text,
	}

	review, err := h.reviewUC.CreateReview(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, review)
}

// UpdateReview handles a partial review update, including moderation
func (h *ReviewHandler) UpdateReview(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid review ID")
	}

	var req UpdateReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	update := repository.ReviewUpdate{
		ClientName: req.ClientName,
		Business:   req.Business,
		Rating:     req.Rating,
		Text:       req.Text,
	}
	if req.Approved != nil {
		moderation := entity.ReviewModeration(*req.Approved)
		update.Approved = &moderation
	}

	review, err := h.reviewUC.UpdateReview(c.Request().Context(), id, update)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, review)
}

// DeleteReview handles removing a review
func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid review ID")
	}

	if err := h.reviewUC.DeleteReview(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
