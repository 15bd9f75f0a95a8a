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

// ContentHandlerParams holds dependencies for ContentHandler, injected by Fx.
type ContentHandlerParams struct {
	fx.In

	ContentUC usecase.ContentUsecase
	Logger    *slog.Logger
}

// ContentHandler holds dependencies for blog/article handlers
type ContentHandler struct {
	contentUC usecase.ContentUsecase
	logger    *slog.Logger
}

// NewContentHandler is the constructor for ContentHandler
func NewContentHandler(params ContentHandlerParams) *ContentHandler {
	return &ContentHandler{
		contentUC: params.ContentUC,
		logger:    params.Logger,
	}
}

// CreateContentRequest represents the request body for authoring an article
type CreateContentRequest struct {
	Title   string `json:"title" validate:"required"`
	Body    string `json:"body" validate:"required"`
	Excerpt string `json:"excerpt"`
	Author  string `json:"author"`
	Status  string `json:"status" validate:"omitempty,oneof=draft published"`
}

// UpdateContentRequest represents the request body for a partial article update
type UpdateContentRequest struct {
	Title   *string `json:"title" validate:"omitempty,min=1"`
	Body    *string `json:"body" validate:"omitempty,min=1"`
	Excerpt *string `json:"excerpt"`
	Author  *string `json:"author"`
	Status  *string `json:"status" validate:"omitempty,oneof=draft published"`
}

// ListContent handles retrieving all articles
func (h *ContentHandler) ListContent(c echo.Context) error {
	items, err := h.contentUC.ListContent(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items)
}

// ListPublishedContent handles retrieving published articles for the public site
func (h *ContentHandler) ListPublishedContent(c echo.Context) error {
	items, err := h.contentUC.ListPublishedContent(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items)
}

// GetContent handles retrieving a single article
func (h *ContentHandler) GetContent(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid content ID")
	}

	item, err := h.contentUC.GetContent(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item)
}

// CreateContent handles persisting a new article
func (h *ContentHandler) CreateContent(c echo.Context) error {
	var req CreateContentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid content input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.CreateContentInput{
		Title:   req.Title,
		Body:    req.Body,
		Excerpt: req.Excerpt,
		Author:  req.Author,
		Status:  req.Status,
	}

	item, err := h.contentUC.CreateContent(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, item)
}

// UpdateContent handles a partial article update
func (h *ContentHandler) UpdateContent(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid content ID")
	}

	var req UpdateContentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid content input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	update := repository.ContentUpdate{
		Title:   req.Title,
		Body:    req.Body,
		Excerpt: req.Excerpt,
		Author:  req.Author,
	}
	if req.Status != nil {
		status := entity.ContentStatus(*req.Status)
		update.Status = &status
	}

	item, err := h.contentUC.UpdateContent(c.Request().Context(), id, update)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item)
}

// DeleteContent handles removing an article
func (h *ContentHandler) DeleteContent(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid content ID")
	}

	if err := h.contentUC.DeleteContent(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
