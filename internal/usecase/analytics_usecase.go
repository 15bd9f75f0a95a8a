package usecase

import (
	"context"

	"mazao/internal/domain/entity"
)

// TrackEventInput carries one interaction reported by the public site.
type TrackEventInput struct {
	EventType string `json:"eventType"`
	Page      string `json:"page"`
	Action    string `json:"action"`
	Referrer  string `json:"referrer"`
	UserAgent string `json:"userAgent"`
}

// EventQuery narrows an analytics read. A zero Limit uses the configured
// default; limits above the configured maximum are capped.
type EventQuery struct {
	EventType string
	Page      string
	Limit     int
}

// AnalyticsUsecase defines the interface for interaction tracking use cases
type AnalyticsUsecase interface {
	// TrackEvent appends one interaction with a server-assigned timestamp.
	TrackEvent(ctx context.Context, input *TrackEventInput) (*entity.PageViewEvent, error)

	// QueryEvents retrieves matching events, newest first.
	QueryEvents(ctx context.Context, query EventQuery) ([]*entity.PageViewEvent, error)

	// Summarize aggregates matching events for the admin dashboard.
	Summarize(ctx context.Context, query EventQuery) (*entity.AnalyticsSummary, error)
}
