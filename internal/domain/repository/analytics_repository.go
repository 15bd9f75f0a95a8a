package repository

import (
	"context"

	"mazao/internal/domain/entity"
)

// EventFilter narrows an analytics query. Empty fields match everything.
type EventFilter struct {
	EventType string
	Page      string
}

// AnalyticsRepository is the append-only store for tracked interactions.
// Events are never mutated or deleted.
type AnalyticsRepository interface {
	// Append inserts one event with a server-assigned timestamp.
	Append(ctx context.Context, event *entity.PageViewEvent) error

	// Query retrieves matching events, newest first, capped at limit.
	Query(ctx context.Context, filter EventFilter, limit int) ([]*entity.PageViewEvent, error)
}
