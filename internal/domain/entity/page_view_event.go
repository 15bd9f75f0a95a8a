package entity

import "time"

// Well-known event types recorded by the public-site tracker.
const (
	EventTypePageView = "page_view"
	EventTypeCTAClick = "cta_click"
)

// PageViewEvent is an immutable record of a single tracked user interaction.
// Rows are append-only; aggregation happens on read.
type PageViewEvent struct {
	ID        int64     `json:"id"`
	EventType string    `json:"eventType"`
	Page      string    `json:"page"`
	Action    string    `json:"action,omitempty"`
	Referrer  string    `json:"referrer,omitempty"`
	UserAgent string    `json:"userAgent,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// AnalyticsSummary aggregates the event log for the admin dashboard.
type AnalyticsSummary struct {
	PageViews       int            `json:"pageViews"`
	CTAClicks       int            `json:"ctaClicks"`
	ConversionRate  float64        `json:"conversionRate"` // percent, 0 when no views
	UniqueReferrers int            `json:"uniqueReferrers"`
	TopActions      []ActionCount  `json:"topActions"`
	HourlyTrend     []HourlyBucket `json:"hourlyTrend"`
}

// ActionCount is one row of the action histogram.
type ActionCount struct {
	Action string `json:"action"`
	Count  int    `json:"count"`
}

// HourlyBucket counts events in one hour-of-day slot, labelled "15:00".
type HourlyBucket struct {
	Hour  string `json:"hour"`
	Count int    `json:"count"`
}
