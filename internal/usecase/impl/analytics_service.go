package impl

import (
	"context"
	"fmt"
	"sort"

	"mazao/config"
	"mazao/internal/domain/entity"
	"mazao/internal/domain/repository"
	"mazao/internal/errors"
	"mazao/internal/usecase"
)

const topActionCount = 8

type analyticsService struct {
	analyticsRepo repository.AnalyticsRepository
	defaultLimit  int
	maxLimit      int
}

// NewAnalyticsService creates a new analytics service instance
func NewAnalyticsService(analyticsRepo repository.AnalyticsRepository, cfg *config.Config) usecase.AnalyticsUsecase {
	return &analyticsService{
		analyticsRepo: analyticsRepo,
		defaultLimit:  cfg.Analytics.DefaultQueryLimit,
		maxLimit:      cfg.Analytics.MaxQueryLimit,
	}
}

func (s *analyticsService) TrackEvent(ctx context.Context, input *usecase.TrackEventInput) (*entity.PageViewEvent, error) {
	event := &entity.PageViewEvent{
		EventType: input.EventType,
		Page:      input.Page,
		Action:    input.Action,
		Referrer:  input.Referrer,
		UserAgent: input.UserAgent,
	}

	if err := s.analyticsRepo.Append(ctx, event); err != nil {
		return nil, errors.Wrap(err, "failed to track event")
	}

	return event, nil
}

// boundedLimit applies the configured default and cap.
func (s *analyticsService) boundedLimit(limit int) int {
	if limit <= 0 {
		return s.defaultLimit
	}
	if limit > s.maxLimit {
		return s.maxLimit
	}

	return limit
}

func (s *analyticsService) QueryEvents(ctx context.Context, query usecase.EventQuery) ([]*entity.PageViewEvent, error) {
	filter := repository.EventFilter{
		EventType: query.EventType,
		Page:      query.Page,
	}

	events, err := s.analyticsRepo.Query(ctx, filter, s.boundedLimit(query.Limit))
	if err != nil {
		return nil, errors.Wrap(err, "failed to query events")
	}

	return events, nil
}

func (s *analyticsService) Summarize(ctx context.Context, query usecase.EventQuery) (*entity.AnalyticsSummary, error) {
	events, err := s.QueryEvents(ctx, query)
	if err != nil {
		return nil, err
	}

	return summarize(events), nil
}

// summarize folds the event slice into the dashboard aggregate.
func summarize(events []*entity.PageViewEvent) *entity.AnalyticsSummary {
	summary := &entity.AnalyticsSummary{
		TopActions:  []entity.ActionCount{},
		HourlyTrend: []entity.HourlyBucket{},
	}

	referrers := make(map[string]struct{})
	actions := make(map[string]int)
	hours := make(map[string]int)

	for _, event := range events {
		switch event.EventType {
		case entity.EventTypePageView:
			summary.PageViews++
		case entity.EventTypeCTAClick:
			summary.CTAClicks++
		}

		if event.Referrer != "" {
			referrers[event.Referrer] = struct{}{}
		}
		if event.Action != "" {
			actions[event.Action]++
		}

		hours[fmt.Sprintf("%02d:00", event.CreatedAt.Hour())]++
	}

	summary.UniqueReferrers = len(referrers)

	if summary.PageViews > 0 {
		summary.ConversionRate = float64(summary.CTAClicks) / float64(summary.PageViews) * 100
	}

	for action, count := range actions {
		summary.TopActions = append(summary.TopActions, entity.ActionCount{Action: action, Count: count})
	}
	sort.Slice(summary.TopActions, func(i, j int) bool {
		if summary.TopActions[i].Count != summary.TopActions[j].Count {
			return summary.TopActions[i].Count > summary.TopActions[j].Count
		}

		return summary.TopActions[i].Action < summary.TopActions[j].Action
	})
	if len(summary.TopActions) > topActionCount {
		summary.TopActions = summary.TopActions[:topActionCount]
	}

	for hour, count := range hours {
		summary.HourlyTrend = append(summary.HourlyTrend, entity.HourlyBucket{Hour: hour, Count: count})
	}
	sort.Slice(summary.HourlyTrend, func(i, j int) bool {
		return summary.HourlyTrend[i].Hour < summary.HourlyTrend[j].Hour
	})

	return summary
}
