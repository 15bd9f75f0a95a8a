package postgres

import (
	"context"

	"mazao/internal/domain/entity"
	domainerrors "mazao/internal/domain/errors"
	"mazao/internal/domain/repository"
	"mazao/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// analyticsRepository implements the repository.AnalyticsRepository
// interface over the append-only page_view_events table.
type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository is the constructor for analyticsRepository.
func NewAnalyticsRepository(db *gorm.DB) repository.AnalyticsRepository {
	return &analyticsRepository{
		db: db,
	}
}

// Append inserts one event with a server-assigned timestamp.
func (repo *analyticsRepository) Append(ctx context.Context, event *entity.PageViewEvent) error {
	eventM := &model.PageViewEventModel{
		EventType: event.EventType,
		Page:      event.Page,
		Action:    event.Action,
		Referrer:  event.Referrer,
		UserAgent: event.UserAgent,
	}

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append event")
	}

	event.ID = eventM.ID
	event.CreatedAt = eventM.CreatedAt

	return nil
}

// Query retrieves matching events, newest first, capped at limit.
func (repo *analyticsRepository) Query(ctx context.Context, filter repository.EventFilter, limit int) ([]*entity.PageViewEvent, error) {
	query := repo.db.WithContext(ctx).Model(&model.PageViewEventModel{})

	if filter.EventType != "" {
		query = query.Where("event_type = ?", filter.EventType)
	}
	if filter.Page != "" {
		query = query.Where("page = ?", filter.Page)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var eventModels []*model.PageViewEventModel
	if err := query.Order("created_at DESC").Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query events")
	}

	events := make([]*entity.PageViewEvent, 0, len(eventModels))
	for _, eventM := range eventModels {
		events = append(events, &entity.PageViewEvent{
			ID:        eventM.ID,
			EventType: eventM.EventType,
			Page:      eventM.Page,
			Action:    eventM.Action,
			Referrer:  eventM.Referrer,
			UserAgent: eventM.UserAgent,
			CreatedAt: eventM.CreatedAt,
		})
	}

	return events, nil
}
