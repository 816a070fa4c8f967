package postgres

import (
	"context"
	"time"

	"linkvault/internal/domain/entity"
	"linkvault/internal/domain/repository"
	"linkvault/internal/errors"
	"linkvault/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const dateLayout = "2006-01-02"

// analyticsRepository implements repository.AnalyticsRepository on GORM.
type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository migrates the analytics tables and returns the repository.
func NewAnalyticsRepository(db *gorm.DB) (repository.AnalyticsRepository, error) {
	if err := db.AutoMigrate(&model.AnalyticsCounterModel{}, &model.AnalyticsEventModel{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate analytics tables")
	}

	return &analyticsRepository{db: db}, nil
}

// RecordView increments the view counters of documentID in one transaction.
func (repo *analyticsRepository) RecordView(ctx context.Context, documentID string, visit entity.Visit, at time.Time) (*entity.AnalyticsEvent, error) {
	event := &entity.AnalyticsEvent{
		ID:         uuid.NewString(),
		Type:       entity.EventView,
		DocumentID: documentID,
		Country:    visit.Country,
		Referrer:   visit.Referrer,
		At:         at.UTC(),
	}

	counters := []model.AnalyticsCounterModel{
		{DocumentID: documentID, Kind: model.CounterViews},
		{DocumentID: documentID, Kind: model.CounterDaily, Key: event.At.Format(dateLayout)},
	}
	if visit.Country != "" {
		counters = append(counters, model.AnalyticsCounterModel{DocumentID: documentID, Kind: model.CounterLocation, Key: visit.Country})
	}
	if visit.Referrer != "" {
		counters = append(counters, model.AnalyticsCounterModel{DocumentID: documentID, Kind: model.CounterReferrer, Key: visit.Referrer})
	}

	if err := repo.apply(ctx, counters, event); err != nil {
		return nil, errors.Wrap(err, "failed to record view")
	}

	return event, nil
}

// RecordClick increments the (documentID, linkID) click counter.
func (repo *analyticsRepository) RecordClick(ctx context.Context, documentID, linkID string, at time.Time) (*entity.AnalyticsEvent, error) {
	event := &entity.AnalyticsEvent{
		ID:         uuid.NewString(),
		Type:       entity.EventClick,
		DocumentID: documentID,
		LinkID:     linkID,
		At:         at.UTC(),
	}

	counters := []model.AnalyticsCounterModel{
		{DocumentID: documentID, Kind: model.CounterClicks, Key: linkID},
	}
	if err := repo.apply(ctx, counters, event); err != nil {
		return nil, errors.Wrap(err, "failed to record click")
	}

	return event, nil
}

// apply upserts every counter with +1 and appends event, committing all writes together.
func (repo *analyticsRepository) apply(ctx context.Context, counters []model.AnalyticsCounterModel, event *entity.AnalyticsEvent) error {
	id, err := uuid.Parse(event.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range counters {
			counters[i].Value = 1
			counters[i].UpdatedAt = event.At
		}

		err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "document_id"}, {Name: "kind"}, {Name: "key"}},
			DoUpdates: clause.Assignments(map[string]any{
				"value":      gorm.Expr("analytics_counters.value + 1"),
				"updated_at": event.At,
			}),
		}).Create(&counters).Error
		if err != nil {
			return errors.WithStack(err)
		}

		return errors.WithStack(tx.Create(&model.AnalyticsEventModel{
			ID:         id,
			DocumentID: event.DocumentID,
			Type:       event.Type,
			LinkID:     event.LinkID,
			Country:    event.Country,
			Referrer:   event.Referrer,
			At:         event.At,
		}).Error)
	})
}

// GetCounters reads every counter of documentID.
func (repo *analyticsRepository) GetCounters(ctx context.Context, documentID string) (*entity.AnalyticsCounters, error) {
	var rows []model.AnalyticsCounterModel
	err := repo.db.WithContext(ctx).
		Where("document_id = ?", documentID).
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to read counters")
	}

	counters := entity.NewAnalyticsCounters()
	for _, row := range rows {
		switch row.Kind {
		case model.CounterViews:
			counters.Views = row.Value
		case model.CounterClicks:
			counters.Clicks[row.Key] = row.Value
		case model.CounterDaily:
			counters.Daily[row.Key] = row.Value
		case model.CounterLocation:
			counters.Locations[row.Key] = row.Value
		case model.CounterReferrer:
			counters.Referrers[row.Key] = row.Value
		}
	}

	return counters, nil
}

// ListEvents returns the events of documentID in write order.
func (repo *analyticsRepository) ListEvents(ctx context.Context, documentID string) ([]entity.AnalyticsEvent, error) {
	var rows []model.AnalyticsEventModel
	err := repo.db.WithContext(ctx).
		Where("document_id = ?", documentID).
		Order("seq").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to read events")
	}

	events := make([]entity.AnalyticsEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, toEventDomain(row))
	}

	return events, nil
}

func toEventDomain(row model.AnalyticsEventModel) entity.AnalyticsEvent {
	return entity.AnalyticsEvent{
		ID:         row.ID.String(),
		Type:       row.Type,
		DocumentID: row.DocumentID,
		LinkID:     row.LinkID,
		Country:    row.Country,
		Referrer:   row.Referrer,
		At:         row.At.UTC(),
	}
}
