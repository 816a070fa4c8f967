// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"linkvault/internal/domain/entity"
)

// AnalyticsRepository persists local view and click counters together with the
// event log they are derived from. Each Record call is applied atomically.
type AnalyticsRepository interface {
	// RecordView increments the view counter, the daily bucket of at and the visit
	// dimensions of documentID, and appends the event.
	RecordView(ctx context.Context, documentID string, visit entity.Visit, at time.Time) (*entity.AnalyticsEvent, error)

	// RecordClick increments the (documentID, linkID) click counter and appends the event.
	RecordClick(ctx context.Context, documentID, linkID string, at time.Time) (*entity.AnalyticsEvent, error)

	// GetCounters returns the persisted totals; unknown documents yield zeroed counters.
	GetCounters(ctx context.Context, documentID string) (*entity.AnalyticsCounters, error)

	// ListEvents returns the event log of documentID in the order it was written.
	ListEvents(ctx context.Context, documentID string) ([]entity.AnalyticsEvent, error)
}
