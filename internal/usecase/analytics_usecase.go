package usecase

import (
	"context"

	"linkvault/internal/domain/entity"
)

// AnalyticsUsecase aggregates local view and click counters per document.
type AnalyticsUsecase interface {
	RecordView(ctx context.Context, documentID string, visit entity.Visit) (*entity.AnalyticsSnapshot, error)
	RecordClick(ctx context.Context, documentID, linkID string) (*entity.AnalyticsSnapshot, error)

	// GetSnapshot returns the cached snapshot, building it from the persisted counters on first use.
	GetSnapshot(ctx context.Context, documentID string) (*entity.AnalyticsSnapshot, error)

	// Rebuild recomputes the snapshot by replaying the event log.
	Rebuild(ctx context.Context, documentID string) (*entity.AnalyticsSnapshot, error)

	// GetReport is the snapshot with link titles taken from the document at address.
	GetReport(ctx context.Context, address string) (*AnalyticsReport, error)
}

// AnalyticsReport backs the analytics view of one document.
type AnalyticsReport struct {
	ContentAddress string                    `json:"contentAddress"`
	Name           string                    `json:"name"`
	Username       string                    `json:"username"`
	Snapshot       *entity.AnalyticsSnapshot `json:"analytics"`
}
