// Package model holds the GORM persistence models of the postgres backend.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Counter kinds stored in analytics_counters.
const (
	CounterViews    = "views"
	CounterClicks   = "clicks"
	CounterDaily    = "daily"
	CounterLocation = "loc"
	CounterReferrer = "ref"
)

// AnalyticsCounterModel mirrors the 'analytics_counters' table. Key is the link id,
// day, country or referrer the counter belongs to, and empty for total views.
type AnalyticsCounterModel struct {
	DocumentID string `gorm:"type:varchar(128);primaryKey"`
	Kind       string `gorm:"type:varchar(16);primaryKey"`
	Key        string `gorm:"type:varchar(255);primaryKey"`
	Value      int64  `gorm:"not null;default:0"`
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (AnalyticsCounterModel) TableName() string {
	return "analytics_counters"
}

// AnalyticsEventModel mirrors the 'analytics_events' table. Seq preserves write order.
type AnalyticsEventModel struct {
	Seq        int64     `gorm:"primaryKey;autoIncrement"`
	ID         uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	DocumentID string    `gorm:"type:varchar(128);index;not null"`
	Type       string    `gorm:"type:varchar(16);not null"`
	LinkID     string    `gorm:"type:varchar(128)"`
	Country    string    `gorm:"type:varchar(8)"`
	Referrer   string    `gorm:"type:varchar(255)"`
	At         time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (AnalyticsEventModel) TableName() string {
	return "analytics_events"
}
