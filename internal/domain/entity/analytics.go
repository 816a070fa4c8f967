package entity

import "time"

// Analytics event kinds.
const (
	EventView  = "view"
	EventClick = "click"
)

// AnalyticsEvent is one entry of the local event log.
type AnalyticsEvent struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	DocumentID string    `json:"documentId"`
	LinkID     string    `json:"linkId,omitempty"`
	Country    string    `json:"country,omitempty"`
	Referrer   string    `json:"referrer,omitempty"`
	At         time.Time `json:"at"`
}

// Visit describes where a profile view came from. Zero fields mean unknown.
type Visit struct {
	Country  string `json:"country,omitempty"`
	Referrer string `json:"referrer,omitempty"`
}

// AnalyticsCounters are the persisted totals of one document.
type AnalyticsCounters struct {
	Views     int64            `json:"views"`
	Clicks    map[string]int64 `json:"clicks"`    // by link id
	Daily     map[string]int64 `json:"daily"`     // views by UTC date
	Locations map[string]int64 `json:"locations"` // views by country
	Referrers map[string]int64 `json:"referrers"` // views by referrer host
}

// NewAnalyticsCounters returns zeroed counters.
func NewAnalyticsCounters() *AnalyticsCounters {
	return &AnalyticsCounters{
		Clicks:    map[string]int64{},
		Daily:     map[string]int64{},
		Locations: map[string]int64{},
		Referrers: map[string]int64{},
	}
}

// DailyViews is the view count of one UTC day (YYYY-MM-DD).
type DailyViews struct {
	Date  string `json:"date"`
	Views int64  `json:"views"`
}

// LinkClicks is the click count of one link.
type LinkClicks struct {
	LinkID string `json:"linkId"`
	Title  string `json:"title"`
	Clicks int64  `json:"clicks"`
}

// LocationViews counts views per country.
type LocationViews struct {
	Country string `json:"country"`
	Views   int64  `json:"views"`
}

// ReferrerViews counts views per referrer.
type ReferrerViews struct {
	Source string `json:"source"`
	Views  int64  `json:"views"`
}

// AnalyticsSnapshot is derived locally and never persisted remotely.
type AnalyticsSnapshot struct {
	DocumentID       string          `json:"documentId"`
	TotalViews       int64           `json:"totalViews"`
	TotalClicks      int64           `json:"totalClicks"`
	ClickThroughRate float64         `json:"clickThroughRate"` // percent, 0 when there are no views
	UniqueVisitors   int64           `json:"uniqueVisitors"`   // approximated as total views
	ViewsOverTime    []DailyViews    `json:"viewsOverTime"`    // ascending by date, one bucket per day
	TopLinks         []LinkClicks    `json:"topLinks"`         // descending by clicks
	Locations        []LocationViews `json:"locations"`
	Referrers        []ReferrerViews `json:"referrers"`
}

// NewAnalyticsSnapshot returns an empty snapshot for documentID.
func NewAnalyticsSnapshot(documentID string) *AnalyticsSnapshot {
	return &AnalyticsSnapshot{
		DocumentID:    documentID,
		ViewsOverTime: []DailyViews{},
		TopLinks:      []LinkClicks{},
		Locations:     []LocationViews{},
		Referrers:     []ReferrerViews{},
	}
}

// Clone returns a deep copy so callers never share the aggregator's state.
func (s *AnalyticsSnapshot) Clone() *AnalyticsSnapshot {
	c := *s
	c.ViewsOverTime = append([]DailyViews{}, s.ViewsOverTime...)
	c.TopLinks = append([]LinkClicks{}, s.TopLinks...)
	c.Locations = append([]LocationViews{}, s.Locations...)
	c.Referrers = append([]ReferrerViews{}, s.Referrers...)

	return &c
}
