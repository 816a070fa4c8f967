package usecase

import "context"

// DiscoverUsecase lists public profiles.
type DiscoverUsecase interface {
	// Discover returns the newest version of each public profile, newest first,
	// optionally filtered by a case-insensitive match on name or username.
	Discover(ctx context.Context, query string, limit int) ([]ProfileSummary, error)
}

// ProfileSummary is one directory entry.
type ProfileSummary struct {
	ContentAddress string `json:"contentAddress"`
	Name           string `json:"name"`
	Username       string `json:"username"`
	Creator        string `json:"creator"`
	Timestamp      int64  `json:"timestamp"` // epoch millis
	RetrievalURL   string `json:"retrievalUrl"`
}
