package impl

import (
	"context"
	"log/slog"
	"strings"

	"linkvault/config"
	"linkvault/internal/domain/constants"
	"linkvault/internal/domain/profile"
	"linkvault/internal/domain/service"
	"linkvault/internal/usecase"

	"github.com/pkg/errors"
)

const (
	defaultDiscoverLimit = 20
	maxDiscoverLimit     = 100
	// discoverScanSize bounds how many document versions one query inspects.
	discoverScanSize = 500
)

// discoverService implements the DiscoverUsecase interface.
type discoverService struct {
	app    profile.AppInfo
	store  service.ContentStore
	logger *slog.Logger
}

// NewDiscoverService is the constructor for discoverService.
func NewDiscoverService(cfg *config.Config, store service.ContentStore, logger *slog.Logger) usecase.DiscoverUsecase {
	return &discoverService{
		app:    appInfo(cfg),
		store:  store,
		logger: logger,
	}
}

// Discover lists public, searchable profiles by their newest version, one entry per username.
func (srv *discoverService) Discover(ctx context.Context, query string, limit int) ([]usecase.ProfileSummary, error) {
	if limit <= 0 {
		limit = defaultDiscoverLimit
	}
	limit = min(limit, maxDiscoverLimit)
	needle := strings.ToLower(strings.TrimSpace(query))

	results, err := srv.store.Query(ctx, service.QueryFilter{
		Tags:  profile.DirectoryFilter(srv.app),
		Limit: discoverScanSize,
		Order: service.SortNewestFirst,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to query profiles")
	}

	seen := make(map[string]struct{}, len(results))
	summaries := make([]usecase.ProfileSummary, 0, limit)
	for _, record := range results {
		username, _ := record.Tags.Get(constants.TagUsername)
		if username == "" {
			continue
		}
		// results are newest first, so the first record of a username is its current version
		if _, dup := seen[username]; dup {
			continue
		}
		seen[username] = struct{}{}
		if !profile.Listed(record.Tags) {
			continue
		}

		name, _ := record.Tags.Get(constants.TagName)
		if needle != "" &&
			!strings.Contains(strings.ToLower(name), needle) &&
			!strings.Contains(strings.ToLower(username), needle) {
			continue
		}

		creator, _ := record.Tags.Get(constants.TagCreator)
		summaries = append(summaries, usecase.ProfileSummary{
			ContentAddress: record.ID,
			Name:           name,
			Username:       username,
			Creator:        creator,
			Timestamp:      record.Timestamp.UnixMilli(),
			RetrievalURL:   srv.store.RetrievalURL(record.ID),
		})
		if len(summaries) == limit {
			break
		}
	}

	srv.logger.Debug("Discover query served",
		slog.String("query", needle),
		slog.Int("scanned", len(results)),
		slog.Int("returned", len(summaries)),
	)

	return summaries, nil
}
