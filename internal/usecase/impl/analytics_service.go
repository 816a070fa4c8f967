package impl

import (
	"cmp"
	"context"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	deliverycontext "linkvault/internal/delivery/context"
	"linkvault/internal/domain/entity"
	domainerrors "linkvault/internal/domain/errors"
	"linkvault/internal/domain/repository"
	"linkvault/internal/domain/service"
	"linkvault/internal/usecase"

	"github.com/pkg/errors"
)

const dateLayout = "2006-01-02"

// analyticsService implements the AnalyticsUsecase interface. The persisted
// counters and the in-memory snapshot of a document change together under mu.
type analyticsService struct {
	repo   repository.AnalyticsRepository
	loader *documentLoader
	logger *slog.Logger
	now    func() time.Time

	mu       sync.Mutex
	counters map[string]*entity.AnalyticsCounters
	cache    map[string]*entity.AnalyticsSnapshot
}

// NewAnalyticsService is the constructor for analyticsService.
func NewAnalyticsService(
	repo repository.AnalyticsRepository,
	store service.ContentStore,
	cache service.DocumentCache,
	logger *slog.Logger,
) usecase.AnalyticsUsecase {
	return &analyticsService{
		repo:     repo,
		loader:   &documentLoader{store: store, cache: cache, logger: logger},
		logger:   logger,
		now:      time.Now,
		counters: make(map[string]*entity.AnalyticsCounters),
		cache:    make(map[string]*entity.AnalyticsSnapshot),
	}
}

// RecordView counts one view of documentID.
func (srv *analyticsService) RecordView(ctx context.Context, documentID string, visit entity.Visit) (*entity.AnalyticsSnapshot, error) {
	if strings.TrimSpace(documentID) == "" {
		return nil, domainerrors.ErrMissingRequiredField.WithDetails("documentId")
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	event, err := srv.repo.RecordView(ctx, documentID, visit, srv.now())
	if err != nil {
		return nil, errors.Wrap(err, "failed to record view")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Profile view recorded",
		slog.String("document_id", documentID),
		slog.String("event_id", event.ID),
	)

	return srv.applyLocked(ctx, documentID, func(c *entity.AnalyticsCounters) {
		c.Views++
		c.Daily[event.At.UTC().Format(dateLayout)]++
		if visit.Country != "" {
			c.Locations[visit.Country]++
		}
		if visit.Referrer != "" {
			c.Referrers[visit.Referrer]++
		}
	})
}

// RecordClick counts one click on linkID of documentID.
func (srv *analyticsService) RecordClick(ctx context.Context, documentID, linkID string) (*entity.AnalyticsSnapshot, error) {
	if strings.TrimSpace(documentID) == "" {
		return nil, domainerrors.ErrMissingRequiredField.WithDetails("documentId")
	}
	if strings.TrimSpace(linkID) == "" {
		return nil, domainerrors.ErrMissingRequiredField.WithDetails("linkId")
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	event, err := srv.repo.RecordClick(ctx, documentID, linkID, srv.now())
	if err != nil {
		return nil, errors.Wrap(err, "failed to record click")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Link click recorded",
		slog.String("document_id", documentID),
		slog.String("link_id", linkID),
		slog.String("event_id", event.ID),
	)

	return srv.applyLocked(ctx, documentID, func(c *entity.AnalyticsCounters) {
		c.Clicks[linkID]++
	})
}

// applyLocked updates the cached counters of documentID, or loads them from the
// repository (which already holds the new event) when nothing is cached yet.
func (srv *analyticsService) applyLocked(ctx context.Context, documentID string, update func(*entity.AnalyticsCounters)) (*entity.AnalyticsSnapshot, error) {
	counters, ok := srv.counters[documentID]
	if ok {
		update(counters)
	} else {
		loaded, err := srv.repo.GetCounters(ctx, documentID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load counters")
		}
		counters = loaded
		srv.counters[documentID] = counters
	}

	snapshot := BuildSnapshot(documentID, counters)
	srv.cache[documentID] = snapshot

	return snapshot.Clone(), nil
}

// GetSnapshot returns the cached snapshot or builds it from the persisted counters.
func (srv *analyticsService) GetSnapshot(ctx context.Context, documentID string) (*entity.AnalyticsSnapshot, error) {
	if strings.TrimSpace(documentID) == "" {
		return nil, domainerrors.ErrMissingRequiredField.WithDetails("documentId")
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if snapshot, ok := srv.cache[documentID]; ok {
		return snapshot.Clone(), nil
	}

	counters, err := srv.repo.GetCounters(ctx, documentID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load counters")
	}
	srv.counters[documentID] = counters
	snapshot := BuildSnapshot(documentID, counters)
	srv.cache[documentID] = snapshot

	return snapshot.Clone(), nil
}

// Rebuild replays the event log of documentID and replaces the cached snapshot.
func (srv *analyticsService) Rebuild(ctx context.Context, documentID string) (*entity.AnalyticsSnapshot, error) {
	if strings.TrimSpace(documentID) == "" {
		return nil, domainerrors.ErrMissingRequiredField.WithDetails("documentId")
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	events, err := srv.repo.ListEvents(ctx, documentID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list analytics events")
	}

	counters := ReplayEvents(events)
	srv.counters[documentID] = counters
	snapshot := BuildSnapshot(documentID, counters)
	srv.cache[documentID] = snapshot

	srv.logger.Info("Analytics snapshot rebuilt",
		slog.String("document_id", documentID),
		slog.Int("events", len(events)),
	)

	return snapshot.Clone(), nil
}

// GetReport labels the top links of the snapshot with the titles of the document.
func (srv *analyticsService) GetReport(ctx context.Context, address string) (*usecase.AnalyticsReport, error) {
	doc, err := srv.loader.loadProfile(ctx, address)
	if err != nil {
		return nil, err
	}

	snapshot, err := srv.GetSnapshot(ctx, address)
	if err != nil {
		return nil, err
	}

	for i, link := range snapshot.TopLinks {
		if l, ok := doc.FindLink(link.LinkID); ok && l.Title != "" {
			snapshot.TopLinks[i].Title = l.Title
		}
	}

	return &usecase.AnalyticsReport{
		ContentAddress: address,
		Name:           doc.Name,
		Username:       doc.Username,
		Snapshot:       snapshot,
	}, nil
}

// ReplayEvents folds an event log into counters.
func ReplayEvents(events []entity.AnalyticsEvent) *entity.AnalyticsCounters {
	counters := entity.NewAnalyticsCounters()
	for _, event := range events {
		switch event.Type {
		case entity.EventView:
			counters.Views++
			counters.Daily[event.At.UTC().Format(dateLayout)]++
			if event.Country != "" {
				counters.Locations[event.Country]++
			}
			if event.Referrer != "" {
				counters.Referrers[event.Referrer]++
			}
		case entity.EventClick:
			counters.Clicks[event.LinkID]++
		}
	}

	return counters
}

// BuildSnapshot derives the snapshot of documentID from its counters. Link
// titles default to the link id.
func BuildSnapshot(documentID string, c *entity.AnalyticsCounters) *entity.AnalyticsSnapshot {
	snapshot := entity.NewAnalyticsSnapshot(documentID)
	snapshot.TotalViews = c.Views
	snapshot.UniqueVisitors = c.Views

	for _, date := range slices.Sorted(maps.Keys(c.Daily)) {
		snapshot.ViewsOverTime = append(snapshot.ViewsOverTime, entity.DailyViews{Date: date, Views: c.Daily[date]})
	}

	for linkID, clicks := range c.Clicks {
		snapshot.TotalClicks += clicks
		snapshot.TopLinks = append(snapshot.TopLinks, entity.LinkClicks{LinkID: linkID, Title: linkID, Clicks: clicks})
	}
	slices.SortFunc(snapshot.TopLinks, func(a, b entity.LinkClicks) int {
		return cmp.Or(cmp.Compare(b.Clicks, a.Clicks), cmp.Compare(a.LinkID, b.LinkID))
	})

	for country, views := range c.Locations {
		snapshot.Locations = append(snapshot.Locations, entity.LocationViews{Country: country, Views: views})
	}
	slices.SortFunc(snapshot.Locations, func(a, b entity.LocationViews) int {
		return cmp.Or(cmp.Compare(b.Views, a.Views), cmp.Compare(a.Country, b.Country))
	})

	for source, views := range c.Referrers {
		snapshot.Referrers = append(snapshot.Referrers, entity.ReferrerViews{Source: source, Views: views})
	}
	slices.SortFunc(snapshot.Referrers, func(a, b entity.ReferrerViews) int {
		return cmp.Or(cmp.Compare(b.Views, a.Views), cmp.Compare(a.Source, b.Source))
	})

	if snapshot.TotalViews > 0 {
		snapshot.ClickThroughRate = float64(snapshot.TotalClicks) / float64(snapshot.TotalViews) * 100
	}

	return snapshot
}
