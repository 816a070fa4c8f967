package impl

import (
	"context"
	"testing"
	"time"

	"linkvault/internal/domain/entity"
	domainerrors "linkvault/internal/domain/errors"
	mockRepo "linkvault/internal/mocks/repository"
	mockService "linkvault/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var analyticsNow = time.Date(2024, 3, 10, 23, 30, 0, 0, time.UTC)

type analyticsFixture struct {
	repo  *mockRepo.MockAnalyticsRepository
	store *mockService.MockContentStore
	srv   *analyticsService
}

func createTestAnalyticsService(t *testing.T) *analyticsFixture {
	repo := mockRepo.NewMockAnalyticsRepository(t)
	store := mockService.NewMockContentStore(t)
	srv := NewAnalyticsService(repo, store, missCache(t), testLogger()).(*analyticsService)
	srv.now = func() time.Time { return analyticsNow }

	return &analyticsFixture{repo: repo, store: store, srv: srv}
}

func TestAnalyticsService_ViewThenClick(t *testing.T) {
	f := createTestAnalyticsService(t)
	ctx := context.Background()
	visit := entity.Visit{Country: "US", Referrer: "twitter.com"}

	afterView := entity.NewAnalyticsCounters()
	afterView.Views = 1
	afterView.Daily["2024-03-10"] = 1
	afterView.Locations["US"] = 1
	afterView.Referrers["twitter.com"] = 1

	f.repo.EXPECT().RecordView(ctx, testAddress, visit, analyticsNow).
		Return(&entity.AnalyticsEvent{ID: "e1", Type: entity.EventView, At: analyticsNow}, nil)
	f.repo.EXPECT().GetCounters(ctx, testAddress).Return(afterView, nil).Once()
	f.repo.EXPECT().RecordClick(ctx, testAddress, "l1", analyticsNow).
		Return(&entity.AnalyticsEvent{ID: "e2", Type: entity.EventClick, LinkID: "l1", At: analyticsNow}, nil)

	snapshot, err := f.srv.RecordView(ctx, testAddress, visit)
	require.NoError(t, err)
	assert.Equal(t, int64(1), snapshot.TotalViews)
	assert.Equal(t, int64(0), snapshot.TotalClicks)
	assert.Zero(t, snapshot.ClickThroughRate)

	snapshot, err = f.srv.RecordClick(ctx, testAddress, "l1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), snapshot.TotalViews)
	assert.Equal(t, int64(1), snapshot.TotalClicks)
	assert.InDelta(t, 100.0, snapshot.ClickThroughRate, 1e-9)
	assert.Equal(t, []entity.LinkClicks{{LinkID: "l1", Title: "l1", Clicks: 1}}, snapshot.TopLinks)
	assert.Equal(t, []entity.DailyViews{{Date: "2024-03-10", Views: 1}}, snapshot.ViewsOverTime)

	// served from the in-memory snapshot without touching the repository again
	cached, err := f.srv.GetSnapshot(ctx, testAddress)
	require.NoError(t, err)
	assert.Equal(t, snapshot, cached)
}

func TestAnalyticsService_SnapshotsAreCopies(t *testing.T) {
	f := createTestAnalyticsService(t)
	ctx := context.Background()

	counters := entity.NewAnalyticsCounters()
	counters.Clicks["l1"] = 2
	f.repo.EXPECT().GetCounters(ctx, testAddress).Return(counters, nil).Once()

	first, err := f.srv.GetSnapshot(ctx, testAddress)
	require.NoError(t, err)
	first.TopLinks[0].Clicks = 99

	second, err := f.srv.GetSnapshot(ctx, testAddress)
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.TopLinks[0].Clicks)
}

func TestAnalyticsService_Validation(t *testing.T) {
	f := createTestAnalyticsService(t)
	ctx := context.Background()

	_, err := f.srv.RecordView(ctx, "", entity.Visit{})
	assert.ErrorIs(t, err, domainerrors.ErrMissingRequiredField)

	_, err = f.srv.RecordClick(ctx, testAddress, " ")
	assert.ErrorIs(t, err, domainerrors.ErrMissingRequiredField)

	_, err = f.srv.GetSnapshot(ctx, "")
	assert.ErrorIs(t, err, domainerrors.ErrMissingRequiredField)

	_, err = f.srv.Rebuild(ctx, "")
	assert.ErrorIs(t, err, domainerrors.ErrMissingRequiredField)
}

func TestAnalyticsService_RepositoryFailure(t *testing.T) {
	f := createTestAnalyticsService(t)
	ctx := context.Background()

	f.repo.EXPECT().RecordClick(ctx, testAddress, "l1", analyticsNow).Return(nil, assert.AnError)

	_, err := f.srv.RecordClick(ctx, testAddress, "l1")
	assert.ErrorIs(t, err, assert.AnError)
}

func TestAnalyticsService_Rebuild(t *testing.T) {
	f := createTestAnalyticsService(t)
	ctx := context.Background()
	day1 := time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 3, 10, 1, 0, 0, 0, time.UTC)

	f.repo.EXPECT().ListEvents(ctx, testAddress).Return([]entity.AnalyticsEvent{
		{ID: "1", Type: entity.EventView, At: day2, Country: "DE"},
		{ID: "2", Type: entity.EventView, At: day1, Referrer: "github.com"},
		{ID: "3", Type: entity.EventView, At: day2, Country: "DE"},
		{ID: "4", Type: entity.EventClick, LinkID: "l2", At: day2},
		{ID: "5", Type: entity.EventClick, LinkID: "l1", At: day2},
		{ID: "6", Type: entity.EventClick, LinkID: "l2", At: day2},
	}, nil)

	snapshot, err := f.srv.Rebuild(ctx, testAddress)
	require.NoError(t, err)
	assert.Equal(t, int64(3), snapshot.TotalViews)
	assert.Equal(t, int64(3), snapshot.TotalClicks)
	assert.InDelta(t, 100.0, snapshot.ClickThroughRate, 1e-9)
	assert.Equal(t, []entity.DailyViews{{Date: "2024-03-09", Views: 1}, {Date: "2024-03-10", Views: 2}}, snapshot.ViewsOverTime)
	assert.Equal(t, []entity.LinkClicks{{LinkID: "l2", Title: "l2", Clicks: 2}, {LinkID: "l1", Title: "l1", Clicks: 1}}, snapshot.TopLinks)
	assert.Equal(t, []entity.LocationViews{{Country: "DE", Views: 2}}, snapshot.Locations)
	assert.Equal(t, []entity.ReferrerViews{{Source: "github.com", Views: 1}}, snapshot.Referrers)

	// the rebuilt snapshot replaces the cached one
	cached, err := f.srv.GetSnapshot(ctx, testAddress)
	require.NoError(t, err)
	assert.Equal(t, snapshot, cached)
}

func TestAnalyticsService_GetReport(t *testing.T) {
	f := createTestAnalyticsService(t)
	ctx := context.Background()

	counters := entity.NewAnalyticsCounters()
	counters.Views = 4
	counters.Clicks["l1"] = 1
	counters.Clicks["gone"] = 3
	f.store.EXPECT().Fetch(mock.Anything, testAddress).Return(encodeProfile(t, testProfile()), nil)
	f.repo.EXPECT().GetCounters(ctx, testAddress).Return(counters, nil)

	report, err := f.srv.GetReport(ctx, testAddress)
	require.NoError(t, err)
	assert.Equal(t, "Alice", report.Name)
	assert.Equal(t, "alice", report.Username)
	assert.Equal(t, []entity.LinkClicks{
		{LinkID: "gone", Title: "gone", Clicks: 3},
		{LinkID: "l1", Title: "Blog", Clicks: 1},
	}, report.Snapshot.TopLinks)
	assert.InDelta(t, 100.0, report.Snapshot.ClickThroughRate, 1e-9)
}

func TestBuildSnapshot_Empty(t *testing.T) {
	snapshot := BuildSnapshot(testAddress, entity.NewAnalyticsCounters())

	assert.Equal(t, testAddress, snapshot.DocumentID)
	assert.Zero(t, snapshot.TotalViews)
	assert.Zero(t, snapshot.ClickThroughRate)
	assert.Empty(t, snapshot.ViewsOverTime)
	assert.NotNil(t, snapshot.TopLinks)
}

func TestBuildSnapshot_ClickThroughRate(t *testing.T) {
	counters := entity.NewAnalyticsCounters()
	counters.Views = 8
	counters.Clicks["a"] = 1
	counters.Clicks["b"] = 1

	assert.InDelta(t, 25.0, BuildSnapshot("doc", counters).ClickThroughRate, 1e-9)
	assert.Equal(t, int64(8), BuildSnapshot("doc", counters).UniqueVisitors)
}
