package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"linkvault/internal/domain/entity"
	httpmiddleware "linkvault/internal/delivery/http/middleware"
	domainerrors "linkvault/internal/domain/errors"
	mockUsecase "linkvault/internal/mocks/usecase"
	"linkvault/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type exploreFixture struct {
	templates *mockUsecase.MockTemplateUsecase
	discover  *mockUsecase.MockDiscoverUsecase
	resolve   *mockUsecase.MockResolveUsecase
	analytics *mockUsecase.MockAnalyticsUsecase
	access    *mockUsecase.MockAccessUsecase
	echo      *echo.Echo
}

func createTestExploreHandler(t *testing.T) *exploreFixture {
	f := &exploreFixture{
		templates: mockUsecase.NewMockTemplateUsecase(t),
		discover:  mockUsecase.NewMockDiscoverUsecase(t),
		resolve:   mockUsecase.NewMockResolveUsecase(t),
		analytics: mockUsecase.NewMockAnalyticsUsecase(t),
		access:    mockUsecase.NewMockAccessUsecase(t),
	}
	h := NewExploreHandler(ExploreHandlerParams{
		TemplateUC:  f.templates,
		DiscoverUC:  f.discover,
		ResolveUC:   f.resolve,
		AnalyticsUC: f.analytics,
		AccessUC:    f.access,
		Logger:      testLogger(),
	})

	e := newTestEcho()
	e.GET("/templates", h.Templates)
	e.GET("/discover", h.Discover)
	e.GET("/verify/:address", h.Verify)
	analytics := e.Group("/analytics/:address", httpmiddleware.NewUnlockMiddleware().Extract)
	analytics.GET("", h.Analytics)
	analytics.POST("/rebuild", h.RebuildAnalytics)
	f.echo = e

	return f
}

func TestExploreHandler_Templates(t *testing.T) {
	f := createTestExploreHandler(t)
	f.templates.EXPECT().List().Return([]entity.ProfileTemplate{{ID: "creator"}, {ID: "business"}})

	rec, env := doRequest(t, f.echo, http.MethodGet, "/templates", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var templates []entity.ProfileTemplate
	require.NoError(t, json.Unmarshal(env.Data, &templates))
	require.Len(t, templates, 2)
	assert.Equal(t, "creator", templates[0].ID)
}

func TestExploreHandler_Discover(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		setup      func(m *mockUsecase.MockDiscoverUsecase)
		wantStatus int
		wantCount  int
	}{
		{
			name:   "query and limit",
			target: "/discover?q=ali&limit=5",
			setup: func(m *mockUsecase.MockDiscoverUsecase) {
				m.EXPECT().Discover(mock.Anything, "ali", 5).Return([]usecase.ProfileSummary{
					{ContentAddress: "a", Username: "alice"},
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantCount:  1,
		},
		{
			name:   "defaults",
			target: "/discover",
			setup: func(m *mockUsecase.MockDiscoverUsecase) {
				m.EXPECT().Discover(mock.Anything, "", 0).Return([]usecase.ProfileSummary{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "limit out of range",
			target:     "/discover?limit=1000",
			setup:      func(m *mockUsecase.MockDiscoverUsecase) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "store unreachable",
			target: "/discover",
			setup: func(m *mockUsecase.MockDiscoverUsecase) {
				m.EXPECT().Discover(mock.Anything, "", 0).Return(nil, domainerrors.ErrNetworkError)
			},
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestExploreHandler(t)
			tt.setup(f.discover)

			rec, env := doRequest(t, f.echo, http.MethodGet, tt.target, "")
			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				var profiles []usecase.ProfileSummary
				require.NoError(t, json.Unmarshal(env.Data, &profiles))
				assert.Len(t, profiles, tt.wantCount)
			}
		})
	}
}

func TestExploreHandler_Verify(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		f := createTestExploreHandler(t)
		f.resolve.EXPECT().Verify(mock.Anything, testAddress).Return(&usecase.Verification{
			ContentAddress: testAddress,
			Creator:        testWallet,
			Authentic:      true,
		}, nil)

		rec, env := doRequest(t, f.echo, http.MethodGet, "/verify/"+testAddress, "")
		require.Equal(t, http.StatusOK, rec.Code)

		var v usecase.Verification
		require.NoError(t, json.Unmarshal(env.Data, &v))
		assert.True(t, v.Authentic)
	})

	t.Run("unknown", func(t *testing.T) {
		f := createTestExploreHandler(t)
		f.resolve.EXPECT().Verify(mock.Anything, "nope").Return(nil, domainerrors.ErrProfileNotFound)

		rec, env := doRequest(t, f.echo, http.MethodGet, "/verify/nope", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "PROFILE_NOT_FOUND", env.Error.Code)
	})
}

// viewable lets the analytics routes past the password gate.
func (f *exploreFixture) viewable(doc *entity.Profile) {
	f.resolve.EXPECT().FetchByAddress(mock.Anything, testAddress).Return(doc, nil)
	f.access.EXPECT().CanView(testAddress, doc, "").Return(true)
}

func TestExploreHandler_Analytics(t *testing.T) {
	t.Run("report", func(t *testing.T) {
		f := createTestExploreHandler(t)
		f.viewable(testProfile())
		f.analytics.EXPECT().GetReport(mock.Anything, testAddress).Return(&usecase.AnalyticsReport{
			ContentAddress: testAddress,
			Username:       "alice",
			Snapshot:       &entity.AnalyticsSnapshot{},
		}, nil)

		rec, env := doRequest(t, f.echo, http.MethodGet, "/analytics/"+testAddress, "")
		require.Equal(t, http.StatusOK, rec.Code)

		var report usecase.AnalyticsReport
		require.NoError(t, json.Unmarshal(env.Data, &report))
		assert.Equal(t, "alice", report.Username)
	})

	t.Run("report failure", func(t *testing.T) {
		f := createTestExploreHandler(t)
		f.viewable(testProfile())
		f.analytics.EXPECT().GetReport(mock.Anything, testAddress).Return(nil, domainerrors.ErrNetworkError)

		rec, _ := doRequest(t, f.echo, http.MethodGet, "/analytics/"+testAddress, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("document missing", func(t *testing.T) {
		f := createTestExploreHandler(t)
		f.resolve.EXPECT().FetchByAddress(mock.Anything, testAddress).Return(nil, domainerrors.ErrProfileNotFound)

		rec, env := doRequest(t, f.echo, http.MethodGet, "/analytics/"+testAddress, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "PROFILE_NOT_FOUND", env.Error.Code)
	})

	t.Run("locked profile", func(t *testing.T) {
		f := createTestExploreHandler(t)
		doc := testProfile()
		doc.Settings.PasswordProtected = true
		f.resolve.EXPECT().FetchByAddress(mock.Anything, testAddress).Return(doc, nil)
		f.access.EXPECT().CanView(testAddress, doc, "stale").Return(false)

		rec, env := doRequest(t, f.echo, http.MethodGet, "/analytics/"+testAddress+"?token=stale", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "PASSWORD_REQUIRED", env.Error.Code)
		assert.NotContains(t, rec.Body.String(), "Blog")
	})

	t.Run("unlocked with token", func(t *testing.T) {
		f := createTestExploreHandler(t)
		doc := testProfile()
		doc.Settings.PasswordProtected = true
		f.resolve.EXPECT().FetchByAddress(mock.Anything, testAddress).Return(doc, nil)
		f.access.EXPECT().CanView(testAddress, doc, "good").Return(true)
		f.analytics.EXPECT().GetReport(mock.Anything, testAddress).Return(&usecase.AnalyticsReport{
			ContentAddress: testAddress,
			Snapshot:       &entity.AnalyticsSnapshot{},
		}, nil)

		rec, _ := doRequest(t, f.echo, http.MethodGet, "/analytics/"+testAddress, "", httpmiddleware.HeaderUnlockToken, "good")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestExploreHandler_RebuildAnalytics(t *testing.T) {
	t.Run("rebuilt", func(t *testing.T) {
		f := createTestExploreHandler(t)
		f.viewable(testProfile())
		f.analytics.EXPECT().Rebuild(mock.Anything, testAddress).Return(&entity.AnalyticsSnapshot{
			DocumentID: testAddress,
			TotalViews: 3,
		}, nil)

		rec, env := doRequest(t, f.echo, http.MethodPost, "/analytics/"+testAddress+"/rebuild", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var snapshot entity.AnalyticsSnapshot
		require.NoError(t, json.Unmarshal(env.Data, &snapshot))
		assert.Equal(t, int64(3), snapshot.TotalViews)
	})

	t.Run("event log unavailable", func(t *testing.T) {
		f := createTestExploreHandler(t)
		f.viewable(testProfile())
		f.analytics.EXPECT().Rebuild(mock.Anything, testAddress).Return(nil, domainerrors.ErrInternalError)

		rec, env := doRequest(t, f.echo, http.MethodPost, "/analytics/"+testAddress+"/rebuild", "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	})

	t.Run("locked profile", func(t *testing.T) {
		f := createTestExploreHandler(t)
		doc := testProfile()
		doc.Settings.PasswordProtected = true
		f.resolve.EXPECT().FetchByAddress(mock.Anything, testAddress).Return(doc, nil)
		f.access.EXPECT().CanView(testAddress, doc, "").Return(false)

		rec, _ := doRequest(t, f.echo, http.MethodPost, "/analytics/"+testAddress+"/rebuild", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
