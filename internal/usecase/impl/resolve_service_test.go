package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"linkvault/internal/domain/constants"
	"linkvault/internal/domain/entity"
	domainerrors "linkvault/internal/domain/errors"
	"linkvault/internal/domain/profile"
	"linkvault/internal/domain/service"
	mockService "linkvault/internal/mocks/service"
	"linkvault/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type resolveFixture struct {
	store *mockService.MockContentStore
	cache *mockService.MockDocumentCache
	srv   usecase.ResolveUsecase
}

func createTestResolveService(t *testing.T, cache *mockService.MockDocumentCache) *resolveFixture {
	store := mockService.NewMockContentStore(t)
	if cache == nil {
		cache = missCache(t)
	}

	return &resolveFixture{
		store: store,
		cache: cache,
		srv:   NewResolveService(testConfig(), store, cache, testLogger()),
	}
}

func mappingQuery(username string) service.QueryFilter {
	return service.QueryFilter{
		Tags:  profile.MappingFilter(testApp(), username),
		Limit: 1,
		Order: service.SortNewestFirst,
	}
}

func mappingBytes(t *testing.T, username, address string) []byte {
	t.Helper()
	data, err := profile.EncodeMapping(&entity.UsernameMapping{Username: username, ContentAddress: address, Timestamp: 1700000000000})
	require.NoError(t, err)

	return data
}

func requireResolutionError(t *testing.T, err error, stage usecase.ResolutionStage, reason usecase.ResolutionReason) {
	t.Helper()
	var resErr *usecase.ResolutionError
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, stage, resErr.Stage)
	assert.Equal(t, reason, resErr.Reason)
}

func TestResolveService_ResolveUsername_Success(t *testing.T) {
	f := createTestResolveService(t, nil)
	ctx := context.Background()
	doc := testProfile()

	f.store.EXPECT().Query(ctx, mappingQuery("alice")).Return([]service.QueryResult{{ID: "map-1"}}, nil)
	f.store.EXPECT().Fetch(ctx, "map-1").Return(mappingBytes(t, "alice", testAddress), nil)
	f.store.EXPECT().Fetch(ctx, testAddress).Return(encodeProfile(t, doc), nil)
	f.store.EXPECT().RetrievalURL(testAddress).Return("https://gateway.example/" + testAddress)

	resolved, err := f.srv.ResolveUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", resolved.Username)
	assert.Equal(t, testAddress, resolved.ContentAddress)
	assert.Equal(t, "https://gateway.example/"+testAddress, resolved.RetrievalURL)
	assert.Equal(t, doc, resolved.Profile)
	assert.Equal(t, testAddress, resolved.Mapping.ContentAddress)
}

func TestResolveService_ResolveUsername_UsernameNotFound(t *testing.T) {
	f := createTestResolveService(t, nil)
	ctx := context.Background()

	// no Fetch expectation: the pipeline must stop after the empty query
	f.store.EXPECT().Query(ctx, mappingQuery("ghost")).Return([]service.QueryResult{}, nil)

	_, err := f.srv.ResolveUsername(ctx, "ghost")
	requireResolutionError(t, err, usecase.StageMappingQuery, usecase.ReasonUsernameNotFound)
	assert.ErrorIs(t, err, domainerrors.ErrUsernameNotFound)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "USERNAME_NOT_FOUND", appErr.ErrorCode())
}

func TestResolveService_ResolveUsername_InvalidUsername(t *testing.T) {
	f := createTestResolveService(t, nil)

	for _, username := range []string{"", "Alice", "al ice", "al_ice"} {
		_, err := f.srv.ResolveUsername(context.Background(), username)
		requireResolutionError(t, err, usecase.StageStart, usecase.ReasonInvalidUsername)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidUsername)
	}
}

func TestResolveService_ResolveUsername_Failures(t *testing.T) {
	ctx := context.Background()
	transport := errors.New("connection reset")

	tests := []struct {
		name    string
		setup   func(t *testing.T, f *resolveFixture)
		stage   usecase.ResolutionStage
		reason  usecase.ResolutionReason
		wantErr error
	}{
		{
			name: "query transport error",
			setup: func(_ *testing.T, f *resolveFixture) {
				f.store.EXPECT().Query(ctx, mappingQuery("alice")).Return(nil, transport)
			},
			stage:   usecase.StageMappingQuery,
			reason:  usecase.ReasonMappingUnavailable,
			wantErr: domainerrors.ErrNetworkError,
		},
		{
			name: "mapping fetch error",
			setup: func(_ *testing.T, f *resolveFixture) {
				f.store.EXPECT().Query(ctx, mappingQuery("alice")).Return([]service.QueryResult{{ID: "map-1"}}, nil)
				f.store.EXPECT().Fetch(ctx, "map-1").Return(nil, transport)
			},
			stage:   usecase.StageMappingFetch,
			reason:  usecase.ReasonMappingUnavailable,
			wantErr: transport,
		},
		{
			name: "mapping undecodable",
			setup: func(_ *testing.T, f *resolveFixture) {
				f.store.EXPECT().Query(ctx, mappingQuery("alice")).Return([]service.QueryResult{{ID: "map-1"}}, nil)
				f.store.EXPECT().Fetch(ctx, "map-1").Return([]byte("not json"), nil)
			},
			stage:   usecase.StageMappingFetch,
			reason:  usecase.ReasonMappingUnavailable,
			wantErr: domainerrors.ErrNetworkError,
		},
		{
			name: "document missing",
			setup: func(t *testing.T, f *resolveFixture) {
				f.store.EXPECT().Query(ctx, mappingQuery("alice")).Return([]service.QueryResult{{ID: "map-1"}}, nil)
				f.store.EXPECT().Fetch(ctx, "map-1").Return(mappingBytes(t, "alice", testAddress), nil)
				f.store.EXPECT().Fetch(ctx, testAddress).Return(nil, service.ErrRecordNotFound)
			},
			stage:   usecase.StageDocumentFetch,
			reason:  usecase.ReasonProfileUnavailable,
			wantErr: domainerrors.ErrProfileNotFound,
		},
		{
			name: "document transport error",
			setup: func(t *testing.T, f *resolveFixture) {
				f.store.EXPECT().Query(ctx, mappingQuery("alice")).Return([]service.QueryResult{{ID: "map-1"}}, nil)
				f.store.EXPECT().Fetch(ctx, "map-1").Return(mappingBytes(t, "alice", testAddress), nil)
				f.store.EXPECT().Fetch(ctx, testAddress).Return(nil, domainerrors.ErrNetworkError.WrapMessage("timeout"))
			},
			stage:   usecase.StageDocumentFetch,
			reason:  usecase.ReasonProfileUnavailable,
			wantErr: domainerrors.ErrProfileNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestResolveService(t, nil)
			tt.setup(t, f)

			resolved, err := f.srv.ResolveUsername(ctx, "alice")
			assert.Nil(t, resolved)
			requireResolutionError(t, err, tt.stage, tt.reason)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestResolveService_FetchByAddress_CacheHit(t *testing.T) {
	ctx := context.Background()
	doc := testProfile()
	cache := mockService.NewMockDocumentCache(t)
	cache.EXPECT().Get(ctx, testAddress).Return(encodeProfile(t, doc), true, nil)
	f := createTestResolveService(t, cache)

	got, err := f.srv.FetchByAddress(ctx, testAddress)
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestResolveService_FetchByAddress_CacheMissStores(t *testing.T) {
	ctx := context.Background()
	doc := testProfile()
	data := encodeProfile(t, doc)
	cache := mockService.NewMockDocumentCache(t)
	cache.EXPECT().Get(ctx, testAddress).Return(nil, false, nil)
	cache.EXPECT().Set(ctx, testAddress, data).Return(nil)
	f := createTestResolveService(t, cache)
	f.store.EXPECT().Fetch(ctx, testAddress).Return(data, nil)

	got, err := f.srv.FetchByAddress(ctx, testAddress)
	require.NoError(t, err)
	assert.Equal(t, doc.Username, got.Username)
}

func TestResolveService_FetchByAddress_CacheErrorsIgnored(t *testing.T) {
	ctx := context.Background()
	data := encodeProfile(t, testProfile())
	cache := mockService.NewMockDocumentCache(t)
	cache.EXPECT().Get(ctx, testAddress).Return(nil, false, errors.New("redis down"))
	cache.EXPECT().Set(ctx, testAddress, data).Return(errors.New("redis down"))
	f := createTestResolveService(t, cache)
	f.store.EXPECT().Fetch(ctx, testAddress).Return(data, nil)

	_, err := f.srv.FetchByAddress(ctx, testAddress)
	assert.NoError(t, err)
}

func TestResolveService_FetchByAddress_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("blank address", func(t *testing.T) {
		f := createTestResolveService(t, nil)
		_, err := f.srv.FetchByAddress(ctx, " ")
		assert.ErrorIs(t, err, domainerrors.ErrMissingRequiredField)
	})

	t.Run("not a profile", func(t *testing.T) {
		f := createTestResolveService(t, nil)
		f.store.EXPECT().Fetch(ctx, testAddress).Return([]byte("<html>"), nil)

		_, err := f.srv.FetchByAddress(ctx, testAddress)
		assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
	})

	t.Run("not found", func(t *testing.T) {
		f := createTestResolveService(t, nil)
		f.store.EXPECT().Fetch(ctx, testAddress).Return(nil, service.ErrRecordNotFound)

		_, err := f.srv.FetchByAddress(ctx, testAddress)
		assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
	})
}

func TestResolveService_Verify(t *testing.T) {
	ctx := context.Background()
	doc := testProfile()
	ts := time.UnixMilli(1700000000000)
	filter := service.QueryFilter{IDs: []string{testAddress}, Limit: 1}

	t.Run("authentic record", func(t *testing.T) {
		f := createTestResolveService(t, nil)
		tags := profile.DocumentTags(testApp(), doc)
		f.store.EXPECT().Query(ctx, filter).Return([]service.QueryResult{{ID: testAddress, Tags: tags, Timestamp: ts}}, nil)
		f.store.EXPECT().RetrievalURL(testAddress).Return("https://gateway.example/" + testAddress)

		v, err := f.srv.Verify(ctx, testAddress)
		require.NoError(t, err)
		assert.True(t, v.Authentic)
		assert.True(t, v.Public)
		assert.Equal(t, testWallet, v.Creator)
		assert.Equal(t, "alice", v.Username)
		assert.Equal(t, "Alice", v.Name)
		assert.Equal(t, int64(1700000000000), v.Timestamp)
		assert.Equal(t, tags, v.Tags)
	})

	t.Run("foreign record", func(t *testing.T) {
		f := createTestResolveService(t, nil)
		tags := entity.Tags{{Name: constants.TagAppName, Value: "SomethingElse"}}
		f.store.EXPECT().Query(ctx, filter).Return([]service.QueryResult{{ID: testAddress, Tags: tags, Timestamp: ts}}, nil)
		f.store.EXPECT().RetrievalURL(testAddress).Return("u")

		v, err := f.srv.Verify(ctx, testAddress)
		require.NoError(t, err)
		assert.False(t, v.Authentic)
		assert.False(t, v.Public)
	})

	t.Run("unknown record", func(t *testing.T) {
		f := createTestResolveService(t, nil)
		f.store.EXPECT().Query(ctx, filter).Return(nil, nil)

		_, err := f.srv.Verify(ctx, testAddress)
		assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
	})

	t.Run("query failure", func(t *testing.T) {
		f := createTestResolveService(t, nil)
		f.store.EXPECT().Query(ctx, filter).Return(nil, domainerrors.ErrNetworkError)

		_, err := f.srv.Verify(ctx, testAddress)
		assert.ErrorIs(t, err, domainerrors.ErrNetworkError)
	})
}

