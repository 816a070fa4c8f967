package blobstore

import (
	"context"
	"io"
	"log/slog"
	"math/big"
	"testing"
	"time"

	"linkvault/config"
	"linkvault/internal/domain/entity"
	domainerrors "linkvault/internal/domain/errors"
	"linkvault/internal/domain/service"
	"linkvault/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newTestStore(t *testing.T, pricePerByte int64) *store {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	s, ok := New(bucket, config.StoreConfig{
		GatewayURL:     "https://links.example.com/r/",
		PricePerByte:   pricePerByte,
		RequestTimeout: time.Second,
	}, slog.New(slog.NewTextHandler(io.Discard, nil))).(*store)
	require.True(t, ok)

	return s
}

func TestStore_UploadFetch(t *testing.T) {
	s := newTestStore(t, 0)
	ctx := context.Background()
	tags := entity.Tags{{Name: "Content-Type", Value: "application/json"}, {Name: "Username", Value: "alice"}}

	receipt, err := s.Upload(ctx, []byte(`{"a":1}`), tags)
	require.NoError(t, err)
	assert.NotEmpty(t, receipt.ID)
	assert.Equal(t, 7, receipt.Size)

	again, err := s.Upload(ctx, []byte(`{"a":1}`), tags)
	require.NoError(t, err)
	assert.Equal(t, receipt.ID, again.ID, "same content and tags share an address")

	other, err := s.Upload(ctx, []byte(`{"a":1}`), entity.Tags{{Name: "Username", Value: "bob"}})
	require.NoError(t, err)
	assert.NotEqual(t, receipt.ID, other.ID)

	data, err := s.Fetch(ctx, receipt.ID)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(data))

	_, err = s.Fetch(ctx, "unknown")
	assert.True(t, errors.Is(err, service.ErrRecordNotFound))
	_, err = s.Fetch(ctx, "../manifest/x")
	assert.True(t, errors.Is(err, service.ErrRecordNotFound))

	assert.Equal(t, "https://links.example.com/r/"+receipt.ID, s.RetrievalURL(receipt.ID))
}

func TestStore_Query(t *testing.T) {
	s := newTestStore(t, 0)
	ctx := context.Background()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	upload := func(at time.Time, data string, tags entity.Tags) string {
		s.now = func() time.Time { return at }
		receipt, err := s.Upload(ctx, []byte(data), tags)
		require.NoError(t, err)

		return receipt.ID
	}

	mapping := func(user string) entity.Tags {
		return entity.Tags{
			{Name: "App-Name", Value: "IrysLinkTree"},
			{Name: "Mapping-Type", Value: "username-to-transaction"},
			{Name: "Username", Value: user},
		}
	}

	oldest := upload(base, "1", mapping("alice"))
	newest := upload(base.Add(2*time.Hour), "2", mapping("alice"))
	middle := upload(base.Add(time.Hour), "3", mapping("alice"))
	upload(base.Add(3*time.Hour), "4", mapping("bob"))

	results, err := s.Query(ctx, service.QueryFilter{Tags: mapping("alice"), Limit: 1})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, newest, results[0].ID)

	results, err = s.Query(ctx, service.QueryFilter{Tags: mapping("alice"), Order: service.SortOldestFirst})
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, []string{oldest, middle, newest}, []string{results[0].ID, results[1].ID, results[2].ID})

	results, err = s.Query(ctx, service.QueryFilter{Tags: mapping("carol")})
	require.NoError(t, err)
	assert.Empty(t, results)

	results, err = s.Query(ctx, service.QueryFilter{IDs: []string{middle, "missing"}})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, middle, results[0].ID)
	assert.Equal(t, mapping("alice"), results[0].Tags)
}

func TestStore_BalanceAndPricing(t *testing.T) {
	s := newTestStore(t, 2)
	ctx := context.Background()

	balance, err := s.Balance(ctx, "0xABC")
	require.NoError(t, err)
	assert.Zero(t, balance.Sign())

	price, err := s.Price(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(20), price)

	docTags := entity.Tags{{Name: "Creator", Value: "0xabc"}}
	_, err = s.Upload(ctx, []byte("0123456789"), docTags)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientBalance))

	require.NoError(t, s.Fund(ctx, "0xAbC", big.NewInt(25)))
	_, err = s.Upload(ctx, []byte("0123456789"), docTags)
	require.NoError(t, err)

	balance, err = s.Balance(ctx, "0xabc")
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(5), balance)

	_, err = s.Upload(ctx, []byte("no creator tag"), nil)
	require.NoError(t, err, "records without a creator are not charged")

	assert.True(t, errors.Is(s.Fund(ctx, "0xabc", big.NewInt(-1)), domainerrors.ErrValidationFailed))
}

func TestOpen(t *testing.T) {
	_, _, err := Open(context.Background(), config.StoreConfig{}, slog.Default())
	assert.Error(t, err)

	st, closer, err := Open(context.Background(), config.StoreConfig{BucketURL: "mem://"}, slog.Default())
	require.NoError(t, err)
	defer closer.Close()
	assert.NotNil(t, st)
}
