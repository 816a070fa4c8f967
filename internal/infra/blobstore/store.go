// Package blobstore implements service.ContentStore on any gocloud.dev bucket.
// Records are addressed by the SHA-256 of their content and tags.
package blobstore

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"math/big"
	"slices"
	"strings"
	"sync"
	"time"

	"linkvault/config"
	"linkvault/internal/domain/constants"
	"linkvault/internal/domain/entity"
	domainerrors "linkvault/internal/domain/errors"
	"linkvault/internal/domain/service"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	_ "gocloud.dev/blob/s3blob"   // s3:// buckets
	"gocloud.dev/gcerrors"
)

const (
	dataPrefix     = "data/"
	manifestPrefix = "manifest/"
	accountPrefix  = "account/"
)

type manifest struct {
	ID        string      `json:"id"`
	Tags      entity.Tags `json:"tags"`
	Size      int         `json:"size"`
	Timestamp int64       `json:"timestamp"` // epoch millis
}

type store struct {
	bucket       *blob.Bucket
	gatewayURL   string
	pricePerByte *big.Int
	timeout      time.Duration
	now          func() time.Time
	logger       *slog.Logger

	// serializes balance read-modify-write
	accountMu sync.Mutex
}

// Open opens the bucket at cfg.BucketURL.
func Open(ctx context.Context, cfg config.StoreConfig, logger *slog.Logger) (service.ContentStore, io.Closer, error) {
	if cfg.BucketURL == "" {
		return nil, nil, errors.New("bucket URL is required for blob provider")
	}

	bucket, err := blob.OpenBucket(ctx, cfg.BucketURL)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	return New(bucket, cfg, logger), bucket, nil
}

// New wraps an open bucket.
func New(bucket *blob.Bucket, cfg config.StoreConfig, logger *slog.Logger) service.ContentStore {
	return &store{
		bucket:       bucket,
		gatewayURL:   strings.TrimRight(cfg.GatewayURL, "/"),
		pricePerByte: big.NewInt(cfg.PricePerByte),
		timeout:      cfg.RequestTimeout,
		now:          time.Now,
		logger:       logger,
	}
}

func (s *store) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, s.timeout)
}

// contentAddress hashes the data followed by the tag list.
func contentAddress(data []byte, tags entity.Tags) string {
	h := sha256.New()
	h.Write(data)
	for _, tag := range tags {
		h.Write([]byte{0})
		h.Write([]byte(tag.Name))
		h.Write([]byte{0})
		h.Write([]byte(tag.Value))
	}

	return base64.RawURLEncoding.EncodeToString(h.Sum(nil))
}

// Upload writes the record and its manifest. When a price per byte is configured the
// price is charged to the account named by the Creator tag.
func (s *store) Upload(ctx context.Context, data []byte, tags entity.Tags) (*service.UploadReceipt, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	price, err := s.Price(ctx, len(data))
	if err != nil {
		return nil, err
	}
	if creator, ok := tags.Get(constants.TagCreator); ok && price.Sign() > 0 {
		if err := s.debit(ctx, creator, price); err != nil {
			return nil, err
		}
	}

	id := contentAddress(data, tags)
	now := s.now().UTC()

	contentType, _ := tags.Get(constants.TagContentType)
	if err := s.bucket.WriteAll(ctx, dataPrefix+id, data, &blob.WriterOptions{ContentType: contentType}); err != nil {
		return nil, errors.Wrapf(domainerrors.ErrNetworkError, "write record %s: %v", id, err)
	}

	m, err := json.Marshal(manifest{ID: id, Tags: tags, Size: len(data), Timestamp: now.UnixMilli()})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if err := s.bucket.WriteAll(ctx, manifestPrefix+id, m, &blob.WriterOptions{ContentType: constants.ContentTypeJSON}); err != nil {
		return nil, errors.Wrapf(domainerrors.ErrNetworkError, "write manifest %s: %v", id, err)
	}

	s.logger.Debug("[Blob] Stored record", slog.String("id", id), slog.Int("size", len(data)))

	return &service.UploadReceipt{ID: id, Size: len(data), Price: price, Timestamp: now}, nil
}

// Fetch reads the record stored at id.
func (s *store) Fetch(ctx context.Context, id string) ([]byte, error) {
	if id == "" || strings.Contains(id, "/") {
		return nil, service.ErrRecordNotFound
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	data, err := s.bucket.ReadAll(ctx, dataPrefix+id)
	if err != nil {
		return nil, translate(err, id)
	}

	return data, nil
}

// Query scans every manifest and keeps those carrying all filter tags.
func (s *store) Query(ctx context.Context, filter service.QueryFilter) ([]service.QueryResult, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var manifests []manifest
	if len(filter.IDs) > 0 {
		for _, id := range filter.IDs {
			m, err := s.readManifest(ctx, id)
			if errors.Is(err, service.ErrRecordNotFound) {
				continue
			}
			if err != nil {
				return nil, err
			}
			manifests = append(manifests, *m)
		}
	} else {
		iter := s.bucket.List(&blob.ListOptions{Prefix: manifestPrefix})
		for {
			obj, err := iter.Next(ctx)
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return nil, errors.Wrapf(domainerrors.ErrNetworkError, "list manifests: %v", err)
			}
			m, err := s.readManifest(ctx, strings.TrimPrefix(obj.Key, manifestPrefix))
			if err != nil {
				return nil, err
			}
			manifests = append(manifests, *m)
		}
	}

	results := make([]service.QueryResult, 0, len(manifests))
	for _, m := range manifests {
		if matches(m.Tags, filter.Tags) {
			results = append(results, service.QueryResult{
				ID:        m.ID,
				Tags:      m.Tags,
				Timestamp: time.UnixMilli(m.Timestamp).UTC(),
			})
		}
	}

	slices.SortStableFunc(results, func(a, b service.QueryResult) int {
		if filter.Order == service.SortOldestFirst {
			return a.Timestamp.Compare(b.Timestamp)
		}

		return b.Timestamp.Compare(a.Timestamp)
	})
	if filter.Limit > 0 && len(results) > filter.Limit {
		results = results[:filter.Limit]
	}

	return results, nil
}

func (s *store) readManifest(ctx context.Context, id string) (*manifest, error) {
	data, err := s.bucket.ReadAll(ctx, manifestPrefix+id)
	if err != nil {
		return nil, translate(err, id)
	}

	var m manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrapf(err, "corrupt manifest %s", id)
	}

	return &m, nil
}

func matches(tags, filter entity.Tags) bool {
	for _, want := range filter {
		if !slices.Contains(tags, want) {
			return false
		}
	}

	return true
}

// Balance returns the credited amount of address.
func (s *store) Balance(ctx context.Context, address string) (*big.Int, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.readBalance(ctx, address)
}

func (s *store) readBalance(ctx context.Context, address string) (*big.Int, error) {
	data, err := s.bucket.ReadAll(ctx, accountKey(address))
	if gcerrors.Code(err) == gcerrors.NotFound {
		return big.NewInt(0), nil
	}
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrNetworkError, "read balance: %v", err)
	}

	balance, ok := new(big.Int).SetString(strings.TrimSpace(string(data)), 10)
	if !ok {
		return nil, errors.Errorf("corrupt balance for %s", address)
	}

	return balance, nil
}

func (s *store) writeBalance(ctx context.Context, address string, balance *big.Int) error {
	if err := s.bucket.WriteAll(ctx, accountKey(address), []byte(balance.String()), nil); err != nil {
		return errors.Wrapf(domainerrors.ErrNetworkError, "write balance: %v", err)
	}

	return nil
}

// Price is size times the configured price per byte.
func (s *store) Price(_ context.Context, size int) (*big.Int, error) {
	return new(big.Int).Mul(s.pricePerByte, big.NewInt(int64(size))), nil
}

// Fund credits amount to address.
func (s *store) Fund(ctx context.Context, address string, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return domainerrors.ErrValidationFailed.WithDetails("fund amount must be positive")
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	s.accountMu.Lock()
	defer s.accountMu.Unlock()

	balance, err := s.readBalance(ctx, address)
	if err != nil {
		return err
	}

	return s.writeBalance(ctx, address, balance.Add(balance, amount))
}

func (s *store) debit(ctx context.Context, address string, amount *big.Int) error {
	s.accountMu.Lock()
	defer s.accountMu.Unlock()

	balance, err := s.readBalance(ctx, address)
	if err != nil {
		return err
	}
	if balance.Cmp(amount) < 0 {
		return domainerrors.ErrInsufficientBalance.WithDetails("need " + amount.String() + ", have " + balance.String())
	}

	return s.writeBalance(ctx, address, balance.Sub(balance, amount))
}

// RetrievalURL is gateway + "/" + id.
func (s *store) RetrievalURL(id string) string {
	return s.gatewayURL + "/" + id
}

func accountKey(address string) string {
	return accountPrefix + strings.ToLower(address)
}

func translate(err error, id string) error {
	if gcerrors.Code(err) == gcerrors.NotFound {
		return errors.Wrap(service.ErrRecordNotFound, id)
	}

	return errors.Wrapf(domainerrors.ErrNetworkError, "read %s: %v", id, err)
}
