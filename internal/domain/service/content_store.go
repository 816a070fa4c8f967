package service

import (
	"context"
	"math/big"
	"time"

	"linkvault/internal/domain/entity"
)

// UploadReceipt is returned by the store for every persisted record.
type UploadReceipt struct {
	ID        string    `json:"id"`
	Size      int       `json:"size"`
	Price     *big.Int  `json:"price,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Signature string    `json:"signature,omitempty"`
}

// SortOrder orders query results by timestamp.
type SortOrder string

const (
	SortNewestFirst SortOrder = "DESC"
	SortOldestFirst SortOrder = "ASC"
)

// QueryFilter selects records whose tags contain every pair of Tags. When IDs is
// set only those records are considered.
type QueryFilter struct {
	Tags  entity.Tags
	IDs   []string
	Limit int
	Order SortOrder
}

// QueryResult is one record matched by a query.
type QueryResult struct {
	ID        string      `json:"id"`
	Tags      entity.Tags `json:"tags"`
	Timestamp time.Time   `json:"timestamp"`
}

// ContentStore is a permanent, content-addressed record store.
type ContentStore interface {
	// Upload persists data with its tags and returns the content address in the receipt.
	Upload(ctx context.Context, data []byte, tags entity.Tags) (*UploadReceipt, error)

	// Fetch returns the bytes stored at id. A missing record yields ErrRecordNotFound.
	Fetch(ctx context.Context, id string) ([]byte, error)

	// Query lists records matching filter.
	Query(ctx context.Context, filter QueryFilter) ([]QueryResult, error)

	// Balance returns the funded balance of address in atomic units.
	Balance(ctx context.Context, address string) (*big.Int, error)

	// Price returns the cost in atomic units of storing size bytes.
	Price(ctx context.Context, size int) (*big.Int, error)

	// Fund credits amount atomic units to address.
	Fund(ctx context.Context, address string, amount *big.Int) error

	// RetrievalURL is the public URL of the record id.
	RetrievalURL(id string) string
}
