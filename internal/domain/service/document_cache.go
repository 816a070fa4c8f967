package service

import "context"

// DocumentCache keeps fetched records by content address. Records are immutable,
// so entries never go stale.
type DocumentCache interface {
	// Get returns the cached bytes and whether they were present.
	Get(ctx context.Context, address string) ([]byte, bool, error)

	// Set stores data under address.
	Set(ctx context.Context, address string, data []byte) error

	Close() error
}
