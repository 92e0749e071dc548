package storage

import (
	"context"
	"time"

	"mercator-hq/ganymede/pkg/catalog"
)

// Storage is the interface implemented by catalog storage backends.
type Storage interface {
	// Store persists a record.
	Store(ctx context.Context, record *catalog.Record) error

	// Query returns records matching the query, newest first.
	Query(ctx context.Context, q catalog.Query) ([]*catalog.Record, error)

	// Count returns the total number of stored records.
	Count(ctx context.Context) (int64, error)

	// DeleteOlderThan removes records stored before cutoff and returns
	// how many were removed.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)

	// Close releases backend resources.
	Close() error
}
