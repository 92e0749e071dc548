package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"mercator-hq/ganymede/pkg/catalog"
)

// MemoryStorage implements the Storage interface in memory. It is used by
// tests and by one-shot scans that do not need persistence.
type MemoryStorage struct {
	mu      sync.RWMutex
	records []*catalog.Record
}

// NewMemoryStorage creates a new in-memory storage backend.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

// Store persists a record.
func (s *MemoryStorage) Store(ctx context.Context, record *catalog.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *record
	s.records = append(s.records, &copied)
	return nil
}

// Query returns records matching the query, newest first.
func (s *MemoryStorage) Query(ctx context.Context, q catalog.Query) ([]*catalog.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*catalog.Record
	for _, r := range s.records {
		if q.Matches(r) {
			copied := *r
			out = append(out, &copied)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].RecordedAt.After(out[j].RecordedAt)
	})

	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

// Count returns the total number of stored records.
func (s *MemoryStorage) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.records)), nil
}

// DeleteOlderThan removes records stored before cutoff.
func (s *MemoryStorage) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.records[:0]
	var deleted int64
	for _, r := range s.records {
		if r.RecordedAt.Before(cutoff) {
			deleted++
			continue
		}
		kept = append(kept, r)
	}
	s.records = kept
	return deleted, nil
}

// Close releases backend resources.
func (s *MemoryStorage) Close() error {
	return nil
}
