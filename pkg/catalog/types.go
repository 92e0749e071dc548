package catalog

import (
	"time"
)

// Status classifies the outcome of one recorded parse.
type Status string

const (
	StatusOK        Status = "ok"
	StatusSyntax    Status = "syntax"    // input is not valid AML
	StatusTruncated Status = "truncated" // input ends inside an encoding
	StatusResource  Status = "resource"  // allocation failure during decoding
	StatusDepth     Status = "depth"     // recursion limit exceeded
	StatusIO        Status = "io"        // file could not be read
)

// Record is one catalog entry: the outcome of parsing a single AML input.
type Record struct {
	// ID is a unique record identifier (UUID).
	ID string

	// RunID groups the records produced by one scan invocation.
	RunID string

	// Path is the source file path.
	Path string

	// Size is the input size in bytes.
	Size int64

	// Status is the parse outcome.
	Status Status

	// Error holds the error message for non-ok records.
	Error string

	// NodeCount is the number of nodes in the decoded tree (ok records).
	NodeCount int

	// TreeDepth is the height of the decoded tree (ok records).
	TreeDepth int

	// Duration is how long the parse took.
	Duration time.Duration

	// RecordedAt is when the record was stored.
	RecordedAt time.Time
}

// Query filters catalog records. Zero-valued fields are ignored.
type Query struct {
	// RunID restricts results to one scan run.
	RunID string

	// Status restricts results to one outcome.
	Status Status

	// PathPrefix restricts results to paths under a prefix.
	PathPrefix string

	// Since restricts results to records stored at or after this time.
	Since time.Time

	// Limit caps the number of returned records. Zero means no cap.
	Limit int
}

// Matches reports whether the record satisfies every set filter.
func (q Query) Matches(r *Record) bool {
	if q.RunID != "" && r.RunID != q.RunID {
		return false
	}
	if q.Status != "" && r.Status != q.Status {
		return false
	}
	if q.PathPrefix != "" && len(r.Path) >= len(q.PathPrefix) && r.Path[:len(q.PathPrefix)] != q.PathPrefix {
		return false
	}
	if q.PathPrefix != "" && len(r.Path) < len(q.PathPrefix) {
		return false
	}
	if !q.Since.IsZero() && r.RecordedAt.Before(q.Since) {
		return false
	}
	return true
}
