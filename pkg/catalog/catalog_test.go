package catalog

import (
	"testing"
	"time"
)

func TestQueryMatches(t *testing.T) {
	now := time.Now()
	record := &Record{
		ID:         "rec-1",
		RunID:      "run-1",
		Path:       "/firmware/dsdt.aml",
		Status:     StatusOK,
		RecordedAt: now,
	}

	tests := []struct {
		name  string
		query Query
		want  bool
	}{
		{"empty query matches", Query{}, true},
		{"run id match", Query{RunID: "run-1"}, true},
		{"run id mismatch", Query{RunID: "run-2"}, false},
		{"status match", Query{Status: StatusOK}, true},
		{"status mismatch", Query{Status: StatusSyntax}, false},
		{"path prefix match", Query{PathPrefix: "/firmware/"}, true},
		{"path prefix mismatch", Query{PathPrefix: "/boot/"}, false},
		{"path prefix longer than path", Query{PathPrefix: "/firmware/dsdt.aml.bak"}, false},
		{"since before record", Query{Since: now.Add(-time.Hour)}, true},
		{"since after record", Query{Since: now.Add(time.Hour)}, false},
		{"combined filters", Query{RunID: "run-1", Status: StatusOK, PathPrefix: "/firmware/"}, true},
		{"combined with one mismatch", Query{RunID: "run-1", Status: StatusDepth}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.query.Matches(record); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStorageError(t *testing.T) {
	inner := &StorageError{Backend: "sqlite", Op: "store"}
	err := NewStorageError("sqlite", "query", inner)

	if err.Backend != "sqlite" || err.Op != "query" {
		t.Errorf("unexpected fields: backend=%q op=%q", err.Backend, err.Op)
	}
	if err.Unwrap() != inner {
		t.Error("Unwrap() should return the wrapped error")
	}
	if err.Error() == "" {
		t.Error("Error() should not be empty")
	}
}
