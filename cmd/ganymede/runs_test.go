package main

import (
	"testing"
	"time"

	"mercator-hq/ganymede/pkg/catalog"
)

func TestParseSince(t *testing.T) {
	t.Run("duration", func(t *testing.T) {
		got, err := parseSince("24h")
		if err != nil {
			t.Fatalf("parseSince(24h) error = %v", err)
		}
		want := time.Now().Add(-24 * time.Hour)
		if got.Sub(want) > time.Minute || want.Sub(got) > time.Minute {
			t.Errorf("parseSince(24h) = %v, want about %v", got, want)
		}
	})

	t.Run("rfc3339", func(t *testing.T) {
		got, err := parseSince("2026-08-01T00:00:00Z")
		if err != nil {
			t.Fatalf("parseSince() error = %v", err)
		}
		if got.Year() != 2026 || got.Month() != time.August {
			t.Errorf("parseSince() = %v", got)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		if _, err := parseSince("yesterday"); err == nil {
			t.Error("expected an error")
		}
	})
}

func TestRecordListTable(t *testing.T) {
	list := recordList{
		{
			RunID:      "run-1",
			Path:       "/firmware/dsdt.aml",
			Size:       4096,
			Status:     catalog.StatusOK,
			NodeCount:  42,
			TreeDepth:  5,
			Duration:   300 * time.Microsecond,
			RecordedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		},
	}

	header := list.TableHeader()
	rows := list.TableRows()
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if len(rows[0]) != len(header) {
		t.Errorf("row width %d != header width %d", len(rows[0]), len(header))
	}
	if rows[0][1] != "ok" || rows[0][2] != "/firmware/dsdt.aml" {
		t.Errorf("row = %v", rows[0])
	}
}
