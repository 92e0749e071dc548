package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"mercator-hq/ganymede/pkg/config"
)

func newTestCollector(enabled bool) *Collector {
	return NewCollector(&config.MetricsConfig{Enabled: enabled}, prometheus.NewRegistry())
}

func gatherNames(t *testing.T, c *Collector) map[string]float64 {
	t.Helper()
	families, err := c.Registry().Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}
	sums := make(map[string]float64)
	for _, fam := range families {
		for _, m := range fam.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				sums[fam.GetName()] += m.GetCounter().GetValue()
			case m.GetHistogram() != nil:
				sums[fam.GetName()] += float64(m.GetHistogram().GetSampleCount())
			}
		}
	}
	return sums
}

func TestCollectorRecordParse(t *testing.T) {
	c := newTestCollector(true)
	c.RecordParse("ok", 500*time.Microsecond, 4096, 120)
	c.RecordParse("syntax", time.Millisecond, 1024, 0)

	sums := gatherNames(t, c)
	if got := sums["ganymede_aml_parses_total"]; got != 2 {
		t.Errorf("parses_total = %v, want 2", got)
	}
	if got := sums["ganymede_aml_parse_duration_seconds"]; got != 2 {
		t.Errorf("parse_duration samples = %v, want 2", got)
	}
	// Node histogram only observes successful decodes.
	if got := sums["ganymede_aml_parse_nodes"]; got != 1 {
		t.Errorf("parse_nodes samples = %v, want 1", got)
	}
}

func TestCollectorRecordScanRun(t *testing.T) {
	c := newTestCollector(true)
	c.RecordScanRun(12, 3*time.Second)
	c.RecordScanRun(5, time.Second)
	c.RecordWatchEvent("write")

	sums := gatherNames(t, c)
	if got := sums["ganymede_aml_scan_runs_total"]; got != 2 {
		t.Errorf("scan_runs_total = %v, want 2", got)
	}
	if got := sums["ganymede_aml_scan_files_total"]; got != 17 {
		t.Errorf("scan_files_total = %v, want 17", got)
	}
	if got := sums["ganymede_aml_watch_events_total"]; got != 1 {
		t.Errorf("watch_events_total = %v, want 1", got)
	}
}

func TestCollectorDisabled(t *testing.T) {
	c := newTestCollector(false)
	c.RecordParse("ok", time.Millisecond, 4096, 10)
	c.RecordScanRun(3, time.Second)
	c.RecordWatchEvent("create")

	sums := gatherNames(t, c)
	if sums["ganymede_aml_parses_total"] != 0 || sums["ganymede_aml_scan_runs_total"] != 0 {
		t.Errorf("disabled collector recorded metrics: %v", sums)
	}
}

func TestCollectorHandler(t *testing.T) {
	c := newTestCollector(true)
	c.RecordParse("ok", time.Millisecond, 4096, 10)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), "ganymede_aml_parses_total") {
		t.Error("exposition output missing parses_total")
	}
}
