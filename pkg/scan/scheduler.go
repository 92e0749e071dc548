package scan

import (
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Rescanner runs periodic full re-scans in watch mode, catching changes the
// filesystem watcher missed, such as files replaced while the process was
// briefly out of inotify watches.
type Rescanner struct {
	schedule string
	rescan   func()
	logger   *slog.Logger
	cron     *cron.Cron
}

// NewRescanner creates a rescanner. An empty schedule disables it.
func NewRescanner(schedule string, rescan func()) *Rescanner {
	return &Rescanner{
		schedule: schedule,
		rescan:   rescan,
		logger:   slog.Default().With("component", "scan.rescanner"),
	}
}

// Start begins scheduled re-scans. It is a no-op without a schedule.
func (r *Rescanner) Start() error {
	if r.schedule == "" {
		return nil
	}

	c := cron.New()
	if _, err := c.AddFunc(r.schedule, r.rescan); err != nil {
		return fmt.Errorf("invalid rescan schedule %q: %w", r.schedule, err)
	}

	r.cron = c
	c.Start()
	r.logger.Info("periodic rescan enabled", "schedule", r.schedule)
	return nil
}

// Stop stops scheduled re-scans, waiting for a running scan to finish.
func (r *Rescanner) Stop() {
	if r.cron == nil {
		return
	}
	<-r.cron.Stop().Done()
	r.cron = nil
}
