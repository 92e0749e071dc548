package retention

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"mercator-hq/ganymede/pkg/catalog/storage"
)

// Config contains retention settings for the parse catalog.
type Config struct {
	// Days is the number of days to keep records. Zero keeps records
	// forever and disables the pruner.
	Days int

	// Schedule is the cron expression for automatic pruning. Empty
	// disables scheduled pruning; Prune can still be called manually.
	Schedule string
}

// Pruner removes catalog records older than the retention period, on a cron
// schedule or on demand.
type Pruner struct {
	store  storage.Storage
	config *Config
	logger *slog.Logger

	mu      sync.Mutex
	cron    *cron.Cron
	entryID cron.EntryID
	running bool
}

// NewPruner creates a new retention pruner.
func NewPruner(store storage.Storage, config *Config) *Pruner {
	if config == nil {
		config = &Config{}
	}
	return &Pruner{
		store:  store,
		config: config,
		logger: slog.Default().With("component", "catalog.retention"),
	}
}

// Start begins scheduled pruning. It is a no-op when retention is disabled
// (zero days) or no schedule is configured.
func (p *Pruner) Start(ctx context.Context) error {
	if p.config.Days <= 0 || p.config.Schedule == "" {
		p.logger.Debug("retention pruning disabled")
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.running {
		return fmt.Errorf("pruner already running")
	}

	c := cron.New()
	id, err := c.AddFunc(p.config.Schedule, func() {
		if _, err := p.Prune(ctx); err != nil {
			p.logger.Error("scheduled pruning failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid prune schedule %q: %w", p.config.Schedule, err)
	}

	p.cron = c
	p.entryID = id
	p.running = true
	c.Start()

	p.logger.Info("retention pruner started",
		"schedule", p.config.Schedule,
		"retention_days", p.config.Days,
	)
	return nil
}

// Stop stops scheduled pruning, waiting for a running job to complete.
func (p *Pruner) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.running {
		return
	}
	<-p.cron.Stop().Done()
	p.running = false
	p.logger.Info("retention pruner stopped")
}

// NextPruning returns the next scheduled pruning time, or nil when no
// schedule is active.
func (p *Pruner) NextPruning() *time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.running {
		return nil
	}
	next := p.cron.Entry(p.entryID).Next
	return &next
}

// Prune removes records older than the retention period and returns how
// many were deleted. With retention disabled it deletes nothing.
func (p *Pruner) Prune(ctx context.Context) (int64, error) {
	if p.config.Days <= 0 {
		return 0, nil
	}
	cutoff := time.Now().AddDate(0, 0, -p.config.Days)
	return p.store.DeleteOlderThan(ctx, cutoff)
}
