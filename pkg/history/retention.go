package history

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Pruner deletes records older than the retention window on a cron
// schedule.
type Pruner struct {
	store     Store
	retention time.Duration
	logger    *slog.Logger
	cron      *cron.Cron
}

// NewPruner creates a Pruner. retentionDays must be positive and
// schedule must be a standard five-field cron expression.
func NewPruner(store Store, retentionDays int, schedule string, logger *slog.Logger) (*Pruner, error) {
	if retentionDays <= 0 {
		return nil, fmt.Errorf("retention days must be positive, got %d", retentionDays)
	}
	if logger == nil {
		logger = slog.Default()
	}

	p := &Pruner{
		store:     store,
		retention: time.Duration(retentionDays) * 24 * time.Hour,
		logger:    logger,
		cron:      cron.New(),
	}

	if _, err := p.cron.AddFunc(schedule, p.runOnce); err != nil {
		return nil, fmt.Errorf("invalid prune schedule %q: %w", schedule, err)
	}
	return p, nil
}

// Start begins running the schedule in the background.
func (p *Pruner) Start() {
	p.cron.Start()
}

// Stop halts the schedule and waits for a running prune to finish.
func (p *Pruner) Stop() {
	ctx := p.cron.Stop()
	<-ctx.Done()
}

// runOnce executes one prune pass.
func (p *Pruner) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cutoff := time.Now().Add(-p.retention)
	pruned, err := p.store.Prune(ctx, cutoff)
	if err != nil {
		p.logger.Error("history prune failed", "error", err)
		return
	}
	if pruned > 0 {
		p.logger.Info("pruned validation history", "records", pruned, "cutoff", cutoff)
	}
}

// PruneNow runs one prune pass immediately, outside the schedule.
func (p *Pruner) PruneNow(ctx context.Context) (int, error) {
	return p.store.Prune(ctx, time.Now().Add(-p.retention))
}
