package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"tagback-server/cmd/config"
	"tagback-server/internal/infra/async"
	"time"

	"github.com/robfig/cron/v3"
)

// ScanReconcileWorker recomputes tag scan counters from the scan log on a
// cron schedule. Counters can drift when a best-effort scan write is retried
// or rows are removed by hand.
type ScanReconcileWorker struct {
	ticker     *time.Ticker
	repository TagRepository
	schedule   cron.Schedule

	mu      sync.Mutex
	nextRun time.Time
}

func NewScanReconcileWorker(
	ticker *time.Ticker,
	cfg config.ScansConfig,
	repository TagRepository,
) (*ScanReconcileWorker, error) {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	schedule, err := parser.Parse(cfg.ReconcileSchedule)
	if err != nil {
		return nil, fmt.Errorf("parsing reconcile schedule %q: %w", cfg.ReconcileSchedule, err)
	}

	return &ScanReconcileWorker{
		ticker:     ticker,
		repository: repository,
		schedule:   schedule,
		nextRun:    schedule.Next(time.Now()),
	}, nil
}

var _ async.Worker = (*ScanReconcileWorker)(nil)

func (w *ScanReconcileWorker) Run(ctx context.Context, done func()) {
	slog.Info("scan reconcile worker started", slog.Time("next_run", w.NextRun()))
	defer done()

	for {
		select {
		case <-ctx.Done():
			slog.Info("scan reconcile worker cancelled")
			return
		case now := <-w.ticker.C:
			if w.due(now) {
				w.Reconcile(ctx)
			}
		}
	}
}

func (w *ScanReconcileWorker) Shutdown() {
	w.ticker.Stop()
	slog.Info("scan reconcile worker shutdown")
}

func (w *ScanReconcileWorker) NextRun() time.Time {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.nextRun
}

func (w *ScanReconcileWorker) Reconcile(ctx context.Context) {
	start := time.Now()
	updated, err := w.repository.ReconcileScanCounts(ctx)
	if err != nil {
		slog.Error("reconciling scan counters", slog.String("error", err.Error()))
		return
	}

	slog.Info("scan counters reconciled",
		slog.Int64("tags", updated),
		slog.Duration("took", time.Since(start)))
}

func (w *ScanReconcileWorker) due(now time.Time) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if now.Before(w.nextRun) {
		return false
	}
	w.nextRun = w.schedule.Next(now)
	return true
}
