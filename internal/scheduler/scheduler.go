package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/diegoclair/slack-reminder-bot/internal/domain/service"
	"github.com/diegoclair/slack-reminder-bot/internal/logger"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scanner runs one pass over the due reminders
type Scanner interface {
	Tick(ctx context.Context) service.ScanReport
}

// Runner drives a Scanner on a cron schedule. A tick that fires while the
// previous scan is still running is skipped, so scans never overlap.
type Runner struct {
	mu      sync.Mutex
	scanner Scanner
	spec    string
	log     *zap.Logger

	c      *cron.Cron
	cancel context.CancelFunc
}

func New(scanner Scanner, spec string, log *zap.Logger) *Runner {
	return &Runner{
		scanner: scanner,
		spec:    spec,
		log:     log,
	}
}

func (r *Runner) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.c != nil {
		return nil
	}

	cronLog := logger.NewCronLogger(r.log)
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithLogger(cronLog),
		cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
	)

	ctx, cancel := context.WithCancel(context.Background())
	if _, err := c.AddFunc(r.spec, func() { r.scanner.Tick(ctx) }); err != nil {
		cancel()
		return fmt.Errorf("invalid scan schedule %q: %w", r.spec, err)
	}

	c.Start()
	r.c = c
	r.cancel = cancel

	r.log.Info("scheduler started", zap.String("schedule", r.spec))
	return nil
}

// cancelGrace bounds the wait for a scan after its context was cancelled
const cancelGrace = 5 * time.Second

// Stop prevents future ticks and waits for a running scan to finish. When ctx
// expires first the running scan is cancelled, Stop waits up to cancelGrace
// for it to return and ctx.Err() is returned.
func (r *Runner) Stop(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.c == nil {
		return nil
	}

	done := r.c.Stop().Done()
	cancel := r.cancel
	r.c = nil
	r.cancel = nil
	defer cancel()

	select {
	case <-done:
		r.log.Info("scheduler stopped")
		return nil
	case <-ctx.Done():
	}

	r.log.Warn("scheduler stop timed out, cancelling running scan")
	cancel()

	// the cancelled scan still records its outcome before the store closes
	select {
	case <-done:
	case <-time.After(cancelGrace):
		r.log.Error("running scan ignored cancellation", zap.Duration("waited", cancelGrace))
	}
	return ctx.Err()
}
