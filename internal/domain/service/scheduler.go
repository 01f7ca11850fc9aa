package service

import (
	"context"
	"time"

	"github.com/diegoclair/slack-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/slack-reminder-bot/internal/domain/entity"
	"github.com/diegoclair/slack-reminder-bot/internal/metrics"
	"go.uber.org/zap"
)

// ScanReport summarizes one scheduler pass
type ScanReport struct {
	Due         int
	Delivered   int
	Failed      int
	Rescheduled int
	Removed     int
}

type scheduler struct {
	registry *registry
	notifier contract.Notifier
	log      *zap.Logger
	now      func() time.Time
}

func newScheduler(registry *registry, notifier contract.Notifier, log *zap.Logger, now func() time.Time) *scheduler {
	return &scheduler{
		registry: registry,
		notifier: notifier,
		log:      log,
		now:      now,
	}
}

// Tick runs one scan using the current clock
func (s *scheduler) Tick(ctx context.Context) ScanReport {
	return s.Scan(ctx, s.now().UTC())
}

// Scan delivers every reminder due at now. Delivery runs without holding the
// registry lock; a failed delivery still counts as fired. Reminders added
// while a scan is running may or may not be seen by it. A scan with nothing
// due still retries a previously failed save.
func (s *scheduler) Scan(ctx context.Context, now time.Time) ScanReport {
	start := time.Now()
	defer func() {
		metrics.ScansTotal.Inc()
		metrics.ScanDuration.Observe(time.Since(start).Seconds())
	}()

	due := s.registry.Due(now)
	report := ScanReport{Due: len(due)}

	for _, reminder := range due {
		if s.deliver(ctx, reminder) {
			report.Delivered++
		} else {
			report.Failed++
		}
	}

	// deliveries may have been cancelled, the outcome is still recorded
	rescheduled, removed, err := s.registry.Apply(context.WithoutCancel(ctx), due, now)
	report.Rescheduled = rescheduled
	report.Removed = removed
	if err != nil {
		// state stays in memory; the next save reconciles it
		s.log.Error("failed to persist scan result", zap.Error(err))
	}

	if report.Due == 0 {
		return report
	}

	s.log.Info("scan completed",
		zap.Time("now", now),
		zap.Int("due", report.Due),
		zap.Int("delivered", report.Delivered),
		zap.Int("failed", report.Failed),
		zap.Int("rescheduled", report.Rescheduled),
		zap.Int("removed", report.Removed))

	return report
}

func (s *scheduler) deliver(ctx context.Context, reminder *entity.Reminder) bool {
	err := s.notifier.Deliver(ctx, reminder.ChannelID, reminder.UserID, reminder.Message)
	if err != nil {
		metrics.DeliveriesTotal.WithLabelValues(metrics.ResultFailed).Inc()
		s.log.Warn("failed to deliver reminder",
			zap.Int64("id", reminder.ID),
			zap.String("channel", reminder.ChannelID),
			zap.Error(err))
		return false
	}

	metrics.DeliveriesTotal.WithLabelValues(metrics.ResultDelivered).Inc()
	s.log.Debug("reminder delivered",
		zap.Int64("id", reminder.ID),
		zap.String("channel", reminder.ChannelID))
	return true
}
