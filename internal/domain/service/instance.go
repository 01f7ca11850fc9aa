package service

import (
	"context"
	"time"

	"github.com/diegoclair/slack-reminder-bot/internal/domain/contract"
	"go.uber.org/zap"
)

type Instance struct {
	Reminder  contract.ReminderService
	Scheduler *scheduler

	registry *registry
}

func NewInstance(store contract.ReminderStore, notifier contract.Notifier, log *zap.Logger) *Instance {
	return newInstance(store, notifier, log, time.Now)
}

func newInstance(store contract.ReminderStore, notifier contract.Notifier, log *zap.Logger, now func() time.Time) *Instance {
	registry := newRegistry(store, log.Named("registry"))

	return &Instance{
		Reminder:  newReminderService(registry, newResolver(registry, now), log.Named("reminder")),
		Scheduler: newScheduler(registry, notifier, log.Named("scheduler"), now),
		registry:  registry,
	}
}

// Load reads the persisted state; it must run before the scheduler starts
func (i *Instance) Load(ctx context.Context) error {
	return i.registry.Load(ctx)
}
