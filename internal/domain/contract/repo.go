package contract

import (
	"context"

	"github.com/diegoclair/slack-reminder-bot/internal/domain/entity"
)

// ReminderStore is the durable mirror of the reminder registry.
// It holds no authority of its own: every save replaces the whole document.
type ReminderStore interface {
	LoadReminders(ctx context.Context) ([]*entity.Reminder, error)
	SaveReminders(ctx context.Context, reminders []*entity.Reminder) error
	LoadTimezones(ctx context.Context) (map[string]string, error)
	SaveTimezone(ctx context.Context, tz entity.UserTimezone) error
	Close() error
}
