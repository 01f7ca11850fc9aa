package contract

import (
	"context"
	"time"

	"github.com/diegoclair/slack-reminder-bot/internal/domain/entity"
)

// ReminderService is the API used by the command layer
type ReminderService interface {
	SetReminder(ctx context.Context, userID, channelID, timeText, message string) (*entity.Reminder, error)
	SetSchedule(ctx context.Context, userID, channelID, startText string, intervalMinutes int, message string) (*entity.Reminder, error)
	ListReminders(userID string) []*entity.Reminder
	DeleteReminder(ctx context.Context, userID string, id int64) error
	ClearReminders(ctx context.Context, userID string) (int, error)
	SnoozeReminder(ctx context.Context, userID string, id int64, minutes int) (*entity.Reminder, error)
	SetTimezone(ctx context.Context, userID, name string) (string, error)
	GetTimezone(userID string) string
}

// TimeResolver turns user input into an absolute UTC instant
type TimeResolver interface {
	Resolve(text, userID string) (time.Time, error)
}
