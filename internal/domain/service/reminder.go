package service

import (
	"context"
	"errors"

	"github.com/diegoclair/slack-reminder-bot/internal/domain"
	"github.com/diegoclair/slack-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/slack-reminder-bot/internal/domain/entity"
	"go.uber.org/zap"
)

// reminderService implements contract.ReminderService. Persistence failures
// are logged by the registry and do not fail the command: the in-memory
// change stands.
type reminderService struct {
	registry *registry
	resolver contract.TimeResolver
	log      *zap.Logger
}

func newReminderService(registry *registry, resolver contract.TimeResolver, log *zap.Logger) *reminderService {
	return &reminderService{
		registry: registry,
		resolver: resolver,
		log:      log,
	}
}

func (s *reminderService) SetReminder(ctx context.Context, userID, channelID, timeText, message string) (*entity.Reminder, error) {
	fireTime, err := s.resolver.Resolve(timeText, userID)
	if err != nil {
		return nil, err
	}

	reminder, err := s.registry.Add(ctx, userID, channelID, fireTime, message, nil)
	if err := ignorePersistence(err); err != nil {
		return nil, err
	}

	s.log.Info("reminder set",
		zap.Int64("id", reminder.ID),
		zap.String("user", userID),
		zap.Time("fire_time", reminder.FireTime))

	return reminder, nil
}

func (s *reminderService) SetSchedule(ctx context.Context, userID, channelID, startText string, intervalMinutes int, message string) (*entity.Reminder, error) {
	if intervalMinutes <= 0 {
		return nil, domain.ErrInvalidInterval
	}

	fireTime, err := s.resolver.Resolve(startText, userID)
	if err != nil {
		return nil, err
	}

	reminder, err := s.registry.Add(ctx, userID, channelID, fireTime, message, entity.IntPtr(intervalMinutes))
	if err := ignorePersistence(err); err != nil {
		return nil, err
	}

	s.log.Info("schedule set",
		zap.Int64("id", reminder.ID),
		zap.String("user", userID),
		zap.Time("fire_time", reminder.FireTime),
		zap.Int("interval_minutes", intervalMinutes))

	return reminder, nil
}

func (s *reminderService) ListReminders(userID string) []*entity.Reminder {
	return s.registry.ListFor(userID)
}

func (s *reminderService) DeleteReminder(ctx context.Context, userID string, id int64) error {
	return ignorePersistence(s.registry.Delete(ctx, userID, id))
}

func (s *reminderService) ClearReminders(ctx context.Context, userID string) (int, error) {
	removed, err := s.registry.Clear(ctx, userID)
	return removed, ignorePersistence(err)
}

func (s *reminderService) SnoozeReminder(ctx context.Context, userID string, id int64, minutes int) (*entity.Reminder, error) {
	reminder, err := s.registry.Snooze(ctx, userID, id, minutes)
	if err := ignorePersistence(err); err != nil {
		return nil, err
	}
	return reminder, nil
}

func (s *reminderService) SetTimezone(ctx context.Context, userID, name string) (string, error) {
	tz, err := ValidateTimezone(name)
	if err != nil {
		return "", err
	}

	if err := ignorePersistence(s.registry.SetTimezone(ctx, userID, tz)); err != nil {
		return "", err
	}
	return tz, nil
}

func (s *reminderService) GetTimezone(userID string) string {
	return s.registry.Timezone(userID)
}

func ignorePersistence(err error) error {
	if errors.Is(err, domain.ErrPersistence) {
		return nil
	}
	return err
}
