// Package filestore keeps reminders and timezones in two JSON documents.
//
// Reminder document: an ordered array of
//
//	{"id": 1, "user": "U1", "channel": "C1", "time": "2024-07-11 15:30", "message": "...", "repeat_interval": null}
//
// Timezone document: {"U1": "Europe/Berlin"}.
//
// Files are rewritten whole: data goes to <path>.tmp and is renamed over the
// target so a crash never leaves a half-written document.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/diegoclair/slack-reminder-bot/internal/domain"
	"github.com/diegoclair/slack-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/slack-reminder-bot/internal/domain/entity"
)

type record struct {
	ID             int64  `json:"id"`
	User           string `json:"user"`
	Channel        string `json:"channel"`
	Time           string `json:"time"`
	Message        string `json:"message"`
	RepeatInterval *int   `json:"repeat_interval"`
}

type store struct {
	mu            sync.Mutex
	remindersPath string
	timezonesPath string
}

// New returns a file backed ReminderStore. Parent directories are created.
func New(remindersPath, timezonesPath string) (contract.ReminderStore, error) {
	if remindersPath == "" || timezonesPath == "" {
		return nil, errors.New("reminders and timezones paths are required for file storage")
	}

	for _, p := range []string{remindersPath, timezonesPath} {
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory for %s: %w", p, err)
		}
	}

	return &store{
		remindersPath: remindersPath,
		timezonesPath: timezonesPath,
	}, nil
}

func (s *store) LoadReminders(_ context.Context) ([]*entity.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var records []record
	found, err := readJSON(s.remindersPath, &records)
	if err != nil || !found {
		return nil, err
	}

	reminders := make([]*entity.Reminder, 0, len(records))
	for _, rec := range records {
		fireTime, err := time.ParseInLocation(domain.TimeLayout, rec.Time, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("failed to parse time of reminder %d: %w", rec.ID, err)
		}

		reminders = append(reminders, &entity.Reminder{
			ID:             rec.ID,
			UserID:         rec.User,
			ChannelID:      rec.Channel,
			FireTime:       fireTime,
			Message:        rec.Message,
			RepeatInterval: rec.RepeatInterval,
		})
	}

	return reminders, nil
}

func (s *store) SaveReminders(_ context.Context, reminders []*entity.Reminder) error {
	records := make([]record, 0, len(reminders))
	for _, r := range reminders {
		records = append(records, record{
			ID:             r.ID,
			User:           r.UserID,
			Channel:        r.ChannelID,
			Time:           r.FireTime.UTC().Format(domain.TimeLayout),
			Message:        r.Message,
			RepeatInterval: r.RepeatInterval,
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return writeJSON(s.remindersPath, records)
}

func (s *store) LoadTimezones(_ context.Context) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	timezones := make(map[string]string)
	if _, err := readJSON(s.timezonesPath, &timezones); err != nil {
		return nil, err
	}
	return timezones, nil
}

func (s *store) SaveTimezone(_ context.Context, tz entity.UserTimezone) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	timezones := make(map[string]string)
	if _, err := readJSON(s.timezonesPath, &timezones); err != nil {
		return err
	}
	timezones[tz.UserID] = tz.Timezone

	return writeJSON(s.timezonesPath, timezones)
}

func (s *store) Close() error {
	return nil
}

// readJSON decodes path into v. A missing file is not an error.
func readJSON(path string, v any) (bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if len(data) == 0 {
		return false, nil
	}

	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return true, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
