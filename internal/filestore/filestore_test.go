package filestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/diegoclair/slack-reminder-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*store, string) {
	t.Helper()

	dir := t.TempDir()
	s, err := New(filepath.Join(dir, "reminders.json"), filepath.Join(dir, "timezones.json"))
	require.NoError(t, err)

	return s.(*store), dir
}

func TestStore_LoadMissingFiles(t *testing.T) {
	s, _ := newTestStore(t)

	reminders, err := s.LoadReminders(context.Background())
	require.NoError(t, err)
	assert.Empty(t, reminders)

	timezones, err := s.LoadTimezones(context.Background())
	require.NoError(t, err)
	assert.Empty(t, timezones)
}

func TestStore_SaveReminders_DocumentFormat(t *testing.T) {
	s, dir := newTestStore(t)

	reminders := []*entity.Reminder{
		{
			ID:        1,
			UserID:    "U1",
			ChannelID: "C9",
			FireTime:  time.Date(2024, 7, 11, 15, 30, 0, 0, time.UTC),
			Message:   "Take a break",
		},
		{
			ID:             2,
			UserID:         "U1",
			ChannelID:      "C9",
			FireTime:       time.Date(2024, 7, 11, 9, 0, 0, 0, time.UTC),
			Message:        "Standup",
			RepeatInterval: entity.IntPtr(60),
		},
	}

	require.NoError(t, s.SaveReminders(context.Background(), reminders))

	data, err := os.ReadFile(filepath.Join(dir, "reminders.json"))
	require.NoError(t, err)

	assert.JSONEq(t, `[
		{"id": 1, "user": "U1", "channel": "C9", "time": "2024-07-11 15:30", "message": "Take a break", "repeat_interval": null},
		{"id": 2, "user": "U1", "channel": "C9", "time": "2024-07-11 09:00", "message": "Standup", "repeat_interval": 60}
	]`, string(data))

	_, err = os.Stat(filepath.Join(dir, "reminders.json.tmp"))
	assert.True(t, os.IsNotExist(err), "temporary file should be renamed away")

	loaded, err := s.LoadReminders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, reminders, loaded)
}

func TestStore_LoadReminders_InvalidTime(t *testing.T) {
	s, dir := newTestStore(t)

	err := os.WriteFile(filepath.Join(dir, "reminders.json"),
		[]byte(`[{"id": 1, "user": "U1", "channel": "C1", "time": "tomorrow", "message": "x"}]`), 0o600)
	require.NoError(t, err)

	_, err = s.LoadReminders(context.Background())
	assert.Error(t, err)
}

func TestStore_SaveTimezone(t *testing.T) {
	s, dir := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveTimezone(ctx, entity.UserTimezone{UserID: "U1", Timezone: "Europe/Berlin"}))
	require.NoError(t, s.SaveTimezone(ctx, entity.UserTimezone{UserID: "U2", Timezone: "UTC"}))
	require.NoError(t, s.SaveTimezone(ctx, entity.UserTimezone{UserID: "U1", Timezone: "Asia/Tokyo"}))

	data, err := os.ReadFile(filepath.Join(dir, "timezones.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"U1": "Asia/Tokyo", "U2": "UTC"}`, string(data))

	timezones, err := s.LoadTimezones(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"U1": "Asia/Tokyo", "U2": "UTC"}, timezones)
}
