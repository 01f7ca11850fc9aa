package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/diegoclair/slack-reminder-bot/internal/config"
	"github.com/diegoclair/slack-reminder-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOpenStore(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	for _, driver := range []string{config.StorageSQLite, config.StorageFile} {
		t.Run(driver, func(t *testing.T) {
			cfg := &config.Config{
				StorageDriver: driver,
				DatabasePath:  filepath.Join(dir, "reminders.db"),
				RemindersPath: filepath.Join(dir, "reminders.json"),
				TimezonesPath: filepath.Join(dir, "timezones.json"),
			}

			store, err := openStore(cfg, zap.NewNop())
			require.NoError(t, err)
			defer store.Close()

			reminders, err := store.LoadReminders(ctx)
			require.NoError(t, err)
			assert.Empty(t, reminders)

			require.NoError(t, store.SaveTimezone(ctx, entity.UserTimezone{UserID: "U1", Timezone: "UTC"}))
		})
	}

	t.Run("unknown", func(t *testing.T) {
		_, err := openStore(&config.Config{StorageDriver: "redis"}, zap.NewNop())
		assert.ErrorContains(t, err, "unknown storage driver")
	})
}
