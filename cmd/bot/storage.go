package main

import (
	"fmt"

	"github.com/diegoclair/slack-reminder-bot/internal/config"
	"github.com/diegoclair/slack-reminder-bot/internal/database"
	"github.com/diegoclair/slack-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/slack-reminder-bot/internal/filestore"
	"github.com/diegoclair/slack-reminder-bot/migrator/sqlite"
	"go.uber.org/zap"
)

// openStore builds the reminder store selected by STORAGE_DRIVER
func openStore(cfg *config.Config, log *zap.Logger) (contract.ReminderStore, error) {
	switch cfg.StorageDriver {
	case config.StorageSQLite:
		db, err := database.New(cfg.DatabasePath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}

		log.Info("running migrations", zap.String("path", cfg.DatabasePath))
		if err := sqlite.Migrate(db.DB()); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}

		return database.NewInstance(db), nil

	case config.StorageFile:
		log.Info("using file storage",
			zap.String("reminders", cfg.RemindersPath),
			zap.String("timezones", cfg.TimezonesPath))
		return filestore.New(cfg.RemindersPath, cfg.TimezonesPath)

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
