package config

import (
	"os"
	"strconv"

	"github.com/diegoclair/slack-reminder-bot/internal/domain"
)

const (
	StorageSQLite = "sqlite"
	StorageFile   = "file"
)

type Config struct {
	SlackBotToken      string
	SlackSigningSecret string
	Port               string
	StorageDriver      string
	DatabasePath       string
	RemindersPath      string
	TimezonesPath      string
	ScanSchedule       string
	SlackRatePerSec    int
	LogLevel           string
}

func Load() *Config {
	return &Config{
		SlackBotToken:      getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		Port:               getEnv("PORT", "3000"),
		StorageDriver:      getEnv("STORAGE_DRIVER", StorageSQLite),
		DatabasePath:       getEnv("DATABASE_PATH", "./reminders.db"),
		RemindersPath:      getEnv("REMINDERS_PATH", "./reminders.json"),
		TimezonesPath:      getEnv("TIMEZONES_PATH", "./timezones.json"),
		ScanSchedule:       getEnv("SCAN_SCHEDULE", domain.DefaultScanSchedule),
		SlackRatePerSec:    getEnvInt("SLACK_RATE_PER_SEC", 1),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}
