package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/slack-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/slack-reminder-bot/internal/domain/entity"
)

// instance implements the ReminderStore contract on top of sqlite
type instance struct {
	db           *DB
	reminderRepo *reminderRepo
	timezoneRepo *timezoneRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.ReminderStore {
	instance := &instance{
		db: db,
	}
	instance.repoInstances()
	return instance
}

// repoInstances initializes all repositories
func (i *instance) repoInstances() {
	i.reminderRepo = newReminderRepo(i.db.conn)
	i.timezoneRepo = newTimezoneRepo(i.db.conn)
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		reminderRepo: newReminderRepo(db),
		timezoneRepo: newTimezoneRepo(db),
	}
}

func (i *instance) LoadReminders(ctx context.Context) ([]*entity.Reminder, error) {
	return i.reminderRepo.List(ctx)
}

// SaveReminders replaces the stored list with the given one, keeping its order
func (i *instance) SaveReminders(ctx context.Context, reminders []*entity.Reminder) error {
	return i.withTransaction(ctx, func(tx *instance) error {
		if err := tx.reminderRepo.DeleteAll(ctx); err != nil {
			return err
		}

		for position, reminder := range reminders {
			if err := tx.reminderRepo.Insert(ctx, position, reminder); err != nil {
				return err
			}
		}

		return nil
	})
}

func (i *instance) LoadTimezones(ctx context.Context) (map[string]string, error) {
	return i.timezoneRepo.List(ctx)
}

func (i *instance) SaveTimezone(ctx context.Context, tz entity.UserTimezone) error {
	return i.timezoneRepo.Upsert(ctx, tz)
}

func (i *instance) Close() error {
	return i.db.Close()
}

// withTransaction executes a function within a database transaction
func (i *instance) withTransaction(ctx context.Context, fn func(tx *instance) error) error {
	tx, err := i.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
