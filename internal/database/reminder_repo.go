package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/slack-reminder-bot/internal/domain"
	"github.com/diegoclair/slack-reminder-bot/internal/domain/entity"
)

type reminderRepo struct {
	db dbConn
}

func newReminderRepo(db dbConn) *reminderRepo {
	return &reminderRepo{db: db}
}

func (r *reminderRepo) Insert(ctx context.Context, position int, reminder *entity.Reminder) error {
	query := `
		INSERT INTO reminders (id, position, user_id, channel_id, fire_time, message, repeat_interval)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	var repeat sql.NullInt64
	if reminder.RepeatInterval != nil {
		repeat = sql.NullInt64{Int64: int64(*reminder.RepeatInterval), Valid: true}
	}

	_, err := r.db.ExecContext(ctx, query,
		reminder.ID,
		position,
		reminder.UserID,
		reminder.ChannelID,
		reminder.FireTime.UTC().Format(domain.TimeLayout),
		reminder.Message,
		repeat,
	)
	if err != nil {
		return fmt.Errorf("failed to insert reminder %d: %w", reminder.ID, err)
	}

	return nil
}

func (r *reminderRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM reminders`); err != nil {
		return fmt.Errorf("failed to delete reminders: %w", err)
	}
	return nil
}

func (r *reminderRepo) List(ctx context.Context) ([]*entity.Reminder, error) {
	query := `
		SELECT id, user_id, channel_id, fire_time, message, repeat_interval
		FROM reminders
		ORDER BY position ASC, id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get reminders: %w", err)
	}
	defer rows.Close()

	var reminders []*entity.Reminder
	for rows.Next() {
		var (
			reminder = &entity.Reminder{}
			fireTime string
			repeat   sql.NullInt64
		)

		err := rows.Scan(
			&reminder.ID,
			&reminder.UserID,
			&reminder.ChannelID,
			&fireTime,
			&reminder.Message,
			&repeat,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reminder: %w", err)
		}

		reminder.FireTime, err = time.ParseInLocation(domain.TimeLayout, fireTime, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("failed to parse fire time of reminder %d: %w", reminder.ID, err)
		}

		if repeat.Valid {
			reminder.RepeatInterval = entity.IntPtr(int(repeat.Int64))
		}

		reminders = append(reminders, reminder)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reminders: %w", err)
	}

	return reminders, nil
}
