package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/slack-reminder-bot/internal/domain/entity"
)

type timezoneRepo struct {
	db dbConn
}

func newTimezoneRepo(db dbConn) *timezoneRepo {
	return &timezoneRepo{db: db}
}

func (r *timezoneRepo) Upsert(ctx context.Context, tz entity.UserTimezone) error {
	query := `
		INSERT INTO user_timezones (user_id, timezone, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(user_id) DO UPDATE SET
			timezone   = excluded.timezone,
			updated_at = excluded.updated_at
	`

	if _, err := r.db.ExecContext(ctx, query, tz.UserID, tz.Timezone); err != nil {
		return fmt.Errorf("failed to save timezone for user %s: %w", tz.UserID, err)
	}

	return nil
}

func (r *timezoneRepo) List(ctx context.Context) (map[string]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT user_id, timezone FROM user_timezones`)
	if err != nil {
		return nil, fmt.Errorf("failed to get timezones: %w", err)
	}
	defer rows.Close()

	timezones := make(map[string]string)
	for rows.Next() {
		var userID, tz string
		if err := rows.Scan(&userID, &tz); err != nil {
			return nil, fmt.Errorf("failed to scan timezone: %w", err)
		}
		timezones[userID] = tz
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate timezones: %w", err)
	}

	return timezones, nil
}
