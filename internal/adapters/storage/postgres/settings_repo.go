package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"plant-care-api/internal/domain/notifysettings"
)

type SettingsRepo struct {
	db *sql.DB
}

func NewSettingsRepo(db *sql.DB) *SettingsRepo {
	return &SettingsRepo{db: db}
}

func (r *SettingsRepo) Create(ctx context.Context, s notifysettings.Settings) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO notification_settings (
			id, user_id,
			push_enabled, reminder_hour,
			water_reminders, feed_reminders, repot_reminders, prune_reminders,
			expo_push_token,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		s.ID,
		s.UserID,
		s.PushEnabled,
		s.ReminderHour,
		s.WaterReminders,
		s.FeedReminders,
		s.RepotReminders,
		s.PruneReminders,
		s.ExpoPushToken,
		s.CreatedAt,
		s.UpdatedAt,
	)
	return err
}

func (r *SettingsRepo) Update(ctx context.Context, s notifysettings.Settings) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE notification_settings
		SET
			push_enabled = $2,
			reminder_hour = $3,
			water_reminders = $4,
			feed_reminders = $5,
			repot_reminders = $6,
			prune_reminders = $7,
			expo_push_token = $8,
			updated_at = $9
		WHERE user_id = $1
	`,
		s.UserID,
		s.PushEnabled,
		s.ReminderHour,
		s.WaterReminders,
		s.FeedReminders,
		s.RepotReminders,
		s.PruneReminders,
		s.ExpoPushToken,
		s.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return notifysettings.ErrNotFound
	}
	return nil
}

func (r *SettingsRepo) GetByUser(ctx context.Context, userID string) (notifysettings.Settings, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return notifysettings.Settings{}, notifysettings.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, user_id,
			push_enabled, reminder_hour,
			water_reminders, feed_reminders, repot_reminders, prune_reminders,
			expo_push_token,
			created_at, updated_at
		FROM notification_settings
		WHERE user_id = $1
	`, userID)

	var s notifysettings.Settings
	if err := row.Scan(
		&s.ID,
		&s.UserID,
		&s.PushEnabled,
		&s.ReminderHour,
		&s.WaterReminders,
		&s.FeedReminders,
		&s.RepotReminders,
		&s.PruneReminders,
		&s.ExpoPushToken,
		&s.CreatedAt,
		&s.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return notifysettings.Settings{}, notifysettings.ErrNotFound
		}
		return notifysettings.Settings{}, err
	}

	return s, nil
}
