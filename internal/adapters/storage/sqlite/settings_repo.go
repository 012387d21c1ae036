package sqlite

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
		) VALUES (?,?,?,?,?,?,?,?,?,?,?)
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
		formatTime(s.CreatedAt),
		formatTime(s.UpdatedAt),
	)
	return err
}

func (r *SettingsRepo) Update(ctx context.Context, s notifysettings.Settings) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE notification_settings
		SET
			push_enabled = ?, reminder_hour = ?,
			water_reminders = ?, feed_reminders = ?, repot_reminders = ?, prune_reminders = ?,
			expo_push_token = ?, updated_at = ?
		WHERE user_id = ?
	`,
		s.PushEnabled,
		s.ReminderHour,
		s.WaterReminders,
		s.FeedReminders,
		s.RepotReminders,
		s.PruneReminders,
		s.ExpoPushToken,
		formatTime(s.UpdatedAt),
		s.UserID,
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
		WHERE user_id = ?
	`, userID)

	var (
		s                    notifysettings.Settings
		createdAt, updatedAt string
	)
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
		&createdAt,
		&updatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return notifysettings.Settings{}, notifysettings.ErrNotFound
		}
		return notifysettings.Settings{}, err
	}

	s.CreatedAt = parseTime(createdAt)
	s.UpdatedAt = parseTime(updatedAt)

	return s, nil
}
