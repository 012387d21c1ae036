package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Open abre (o crea) la base SQLite y asegura el esquema.
// Pensado para deploys de un solo nodo; Postgres sigue siendo la opción
// para producción multi-instancia.
func Open(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." && path != ":memory:" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// modernc/sqlite: un solo writer evita SQLITE_BUSY bajo concurrencia.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("exec pragma %q: %w", p, err)
		}
	}

	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return db, nil
}

func ensureSchema(db *sql.DB) error {
	const ddl = `
	CREATE TABLE IF NOT EXISTS plants (
		id               TEXT PRIMARY KEY,
		owner_user_id    TEXT NOT NULL,
		nickname         TEXT NOT NULL DEFAULT '',
		common_name      TEXT NOT NULL DEFAULT '',
		scientific_name  TEXT NOT NULL DEFAULT '',
		care_light       TEXT NOT NULL DEFAULT '',
		care_humidity    TEXT NOT NULL DEFAULT '',
		care_temp_min_c  REAL,
		care_temp_max_c  REAL,
		care_pets        TEXT NOT NULL DEFAULT '',
		care_difficulty  TEXT NOT NULL DEFAULT '',
		water_amount     REAL,
		water_unit       TEXT,
		feed_amount      REAL,
		feed_unit        TEXT,
		repot_amount     REAL,
		repot_unit       TEXT,
		water_days       INTEGER NOT NULL DEFAULT 0,
		avg_watering     REAL NOT NULL DEFAULT 0,
		last_watered     TEXT,
		last_fed         TEXT,
		last_repotted    TEXT,
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_plants_owner ON plants(owner_user_id);

	CREATE TABLE IF NOT EXISTS notification_settings (
		id               TEXT PRIMARY KEY,
		user_id          TEXT NOT NULL UNIQUE,
		push_enabled     INTEGER NOT NULL DEFAULT 1,
		reminder_hour    INTEGER NOT NULL DEFAULT 9,
		water_reminders  INTEGER NOT NULL DEFAULT 1,
		feed_reminders   INTEGER NOT NULL DEFAULT 1,
		repot_reminders  INTEGER NOT NULL DEFAULT 1,
		prune_reminders  INTEGER NOT NULL DEFAULT 1,
		expo_push_token  TEXT NOT NULL DEFAULT '',
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL
	);
	`

	_, err := db.Exec(ddl)
	return err
}
