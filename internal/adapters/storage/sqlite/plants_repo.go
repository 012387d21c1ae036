package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"plant-care-api/internal/domain/plants"
)

type PlantsRepo struct {
	db *sql.DB
}

func NewPlantsRepo(db *sql.DB) *PlantsRepo {
	return &PlantsRepo{db: db}
}

const plantColumns = `
	id, owner_user_id,
	nickname, common_name, scientific_name,
	care_light, care_humidity, care_temp_min_c, care_temp_max_c, care_pets, care_difficulty,
	water_amount, water_unit, feed_amount, feed_unit, repot_amount, repot_unit,
	water_days, avg_watering,
	last_watered, last_fed, last_repotted,
	created_at, updated_at`

func (r *PlantsRepo) Create(ctx context.Context, p plants.Plant) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO plants (`+plantColumns+`
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)
	`,
		p.ID,
		p.OwnerUserID,
		p.Nickname,
		p.CommonName,
		p.ScientificName,
		p.Care.Light,
		p.Care.Humidity,
		nullFloat(p.Care.TempMinC),
		nullFloat(p.Care.TempMaxC),
		p.Care.Pets,
		p.Care.Difficulty,
		entryAmount(p.Schedule.Water),
		entryUnit(p.Schedule.Water),
		entryAmount(p.Schedule.Feed),
		entryUnit(p.Schedule.Feed),
		entryAmount(p.Schedule.Repot),
		entryUnit(p.Schedule.Repot),
		p.WaterDays,
		p.AvgWatering,
		formatTimePtr(p.LastWatered),
		formatTimePtr(p.LastFed),
		formatTimePtr(p.LastRepotted),
		formatTime(p.CreatedAt),
		formatTime(p.UpdatedAt),
	)
	return err
}

func (r *PlantsRepo) Update(ctx context.Context, p plants.Plant) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE plants
		SET
			nickname = ?, common_name = ?, scientific_name = ?,
			care_light = ?, care_humidity = ?, care_temp_min_c = ?, care_temp_max_c = ?,
			care_pets = ?, care_difficulty = ?,
			water_amount = ?, water_unit = ?,
			feed_amount = ?, feed_unit = ?,
			repot_amount = ?, repot_unit = ?,
			water_days = ?, avg_watering = ?,
			last_watered = ?, last_fed = ?, last_repotted = ?,
			updated_at = ?
		WHERE id = ?
	`,
		p.Nickname,
		p.CommonName,
		p.ScientificName,
		p.Care.Light,
		p.Care.Humidity,
		nullFloat(p.Care.TempMinC),
		nullFloat(p.Care.TempMaxC),
		p.Care.Pets,
		p.Care.Difficulty,
		entryAmount(p.Schedule.Water),
		entryUnit(p.Schedule.Water),
		entryAmount(p.Schedule.Feed),
		entryUnit(p.Schedule.Feed),
		entryAmount(p.Schedule.Repot),
		entryUnit(p.Schedule.Repot),
		p.WaterDays,
		p.AvgWatering,
		formatTimePtr(p.LastWatered),
		formatTimePtr(p.LastFed),
		formatTimePtr(p.LastRepotted),
		formatTime(p.UpdatedAt),
		p.ID,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return plants.ErrNotFound
	}
	return nil
}

func (r *PlantsRepo) GetByID(ctx context.Context, id string) (plants.Plant, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return plants.Plant{}, plants.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+plantColumns+`
		FROM plants
		WHERE id = ?
	`, id)

	p, err := scanPlant(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return plants.Plant{}, plants.ErrNotFound
		}
		return plants.Plant{}, err
	}
	return p, nil
}

func (r *PlantsRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]plants.Plant, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+plantColumns+`
		FROM plants
		WHERE owner_user_id = ?
		ORDER BY created_at ASC
	`, ownerUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]plants.Plant, 0)
	for rows.Next() {
		p, err := scanPlant(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

func (r *PlantsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM plants WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return plants.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlant(row rowScanner) (plants.Plant, error) {
	var (
		p                    plants.Plant
		tempMin, tempMax     sql.NullFloat64
		wAmt, fAmt, rAmt     sql.NullFloat64
		wUnit, fUnit, rUnit  sql.NullString
		lw, lf, lr           sql.NullString
		createdAt, updatedAt string
	)

	if err := row.Scan(
		&p.ID,
		&p.OwnerUserID,
		&p.Nickname,
		&p.CommonName,
		&p.ScientificName,
		&p.Care.Light,
		&p.Care.Humidity,
		&tempMin,
		&tempMax,
		&p.Care.Pets,
		&p.Care.Difficulty,
		&wAmt,
		&wUnit,
		&fAmt,
		&fUnit,
		&rAmt,
		&rUnit,
		&p.WaterDays,
		&p.AvgWatering,
		&lw,
		&lf,
		&lr,
		&createdAt,
		&updatedAt,
	); err != nil {
		return plants.Plant{}, err
	}

	if tempMin.Valid {
		v := tempMin.Float64
		p.Care.TempMinC = &v
	}
	if tempMax.Valid {
		v := tempMax.Float64
		p.Care.TempMaxC = &v
	}
	p.Schedule.Water = toEntry(wAmt, wUnit)
	p.Schedule.Feed = toEntry(fAmt, fUnit)
	p.Schedule.Repot = toEntry(rAmt, rUnit)
	p.LastWatered = parseTimePtr(lw)
	p.LastFed = parseTimePtr(lf)
	p.LastRepotted = parseTimePtr(lr)
	p.CreatedAt = parseTime(createdAt)
	p.UpdatedAt = parseTime(updatedAt)

	return p, nil
}

func entryAmount(e *plants.ScheduleEntry) sql.NullFloat64 {
	if e == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: e.Amount, Valid: true}
}

func entryUnit(e *plants.ScheduleEntry) sql.NullString {
	if e == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: e.Unit, Valid: true}
}

func toEntry(amount sql.NullFloat64, unit sql.NullString) *plants.ScheduleEntry {
	if !amount.Valid {
		return nil
	}
	return &plants.ScheduleEntry{Amount: amount.Float64, Unit: unit.String}
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

// Los timestamps se guardan como TEXT RFC3339 en UTC.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func formatTimePtr(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: formatTime(*t), Valid: true}
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func parseTimePtr(s sql.NullString) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t := parseTime(s.String)
	return &t
}
