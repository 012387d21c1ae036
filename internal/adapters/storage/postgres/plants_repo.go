package postgres

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
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24)
	`, scanArgsForWrite(p)...)
	return err
}

func (r *PlantsRepo) Update(ctx context.Context, p plants.Plant) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE plants
		SET
			nickname = $2,
			common_name = $3,
			scientific_name = $4,
			care_light = $5,
			care_humidity = $6,
			care_temp_min_c = $7,
			care_temp_max_c = $8,
			care_pets = $9,
			care_difficulty = $10,
			water_amount = $11,
			water_unit = $12,
			feed_amount = $13,
			feed_unit = $14,
			repot_amount = $15,
			repot_unit = $16,
			water_days = $17,
			avg_watering = $18,
			last_watered = $19,
			last_fed = $20,
			last_repotted = $21,
			updated_at = $22
		WHERE id = $1
	`,
		p.ID,
		p.Nickname,
		p.CommonName,
		p.ScientificName,
		p.Care.Light,
		p.Care.Humidity,
		toNullFloat(p.Care.TempMinC),
		toNullFloat(p.Care.TempMaxC),
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
		toNullTime(p.LastWatered),
		toNullTime(p.LastFed),
		toNullTime(p.LastRepotted),
		p.UpdatedAt,
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
		WHERE id = $1
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
		WHERE owner_user_id = $1
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
	res, err := r.db.ExecContext(ctx, `DELETE FROM plants WHERE id = $1`, id)
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
		p                plants.Plant
		tempMin, tempMax sql.NullFloat64
		wAmt, fAmt, rAmt sql.NullFloat64
		wUnit, fUnit, rU sql.NullString
		lw, lf, lr       sql.NullTime
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
		&rU,
		&p.WaterDays,
		&p.AvgWatering,
		&lw,
		&lf,
		&lr,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return plants.Plant{}, err
	}

	p.Care.TempMinC = fromNullFloat(tempMin)
	p.Care.TempMaxC = fromNullFloat(tempMax)
	p.Schedule.Water = toEntry(wAmt, wUnit)
	p.Schedule.Feed = toEntry(fAmt, fUnit)
	p.Schedule.Repot = toEntry(rAmt, rU)
	p.LastWatered = fromNullTime(lw)
	p.LastFed = fromNullTime(lf)
	p.LastRepotted = fromNullTime(lr)

	return p, nil
}

func scanArgsForWrite(p plants.Plant) []any {
	return []any{
		p.ID,
		p.OwnerUserID,
		p.Nickname,
		p.CommonName,
		p.ScientificName,
		p.Care.Light,
		p.Care.Humidity,
		toNullFloat(p.Care.TempMinC),
		toNullFloat(p.Care.TempMaxC),
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
		toNullTime(p.LastWatered),
		toNullTime(p.LastFed),
		toNullTime(p.LastRepotted),
		p.CreatedAt,
		p.UpdatedAt,
	}
}

// El schedule anidado va aplanado en columnas amount/unit por acción;
// amount NULL significa acción sin programar.
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

func toNullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func fromNullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func toNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func fromNullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
