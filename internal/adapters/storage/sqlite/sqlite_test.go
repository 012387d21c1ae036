package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"plant-care-api/internal/domain/notifysettings"
	"plant-care-api/internal/domain/plants"
)

func openTestDB(t *testing.T) *PlantsRepo {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "plants.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return NewPlantsRepo(db)
}

func TestPlantsRepo_RoundTrip(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	lastWatered := now.AddDate(0, 0, -2)
	tempMin := 12.5

	p := plants.Plant{
		ID:             "p1",
		OwnerUserID:    "u1",
		Nickname:       "Moni",
		CommonName:     "Monstera",
		ScientificName: "Monstera deliciosa",
		Care: plants.CareInfo{
			Light:      "bright-indirect",
			Humidity:   "medium",
			TempMinC:   &tempMin,
			Pets:       "toxic",
			Difficulty: "easy",
		},
		Schedule: plants.Schedule{
			Water: &plants.ScheduleEntry{Amount: 7, Unit: "day"},
			Feed:  &plants.ScheduleEntry{Amount: 30, Unit: "day"},
		},
		WaterDays:   14, // legacy conservado junto al schedule
		LastWatered: &lastWatered,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	got, err := repo.GetByID(ctx, "p1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.Nickname != "Moni" || got.OwnerUserID != "u1" {
		t.Fatalf("unexpected plant: %+v", got)
	}
	if got.Schedule.Water == nil || got.Schedule.Water.Amount != 7 || got.Schedule.Water.Unit != "day" {
		t.Fatalf("water entry not preserved: %+v", got.Schedule.Water)
	}
	if got.Schedule.Repot != nil {
		t.Fatalf("expected repot unscheduled, got %+v", got.Schedule.Repot)
	}
	if got.WaterDays != 14 {
		t.Fatalf("legacy water_days not preserved: %d", got.WaterDays)
	}
	if got.Care.TempMinC == nil || *got.Care.TempMinC != 12.5 || got.Care.TempMaxC != nil {
		t.Fatalf("care temps not preserved: %+v", got.Care)
	}
	if got.LastWatered == nil || !got.LastWatered.Equal(lastWatered) {
		t.Fatalf("last_watered not preserved: %v", got.LastWatered)
	}
	if got.LastFed != nil {
		t.Fatalf("expected last_fed nil, got %v", got.LastFed)
	}
	if !got.CreatedAt.Equal(now) {
		t.Fatalf("created_at not preserved: %v", got.CreatedAt)
	}
}

func TestPlantsRepo_UpdateAndUnschedule(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	p := plants.Plant{
		ID: "p1", OwnerUserID: "u1", Nickname: "Fern",
		Schedule:  plants.Schedule{Feed: &plants.ScheduleEntry{Amount: 30, Unit: "day"}},
		CreatedAt: now, UpdatedAt: now,
	}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	// Desprogramar feed y registrar un riego
	watered := now.Add(time.Hour)
	p.Schedule.Feed = nil
	p.LastWatered = &watered
	p.UpdatedAt = now.Add(time.Hour)
	if err := repo.Update(ctx, p); err != nil {
		t.Fatalf("Update error: %v", err)
	}

	got, err := repo.GetByID(ctx, "p1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.Schedule.Feed != nil {
		t.Fatalf("expected feed cleared, got %+v", got.Schedule.Feed)
	}
	if got.LastWatered == nil || !got.LastWatered.Equal(watered) {
		t.Fatalf("last_watered not persisted: %v", got.LastWatered)
	}

	// Update de un id inexistente => ErrNotFound del dominio
	missing := p
	missing.ID = "nope"
	if err := repo.Update(ctx, missing); !errors.Is(err, plants.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPlantsRepo_ListByOwnerOrdered(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"b", "a", "c"} {
		p := plants.Plant{
			ID: id, OwnerUserID: "u1", Nickname: id,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
			UpdatedAt: base,
		}
		if err := repo.Create(ctx, p); err != nil {
			t.Fatalf("Create %s error: %v", id, err)
		}
	}
	// De otro usuario
	if err := repo.Create(ctx, plants.Plant{ID: "z", OwnerUserID: "u2", CreatedAt: base, UpdatedAt: base}); err != nil {
		t.Fatalf("Create z error: %v", err)
	}

	out, err := repo.ListByOwner(ctx, "u1")
	if err != nil {
		t.Fatalf("ListByOwner error: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 plants, got %d", len(out))
	}
	// Orden por created_at ascendente, no por id
	if out[0].ID != "b" || out[1].ID != "a" || out[2].ID != "c" {
		t.Fatalf("unexpected order: %s %s %s", out[0].ID, out[1].ID, out[2].ID)
	}
}

func TestPlantsRepo_Delete(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	if err := repo.Create(ctx, plants.Plant{ID: "p1", OwnerUserID: "u1", CreatedAt: now, UpdatedAt: now}); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if err := repo.Delete(ctx, "p1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := repo.GetByID(ctx, "p1"); !errors.Is(err, plants.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := repo.Delete(ctx, "p1"); !errors.Is(err, plants.ErrNotFound) {
		t.Fatalf("expected ErrNotFound deleting twice, got %v", err)
	}
}

func TestSettingsRepo_RoundTrip(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "settings.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := NewSettingsRepo(db)
	ctx := context.Background()

	if _, err := repo.GetByUser(ctx, "u1"); !errors.Is(err, notifysettings.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for new user, got %v", err)
	}

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	s := notifysettings.Settings{
		ID: "s1", UserID: "u1",
		PushEnabled: true, ReminderHour: 20,
		WaterReminders: true, PruneReminders: true,
		ExpoPushToken: "ExponentPushToken[x]",
		CreatedAt:     now, UpdatedAt: now,
	}
	if err := repo.Create(ctx, s); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	got, err := repo.GetByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("GetByUser error: %v", err)
	}
	if got.ReminderHour != 20 || !got.WaterReminders || got.FeedReminders {
		t.Fatalf("unexpected settings: %+v", got)
	}
	if got.ExpoPushToken != "ExponentPushToken[x]" {
		t.Fatalf("token not preserved: %q", got.ExpoPushToken)
	}

	s.ReminderHour = 8
	s.UpdatedAt = now.Add(time.Minute)
	if err := repo.Update(ctx, s); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	got, _ = repo.GetByUser(ctx, "u1")
	if got.ReminderHour != 8 || !got.UpdatedAt.Equal(now.Add(time.Minute)) {
		t.Fatalf("update not persisted: %+v", got)
	}

	s.UserID = "ghost"
	if err := repo.Update(ctx, s); !errors.Is(err, notifysettings.ErrNotFound) {
		t.Fatalf("expected ErrNotFound updating missing user, got %v", err)
	}
}
