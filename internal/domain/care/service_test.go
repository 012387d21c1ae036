package care

import (
	"context"
	"errors"
	"testing"
	"time"

	"plant-care-api/internal/domain/plants"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testPlantsRepo struct {
	byID map[string]plants.Plant
}

func newTestPlantsRepo() *testPlantsRepo {
	return &testPlantsRepo{byID: map[string]plants.Plant{}}
}

func (r *testPlantsRepo) Create(ctx context.Context, p plants.Plant) error {
	r.byID[p.ID] = p
	return nil
}

func (r *testPlantsRepo) Update(ctx context.Context, p plants.Plant) error {
	if _, ok := r.byID[p.ID]; !ok {
		return plants.ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testPlantsRepo) GetByID(ctx context.Context, id string) (plants.Plant, error) {
	p, ok := r.byID[id]
	if !ok {
		return plants.Plant{}, plants.ErrNotFound
	}
	return p, nil
}

func (r *testPlantsRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]plants.Plant, error) {
	out := make([]plants.Plant, 0)
	for _, p := range r.byID {
		if p.OwnerUserID == ownerUserID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *testPlantsRepo) Delete(ctx context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

func newTestService(repo *testPlantsRepo, now time.Time) *Service {
	svc := NewService(plants.NewService(repo), nil)
	svc.now = func() time.Time { return now }
	return svc
}

// -------------------------
// Tests
// -------------------------

func TestService_TasksDue_OrderedAndBounded(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	repo := newTestPlantsRepo()

	// a: vencida hace 2 días; b: vence hoy; c: próxima (excluida de "due")
	_ = repo.Create(context.Background(), plants.Plant{
		ID: "a", OwnerUserID: "u1", Nickname: "A",
		WaterDays: 3, LastWatered: timePtr(now.AddDate(0, 0, -5)),
	})
	_ = repo.Create(context.Background(), plants.Plant{
		ID: "b", OwnerUserID: "u1", Nickname: "B",
		WaterDays: 3, LastWatered: timePtr(now.AddDate(0, 0, -3)),
	})
	_ = repo.Create(context.Background(), plants.Plant{
		ID: "c", OwnerUserID: "u1", Nickname: "C",
		WaterDays: 3, LastWatered: timePtr(now),
	})
	// De otro usuario: nunca aparece
	_ = repo.Create(context.Background(), plants.Plant{
		ID: "z", OwnerUserID: "u2", Nickname: "Z", WaterDays: 1,
	})

	svc := newTestService(repo, now)

	tasks, err := svc.TasksDue(context.Background(), "u1")
	if err != nil {
		t.Fatalf("TasksDue error: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 due tasks, got %+v", tasks)
	}
	// Día ascendente: la vencida primero, la de hoy después
	if tasks[0].PlantID != "a" || tasks[0].State != StateOverdue {
		t.Fatalf("expected overdue first, got %+v", tasks[0])
	}
	if tasks[1].PlantID != "b" || tasks[1].State != StateDueToday {
		t.Fatalf("expected due-today second, got %+v", tasks[1])
	}
}

func TestService_Calendar_InclusiveRange(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	repo := newTestPlantsRepo()

	// Vencimientos: hoy, +3 y +10
	_ = repo.Create(context.Background(), plants.Plant{
		ID: "a", OwnerUserID: "u1", WaterDays: 3, LastWatered: timePtr(now.AddDate(0, 0, -3)),
	})
	_ = repo.Create(context.Background(), plants.Plant{
		ID: "b", OwnerUserID: "u1", WaterDays: 3, LastWatered: timePtr(now),
	})
	_ = repo.Create(context.Background(), plants.Plant{
		ID: "c", OwnerUserID: "u1", WaterDays: 10, LastWatered: timePtr(now),
	})

	svc := newTestService(repo, now)

	// Sin límites: los tres buckets, ascendentes
	buckets, err := svc.Calendar(context.Background(), "u1", time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("Calendar error: %v", err)
	}
	if len(buckets) != 3 {
		t.Fatalf("expected 3 buckets, got %+v", buckets)
	}
	for i := 1; i < len(buckets); i++ {
		if buckets[i-1].Date >= buckets[i].Date {
			t.Fatalf("buckets not ascending: %+v", buckets)
		}
	}

	// [hoy, +3]: ambos extremos inclusivos; +10 queda fuera
	buckets, err = svc.Calendar(context.Background(), "u1", now, now.AddDate(0, 0, 3))
	if err != nil {
		t.Fatalf("Calendar error: %v", err)
	}
	if len(buckets) != 2 {
		t.Fatalf("expected 2 buckets in range, got %+v", buckets)
	}
	if buckets[0].Date != "2026-03-10" || buckets[1].Date != "2026-03-13" {
		t.Fatalf("unexpected bucket dates: %+v", buckets)
	}
}

func TestService_Complete_OwnershipAndSuppression(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	repo := newTestPlantsRepo()

	_ = repo.Create(context.Background(), plants.Plant{
		ID: "a", OwnerUserID: "u1", Nickname: "A",
		WaterDays: 3, LastWatered: timePtr(now.AddDate(0, 0, -5)),
	})

	svc := newTestService(repo, now)

	// Otro usuario: hacia afuera no distinguimos ownership de existencia
	if _, _, err := svc.Complete(context.Background(), "u2", "a", plants.ActionWater, now); !errors.Is(err, plants.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign plant, got %v", err)
	}

	p, st, err := svc.Complete(context.Background(), "u1", "a", plants.ActionWater, now)
	if err != nil {
		t.Fatalf("Complete error: %v", err)
	}
	if p.LastWatered == nil || !p.LastWatered.Equal(now) {
		t.Fatalf("expected last_watered updated, got %+v", p)
	}
	if st.State != StateUpcoming || st.RelativeDays != 3 {
		t.Fatalf("expected recomputed status upcoming in 3d, got %+v", st)
	}

	// La tarea sale de la lista del día
	tasks, err := svc.TasksDue(context.Background(), "u1")
	if err != nil {
		t.Fatalf("TasksDue error: %v", err)
	}
	if len(tasks) != 0 {
		t.Fatalf("expected no due tasks after completion, got %+v", tasks)
	}
}
