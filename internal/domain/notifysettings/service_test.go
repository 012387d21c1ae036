package notifysettings

import (
	"context"
	"errors"
	"testing"
	"time"

	"plant-care-api/internal/ports/push"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byUser map[string]Settings
}

func newTestRepo() *testRepo {
	return &testRepo{byUser: map[string]Settings{}}
}

func (r *testRepo) Create(ctx context.Context, s Settings) error {
	if _, ok := r.byUser[s.UserID]; ok {
		return errors.New("repo: already exists")
	}
	r.byUser[s.UserID] = s
	return nil
}

func (r *testRepo) Update(ctx context.Context, s Settings) error {
	if _, ok := r.byUser[s.UserID]; !ok {
		return ErrNotFound
	}
	r.byUser[s.UserID] = s
	return nil
}

func (r *testRepo) GetByUser(ctx context.Context, userID string) (Settings, error) {
	s, ok := r.byUser[userID]
	if !ok {
		return Settings{}, ErrNotFound
	}
	return s, nil
}

type testSender struct {
	sent   []string // tokens
	msgs   []push.Message
	sendFn func() error
}

func (s *testSender) Send(ctx context.Context, token string, msg push.Message) error {
	s.sent = append(s.sent, token)
	s.msgs = append(s.msgs, msg)
	if s.sendFn != nil {
		return s.sendFn()
	}
	return nil
}

// -------------------------
// Tests
// -------------------------

func TestService_Get_NewUserGetsDefaults(t *testing.T) {
	svc := NewService(newTestRepo(), nil)

	s, err := svc.Get(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if !s.PushEnabled || s.ReminderHour != 9 {
		t.Fatalf("expected defaults push=on hour=9, got %+v", s)
	}
	if !s.WaterReminders || !s.FeedReminders || !s.RepotReminders || !s.PruneReminders {
		t.Fatalf("expected all reminders on by default, got %+v", s)
	}
}

func TestService_Upsert_ValidatesHour(t *testing.T) {
	svc := NewService(newTestRepo(), nil)

	for _, hour := range []int{-1, 24, 99} {
		_, err := svc.Upsert(context.Background(), "user-1", UpsertInput{ReminderHour: hour})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for hour %d, got %v", hour, err)
		}
	}
}

func TestService_Upsert_CreateThenUpdate(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil)

	now1 := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	now2 := now1.Add(5 * time.Minute)

	svc.now = func() time.Time { return now1 }
	s1, err := svc.Upsert(context.Background(), "user-1", UpsertInput{
		PushEnabled:    true,
		ReminderHour:   20,
		WaterReminders: true,
	})
	if err != nil {
		t.Fatalf("Upsert #1 error: %v", err)
	}
	if s1.ID == "" || s1.CreatedAt != now1 {
		t.Fatalf("expected new record with id and created_at, got %+v", s1)
	}

	// Segundo PUT reemplaza todo y conserva identidad
	svc.now = func() time.Time { return now2 }
	s2, err := svc.Upsert(context.Background(), "user-1", UpsertInput{
		PushEnabled:   false,
		ReminderHour:  8,
		ExpoPushToken: "  ExponentPushToken[x]  ",
	})
	if err != nil {
		t.Fatalf("Upsert #2 error: %v", err)
	}
	if s2.ID != s1.ID || s2.CreatedAt != now1 {
		t.Fatalf("expected same record identity, got %+v vs %+v", s2, s1)
	}
	if s2.UpdatedAt != now2 || s2.WaterReminders || s2.ExpoPushToken != "ExponentPushToken[x]" {
		t.Fatalf("expected full replace with trimmed token, got %+v", s2)
	}
}

func TestService_SendTest(t *testing.T) {
	repo := newTestRepo()
	sender := &testSender{}
	svc := NewService(repo, sender)

	// Sin registro (defaults sin token) => sin dispositivo
	if err := svc.SendTest(context.Background(), "user-1"); !errors.Is(err, ErrNoDevice) {
		t.Fatalf("expected ErrNoDevice without token, got %v", err)
	}

	// Con token pero push deshabilitado => sin dispositivo
	if _, err := svc.Upsert(context.Background(), "user-1", UpsertInput{
		PushEnabled:   false,
		ReminderHour:  9,
		ExpoPushToken: "ExponentPushToken[x]",
	}); err != nil {
		t.Fatalf("Upsert error: %v", err)
	}
	if err := svc.SendTest(context.Background(), "user-1"); !errors.Is(err, ErrNoDevice) {
		t.Fatalf("expected ErrNoDevice with push off, got %v", err)
	}

	// Habilitado y con token => envía
	if _, err := svc.Upsert(context.Background(), "user-1", UpsertInput{
		PushEnabled:   true,
		ReminderHour:  9,
		ExpoPushToken: "ExponentPushToken[x]",
	}); err != nil {
		t.Fatalf("Upsert error: %v", err)
	}
	if err := svc.SendTest(context.Background(), "user-1"); err != nil {
		t.Fatalf("SendTest error: %v", err)
	}
	if len(sender.sent) != 1 || sender.sent[0] != "ExponentPushToken[x]" {
		t.Fatalf("expected one push to token, got %v", sender.sent)
	}

	// El error del proveedor se propaga tal cual
	sender.sendFn = func() error { return errors.New("expo down") }
	if err := svc.SendTest(context.Background(), "user-1"); err == nil {
		t.Fatalf("expected provider error to propagate")
	}
}

func TestService_SendTest_NilSender(t *testing.T) {
	svc := NewService(newTestRepo(), nil)
	if err := svc.SendTest(context.Background(), "user-1"); !errors.Is(err, ErrNoDevice) {
		t.Fatalf("expected ErrNoDevice with nil sender, got %v", err)
	}
}
