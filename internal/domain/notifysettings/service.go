package notifysettings

import (
	"context"
	"errors"
	"strings"
	"time"

	"plant-care-api/internal/ports/push"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrNoDevice     = errors.New("no push token registered")
)

type Service struct {
	repo   Repository
	sender push.Sender // puede ser nil (push deshabilitado en el deploy)
	now    func() time.Time
}

func NewService(repo Repository, sender push.Sender) *Service {
	return &Service{
		repo:   repo,
		sender: sender,
		now:    time.Now,
	}
}

// Get devuelve las preferencias guardadas o los defaults si no hay registro.
// Un usuario nuevo nunca recibe error por "no configurado".
func (s *Service) Get(ctx context.Context, userID string) (Settings, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Settings{}, ErrInvalidInput
	}

	stored, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Defaults(userID), nil
		}
		return Settings{}, err
	}
	return stored, nil
}

type UpsertInput struct {
	PushEnabled  bool
	ReminderHour int

	WaterReminders bool
	FeedReminders  bool
	RepotReminders bool
	PruneReminders bool

	ExpoPushToken string
}

// Upsert reemplaza las preferencias completas del usuario (PUT, no PATCH:
// el cliente siempre manda la pantalla entera de settings).
func (s *Service) Upsert(ctx context.Context, userID string, in UpsertInput) (Settings, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Settings{}, ErrInvalidInput
	}
	if in.ReminderHour < 0 || in.ReminderHour > 23 {
		return Settings{}, ErrInvalidInput
	}

	now := s.now()

	stored, err := s.repo.GetByUser(ctx, userID)
	isNew := errors.Is(err, ErrNotFound)
	if err != nil && !isNew {
		return Settings{}, err
	}

	if isNew {
		stored = Settings{
			ID:        uuid.NewString(),
			UserID:    userID,
			CreatedAt: now,
		}
	}

	stored.PushEnabled = in.PushEnabled
	stored.ReminderHour = in.ReminderHour
	stored.WaterReminders = in.WaterReminders
	stored.FeedReminders = in.FeedReminders
	stored.RepotReminders = in.RepotReminders
	stored.PruneReminders = in.PruneReminders
	stored.ExpoPushToken = strings.TrimSpace(in.ExpoPushToken)
	stored.UpdatedAt = now

	if isNew {
		if err := s.repo.Create(ctx, stored); err != nil {
			return Settings{}, err
		}
		return stored, nil
	}

	if err := s.repo.Update(ctx, stored); err != nil {
		return Settings{}, err
	}
	return stored, nil
}

// SendTest manda una notificación de prueba al dispositivo registrado.
func (s *Service) SendTest(ctx context.Context, userID string) error {
	if s.sender == nil {
		return ErrNoDevice
	}

	settings, err := s.Get(ctx, userID)
	if err != nil {
		return err
	}
	if !settings.PushEnabled || settings.ExpoPushToken == "" {
		return ErrNoDevice
	}

	return s.sender.Send(ctx, settings.ExpoPushToken, push.Message{
		Title: "Plant care reminders",
		Body:  "Test notification: reminders are working.",
		Data:  map[string]string{"kind": "test"},
	})
}
