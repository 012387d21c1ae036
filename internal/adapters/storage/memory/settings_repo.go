package memory

import (
	"context"
	"errors"
	"sync"

	"plant-care-api/internal/domain/notifysettings"
)

type settingsRepo struct {
	mu     sync.RWMutex
	byUser map[string]notifysettings.Settings
}

func NewSettingsRepo() notifysettings.Repository {
	return &settingsRepo{
		byUser: make(map[string]notifysettings.Settings),
	}
}

func (r *settingsRepo) Create(ctx context.Context, s notifysettings.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s.UserID == "" {
		return errors.New("settings user id required")
	}
	if _, exists := r.byUser[s.UserID]; exists {
		return errors.New("settings already exist")
	}
	r.byUser[s.UserID] = s
	return nil
}

func (r *settingsRepo) Update(ctx context.Context, s notifysettings.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s.UserID == "" {
		return errors.New("settings user id required")
	}
	if _, exists := r.byUser[s.UserID]; !exists {
		return notifysettings.ErrNotFound
	}
	r.byUser[s.UserID] = s
	return nil
}

func (r *settingsRepo) GetByUser(ctx context.Context, userID string) (notifysettings.Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byUser[userID]
	if !ok {
		return notifysettings.Settings{}, notifysettings.ErrNotFound
	}
	return s, nil
}
