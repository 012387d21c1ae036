package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"plant-care-api/internal/domain/plants"
)

type plantRepo struct {
	mu   sync.RWMutex
	byID map[string]plants.Plant
}

func NewPlantRepo() plants.Repository {
	return &plantRepo{
		byID: make(map[string]plants.Plant),
	}
}

func (r *plantRepo) Create(ctx context.Context, p plants.Plant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("plant id required")
	}
	if _, exists := r.byID[p.ID]; exists {
		return errors.New("plant already exists")
	}
	r.byID[p.ID] = p
	return nil
}

func (r *plantRepo) Update(ctx context.Context, p plants.Plant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("plant id required")
	}
	if _, exists := r.byID[p.ID]; !exists {
		return plants.ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *plantRepo) GetByID(ctx context.Context, id string) (plants.Plant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return plants.Plant{}, plants.ErrNotFound
	}
	return p, nil
}

func (r *plantRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]plants.Plant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]plants.Plant, 0)
	for _, p := range r.byID {
		if p.OwnerUserID == ownerUserID {
			out = append(out, p)
		}
	}

	// Orden estable por created_at asc (solo para consistencia en dev)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}

func (r *plantRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return plants.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
