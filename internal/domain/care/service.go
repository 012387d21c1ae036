package care

import (
	"context"
	"sort"
	"strings"
	"time"

	"plant-care-api/internal/domain/plants"
	"plant-care-api/internal/platform/logger"
)

// Service es la fachada de derivación: lista los registros del usuario y
// corre la derivación pura (Normalize + ComputeStatus + Aggregate) sobre
// ellos. No guarda tareas; el único estado propio es Completions.
type Service struct {
	plants *plants.Service
	comp   *Completions
	log    logger.Logger
	now    func() time.Time
}

func NewService(plantsSvc *plants.Service, log logger.Logger) *Service {
	return &Service{
		plants: plantsSvc,
		comp:   NewCompletions(),
		log:    log,
		now:    time.Now,
	}
}

func (s *Service) aggregate(ctx context.Context, ownerUserID string, now time.Time) (map[string][]Task, error) {
	items, err := s.plants.ListByOwner(ctx, ownerUserID)
	if err != nil {
		return nil, err
	}

	return Aggregate(items, now, AggregateOptions{
		Completions: s.comp,
		Dropped: func(p plants.Plant) {
			if s.log == nil {
				return
			}
			// Side-channel de calidad de datos; el descarte en sí es silencioso.
			s.log.Warn("plant record skipped: missing id", map[string]any{
				"owner_user_id": ownerUserID,
				"nickname":      p.Nickname,
			})
		},
	}), nil
}

// TasksDue devuelve las tareas vencidas o que vencen hoy, ordenadas por día
// ascendente y dentro del día por (plantID, acción).
func (s *Service) TasksDue(ctx context.Context, ownerUserID string) ([]Task, error) {
	now := s.now()
	buckets, err := s.aggregate(ctx, ownerUserID, now)
	if err != nil {
		return nil, err
	}

	today := DayKey(now, now.Location())

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		// Las claves son YYYY-MM-DD: comparables como string.
		if k <= today {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	out := make([]Task, 0)
	for _, k := range keys {
		out = append(out, buckets[k]...)
	}
	return out, nil
}

// DayBucket es un día del calendario con sus tareas.
type DayBucket struct {
	Date  string
	Tasks []Task
}

// Calendar devuelve los buckets por día dentro de [from, to] (ambos
// inclusive, fechas cero = sin límite), ordenados ascendentemente.
func (s *Service) Calendar(ctx context.Context, ownerUserID string, from, to time.Time) ([]DayBucket, error) {
	now := s.now()
	buckets, err := s.aggregate(ctx, ownerUserID, now)
	if err != nil {
		return nil, err
	}

	var fromKey, toKey string
	if !from.IsZero() {
		fromKey = DayKey(from, now.Location())
	}
	if !to.IsZero() {
		toKey = DayKey(to, now.Location())
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		if fromKey != "" && k < fromKey {
			continue
		}
		if toKey != "" && k > toKey {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]DayBucket, 0, len(keys))
	for _, k := range keys {
		out = append(out, DayBucket{Date: k, Tasks: buckets[k]})
	}
	return out, nil
}

// Complete marca una acción como hecha: actualiza last_<action> en el
// registro y deja la marca local para filtrar la tarea hasta que la
// siguiente derivación lea el registro actualizado.
func (s *Service) Complete(ctx context.Context, ownerUserID, plantID string, a plants.CareAction, at time.Time) (plants.Plant, Status, error) {
	plantID = strings.TrimSpace(plantID)
	if plantID == "" {
		return plants.Plant{}, Status{}, plants.ErrInvalidInput
	}

	p, err := s.plants.GetByID(ctx, plantID)
	if err != nil {
		return plants.Plant{}, Status{}, err
	}
	if p.OwnerUserID != ownerUserID {
		// No distinguimos ownership de existencia hacia afuera.
		return plants.Plant{}, Status{}, plants.ErrNotFound
	}

	if at.IsZero() {
		at = s.now()
	}

	updated, err := s.plants.CompleteCare(ctx, plantID, a, at)
	if err != nil {
		return plants.Plant{}, Status{}, err
	}

	s.comp.Mark(plantID, a, at)

	st := ComputeStatus(updated.LastDone(a), Normalize(updated).For(a), s.now())
	return updated, st, nil
}
