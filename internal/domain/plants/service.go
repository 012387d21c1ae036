package plants

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Nickname       string
	CommonName     string
	ScientificName string

	Care     CareInfo
	Schedule Schedule

	WaterDays   int
	AvgWatering float64
}

func (s *Service) Create(ctx context.Context, ownerUserID string, in CreateInput) (Plant, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return Plant{}, ErrInvalidInput
	}
	// Al menos un nombre: nickname o common_name.
	if strings.TrimSpace(in.Nickname) == "" && strings.TrimSpace(in.CommonName) == "" {
		return Plant{}, ErrInvalidInput
	}
	if err := validateSchedule(in.Schedule); err != nil {
		return Plant{}, err
	}
	if in.WaterDays < 0 || in.AvgWatering < 0 {
		return Plant{}, ErrInvalidInput
	}

	now := s.now()
	p := Plant{
		ID:             uuid.NewString(),
		OwnerUserID:    ownerUserID,
		Nickname:       strings.TrimSpace(in.Nickname),
		CommonName:     strings.TrimSpace(in.CommonName),
		ScientificName: strings.TrimSpace(in.ScientificName),
		Care:           in.Care,
		Schedule:       in.Schedule,
		WaterDays:      in.WaterDays,
		AvgWatering:    in.AvgWatering,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Plant{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Plant, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]Plant, error) {
	return s.repo.ListByOwner(ctx, ownerUserID)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}

// PatchScheduleEntry distingue "no enviado" de "enviar null" en un PATCH.
// Present=true con Value=nil significa desprogramar la acción.
type PatchScheduleEntry struct {
	Present bool
	Value   *ScheduleEntry
}

type UpdateProfileInput struct {
	// Punteros para PATCH real: nil = no tocar.
	Nickname       *string
	CommonName     *string
	ScientificName *string

	Light      *string
	Humidity   *string
	TempMinC   *float64
	TempMaxC   *float64
	Pets       *string
	Difficulty *string

	Water PatchScheduleEntry
	Feed  PatchScheduleEntry
	Repot PatchScheduleEntry

	WaterDays   *int
	AvgWatering *float64
}

func (s *Service) UpdateProfile(ctx context.Context, plantID string, in UpdateProfileInput) (Plant, error) {
	plantID = strings.TrimSpace(plantID)
	if plantID == "" {
		return Plant{}, ErrInvalidInput
	}

	p, err := s.repo.GetByID(ctx, plantID)
	if err != nil {
		return Plant{}, err
	}

	if in.Nickname != nil {
		p.Nickname = strings.TrimSpace(*in.Nickname)
	}
	if in.CommonName != nil {
		p.CommonName = strings.TrimSpace(*in.CommonName)
	}
	if in.ScientificName != nil {
		p.ScientificName = strings.TrimSpace(*in.ScientificName)
	}
	if in.Light != nil {
		p.Care.Light = strings.TrimSpace(*in.Light)
	}
	if in.Humidity != nil {
		p.Care.Humidity = strings.TrimSpace(*in.Humidity)
	}
	if in.TempMinC != nil {
		v := *in.TempMinC
		p.Care.TempMinC = &v
	}
	if in.TempMaxC != nil {
		v := *in.TempMaxC
		p.Care.TempMaxC = &v
	}
	if in.Pets != nil {
		p.Care.Pets = strings.TrimSpace(*in.Pets)
	}
	if in.Difficulty != nil {
		p.Care.Difficulty = strings.TrimSpace(*in.Difficulty)
	}

	if in.Water.Present {
		p.Schedule.Water = in.Water.Value
	}
	if in.Feed.Present {
		p.Schedule.Feed = in.Feed.Value
	}
	if in.Repot.Present {
		p.Schedule.Repot = in.Repot.Value
	}

	if in.WaterDays != nil {
		if *in.WaterDays < 0 {
			return Plant{}, ErrInvalidInput
		}
		p.WaterDays = *in.WaterDays
	}
	if in.AvgWatering != nil {
		if *in.AvgWatering < 0 {
			return Plant{}, ErrInvalidInput
		}
		p.AvgWatering = *in.AvgWatering
	}

	// Quedarse sin ningún nombre sí es inválido.
	if p.Nickname == "" && p.CommonName == "" && p.ScientificName == "" {
		return Plant{}, ErrInvalidInput
	}
	if err := validateSchedule(p.Schedule); err != nil {
		return Plant{}, err
	}

	p.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, p); err != nil {
		return Plant{}, err
	}
	return p, nil
}

// CompleteCare registra "acción hecha": actualiza last_<action> y devuelve
// la planta ya actualizada. La derivación de tareas se re-ejecuta a partir
// de este registro; las tareas nunca se persisten por sí mismas.
func (s *Service) CompleteCare(ctx context.Context, plantID string, a CareAction, at time.Time) (Plant, error) {
	plantID = strings.TrimSpace(plantID)
	if plantID == "" {
		return Plant{}, ErrInvalidInput
	}

	p, err := s.repo.GetByID(ctx, plantID)
	if err != nil {
		return Plant{}, err
	}

	if at.IsZero() {
		at = s.now()
	}
	if !p.SetLastDone(a, at) {
		// prune (y acciones desconocidas) no tienen historial persistido.
		return Plant{}, ErrInvalidInput
	}

	p.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, p); err != nil {
		return Plant{}, err
	}
	return p, nil
}

func validateSchedule(sc Schedule) error {
	for _, e := range []*ScheduleEntry{sc.Water, sc.Feed, sc.Repot} {
		if e == nil {
			continue
		}
		if e.Amount <= 0 {
			return ErrInvalidInput
		}
	}
	return nil
}
