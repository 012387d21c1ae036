package plants

import "time"

// CareAction identifica una acción de cuidado sobre una planta.
// @Enum water, feed, repot, prune
type CareAction string

const (
	ActionWater CareAction = "water"
	ActionFeed  CareAction = "feed"
	ActionRepot CareAction = "repot"
	ActionPrune CareAction = "prune"
)

// ActionOrder es el orden fijo de presentación (agenda, buckets por día).
var ActionOrder = []CareAction{ActionWater, ActionFeed, ActionRepot, ActionPrune}

// ParseAction valida el segmento de URL de una acción.
func ParseAction(s string) (CareAction, bool) {
	switch CareAction(s) {
	case ActionWater, ActionFeed, ActionRepot, ActionPrune:
		return CareAction(s), true
	default:
		return "", false
	}
}

// Difficulty define el nivel de cuidado requerido.
type Difficulty string

const (
	DifficultyEasy     Difficulty = "easy"
	DifficultyModerate Difficulty = "moderate"
	DifficultyHard     Difficulty = "hard"
)

// CareInfo son los metadatos de cuidado que vienen de la base botánica.
type CareInfo struct {
	Light    string
	Humidity string

	TempMinC *float64
	TempMaxC *float64

	// Pets: "safe" | "toxic" | "" (desconocido)
	Pets string

	Difficulty string
}

// ScheduleEntry es la frecuencia declarada de una acción.
// Unit: "day" es la única unidad reconocida; cualquier otra se trata como días.
type ScheduleEntry struct {
	Amount float64
	Unit   string
}

// Schedule agrupa las frecuencias por acción. nil = acción sin programar.
type Schedule struct {
	Water *ScheduleEntry
	Feed  *ScheduleEntry
	Repot *ScheduleEntry
}

// Plant representa el registro de una planta de un usuario.
// Conserva los campos legacy planos (water_days, avg_watering) porque
// clientes viejos siguen escribiéndolos; solo water tiene ese fallback.
type Plant struct {
	ID          string
	OwnerUserID string

	Nickname       string
	CommonName     string
	ScientificName string

	Care     CareInfo
	Schedule Schedule

	// Legacy: intervalo de riego plano (clientes pre-schedule).
	WaterDays   int
	AvgWatering float64

	LastWatered  *time.Time
	LastFed      *time.Time
	LastRepotted *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// LastDone devuelve el último registro de la acción, si existe.
// prune no tiene historial persistido (no hay campo last_pruned en el backend).
func (p Plant) LastDone(a CareAction) *time.Time {
	switch a {
	case ActionWater:
		return p.LastWatered
	case ActionFeed:
		return p.LastFed
	case ActionRepot:
		return p.LastRepotted
	default:
		return nil
	}
}

// SetLastDone registra la acción. Devuelve false si la acción no persiste historial.
func (p *Plant) SetLastDone(a CareAction, t time.Time) bool {
	switch a {
	case ActionWater:
		p.LastWatered = &t
	case ActionFeed:
		p.LastFed = &t
	case ActionRepot:
		p.LastRepotted = &t
	default:
		return false
	}
	return true
}

// DisplayName: nickname > common name > scientific name.
func (p Plant) DisplayName() string {
	if p.Nickname != "" {
		return p.Nickname
	}
	if p.CommonName != "" {
		return p.CommonName
	}
	return p.ScientificName
}
