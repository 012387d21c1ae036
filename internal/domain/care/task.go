package care

import (
	"time"

	"plant-care-api/internal/domain/plants"
)

// Task es el view-model efímero de una acción pendiente: se reconstruye en
// cada derivación a partir de los registros de plantas y nunca se persiste.
type Task struct {
	// ID compuesto plantID:acción; estable entre derivaciones.
	ID string

	PlantID   string
	PlantName string
	Action    plants.CareAction

	DueDate      time.Time
	RelativeDays int
	State        State
	Overdue      bool
}

func taskID(plantID string, a plants.CareAction) string {
	return plantID + ":" + string(a)
}
