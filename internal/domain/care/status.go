package care

import (
	"math"
	"time"
)

// State es el estado relativo de una acción de cuidado.
type State string

const (
	StateNone     State = "none"
	StateOverdue  State = "overdue"
	StateDueToday State = "due-today"
	StateUpcoming State = "upcoming"
)

// Status es el resultado de la derivación de vencimiento para una acción.
type Status struct {
	DueDate      *time.Time
	RelativeDays int
	State        State
}

// ComputeStatus deriva la próxima fecha de una acción a partir del último
// registro y el intervalo efectivo.
//
//   - interval nil => StateNone (acción no aplicable, sin fecha).
//   - lastDone nil => due = now. Una planta sin historial se trata como
//     "vence hoy". Comportamiento heredado del backend original; ver DESIGN.md.
//   - relativeDays = ceil((due - now) / 24h); <0 overdue, ==0 hoy, >0 próxima.
//
// Nunca devuelve error ni entra en pánico: la derivación no puede bloquear
// el render de una agenda completa por un registro raro.
func ComputeStatus(lastDone *time.Time, interval *Interval, now time.Time) Status {
	if interval == nil || interval.AmountDays <= 0 {
		return Status{State: StateNone}
	}

	var due time.Time
	if lastDone == nil || lastDone.IsZero() {
		due = now
	} else {
		due = lastDone.AddDate(0, 0, interval.AmountDays)
	}

	rel := relativeDays(due, now)

	st := StateUpcoming
	switch {
	case rel < 0:
		st = StateOverdue
	case rel == 0:
		st = StateDueToday
	}

	return Status{
		DueDate:      &due,
		RelativeDays: rel,
		State:        st,
	}
}

func relativeDays(due, now time.Time) int {
	return int(math.Ceil(due.Sub(now).Hours() / 24))
}
