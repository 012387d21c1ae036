package care

import (
	"sort"
	"strings"
	"time"

	"plant-care-api/internal/domain/plants"
)

// actionRank implementa el orden fijo water, feed, repot, prune.
var actionRank = func() map[plants.CareAction]int {
	m := make(map[plants.CareAction]int, len(plants.ActionOrder))
	for i, a := range plants.ActionOrder {
		m[a] = i
	}
	return m
}()

// AggregateOptions ajusta la derivación sin cambiar su semántica base.
type AggregateOptions struct {
	// Completions filtra pares (planta, acción) completados localmente y aún
	// no confirmados por el registro. nil = sin filtro.
	Completions *Completions

	// Dropped se invoca por cada registro descartado por no tener ID.
	// El descarte es silencioso por contrato; esto es solo un side-channel
	// de calidad de datos para el caller. nil = sin reporte.
	Dropped func(p plants.Plant)
}

// Aggregate deriva una tarea por planta por acción aplicable y las agrupa
// por día calendario de vencimiento (zona de now).
//
// Garantías:
//   - determinista: mismo input => mismos buckets y mismo orden interno
//     (plantID asc, luego orden fijo de acción);
//   - total: un registro malformado se salta, nunca tumba el lote;
//   - pura respecto del input: segura de re-ejecutar en cada refresh.
func Aggregate(items []plants.Plant, now time.Time, opts AggregateOptions) map[string][]Task {
	out := make(map[string][]Task)

	for _, p := range items {
		if strings.TrimSpace(p.ID) == "" {
			if opts.Dropped != nil {
				opts.Dropped(p)
			}
			continue
		}

		for _, t := range derive(p, now, opts.Completions) {
			key := DayKey(t.DueDate, now.Location())
			out[key] = append(out[key], t)
		}
	}

	for key := range out {
		bucket := out[key]
		sort.Slice(bucket, func(i, j int) bool {
			if bucket[i].PlantID != bucket[j].PlantID {
				return bucket[i].PlantID < bucket[j].PlantID
			}
			return actionRank[bucket[i].Action] < actionRank[bucket[j].Action]
		})
	}

	return out
}

// derive construye las tareas de una sola planta.
func derive(p plants.Plant, now time.Time, comp *Completions) []Task {
	plan := Normalize(p)

	var tasks []Task
	for _, a := range plants.ActionOrder {
		iv := plan.For(a)
		if iv == nil {
			// Acción sin programar: excluida del todo, no es un error.
			continue
		}
		if comp != nil && comp.suppressed(p, a) {
			continue
		}

		st := ComputeStatus(p.LastDone(a), iv, now)
		if st.State == StateNone || st.DueDate == nil {
			continue
		}

		tasks = append(tasks, Task{
			ID:           taskID(p.ID, a),
			PlantID:      p.ID,
			PlantName:    p.DisplayName(),
			Action:       a,
			DueDate:      *st.DueDate,
			RelativeDays: st.RelativeDays,
			State:        st.State,
			Overdue:      st.State == StateOverdue,
		})
	}
	return tasks
}
