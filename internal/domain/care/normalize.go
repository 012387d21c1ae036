package care

import (
	"math"

	"plant-care-api/internal/domain/plants"
)

// Interval es una frecuencia de cuidado normalizada a días enteros.
type Interval struct {
	AmountDays int
}

// Plan es el calendario canónico de una planta: una entrada por acción,
// nil cuando la acción no está programada.
type Plan struct {
	Water *Interval
	Feed  *Interval
	Repot *Interval
}

// For devuelve el intervalo efectivo de una acción (nil = sin programar).
func (pl Plan) For(a plants.CareAction) *Interval {
	switch a {
	case plants.ActionWater:
		return pl.Water
	case plants.ActionFeed:
		return pl.Feed
	case plants.ActionRepot:
		return pl.Repot
	default:
		return nil
	}
}

// Normalize reconcilia las dos formas en que los registros declaran frecuencia
// (schedule anidado vs campos planos legacy) en una sola representación.
//
// Precedencia para water: schedule.water.amount > water_days > avg_watering.
// feed/repot solo tienen schedule.<action>; NO tienen fallback plano. Esa
// asimetría viene del backend original y los clientes dependen de ella.
func Normalize(p plants.Plant) Plan {
	var pl Plan

	if iv := fromEntry(p.Schedule.Water); iv != nil {
		pl.Water = iv
	} else if p.WaterDays > 0 {
		pl.Water = &Interval{AmountDays: p.WaterDays}
	} else if p.AvgWatering > 0 {
		pl.Water = &Interval{AmountDays: int(math.Round(p.AvgWatering))}
	}

	pl.Feed = fromEntry(p.Schedule.Feed)
	pl.Repot = fromEntry(p.Schedule.Repot)

	return pl
}

// fromEntry convierte una entrada declarada a días enteros.
// "day" es la única unidad reconocida; cualquier otra se trata como días.
func fromEntry(e *plants.ScheduleEntry) *Interval {
	if e == nil || e.Amount <= 0 {
		return nil
	}
	days := int(math.Round(e.Amount))
	if days <= 0 {
		return nil
	}
	return &Interval{AmountDays: days}
}
