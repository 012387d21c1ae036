package router

import (
	"context"

	"plant-care-api/internal/domain/plants"
	"plant-care-api/internal/platform/logger"
)

// DemoUserID es el usuario que recibe los datos de ejemplo
// (con verifier nil se accede con X-Debug-User-ID: demo-user).
const DemoUserID = "demo-user"

// seedDemoData siembra un par de plantas representativas: una con schedule
// anidado y otra solo con el campo legacy water_days, para que la derivación
// de tareas tenga ambos caminos cubiertos desde el arranque.
func seedDemoData(ctx context.Context, svc *plants.Service, log logger.Logger) {
	seeds := []plants.CreateInput{
		{
			Nickname:       "Moni",
			CommonName:     "Monstera deliciosa",
			ScientificName: "Monstera deliciosa",
			Care: plants.CareInfo{
				Light:      "bright-indirect",
				Humidity:   "medium",
				Pets:       "toxic",
				Difficulty: string(plants.DifficultyEasy),
			},
			Schedule: plants.Schedule{
				Water: &plants.ScheduleEntry{Amount: 7, Unit: "day"},
				Feed:  &plants.ScheduleEntry{Amount: 30, Unit: "day"},
			},
		},
		{
			Nickname:   "Espada",
			CommonName: "Snake plant",
			Care: plants.CareInfo{
				Light:      "low",
				Humidity:   "low",
				Pets:       "toxic",
				Difficulty: string(plants.DifficultyEasy),
			},
			// Registro legacy: sin schedule, solo el intervalo plano.
			WaterDays: 14,
		},
	}

	for _, in := range seeds {
		if _, err := svc.Create(ctx, DemoUserID, in); err != nil {
			log.Warn("demo seed failed", map[string]any{
				"nickname": in.Nickname,
				"error":    err.Error(),
			})
		}
	}
}
