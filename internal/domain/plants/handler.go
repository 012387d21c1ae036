package plants

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"plant-care-api/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/plants", func(pr chi.Router) {
		pr.Post("/", createPlantHandler(svc))
		pr.Get("/", listPlantsHandler(svc))

		pr.Get("/{plantID}", getPlantHandler(svc))
		pr.Patch("/{plantID}", updatePlantHandler(svc))
		pr.Delete("/{plantID}", deletePlantHandler(svc))
	})
}

type scheduleEntryDTO struct {
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

type scheduleDTO struct {
	Water *scheduleEntryDTO `json:"water"`
	Feed  *scheduleEntryDTO `json:"feed"`
	Repot *scheduleEntryDTO `json:"repot"`
}

type careInfoDTO struct {
	Light      string   `json:"light"`
	Humidity   string   `json:"humidity"`
	TempMinC   *float64 `json:"temperature_min_c,omitempty"`
	TempMaxC   *float64 `json:"temperature_max_c,omitempty"`
	Pets       string   `json:"pets"`
	Difficulty string   `json:"difficulty"`
}

// createPlantRequest es el cuerpo para registrar una planta.
type createPlantRequest struct {
	Nickname       string       `json:"nickname"`
	CommonName     string       `json:"common_name"`
	ScientificName string       `json:"scientific_name"`
	CareInfo       *careInfoDTO `json:"care_info"`
	Schedule       *scheduleDTO `json:"schedule"`

	// Legacy: clientes viejos mandan el intervalo de riego plano.
	WaterDays   int     `json:"water_days"`
	AvgWatering float64 `json:"avg_watering"`
}

// plantResponse representa una planta devuelta por la API.
type plantResponse struct {
	ID             string      `json:"id"`
	OwnerUserID    string      `json:"owner_user_id"`
	Nickname       string      `json:"nickname"`
	CommonName     string      `json:"common_name"`
	ScientificName string      `json:"scientific_name"`
	CareInfo       careInfoDTO `json:"care_info"`
	Schedule       scheduleDTO `json:"schedule"`
	WaterDays      int         `json:"water_days,omitempty"`
	AvgWatering    float64     `json:"avg_watering,omitempty"`
	LastWatered    *time.Time  `json:"last_watered,omitempty"`
	LastFed        *time.Time  `json:"last_fed,omitempty"`
	LastRepotted   *time.Time  `json:"last_repotted,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

type updatePlantRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	Nickname       *string `json:"nickname"`
	CommonName     *string `json:"common_name"`
	ScientificName *string `json:"scientific_name"`

	CareInfo *struct {
		Light      *string  `json:"light"`
		Humidity   *string  `json:"humidity"`
		TempMinC   *float64 `json:"temperature_min_c"`
		TempMaxC   *float64 `json:"temperature_max_c"`
		Pets       *string  `json:"pets"`
		Difficulty *string  `json:"difficulty"`
	} `json:"care_info"`

	WaterDays   *int     `json:"water_days"`
	AvgWatering *float64 `json:"avg_watering"`
}

// createPlantHandler godoc
// @Summary Registrar planta
// @Description Crea una planta para el usuario autenticado. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags plants
// @Accept json
// @Produce json
// @Param payload body createPlantRequest true "Datos de la planta"
// @Success 201 {object} plantResponse
// @Failure 400 {string} string "invalid json / datos inválidos"
// @Failure 401 {string} string "unauthorized"
// @Router /plants [post]
func createPlantHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createPlantRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := CreateInput{
			Nickname:       req.Nickname,
			CommonName:     req.CommonName,
			ScientificName: req.ScientificName,
			WaterDays:      req.WaterDays,
			AvgWatering:    req.AvgWatering,
		}
		if req.CareInfo != nil {
			in.Care = CareInfo{
				Light:      req.CareInfo.Light,
				Humidity:   req.CareInfo.Humidity,
				TempMinC:   req.CareInfo.TempMinC,
				TempMaxC:   req.CareInfo.TempMaxC,
				Pets:       req.CareInfo.Pets,
				Difficulty: req.CareInfo.Difficulty,
			}
		}
		if req.Schedule != nil {
			in.Schedule = Schedule{
				Water: toScheduleEntry(req.Schedule.Water),
				Feed:  toScheduleEntry(req.Schedule.Feed),
				Repot: toScheduleEntry(req.Schedule.Repot),
			}
		}

		p, err := svc.Create(r.Context(), claims.UserID, in)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toPlantResponse(p))
	}
}

// listPlantsHandler godoc
// @Summary Listar plantas del usuario
// @Tags plants
// @Produce json
// @Success 200 {array} plantResponse
// @Failure 401 {string} string "unauthorized"
// @Router /plants [get]
func listPlantsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByOwner(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]plantResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPlantResponse(p))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// getPlantHandler godoc
// @Summary Perfil de planta
// @Tags plants
// @Produce json
// @Param plantID path string true "ID de la planta"
// @Success 200 {object} plantResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "plant not found"
// @Router /plants/{plantID} [get]
func getPlantHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		plantID := chi.URLParam(r, "plantID")
		p, err := svc.GetByID(r.Context(), plantID)
		if err != nil || p.OwnerUserID != claims.UserID {
			// No filtramos ownership vs existencia: siempre 404.
			http.Error(w, "plant not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toPlantResponse(p))
	}
}

// updatePlantHandler aplica un PATCH null-aware: en "schedule", un campo
// ausente no se toca y un null desprograma la acción.
func updatePlantHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		plantID := chi.URLParam(r, "plantID")
		current, err := svc.GetByID(r.Context(), plantID)
		if err != nil || current.OwnerUserID != claims.UserID {
			http.Error(w, "plant not found", http.StatusNotFound)
			return
		}

		// Para soportar "schedule.water": null necesitamos detectar presencia
		// del campo. Estrategia: decodificar a map primero.
		var raw map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var req updatePlantRequest
		{
			// Re-marshal y decode al struct para reutilizar tags
			// (simple y suficiente para los volúmenes esperados)
			b, _ := json.Marshal(raw)
			if err := json.Unmarshal(b, &req); err != nil {
				http.Error(w, "invalid json", http.StatusBadRequest)
				return
			}
		}

		in := UpdateProfileInput{
			Nickname:       req.Nickname,
			CommonName:     req.CommonName,
			ScientificName: req.ScientificName,
			WaterDays:      req.WaterDays,
			AvgWatering:    req.AvgWatering,
		}
		if req.CareInfo != nil {
			in.Light = req.CareInfo.Light
			in.Humidity = req.CareInfo.Humidity
			in.TempMinC = req.CareInfo.TempMinC
			in.TempMaxC = req.CareInfo.TempMaxC
			in.Pets = req.CareInfo.Pets
			in.Difficulty = req.CareInfo.Difficulty
		}

		if rawSchedule, exists := raw["schedule"]; exists {
			patch, err := decodeSchedulePatch(rawSchedule)
			if err != nil {
				http.Error(w, "invalid schedule", http.StatusBadRequest)
				return
			}
			in.Water = patch.water
			in.Feed = patch.feed
			in.Repot = patch.repot
		}

		updated, err := svc.UpdateProfile(r.Context(), plantID, in)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrNotFound):
				http.Error(w, "plant not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toPlantResponse(updated))
	}
}

// deletePlantHandler godoc
// @Summary Eliminar planta
// @Tags plants
// @Param plantID path string true "ID de la planta"
// @Success 204 {string} string "no content"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "plant not found"
// @Router /plants/{plantID} [delete]
func deletePlantHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		plantID := chi.URLParam(r, "plantID")
		p, err := svc.GetByID(r.Context(), plantID)
		if err != nil || p.OwnerUserID != claims.UserID {
			http.Error(w, "plant not found", http.StatusNotFound)
			return
		}

		if err := svc.Delete(r.Context(), plantID); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

type schedulePatch struct {
	water PatchScheduleEntry
	feed  PatchScheduleEntry
	repot PatchScheduleEntry
}

func decodeSchedulePatch(raw json.RawMessage) (schedulePatch, error) {
	var out schedulePatch

	// "schedule": null => desprogramar todo
	if string(raw) == "null" {
		out.water = PatchScheduleEntry{Present: true}
		out.feed = PatchScheduleEntry{Present: true}
		out.repot = PatchScheduleEntry{Present: true}
		return out, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return out, err
	}

	decode := func(key string) (PatchScheduleEntry, error) {
		v, exists := fields[key]
		if !exists {
			return PatchScheduleEntry{}, nil
		}
		if string(v) == "null" {
			return PatchScheduleEntry{Present: true, Value: nil}, nil
		}
		var dto scheduleEntryDTO
		if err := json.Unmarshal(v, &dto); err != nil {
			return PatchScheduleEntry{}, err
		}
		return PatchScheduleEntry{
			Present: true,
			Value:   &ScheduleEntry{Amount: dto.Amount, Unit: dto.Unit},
		}, nil
	}

	var err error
	if out.water, err = decode("water"); err != nil {
		return out, err
	}
	if out.feed, err = decode("feed"); err != nil {
		return out, err
	}
	if out.repot, err = decode("repot"); err != nil {
		return out, err
	}
	return out, nil
}

func toScheduleEntry(dto *scheduleEntryDTO) *ScheduleEntry {
	if dto == nil {
		return nil
	}
	return &ScheduleEntry{Amount: dto.Amount, Unit: dto.Unit}
}

func fromScheduleEntry(e *ScheduleEntry) *scheduleEntryDTO {
	if e == nil {
		return nil
	}
	return &scheduleEntryDTO{Amount: e.Amount, Unit: e.Unit}
}

func toPlantResponse(p Plant) plantResponse {
	return plantResponse{
		ID:             p.ID,
		OwnerUserID:    p.OwnerUserID,
		Nickname:       p.Nickname,
		CommonName:     p.CommonName,
		ScientificName: p.ScientificName,
		CareInfo: careInfoDTO{
			Light:      p.Care.Light,
			Humidity:   p.Care.Humidity,
			TempMinC:   p.Care.TempMinC,
			TempMaxC:   p.Care.TempMaxC,
			Pets:       p.Care.Pets,
			Difficulty: p.Care.Difficulty,
		},
		Schedule: scheduleDTO{
			Water: fromScheduleEntry(p.Schedule.Water),
			Feed:  fromScheduleEntry(p.Schedule.Feed),
			Repot: fromScheduleEntry(p.Schedule.Repot),
		},
		WaterDays:    p.WaterDays,
		AvgWatering:  p.AvgWatering,
		LastWatered:  p.LastWatered,
		LastFed:      p.LastFed,
		LastRepotted: p.LastRepotted,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// (plants/care/notifysettings) para no crear helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
