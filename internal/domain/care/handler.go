package care

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"plant-care-api/internal/domain/plants"
	"plant-care-api/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/me/care", func(cr chi.Router) {
		cr.Get("/tasks", listTasksHandler(svc))
		cr.Get("/calendar", calendarHandler(svc))
	})

	r.Post("/plants/{plantID}/care/{action}/complete", completeHandler(svc))
}

// taskResponse representa una tarea de cuidado derivada (nunca persistida).
type taskResponse struct {
	ID           string    `json:"id"`
	PlantID      string    `json:"plant_id"`
	PlantName    string    `json:"plant_name"`
	Type         string    `json:"type"`
	DueDate      time.Time `json:"due_date"`
	RelativeDays int       `json:"relative_days"`
	State        string    `json:"state"`
	Overdue      bool      `json:"overdue"`
	Completed    bool      `json:"completed"`
}

type dayBucketResponse struct {
	Date  string         `json:"date"`
	Tasks []taskResponse `json:"tasks"`
}

type completeRequest struct {
	At string `json:"at"` // RFC3339 opcional; vacío = ahora
}

type completeResponse struct {
	PlantID      string     `json:"plant_id"`
	Action       string     `json:"action"`
	LastDone     *time.Time `json:"last_done"`
	NextDueDate  *time.Time `json:"next_due_date,omitempty"`
	RelativeDays int        `json:"relative_days"`
	State        string     `json:"state"`
}

// listTasksHandler godoc
// @Summary Tareas vencidas o de hoy
// @Description Deriva las tareas de cuidado del usuario (vencidas o que vencen hoy) a partir de sus registros de plantas. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags care
// @Produce json
// @Success 200 {array} taskResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "internal error"
// @Router /me/care/tasks [get]
func listTasksHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		tasks, err := svc.TasksDue(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]taskResponse, 0, len(tasks))
		for _, t := range tasks {
			out = append(out, toTaskResponse(t))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// calendarHandler godoc
// @Summary Calendario de cuidado
// @Description Agrupa las tareas derivadas por día calendario. Permite acotar con from/to (YYYY-MM-DD, inclusivos).
// @Tags care
// @Produce json
// @Param from query string false "Día mínimo (YYYY-MM-DD)"
// @Param to query string false "Día máximo (YYYY-MM-DD)"
// @Success 200 {array} dayBucketResponse
// @Failure 400 {string} string "from/to inválidos"
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "internal error"
// @Router /me/care/calendar [get]
func calendarHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var from, to time.Time
		if v := strings.TrimSpace(r.URL.Query().Get("from")); v != "" {
			t, err := ParseDay(v, time.Local)
			if err != nil {
				http.Error(w, "from must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			from = t
		}
		if v := strings.TrimSpace(r.URL.Query().Get("to")); v != "" {
			t, err := ParseDay(v, time.Local)
			if err != nil {
				http.Error(w, "to must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			to = t
		}
		if !from.IsZero() && !to.IsZero() && to.Before(from) {
			http.Error(w, "to must not be before from", http.StatusBadRequest)
			return
		}

		buckets, err := svc.Calendar(r.Context(), claims.UserID, from, to)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]dayBucketResponse, 0, len(buckets))
		for _, b := range buckets {
			tasks := make([]taskResponse, 0, len(b.Tasks))
			for _, t := range b.Tasks {
				tasks = append(tasks, toTaskResponse(t))
			}
			out = append(out, dayBucketResponse{Date: b.Date, Tasks: tasks})
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// completeHandler godoc
// @Summary Marcar acción de cuidado como hecha
// @Description Actualiza last_<action> de la planta y devuelve el estado recalculado. Solo el dueño puede completar.
// @Tags care
// @Accept json
// @Produce json
// @Param plantID path string true "ID de la planta"
// @Param action path string true "Acción" Enums(water, feed, repot)
// @Param payload body completeRequest false "at en RFC3339; ausente = ahora"
// @Success 200 {object} completeResponse
// @Failure 400 {string} string "acción inválida / at inválido"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "plant not found"
// @Router /plants/{plantID}/care/{action}/complete [post]
func completeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		plantID := chi.URLParam(r, "plantID")
		action, ok := plants.ParseAction(chi.URLParam(r, "action"))
		if !ok {
			http.Error(w, "unknown care action", http.StatusBadRequest)
			return
		}

		var at time.Time
		if r.Body != nil && r.ContentLength != 0 {
			var req completeRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, "invalid json", http.StatusBadRequest)
				return
			}
			if strings.TrimSpace(req.At) != "" {
				t, err := time.Parse(time.RFC3339, req.At)
				if err != nil {
					http.Error(w, "at must be RFC3339", http.StatusBadRequest)
					return
				}
				at = t
			}
		}

		p, st, err := svc.Complete(r.Context(), claims.UserID, plantID, action, at)
		if err != nil {
			switch {
			case errors.Is(err, plants.ErrNotFound):
				http.Error(w, "plant not found", http.StatusNotFound)
			case errors.Is(err, plants.ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, completeResponse{
			PlantID:      p.ID,
			Action:       string(action),
			LastDone:     p.LastDone(action),
			NextDueDate:  st.DueDate,
			RelativeDays: st.RelativeDays,
			State:        string(st.State),
		})
	}
}

func toTaskResponse(t Task) taskResponse {
	return taskResponse{
		ID:           t.ID,
		PlantID:      t.PlantID,
		PlantName:    t.PlantName,
		Type:         string(t.Action),
		DueDate:      t.DueDate,
		RelativeDays: t.RelativeDays,
		State:        string(t.State),
		Overdue:      t.Overdue,
		Completed:    false, // las completadas se filtran de la derivación
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// (plants/care/notifysettings) para no crear helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
