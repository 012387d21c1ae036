package notifysettings

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
	r.Route("/me/notification-settings", func(nr chi.Router) {
		nr.Get("/", getSettingsHandler(svc))
		nr.Put("/", putSettingsHandler(svc))
		nr.Post("/test", testPushHandler(svc))
	})
}

type settingsRequest struct {
	PushEnabled  bool `json:"push_enabled"`
	ReminderHour int  `json:"reminder_hour"`

	WaterReminders bool `json:"water_reminders"`
	FeedReminders  bool `json:"feed_reminders"`
	RepotReminders bool `json:"repot_reminders"`
	PruneReminders bool `json:"prune_reminders"`

	ExpoPushToken string `json:"expo_push_token"`
}

type settingsResponse struct {
	UserID       string `json:"user_id"`
	PushEnabled  bool   `json:"push_enabled"`
	ReminderHour int    `json:"reminder_hour"`

	WaterReminders bool `json:"water_reminders"`
	FeedReminders  bool `json:"feed_reminders"`
	RepotReminders bool `json:"repot_reminders"`
	PruneReminders bool `json:"prune_reminders"`

	ExpoPushToken string `json:"expo_push_token,omitempty"`

	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// getSettingsHandler godoc
// @Summary Preferencias de recordatorios
// @Description Devuelve las preferencias guardadas del usuario, reconciliadas con defaults (un usuario nuevo recibe los defaults, nunca 404).
// @Tags notification-settings
// @Produce json
// @Success 200 {object} settingsResponse
// @Failure 401 {string} string "unauthorized"
// @Router /me/notification-settings [get]
func getSettingsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		s, err := svc.Get(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toSettingsResponse(s))
	}
}

// putSettingsHandler godoc
// @Summary Guardar preferencias de recordatorios
// @Tags notification-settings
// @Accept json
// @Produce json
// @Param payload body settingsRequest true "Preferencias completas (PUT, no PATCH)"
// @Success 200 {object} settingsResponse
// @Failure 400 {string} string "invalid json / reminder_hour fuera de rango"
// @Failure 401 {string} string "unauthorized"
// @Router /me/notification-settings [put]
func putSettingsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req settingsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		s, err := svc.Upsert(r.Context(), claims.UserID, UpsertInput{
			PushEnabled:    req.PushEnabled,
			ReminderHour:   req.ReminderHour,
			WaterReminders: req.WaterReminders,
			FeedReminders:  req.FeedReminders,
			RepotReminders: req.RepotReminders,
			PruneReminders: req.PruneReminders,
			ExpoPushToken:  req.ExpoPushToken,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toSettingsResponse(s))
	}
}

// testPushHandler godoc
// @Summary Enviar notificación de prueba
// @Tags notification-settings
// @Produce json
// @Success 202 {string} string "accepted"
// @Failure 400 {string} string "sin token de dispositivo o push deshabilitado"
// @Failure 401 {string} string "unauthorized"
// @Failure 502 {string} string "fallo del proveedor de push"
// @Router /me/notification-settings/test [post]
func testPushHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.SendTest(r.Context(), claims.UserID); err != nil {
			switch {
			case errors.Is(err, ErrNoDevice):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "push provider error", http.StatusBadGateway)
			}
			return
		}

		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte("accepted"))
	}
}

func toSettingsResponse(s Settings) settingsResponse {
	out := settingsResponse{
		UserID:         s.UserID,
		PushEnabled:    s.PushEnabled,
		ReminderHour:   s.ReminderHour,
		WaterReminders: s.WaterReminders,
		FeedReminders:  s.FeedReminders,
		RepotReminders: s.RepotReminders,
		PruneReminders: s.PruneReminders,
		ExpoPushToken:  s.ExpoPushToken,
	}
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		out.UpdatedAt = &t
	}
	return out
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// (plants/care/notifysettings) para no crear helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
