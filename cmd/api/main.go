package main

import (
	"net/http"
	"os"
	"time"

	"plant-care-api/internal/adapters/auth/token"
	"plant-care-api/internal/adapters/push/expo"
	"plant-care-api/internal/platform/logger"
	"plant-care-api/internal/ports/auth"
	"plant-care-api/internal/ports/push"
	"plant-care-api/internal/router"
)

// @title Plant Care API
// @version 1.0
// @description Backend de cuidado de plantas: registros por usuario y derivación de tareas (riego, abono, trasplante).
// @BasePath /
func main() {
	log := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	// Verifier solo si hay backend de auth configurado; si no, modo dev
	// (X-Debug-User-ID).
	var verifier auth.AuthVerifier
	if baseURL := os.Getenv("AUTH_BASE_URL"); baseURL != "" {
		client, err := token.NewClient(token.Config{
			BaseURL: baseURL,
			APIKey:  os.Getenv("AUTH_API_KEY"),
		})
		if err != nil {
			log.Error("invalid auth config", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		verifier = token.NewVerifier(client)
	}

	var sender push.Sender
	if os.Getenv("PUSH_DISABLED") == "" {
		sender = expo.NewClient(expo.Config{
			SendURL: os.Getenv("EXPO_PUSH_URL"), // vacío => endpoint público
		})
	}

	r := router.NewRouter(router.Options{
		AuthVerifier: verifier,
		PushSender:   sender,
		SeedDemoData: os.Getenv("SEED_DEMO_DATA") == "1",
		Log:          log,
	})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
