package router

import (
	"context"
	"database/sql"
	"net/http"
	"os"

	mem "plant-care-api/internal/adapters/storage/memory"
	pg "plant-care-api/internal/adapters/storage/postgres"
	lite "plant-care-api/internal/adapters/storage/sqlite"
	"plant-care-api/internal/domain/care"
	"plant-care-api/internal/domain/notifysettings"
	"plant-care-api/internal/domain/plants"
	"plant-care-api/internal/middleware"
	"plant-care-api/internal/platform/logger"
	"plant-care-api/internal/ports/auth"
	"plant-care-api/internal/ports/push"

	_ "plant-care-api/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, decide por env:
	// DB_DSN => Postgres, SQLITE_PATH => SQLite, nada => in-memory.
	DB *sql.DB

	// PushSender puede ser nil (push deshabilitado en el deploy).
	PushSender push.Sender

	// SeedDemoData siembra plantas de ejemplo para el usuario demo.
	// Reemplaza el viejo switch global de mock data de los clientes:
	// acá es un flag explícito inyectado, no un global de build.
	SeedDemoData bool

	Log logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.NewFromEnv()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var (
		plantRepo    plants.Repository
		settingsRepo notifysettings.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			} else {
				log.Warn("postgres open failed, falling back", map[string]any{"error": err.Error()})
			}
		}
	}

	switch {
	case db != nil:
		plantRepo = pg.NewPlantsRepo(db)
		settingsRepo = pg.NewSettingsRepo(db)
	case os.Getenv("SQLITE_PATH") != "":
		ldb, err := lite.Open(os.Getenv("SQLITE_PATH"))
		if err != nil {
			log.Error("sqlite open failed, using in-memory repos", map[string]any{"error": err.Error()})
			plantRepo = mem.NewPlantRepo()
			settingsRepo = mem.NewSettingsRepo()
			break
		}
		plantRepo = lite.NewPlantsRepo(ldb)
		settingsRepo = lite.NewSettingsRepo(ldb)
	default:
		plantRepo = mem.NewPlantRepo()
		settingsRepo = mem.NewSettingsRepo()
	}

	// Services por módulo
	plantsSvc := plants.NewService(plantRepo)
	careSvc := care.NewService(plantsSvc, log)
	settingsSvc := notifysettings.NewService(settingsRepo, opts.PushSender)

	if opts.SeedDemoData {
		seedDemoData(context.Background(), plantsSvc, log)
	}

	// Rutas por módulo
	plants.RegisterRoutes(r, plantsSvc)
	care.RegisterRoutes(r, careSvc)
	notifysettings.RegisterRoutes(r, settingsSvc)

	return r
}
