package router

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	_ "vet-records/docs"

	mem "vet-records/internal/adapters/storage/memory"
	pg "vet-records/internal/adapters/storage/postgres"
	"vet-records/internal/domain/pets"
	"vet-records/internal/domain/records"
	"vet-records/internal/domain/stats"
	"vet-records/internal/middleware"
	"vet-records/internal/platform/httpjson"
	"vet-records/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	// El ciclo de vida (Open/Close) es de quien llama.
	DB *sql.DB

	// Logger nil => Nop.
	Logger logger.Logger

	// CORSAllowedOrigins vacío => "*".
	CORSAllowedOrigins []string

	// Now reemplaza el reloj de stats (ventana de próximas vacunas). nil => time.Now.
	Now func() time.Time
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	origins := opts.CORSAllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover(log))
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{"Content-Disposition", middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	// 404/405 con el mismo cuerpo {"error": ...} que el resto de la API.
	// Se define antes de Route para que /api lo herede.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpjson.WriteMessage(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httpjson.WriteMessage(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Get("/health", healthHandler(opts.DB))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var (
		petRepo    pets.Repository
		recordRepo records.Repository
		statsRepo  stats.Repository
	)

	if opts.DB != nil {
		petRepo = pg.NewPetsRepo(opts.DB)
		recordRepo = pg.NewRecordsRepo(opts.DB)
		statsRepo = pg.NewStatsRepo(opts.DB)
	} else {
		store := mem.NewStore()
		petRepo = store.Pets()
		recordRepo = store.Records()
		statsRepo = store.Stats()
	}

	// Services por módulo
	petsSvc := pets.NewService(petRepo)
	recordsSvc := records.NewService(recordRepo)
	statsSvc := stats.NewService(statsRepo).WithClock(opts.Now)

	// Rutas por módulo
	r.Route("/api", func(r chi.Router) {
		pets.RegisterRoutes(r, petsSvc, recordsSvc)
		records.RegisterRoutes(r, recordsSvc)
		stats.RegisterRoutes(r, statsSvc)
	})

	return r
}

// healthHandler: sin DB siempre ok; con DB hace ping (503 si falla).
func healthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()

			if err := db.PingContext(ctx); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("db unavailable"))
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}
}
