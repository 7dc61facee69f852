package marathonfinder

import (
	"log/slog"

	"github.com/go-chi/chi"
	chimiddleware "github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/runventure/marathon-finder/internal/config"
	"github.com/runventure/marathon-finder/internal/http/handlers/diag"
	"github.com/runventure/marathon-finder/internal/http/handlers/health"
	"github.com/runventure/marathon-finder/internal/http/handlers/marathon/create"
	"github.com/runventure/marathon-finder/internal/http/handlers/marathon/list"
	"github.com/runventure/marathon-finder/internal/http/handlers/marathon/read"
	"github.com/runventure/marathon-finder/internal/http/handlers/marathon/recommend"
	"github.com/runventure/marathon-finder/internal/http/handlers/marathon/remove"
	"github.com/runventure/marathon-finder/internal/http/handlers/marathon/update"
	"github.com/runventure/marathon-finder/internal/http/middleware"
	marathonservice "github.com/runventure/marathon-finder/internal/services/marathon"
	"github.com/runventure/marathon-finder/internal/storage/pg"
)

// RegisterRoutes registers all routes of the application.
func RegisterRoutes(r chi.Router, logger *slog.Logger, cfg *config.Config, service *marathonservice.MarathonService, db *pg.Store) {
	r.Use(
		chimiddleware.RequestID,
		chimiddleware.Logger,
		chimiddleware.Recoverer,
		chimiddleware.URLFormat,
	)
	r.Use(middleware.CORS(cfg.CORSOrigins))

	// db is a *pg.Store and must not reach the handlers as a typed nil.
	var prober diag.Prober
	if db != nil {
		prober = db
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.RateLimit(20, 40))

		r.Get("/health", health.New(logger).ServeHTTP)
		r.Get("/health/db", diag.NewDBHealth(logger, prober).ServeHTTP)
		r.Get("/table-info", diag.NewTableInfo(logger, prober).ServeHTTP)
		r.Get("/table-info/{table}", diag.NewTableInfo(logger, prober).ServeHTTP)

		r.Get("/marathons", list.New(logger, service).ServeHTTP)
		r.Get("/marathons/{id}", read.New(logger, service).ServeHTTP)
		r.Post("/marathons", create.New(logger, service).ServeHTTP)
		r.Put("/marathons/{id}", update.New(logger, service).ServeHTTP)
		r.Delete("/marathons/{id}", remove.New(logger, service).ServeHTTP)
		r.Post("/marathons/ai-recommend", recommend.New(logger, service).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
}
