// Package marathonfinder wires the marathon discovery service together:
// record store selection, HTTP server and graceful shutdown.
package marathonfinder

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/runventure/marathon-finder/internal/config"
	"github.com/runventure/marathon-finder/internal/lib/sl"
	marathonservice "github.com/runventure/marathon-finder/internal/services/marathon"
	"github.com/runventure/marathon-finder/internal/storage/memory"
	"github.com/runventure/marathon-finder/internal/storage/pg"
	"github.com/runventure/marathon-finder/internal/storage/supabase"
)

type App struct {
	server *http.Server
	logger *slog.Logger
	db     *pg.Store
}

// New builds the application. The record store is chosen once at startup:
// Supabase when credentials are configured, otherwise the built-in
// in-memory dataset. A direct database connection is opened only when
// DATABASE_URL is set and only serves the diagnostic endpoints.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	var store marathonservice.RecordStore
	if cfg.UseSupabase() {
		store = supabase.New(cfg.Supabase.URL, cfg.Supabase.ServiceKey)
		logger.Info("using supabase record store", slog.String("url", cfg.Supabase.URL))
	} else {
		store = memory.New(memory.Seed())
		logger.Info("using in-memory record store")
	}

	var db *pg.Store
	if cfg.DatabaseURL != "" {
		var err error
		db, err = pg.New(ctx, cfg.DatabaseURL)
		if err != nil {
			// Diagnostics are optional, the service still runs without them.
			logger.Error("failed to open direct database connection", sl.Err(err))
			db = nil
		}
	}

	service := marathonservice.NewMarathonService(store, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, cfg, service, db)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
	}, nil
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if a.db != nil {
			if closeErr := a.db.Close(); closeErr != nil {
				a.logger.Error("failed to close database connection", sl.Err(closeErr))
			}
		}
		return err
	}
}
