// Package diag implements the diagnostic endpoints backed by the optional
// direct database connection: a connectivity probe and table schema
// introspection. Neither is part of the product contract; without a
// configured DATABASE_URL both answer 503.
package diag

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/runventure/marathon-finder/internal/http/response"
	"github.com/runventure/marathon-finder/internal/lib/sl"
	"github.com/runventure/marathon-finder/internal/storage/pg"
)

// Prober is the part of the direct database connection the handlers use.
type Prober interface {
	Status(ctx context.Context) pg.Status
	TableInfo(ctx context.Context, table string) (*pg.TableInfo, error)
}

// DBHealthHandler handles database connectivity probes.
type DBHealthHandler struct {
	log    *slog.Logger
	prober Prober // nil when no direct connection is configured
}

// NewDBHealth creates a DBHealthHandler; prober may be nil.
func NewDBHealth(log *slog.Logger, prober Prober) *DBHealthHandler {
	return &DBHealthHandler{
		log:    log,
		prober: prober,
	}
}

// ServeHTTP handles GET /api/health/db.
func (h *DBHealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.prober == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		render.JSON(w, r, response.Error("database diagnostics not configured"))
		return
	}
	render.JSON(w, r, h.prober.Status(r.Context()))
}

// TableInfoHandler handles schema introspection requests.
type TableInfoHandler struct {
	log    *slog.Logger
	prober Prober // nil when no direct connection is configured
}

// NewTableInfo creates a TableInfoHandler; prober may be nil.
func NewTableInfo(log *slog.Logger, prober Prober) *TableInfoHandler {
	return &TableInfoHandler{
		log:    log,
		prober: prober,
	}
}

// ServeHTTP handles GET /api/table-info and /api/table-info/{table}.
func (h *TableInfoHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.diag.tableinfo"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if h.prober == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		render.JSON(w, r, response.Error("database diagnostics not configured"))
		return
	}

	table := chi.URLParam(r, "table")
	if table == "" {
		table = "marathons"
	}

	info, err := h.prober.TableInfo(r.Context(), table)
	if err != nil {
		log.Error("failed to introspect table", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Internal server error"))
		return
	}
	render.JSON(w, r, info)
}
