// Package health implements the liveness endpoint.
package health

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/runventure/marathon-finder/internal/http/response"
)

// Handler answers liveness checks.
type Handler struct {
	log *slog.Logger
}

// New creates a Handler with the given logger.
func New(log *slog.Logger) *Handler {
	return &Handler{
		log: log,
	}
}

// ServeHTTP handles GET /api/health.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, response.OK("Server is running"))
}
