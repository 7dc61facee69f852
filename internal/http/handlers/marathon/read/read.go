// Package read implements the HTTP handler for fetching one marathon by
// its identifier.
//
// The handler parses the ID from the URL, calls the business logic and
// answers with the record as JSON, 404 when no record matches and 400 when
// the identifier is not a positive integer.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/runventure/marathon-finder/internal/http/response"
	"github.com/runventure/marathon-finder/internal/lib/sl"
	"github.com/runventure/marathon-finder/internal/models"
	"github.com/runventure/marathon-finder/internal/storage"
)

// Handler handles marathon detail requests.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service describes the detail-lookup business logic.
type Service interface {
	Get(ctx context.Context, id int) (*models.Marathon, error)
}

// New creates a Handler with the given logger and service.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP handles GET /api/marathons/{id}.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.marathon.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		log.Error("invalid id in url", slog.String("id", chi.URLParam(r, "id")))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("Invalid marathon id"))
		return
	}

	res, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("marathon not found", slog.Int("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("Marathon not found"))
			return
		}
		log.Error("failed to read marathon", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Internal server error"))
		return
	}

	log.Info("read marathon", slog.Int("id", id))
	render.JSON(w, r, res)
}
