// Package update implements the HTTP handler for merging a partial raw
// record over an existing marathon. Only the fields present in the body
// change; the merged record comes back as JSON.
package update

import (
	"context"
	"encoding/json"
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

// Handler handles marathon update requests.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service describes the update business logic.
type Service interface {
	Update(ctx context.Context, id int, raw models.RawMarathon) (*models.Marathon, error)
}

// New creates a Handler with the given logger and service.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP handles PUT /api/marathons/{id}.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.marathon.update"

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

	var raw models.RawMarathon
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	res, err := h.service.Update(r.Context(), id, raw)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("Marathon not found"))
			return
		}
		log.Error("failed to update marathon", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Internal server error"))
		return
	}

	log.Info("updated marathon", slog.Int("id", id))
	render.JSON(w, r, res)
}
