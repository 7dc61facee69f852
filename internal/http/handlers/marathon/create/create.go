// Package create implements the HTTP handler for storing a new marathon
// record. The body is a partial raw record; normalization fills every
// missing field, and the stored record comes back as JSON.
package create

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/runventure/marathon-finder/internal/http/response"
	"github.com/runventure/marathon-finder/internal/lib/sl"
	"github.com/runventure/marathon-finder/internal/models"
)

// Handler handles marathon creation requests.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service describes the creation business logic.
type Service interface {
	Create(ctx context.Context, raw models.RawMarathon) (*models.Marathon, error)
}

// New creates a Handler with the given logger and service.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP handles POST /api/marathons.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.marathon.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var raw models.RawMarathon
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	res, err := h.service.Create(r.Context(), raw)
	if err != nil {
		log.Error("failed to create marathon", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Internal server error"))
		return
	}

	log.Info("created marathon", slog.Int("id", res.ID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, res)
}
