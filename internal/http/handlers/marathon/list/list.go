// Package list implements the HTTP handler for the marathon listing.
//
// The handler reads the optional filter criteria from the query string,
// asks the business logic for the matching records and answers with a bare
// JSON array in store order, never paginated.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/runventure/marathon-finder/internal/filter"
	"github.com/runventure/marathon-finder/internal/http/response"
	"github.com/runventure/marathon-finder/internal/lib/sl"
	"github.com/runventure/marathon-finder/internal/models"
)

// Handler handles marathon listing requests.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service describes the listing business logic.
type Service interface {
	List(ctx context.Context, c models.FilterCriteria) ([]models.Marathon, error)
}

// New creates a Handler with the given logger and service.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP handles GET /api/marathons.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.marathon.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	criteria := criteriaFromQuery(r)

	res, err := h.service.List(r.Context(), criteria)
	if err != nil {
		log.Error("failed to list marathons", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Internal server error"))
		return
	}

	log.Info("listed marathons", slog.Int("count", len(res)))
	render.JSON(w, r, res)
}

// criteriaFromQuery maps the query string onto filter criteria. A month
// that is missing, "all" or unparsable imposes no constraint.
func criteriaFromQuery(r *http.Request) models.FilterCriteria {
	q := r.URL.Query()
	c := models.FilterCriteria{
		Type:       q.Get("type"),
		Distance:   q.Get("distance"),
		Difficulty: q.Get("difficulty"),
		Search:     q.Get("search"),
	}
	if s := q.Get("month"); s != "" && s != filter.All {
		if n, err := strconv.Atoi(s); err == nil {
			c.Month = n
		}
	}
	return c
}
