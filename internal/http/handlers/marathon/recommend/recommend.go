// Package recommend implements the HTTP handler for the quiz-style
// recommendation: a three-answer body mapped onto a record predicate,
// answering with up to three matching marathons.
package recommend

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/runventure/marathon-finder/internal/http/response"
	"github.com/runventure/marathon-finder/internal/lib/sl"
	"github.com/runventure/marathon-finder/internal/models"
	quiz "github.com/runventure/marathon-finder/internal/recommend"
)

// Handler handles recommendation requests.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service describes the recommendation business logic.
type Service interface {
	Recommend(ctx context.Context, a quiz.Answers) ([]models.Marathon, error)
}

// New creates a Handler with the given logger and service.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP handles POST /api/marathons/ai-recommend.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.marathon.recommend"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var answers quiz.Answers
	if err := json.NewDecoder(r.Body).Decode(&answers); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(answers); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid quiz answers"))
		return
	}

	res, err := h.service.Recommend(r.Context(), answers)
	if err != nil {
		log.Error("failed to build recommendation", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Internal server error"))
		return
	}

	log.Info("quiz recommendation served", slog.Int("count", len(res)))
	render.JSON(w, r, res)
}
