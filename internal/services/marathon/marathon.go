// Package marathon contains the business logic between the HTTP handlers
// and the record store.
package marathon

import (
	"context"
	"log/slog"

	"github.com/runventure/marathon-finder/internal/models"
	"github.com/runventure/marathon-finder/internal/recommend"
)

// RecordStore defines the store operations the service needs. Implemented
// by the in-memory seed store and the Supabase-backed store.
type RecordStore interface {
	// List returns the records matching the criteria in store order.
	List(ctx context.Context, c models.FilterCriteria) ([]models.Marathon, error)
	// GetByID returns a record or storage.ErrNotFound.
	GetByID(ctx context.Context, id int) (*models.Marathon, error)
	// Create stores a new record built from the raw partial input.
	Create(ctx context.Context, raw models.RawMarathon) (*models.Marathon, error)
	// Update merges the raw partial input over an existing record.
	Update(ctx context.Context, id int, raw models.RawMarathon) (*models.Marathon, error)
	// Delete removes a record by ID.
	Delete(ctx context.Context, id int) error
}

// MarathonService implements listing, detail lookup, the quiz
// recommendation and the declared write operations.
type MarathonService struct {
	store RecordStore
	log   *slog.Logger
}

// NewMarathonService creates a service over the given store.
func NewMarathonService(store RecordStore, log *slog.Logger) *MarathonService {
	return &MarathonService{
		store: store,
		log:   log,
	}
}

// List returns the records satisfying the criteria, in store order.
func (s *MarathonService) List(ctx context.Context, c models.FilterCriteria) ([]models.Marathon, error) {
	res, err := s.store.List(ctx, c)
	if err != nil {
		return nil, err
	}
	s.log.Debug("listed marathons", slog.Int("count", len(res)))
	return res, nil
}

// Get returns a single record by ID.
func (s *MarathonService) Get(ctx context.Context, id int) (*models.Marathon, error) {
	return s.store.GetByID(ctx, id)
}

// Recommend runs the quiz decision table over the full catalogue and
// returns up to three matches.
func (s *MarathonService) Recommend(ctx context.Context, a recommend.Answers) ([]models.Marathon, error) {
	all, err := s.store.List(ctx, models.FilterCriteria{})
	if err != nil {
		return nil, err
	}
	picks := recommend.Pick(all, a)
	s.log.Debug("quiz recommendation",
		slog.String("experience", a.Experience),
		slog.String("location", a.Location),
		slog.String("weather", a.Weather),
		slog.Int("count", len(picks)))
	return picks, nil
}

// Create stores a new record and returns it.
func (s *MarathonService) Create(ctx context.Context, raw models.RawMarathon) (*models.Marathon, error) {
	m, err := s.store.Create(ctx, raw)
	if err != nil {
		return nil, err
	}
	s.log.Info("created marathon", slog.Int("id", m.ID))
	return m, nil
}

// Update merges the raw partial input over the stored record.
func (s *MarathonService) Update(ctx context.Context, id int, raw models.RawMarathon) (*models.Marathon, error) {
	m, err := s.store.Update(ctx, id, raw)
	if err != nil {
		return nil, err
	}
	s.log.Info("updated marathon", slog.Int("id", id))
	return m, nil
}

// Delete removes a record by ID.
func (s *MarathonService) Delete(ctx context.Context, id int) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("deleted marathon", slog.Int("id", id))
	return nil
}
