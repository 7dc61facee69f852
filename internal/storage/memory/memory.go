// Package memory implements the record store over a static in-memory
// collection. It is the variant selected when no Supabase credentials are
// configured; the catalogue is seeded once at construction and all
// filtering happens engine-side on read.
package memory

import (
	"context"
	"sync"

	"github.com/runventure/marathon-finder/internal/filter"
	"github.com/runventure/marathon-finder/internal/models"
	"github.com/runventure/marathon-finder/internal/normalize"
	"github.com/runventure/marathon-finder/internal/storage"
)

// Store holds the records in insertion order. The write operations exist
// because the API declares them, so access goes through a RWMutex even
// though the read path dominates.
type Store struct {
	mu      sync.RWMutex
	records []models.Marathon
	nextID  int
}

// New returns a store seeded with the given records.
func New(seed []models.Marathon) *Store {
	s := &Store{
		records: append([]models.Marathon(nil), seed...),
		nextID:  1,
	}
	for _, m := range seed {
		if m.ID >= s.nextID {
			s.nextID = m.ID + 1
		}
	}
	return s
}

// List returns the records matching the criteria in their seeded order.
func (s *Store) List(ctx context.Context, c models.FilterCriteria) ([]models.Marathon, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return filter.Apply(s.records, c), nil
}

// GetByID returns the record with the given identifier.
func (s *Store) GetByID(ctx context.Context, id int) (*models.Marathon, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.records {
		if m.ID == id {
			out := m
			return &out, nil
		}
	}
	return nil, storage.ErrNotFound
}

// Create normalizes the raw record, assigns an identifier when none was
// provided, appends it and returns the stored record.
func (s *Store) Create(ctx context.Context, raw models.RawMarathon) (*models.Marathon, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m := normalize.Record(raw)
	if m.ID <= 0 {
		m.ID = s.nextID
	}
	if m.ID >= s.nextID {
		s.nextID = m.ID + 1
	}
	s.records = append(s.records, m)
	out := m
	return &out, nil
}

// Update merges the provided raw fields over the stored record and returns
// the merged result.
func (s *Store) Update(ctx context.Context, id int, raw models.RawMarathon) (*models.Marathon, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, m := range s.records {
		if m.ID != id {
			continue
		}
		merged := overlay(m, raw)
		s.records[i] = merged
		out := merged
		return &out, nil
	}
	return nil, storage.ErrNotFound
}

// Delete removes the record with the given identifier.
func (s *Store) Delete(ctx context.Context, id int) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, m := range s.records {
		if m.ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return nil
		}
	}
	return storage.ErrNotFound
}

// overlay applies the fields actually present in the raw partial record on
// top of the existing one, running each through the same normalization
// rules a full record would get.
func overlay(existing models.Marathon, raw models.RawMarathon) models.Marathon {
	full := normalize.Record(raw)
	out := existing

	if raw.Title != "" || raw.Name != "" {
		out.Name = full.Name
	}
	if raw.EventDate != "" || raw.Date != "" {
		out.Date = full.Date
	}
	if raw.Location != "" {
		out.Location = full.Location
	}
	if raw.Country != "" {
		out.Country = full.Country
	}
	if raw.Type != "" || raw.Country != "" {
		out.Type = full.Type
	}
	if len(raw.Distances) > 0 || raw.Courses != "" {
		out.Distances = full.Distances
	}
	if raw.ParticipantLimit != "" || raw.Participants != "" {
		out.Participants = full.Participants
	}
	if raw.Difficulty != "" {
		out.Difficulty = full.Difficulty
	}
	if raw.Weather != nil {
		out.Weather = full.Weather
	}
	if raw.Review != nil || raw.Scenery != "" {
		out.Scenery = full.Scenery
	}
	if raw.Fee != "" || raw.Price != "" {
		out.Price = full.Price
	}
	if raw.Details != nil {
		out.Details = full.Details
	}
	return out
}
