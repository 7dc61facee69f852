// Package supabase implements the record store against a managed Supabase
// project through its PostgREST API. The marathons table stores records in
// their canonical shape. Equality and text-search criteria are pushed into
// the query; distance and month filtering need array containment and
// date-derived logic the query language cannot express, so they are always
// applied engine-side after retrieval.
package supabase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	postgrest "github.com/supabase-community/postgrest-go"

	"github.com/runventure/marathon-finder/internal/filter"
	"github.com/runventure/marathon-finder/internal/models"
	"github.com/runventure/marathon-finder/internal/normalize"
	"github.com/runventure/marathon-finder/internal/storage"
)

const table = "marathons"

// Store talks to the marathons table of a Supabase project.
type Store struct {
	rest *postgrest.Client
}

// New builds a store for the project at url, authenticating every request
// with the service role key.
func New(url, serviceKey string) *Store {
	rest := postgrest.NewClient(strings.TrimRight(url, "/")+"/rest/v1", "public", map[string]string{
		"apikey":        serviceKey,
		"Authorization": "Bearer " + serviceKey,
	})
	return &Store{rest: rest}
}

// List fetches rows matching the pushable criteria, normalizes them and
// applies the remaining engine-side filters.
func (s *Store) List(ctx context.Context, c models.FilterCriteria) ([]models.Marathon, error) {
	const op = "storage.supabase.List"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	q := s.rest.From(table).Select("*", "", false)
	if pushable(c.Type) {
		q = q.Eq("type", c.Type)
	}
	if pushable(c.Difficulty) {
		q = q.Eq("difficulty", c.Difficulty)
	}
	if c.Search != "" {
		p := "%" + c.Search + "%"
		q = q.Or(fmt.Sprintf("name.ilike.%s,location.ilike.%s,country.ilike.%s", p, p, p), "")
	}

	var raws []models.RawMarathon
	if _, err := q.ExecuteTo(&raws); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	residue := models.FilterCriteria{Distance: c.Distance, Month: c.Month}
	return filter.Apply(normalize.Records(raws), residue), nil
}

// GetByID fetches a single row; an empty result maps to ErrNotFound.
func (s *Store) GetByID(ctx context.Context, id int) (*models.Marathon, error) {
	const op = "storage.supabase.GetByID"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var raws []models.RawMarathon
	_, err := s.rest.From(table).Select("*", "", false).
		Eq("id", strconv.Itoa(id)).
		ExecuteTo(&raws)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(raws) == 0 {
		return nil, storage.ErrNotFound
	}
	m := normalize.Record(raws[0])
	return &m, nil
}

// Create normalizes the raw input and inserts the full canonical row, so
// the stored record satisfies the same invariants the in-memory store
// guarantees.
func (s *Store) Create(ctx context.Context, raw models.RawMarathon) (*models.Marathon, error) {
	const op = "storage.supabase.Create"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	m := normalize.Record(raw)
	row := fullRow(m)
	if m.ID <= 0 {
		delete(row, "id")
	}

	var raws []models.RawMarathon
	_, err := s.rest.From(table).
		Insert(row, false, "", "representation", "").
		ExecuteTo(&raws)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(raws) == 0 {
		return nil, fmt.Errorf("%s: insert returned no rows", op)
	}
	stored := normalize.Record(raws[0])
	return &stored, nil
}

// Update patches only the columns the raw input provided, each run through
// normalization first, and returns the merged record.
func (s *Store) Update(ctx context.Context, id int, raw models.RawMarathon) (*models.Marathon, error) {
	const op = "storage.supabase.Update"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var raws []models.RawMarathon
	_, err := s.rest.From(table).
		Update(partialRow(raw), "representation", "").
		Eq("id", strconv.Itoa(id)).
		ExecuteTo(&raws)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(raws) == 0 {
		return nil, storage.ErrNotFound
	}
	m := normalize.Record(raws[0])
	return &m, nil
}

// Delete removes the row with the given identifier.
func (s *Store) Delete(ctx context.Context, id int) error {
	const op = "storage.supabase.Delete"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var raws []models.RawMarathon
	_, err := s.rest.From(table).
		Delete("representation", "").
		Eq("id", strconv.Itoa(id)).
		ExecuteTo(&raws)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if len(raws) == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func pushable(criterion string) bool {
	return criterion != "" && criterion != filter.All
}

// fullRow maps a canonical record onto the table columns.
func fullRow(m models.Marathon) map[string]any {
	return map[string]any{
		"id":           m.ID,
		"name":         m.Name,
		"date":         m.Date,
		"location":     m.Location,
		"country":      m.Country,
		"type":         m.Type,
		"distances":    m.Distances,
		"participants": m.Participants,
		"difficulty":   m.Difficulty,
		"weather":      m.Weather,
		"scenery":      m.Scenery,
		"price":        m.Price,
		"details":      m.Details,
	}
}

// partialRow maps only the fields actually present in the raw input onto
// table columns, each in its normalized form; absent fields stay out of the
// payload so PostgREST leaves them untouched.
func partialRow(raw models.RawMarathon) map[string]any {
	full := normalize.Record(raw)
	out := map[string]any{}

	if raw.Title != "" || raw.Name != "" {
		out["name"] = full.Name
	}
	if raw.EventDate != "" || raw.Date != "" {
		out["date"] = full.Date
	}
	if raw.Location != "" {
		out["location"] = full.Location
	}
	if raw.Country != "" {
		out["country"] = full.Country
	}
	if raw.Type != "" || raw.Country != "" {
		out["type"] = full.Type
	}
	if len(raw.Distances) > 0 || raw.Courses != "" {
		out["distances"] = full.Distances
	}
	if raw.ParticipantLimit != "" || raw.Participants != "" {
		out["participants"] = full.Participants
	}
	if raw.Difficulty != "" {
		out["difficulty"] = full.Difficulty
	}
	if raw.Weather != nil {
		out["weather"] = full.Weather
	}
	if raw.Review != nil || raw.Scenery != "" {
		out["scenery"] = full.Scenery
	}
	if raw.Fee != "" || raw.Price != "" {
		out["price"] = full.Price
	}
	if raw.Details != nil {
		out["details"] = full.Details
	}
	return out
}
