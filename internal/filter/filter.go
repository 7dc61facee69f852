// Package filter narrows collections of marathon records by the criteria a
// listing request may carry. All predicates are pure; the result preserves
// the order of the input collection and is always one of its subsequences.
package filter

import (
	"strings"

	"github.com/runventure/marathon-finder/internal/lib/kdate"
	"github.com/runventure/marathon-finder/internal/models"
)

// All is the sentinel criterion value equivalent to omission.
const All = "all"

// Apply returns the records satisfying every provided criterion. Omitted
// criteria impose no constraint, so empty criteria return the input
// unchanged. An empty result is not an error.
func Apply(records []models.Marathon, c models.FilterCriteria) []models.Marathon {
	out := make([]models.Marathon, 0, len(records))
	for _, m := range records {
		if Matches(m, c) {
			out = append(out, m)
		}
	}
	return out
}

// Matches reports whether a single record satisfies every provided
// criterion.
func Matches(m models.Marathon, c models.FilterCriteria) bool {
	if provided(c.Type) && string(m.Type) != c.Type {
		return false
	}
	if provided(c.Distance) && !hasDistance(m, c.Distance) {
		return false
	}
	if provided(c.Difficulty) && string(m.Difficulty) != c.Difficulty {
		return false
	}
	// Records whose date carries no month marker extract to 0 and quietly
	// fail any real 1-12 month filter.
	if c.Month != 0 && kdate.Month(m.Date) != c.Month {
		return false
	}
	if c.Search != "" && !matchesSearch(m, c.Search) {
		return false
	}
	return true
}

func provided(criterion string) bool {
	return criterion != "" && criterion != All
}

// hasDistance checks exact, case-sensitive containment; distance spellings
// are not normalized.
func hasDistance(m models.Marathon, distance string) bool {
	for _, d := range m.Distances {
		if d == distance {
			return true
		}
	}
	return false
}

func matchesSearch(m models.Marathon, search string) bool {
	q := strings.ToLower(search)
	return strings.Contains(strings.ToLower(m.Name), q) ||
		strings.Contains(strings.ToLower(m.Location), q) ||
		strings.Contains(strings.ToLower(m.Country), q)
}
