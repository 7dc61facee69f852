// Package recommend implements the quiz-style recommendation as a static
// decision table: three answers, each mapping to a coarse predicate over
// existing record fields.
package recommend

import (
	"github.com/runventure/marathon-finder/internal/models"
)

// Answer values for the three quiz questions.
const (
	ExperienceBeginner     = "beginner"
	ExperienceIntermediate = "intermediate"
	ExperienceAdvanced     = "advanced"

	LocationDomestic      = "domestic"
	LocationInternational = "international"
	LocationBoth          = "both"

	WeatherSunny = "sunny"
	WeatherCool  = "cool"
	WeatherAny   = "any"
)

// MaxResults caps how many recommendations a quiz run returns.
const MaxResults = 3

// Answers is the triple collected by the quiz.
type Answers struct {
	Experience string `json:"experience" validate:"required,oneof=beginner intermediate advanced"`
	Location   string `json:"location" validate:"required,oneof=domestic international both"`
	Weather    string `json:"weather" validate:"required,oneof=sunny cool any"`
}

// Predicate returns the record predicate encoded by the answer triple.
// The rules are deliberately coarse: beginners get easy courses only,
// advanced runners skip them, and "cool" simply means not sunny.
func Predicate(a Answers) func(models.Marathon) bool {
	return func(m models.Marathon) bool {
		if a.Experience == ExperienceBeginner && m.Difficulty != models.DifficultyEasy {
			return false
		}
		if a.Experience == ExperienceAdvanced && m.Difficulty == models.DifficultyEasy {
			return false
		}
		if a.Location == LocationDomestic && m.Type != models.TypeDomestic {
			return false
		}
		if a.Location == LocationInternational && m.Type != models.TypeInternational {
			return false
		}
		if a.Weather == WeatherSunny && m.Weather.Condition != models.WeatherSunny {
			return false
		}
		if a.Weather == WeatherCool && m.Weather.Condition == models.WeatherSunny {
			return false
		}
		return true
	}
}

// Pick returns up to MaxResults matching records in their original order.
func Pick(records []models.Marathon, a Answers) []models.Marathon {
	match := Predicate(a)
	out := make([]models.Marathon, 0, MaxResults)
	for _, m := range records {
		if !match(m) {
			continue
		}
		out = append(out, m)
		if len(out) == MaxResults {
			break
		}
	}
	return out
}
