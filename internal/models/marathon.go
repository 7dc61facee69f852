// Package models contains the domain structures for marathon events:
// the canonical record served over the API, the raw shapes accepted from
// external sources, and the filter criteria narrowing a listing.
package models

// EventType tells whether an event is held domestically or abroad.
type EventType string

// Possible event types.
const (
	TypeDomestic      EventType = "domestic"
	TypeInternational EventType = "international"
)

// Difficulty is the three-level qualitative difficulty scale.
type Difficulty string

// Possible difficulty levels.
const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// WeatherCondition is the expected race-day weather.
type WeatherCondition string

// Possible weather conditions.
const (
	WeatherSunny  WeatherCondition = "sunny"
	WeatherCloudy WeatherCondition = "cloudy"
	WeatherRainy  WeatherCondition = "rainy"
	WeatherSnowy  WeatherCondition = "snowy"
)

// Marathon is the canonical marathon record, fully populated after
// normalization. Date is a localized display string that embeds the month
// as "<n>월"; Participants and Price are pre-formatted display strings.
type Marathon struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Date         string     `json:"date"`
	Location     string     `json:"location"`
	Country      string     `json:"country"`
	Type         EventType  `json:"type"`
	Distances    []string   `json:"distances"`
	Participants string     `json:"participants"`
	Difficulty   Difficulty `json:"difficulty"`
	Weather      Weather    `json:"weather"`
	Scenery      string     `json:"scenery"`
	Price        string     `json:"price"`
	Details      Details    `json:"details"`
}

// Weather holds the expected conditions for race day.
type Weather struct {
	Condition   WeatherCondition `json:"condition"`
	Temperature string           `json:"temperature"`
	Description string           `json:"description"`
}

// Details carries the long-form event information shown on the detail view.
type Details struct {
	CourseDescription string   `json:"courseDescription"`
	Elevation         string   `json:"elevation"`
	Services          []string `json:"services"`
	Deadline          string   `json:"deadline"`
	Website           string   `json:"website"`
	StartTime         string   `json:"startTime"`
	Parking           string   `json:"parking"`
}

// FilterCriteria narrows a marathon listing. Zero values impose no
// constraint; the literal "all" is equivalent to omission. Month is 1-12,
// 0 meaning unconstrained. Criteria are built per request, never stored.
type FilterCriteria struct {
	Type       string
	Distance   string
	Difficulty string
	Month      int
	Search     string
}
