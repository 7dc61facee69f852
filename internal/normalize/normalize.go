// Package normalize converts raw marathon records of either external shape
// into the canonical model. Conversion never fails: every missing or
// malformed field is absorbed into a documented fallback so the output
// always satisfies the canonical invariants.
package normalize

import (
	"strconv"
	"strings"

	"github.com/runventure/marathon-finder/internal/lib/kdate"
	"github.com/runventure/marathon-finder/internal/models"
)

// Display placeholders substituted for absent or malformed fields.
const (
	UnknownName        = "이름 없음"
	UnknownDate        = "날짜 정보 없음"
	UnknownLocation    = "위치 정보 없음"
	UnknownCountry     = "국가 정보 없음"
	UnknownInfo        = "정보 없음"
	UnknownWeatherInfo = "날씨 정보 없음"
	UnknownScenery     = "풍경 정보 없음"
	UnknownCourse      = "코스 설명 없음"
	DefaultWebsite     = "#"
)

// domesticCountries are the spellings under which a record counts as a
// domestic event when it carries no explicit type.
var domesticCountries = map[string]struct{}{
	"한국":   {},
	"대한민국": {},
	"KR":   {},
}

// Record converts one raw record into a canonical Marathon. The relational
// column (title, event_date, courses, fee, participant_limit, review,
// source_url) takes precedence over its canonical twin when both are set.
// An invalid identifier becomes 0; callers doing bulk conversion drop such
// records via Records.
func Record(raw models.RawMarathon) models.Marathon {
	country := fallback(raw.Country, UnknownCountry)

	return models.Marathon{
		ID:           int(raw.ID),
		Name:         fallback(first(raw.Title, raw.Name), UnknownName),
		Date:         formatDate(first(raw.EventDate, raw.Date)),
		Location:     fallback(raw.Location, UnknownLocation),
		Country:      country,
		Type:         eventType(raw.Type, raw.Country),
		Distances:    distances(raw),
		Participants: formatCount(first(string(raw.ParticipantLimit), raw.Participants), "명"),
		Difficulty:   difficulty(raw.Difficulty),
		Weather:      weather(raw.Weather),
		Scenery:      fallback(first(deref(raw.Review), raw.Scenery), UnknownScenery),
		Price:        formatCount(first(string(raw.Fee), raw.Price), "원"),
		Details:      details(raw),
	}
}

// Records converts a batch, silently dropping every record whose normalized
// identifier is not strictly positive.
func Records(raws []models.RawMarathon) []models.Marathon {
	out := make([]models.Marathon, 0, len(raws))
	for _, raw := range raws {
		m := Record(raw)
		if m.ID > 0 {
			out = append(out, m)
		}
	}
	return out
}

// formatDate reformats ISO dates into the localized display form and passes
// already-localized strings through unchanged. The fallback placeholder
// contains no month marker, so such records extract to month 0.
func formatDate(date string) string {
	if date == "" {
		return UnknownDate
	}
	if display, ok := kdate.FormatISO(date); ok {
		return display
	}
	return date
}

func difficulty(raw string) models.Difficulty {
	switch strings.ToLower(raw) {
	case "하", "초급", "easy":
		return models.DifficultyEasy
	case "상", "고급", "hard":
		return models.DifficultyHard
	default:
		return models.DifficultyMedium
	}
}

func eventType(explicit, country string) models.EventType {
	switch explicit {
	case string(models.TypeDomestic):
		return models.TypeDomestic
	case string(models.TypeInternational):
		return models.TypeInternational
	}
	if country == "" {
		return models.TypeDomestic
	}
	if _, ok := domesticCountries[country]; ok {
		return models.TypeDomestic
	}
	return models.TypeInternational
}

func distances(raw models.RawMarathon) []string {
	if len(raw.Distances) > 0 {
		return append([]string(nil), raw.Distances...)
	}
	return splitCourses(raw.Courses)
}

// splitCourses turns "Full, 10km, 5km" into its trimmed segments, dropping
// the empty ones.
func splitCourses(courses string) []string {
	out := []string{}
	for _, c := range strings.Split(courses, ",") {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}

// formatCount thousands-groups integer values and appends the unit suffix;
// pre-formatted display strings pass through verbatim.
func formatCount(value, suffix string) string {
	if value == "" {
		return UnknownInfo
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return value
	}
	return groupThousands(n) + suffix
}

func groupThousands(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		s = "-" + s
	}
	return s
}

// weather merges a possibly partial weather object leaf-by-leaf against the
// fallbacks; a nil parent yields the all-fallback object.
func weather(raw *models.RawWeather) models.Weather {
	w := models.Weather{
		Condition:   models.WeatherSunny,
		Temperature: UnknownInfo,
		Description: UnknownWeatherInfo,
	}
	if raw == nil {
		return w
	}
	if raw.Condition != "" {
		w.Condition = models.WeatherCondition(raw.Condition)
	}
	if raw.Temperature != "" {
		w.Temperature = raw.Temperature
	}
	if raw.Description != "" {
		w.Description = raw.Description
	}
	return w
}

func details(raw models.RawMarathon) models.Details {
	d := models.Details{
		CourseDescription: UnknownCourse,
		Elevation:         UnknownInfo,
		Services:          []string{},
		Deadline:          UnknownInfo,
		Website:           first(raw.SourceURL, DefaultWebsite),
		StartTime:         UnknownInfo,
		Parking:           UnknownInfo,
	}
	if raw.Details == nil {
		return d
	}
	if raw.Details.CourseDescription != "" {
		d.CourseDescription = raw.Details.CourseDescription
	}
	if raw.Details.Elevation != "" {
		d.Elevation = raw.Details.Elevation
	}
	if raw.Details.Services != nil {
		d.Services = append([]string{}, raw.Details.Services...)
	}
	if raw.Details.Deadline != "" {
		d.Deadline = raw.Details.Deadline
	}
	if raw.Details.Website != "" {
		d.Website = raw.Details.Website
	}
	if raw.Details.StartTime != "" {
		d.StartTime = raw.Details.StartTime
	}
	if raw.Details.Parking != "" {
		d.Parking = raw.Details.Parking
	}
	return d
}

func first(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func fallback(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
