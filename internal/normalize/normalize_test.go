package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runventure/marathon-finder/internal/models"
)

func TestRecord_EmptyInputGetsAllFallbacks(t *testing.T) {
	m := Record(models.RawMarathon{ID: 1})

	assert.Equal(t, 1, m.ID)
	assert.Equal(t, UnknownName, m.Name)
	assert.Equal(t, UnknownDate, m.Date)
	assert.Equal(t, UnknownLocation, m.Location)
	assert.Equal(t, UnknownCountry, m.Country)
	assert.Equal(t, models.TypeDomestic, m.Type)
	assert.Equal(t, []string{}, m.Distances)
	assert.Equal(t, UnknownInfo, m.Participants)
	assert.Equal(t, models.DifficultyMedium, m.Difficulty)
	assert.Equal(t, models.WeatherSunny, m.Weather.Condition)
	assert.Equal(t, UnknownInfo, m.Weather.Temperature)
	assert.Equal(t, UnknownWeatherInfo, m.Weather.Description)
	assert.Equal(t, UnknownScenery, m.Scenery)
	assert.Equal(t, UnknownInfo, m.Price)
	assert.Equal(t, UnknownCourse, m.Details.CourseDescription)
	assert.Equal(t, []string{}, m.Details.Services)
	assert.Equal(t, DefaultWebsite, m.Details.Website)
}

func TestRecord_RelationalColumnsTakePrecedence(t *testing.T) {
	review := "아름다운 코스"
	m := Record(models.RawMarathon{
		ID:               7,
		Name:             "canonical name",
		Title:            "부산 바다 마라톤",
		Date:             "2026년 5월 1일",
		EventDate:        "2026-09-21",
		Courses:          "풀코스, 하프, 10km",
		Scenery:          "canonical scenery",
		Review:           &review,
		Participants:     "8,000명",
		ParticipantLimit: "8000",
		Price:            "50,000원",
		Fee:              "50000",
		SourceURL:        "https://busan-marathon.example",
	})

	assert.Equal(t, "부산 바다 마라톤", m.Name)
	assert.Equal(t, "2026년 9월 21일", m.Date)
	assert.Equal(t, []string{"풀코스", "하프", "10km"}, m.Distances)
	assert.Equal(t, "아름다운 코스", m.Scenery)
	assert.Equal(t, "8,000명", m.Participants)
	assert.Equal(t, "50,000원", m.Price)
	assert.Equal(t, "https://busan-marathon.example", m.Details.Website)
}

func TestRecord_Idempotent(t *testing.T) {
	raw := models.RawMarathon{
		ID:           3,
		Name:         "제주 감귤 마라톤",
		Date:         "2026년 4월 12일",
		Location:     "제주",
		Country:      "한국",
		Type:         "domestic",
		Distances:    []string{"10km", "5km"},
		Participants: "5,000명",
		Difficulty:   "easy",
		Price:        "30,000원",
		Scenery:      "감귤밭 코스",
	}

	once := Record(raw)

	again := Record(models.RawMarathon{
		ID:           models.FlexInt(once.ID),
		Name:         once.Name,
		Date:         once.Date,
		Location:     once.Location,
		Country:      once.Country,
		Type:         string(once.Type),
		Distances:    once.Distances,
		Participants: once.Participants,
		Difficulty:   string(once.Difficulty),
		Price:        once.Price,
		Scenery:      once.Scenery,
	})

	assert.Equal(t, once.Name, again.Name)
	assert.Equal(t, once.Date, again.Date)
	assert.Equal(t, once.Distances, again.Distances)
	assert.Equal(t, once.Participants, again.Participants)
	assert.Equal(t, once.Price, again.Price)
	assert.Equal(t, once.Type, again.Type)
	assert.Equal(t, once.Difficulty, again.Difficulty)
}

func TestRecords_DropsRecordsWithoutValidID(t *testing.T) {
	out := Records([]models.RawMarathon{
		{ID: 1, Name: "first"},
		{ID: 0, Name: "no id"},
		{ID: 2, Name: "second"},
	})

	require.Len(t, out, 2)
	assert.Equal(t, 1, out[0].ID)
	assert.Equal(t, 2, out[1].ID)
}

func TestDifficulty_TokenMapping(t *testing.T) {
	tests := []struct {
		raw  string
		want models.Difficulty
	}{
		{"easy", models.DifficultyEasy},
		{"하", models.DifficultyEasy},
		{"초급", models.DifficultyEasy},
		{"hard", models.DifficultyHard},
		{"상", models.DifficultyHard},
		{"고급", models.DifficultyHard},
		{"medium", models.DifficultyMedium},
		{"중", models.DifficultyMedium},
		{"", models.DifficultyMedium},
		{"unknown token", models.DifficultyMedium},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, difficulty(tt.raw), "raw %q", tt.raw)
	}
}

func TestEventType_Inference(t *testing.T) {
	assert.Equal(t, models.TypeInternational, eventType("international", "한국"))
	assert.Equal(t, models.TypeDomestic, eventType("", ""))
	assert.Equal(t, models.TypeDomestic, eventType("", "대한민국"))
	assert.Equal(t, models.TypeDomestic, eventType("", "KR"))
	assert.Equal(t, models.TypeInternational, eventType("", "일본"))
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "30,000명", formatCount("30000", "명"))
	assert.Equal(t, "1,234,567원", formatCount("1234567", "원"))
	assert.Equal(t, "500명", formatCount("500", "명"))
	assert.Equal(t, UnknownInfo, formatCount("", "명"))
	assert.Equal(t, "약 3만명", formatCount("약 3만명", "명"))
}

func TestSplitCourses(t *testing.T) {
	assert.Equal(t, []string{"풀코스", "하프", "10km"}, splitCourses("풀코스, 하프 , 10km"))
	assert.Equal(t, []string{}, splitCourses(""))
	assert.Equal(t, []string{"풀코스"}, splitCourses("풀코스,,"))
}

func TestDetails_WebsiteFallbackChain(t *testing.T) {
	// details.website wins, then source_url, then the "#" placeholder.
	// The top-level website field is declared for decoding but never feeds
	// the details fallback.
	m := Record(models.RawMarathon{
		ID:        1,
		SourceURL: "https://source.example",
		Website:   "https://toplevel.example",
		Details:   &models.RawDetails{Website: "https://details.example"},
	})
	assert.Equal(t, "https://details.example", m.Details.Website)

	m = Record(models.RawMarathon{
		ID:        1,
		SourceURL: "https://source.example",
		Website:   "https://toplevel.example",
	})
	assert.Equal(t, "https://source.example", m.Details.Website)

	m = Record(models.RawMarathon{
		ID:      1,
		Website: "https://toplevel.example",
	})
	assert.Equal(t, DefaultWebsite, m.Details.Website)
}

func TestWeather_PartialObjectMergesLeafByLeaf(t *testing.T) {
	w := weather(&models.RawWeather{Temperature: "15°C"})

	assert.Equal(t, models.WeatherSunny, w.Condition)
	assert.Equal(t, "15°C", w.Temperature)
	assert.Equal(t, UnknownWeatherInfo, w.Description)
}
