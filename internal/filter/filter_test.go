package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/runventure/marathon-finder/internal/models"
)

func sample() []models.Marathon {
	return []models.Marathon{
		{
			ID:         1,
			Name:       "Seoul Marathon",
			Date:       "2026년 3월 15일",
			Location:   "서울",
			Country:    "한국",
			Type:       models.TypeDomestic,
			Distances:  []string{"10km", "하프", "풀코스"},
			Difficulty: models.DifficultyEasy,
		},
		{
			ID:         2,
			Name:       "도쿄 마라톤",
			Date:       "2026년 3월 1일",
			Location:   "도쿄",
			Country:    "일본",
			Type:       models.TypeInternational,
			Distances:  []string{"풀코스"},
			Difficulty: models.DifficultyMedium,
		},
		{
			ID:         3,
			Name:       "춘천 마라톤",
			Date:       "2026년 10월 25일",
			Location:   "춘천",
			Country:    "한국",
			Type:       models.TypeDomestic,
			Distances:  []string{"10km", "풀코스"},
			Difficulty: models.DifficultyEasy,
		},
	}
}

func ids(ms []models.Marathon) []int {
	res := make([]int, 0, len(ms))
	for _, m := range ms {
		res = append(res, m.ID)
	}
	return res
}

func TestApply_EmptyCriteriaReturnsAllInOrder(t *testing.T) {
	got := Apply(sample(), models.FilterCriteria{})
	assert.Equal(t, []int{1, 2, 3}, ids(got))
}

func TestApply_AllSentinelImposesNoConstraint(t *testing.T) {
	got := Apply(sample(), models.FilterCriteria{
		Type:       All,
		Distance:   All,
		Difficulty: All,
	})
	assert.Equal(t, []int{1, 2, 3}, ids(got))
}

func TestApply_SingleCriteria(t *testing.T) {
	tests := []struct {
		name     string
		criteria models.FilterCriteria
		want     []int
	}{
		{"by type", models.FilterCriteria{Type: "domestic"}, []int{1, 3}},
		{"by difficulty", models.FilterCriteria{Difficulty: "easy"}, []int{1, 3}},
		{"by distance containment", models.FilterCriteria{Distance: "하프"}, []int{1}},
		{"by month", models.FilterCriteria{Month: 10}, []int{3}},
		{"by month without matches", models.FilterCriteria{Month: 7}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(sample(), tt.criteria)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestApply_SearchIsCaseInsensitive(t *testing.T) {
	for _, q := range []string{"seoul", "SEOUL", "Seoul"} {
		got := Apply(sample(), models.FilterCriteria{Search: q})
		assert.Equal(t, []int{1}, ids(got), "query %q", q)
	}
}

func TestApply_SearchMatchesLocationAndCountry(t *testing.T) {
	assert.Equal(t, []int{2}, ids(Apply(sample(), models.FilterCriteria{Search: "도쿄"})))
	assert.Equal(t, []int{1, 3}, ids(Apply(sample(), models.FilterCriteria{Search: "한국"})))
}

func TestApply_CriteriaCombineAsConjunction(t *testing.T) {
	got := Apply(sample(), models.FilterCriteria{
		Type:       "domestic",
		Difficulty: "easy",
		Month:      3,
	})
	assert.Equal(t, []int{1}, ids(got))
}

func TestApply_NoMatchesReturnsEmptyNotNil(t *testing.T) {
	got := Apply(sample(), models.FilterCriteria{Search: "nowhere"})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMatches_RecordWithoutParsableMonth(t *testing.T) {
	m := models.Marathon{ID: 9, Name: "X", Date: "날짜 정보 없음"}
	assert.True(t, Matches(m, models.FilterCriteria{}))
	assert.False(t, Matches(m, models.FilterCriteria{Month: 4}))
}
