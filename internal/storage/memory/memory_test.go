package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runventure/marathon-finder/internal/models"
	"github.com/runventure/marathon-finder/internal/storage"
)

func ids(ms []models.Marathon) []int {
	res := make([]int, 0, len(ms))
	for _, m := range ms {
		res = append(res, m.ID)
	}
	return res
}

func TestList_ReturnsSeedInOrder(t *testing.T) {
	s := New(Seed())

	got, err := s.List(context.Background(), models.FilterCriteria{})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, ids(got))
}

func TestList_EasyAprilScenario(t *testing.T) {
	s := New(Seed())

	got, err := s.List(context.Background(), models.FilterCriteria{
		Difficulty: "easy",
		Month:      4,
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 11, got[0].ID)
	assert.Equal(t, "대구 국제 마라톤", got[0].Name)
}

func TestList_CancelledContext(t *testing.T) {
	s := New(Seed())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.List(ctx, models.FilterCriteria{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGetByID(t *testing.T) {
	s := New(Seed())

	m, err := s.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "서울 국제 마라톤", m.Name)

	_, err = s.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestCreate_AssignsNextID(t *testing.T) {
	s := New(Seed())

	created, err := s.Create(context.Background(), models.RawMarathon{
		Name:     "테스트 마라톤",
		Location: "수원",
		Country:  "한국",
	})
	require.NoError(t, err)
	assert.Equal(t, 13, created.ID)
	assert.Equal(t, "테스트 마라톤", created.Name)
	assert.Equal(t, models.TypeDomestic, created.Type)

	stored, err := s.GetByID(context.Background(), 13)
	require.NoError(t, err)
	assert.Equal(t, created.Name, stored.Name)
}

func TestCreate_KeepsExplicitID(t *testing.T) {
	s := New(nil)

	created, err := s.Create(context.Background(), models.RawMarathon{ID: 42, Name: "X"})
	require.NoError(t, err)
	assert.Equal(t, 42, created.ID)

	next, err := s.Create(context.Background(), models.RawMarathon{Name: "Y"})
	require.NoError(t, err)
	assert.Equal(t, 43, next.ID)
}

func TestUpdate_MergesOnlyProvidedFields(t *testing.T) {
	s := New(Seed())

	before, err := s.GetByID(context.Background(), 1)
	require.NoError(t, err)

	updated, err := s.Update(context.Background(), 1, models.RawMarathon{
		Difficulty: "hard",
	})
	require.NoError(t, err)

	assert.Equal(t, models.DifficultyHard, updated.Difficulty)
	assert.Equal(t, before.Name, updated.Name)
	assert.Equal(t, before.Date, updated.Date)
	assert.Equal(t, before.Distances, updated.Distances)
	assert.Equal(t, before.Weather, updated.Weather)
	assert.Equal(t, before.Details, updated.Details)
}

func TestUpdate_NotFound(t *testing.T) {
	s := New(Seed())

	_, err := s.Update(context.Background(), 999, models.RawMarathon{Name: "X"})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDelete(t *testing.T) {
	s := New(Seed())

	require.NoError(t, s.Delete(context.Background(), 5))

	_, err := s.GetByID(context.Background(), 5)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	assert.ErrorIs(t, s.Delete(context.Background(), 5), storage.ErrNotFound)
}
