package client

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runventure/marathon-finder/internal/models"
)

func newTestServer(t *testing.T, hits *atomic.Int64, records []models.Marathon) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/marathons":
			_ = json.NewEncoder(w).Encode(records)
		case "/api/marathons/1":
			_ = json.NewEncoder(w).Encode(records[0])
		default:
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Marathon not found"})
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestMarathons_FreshEntryServedWithoutRequest(t *testing.T) {
	var hits atomic.Int64
	srv := newTestServer(t, &hits, []models.Marathon{{ID: 1, Name: "서울 국제 마라톤"}})

	c := New(srv.URL, testLogger())

	first, err := c.Marathons(context.Background(), models.FilterCriteria{})
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, int64(1), hits.Load())

	second, err := c.Marathons(context.Background(), models.FilterCriteria{})
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, int64(1), hits.Load(), "fresh entry must not trigger a request")
}

func TestMarathons_DistinctCriteriaAreDistinctEntries(t *testing.T) {
	var hits atomic.Int64
	srv := newTestServer(t, &hits, []models.Marathon{{ID: 1, Name: "서울 국제 마라톤"}})

	c := New(srv.URL, testLogger())

	_, err := c.Marathons(context.Background(), models.FilterCriteria{})
	require.NoError(t, err)
	_, err = c.Marathons(context.Background(), models.FilterCriteria{Difficulty: "easy"})
	require.NoError(t, err)

	assert.Equal(t, int64(2), hits.Load())
}

func TestMarathons_StaleEntryServedThenRefetched(t *testing.T) {
	var hits atomic.Int64
	srv := newTestServer(t, &hits, []models.Marathon{{ID: 1, Name: "서울 국제 마라톤"}})

	c := New(srv.URL, testLogger(), WithWindows(10*time.Millisecond, time.Minute))

	_, err := c.Marathons(context.Background(), models.FilterCriteria{})
	require.NoError(t, err)
	require.Equal(t, int64(1), hits.Load())

	time.Sleep(30 * time.Millisecond)

	// The stale entry comes back immediately, the refetch runs behind it.
	got, err := c.Marathons(context.Background(), models.FilterCriteria{})
	require.NoError(t, err)
	assert.Len(t, got, 1)

	assert.Eventually(t, func() bool {
		return hits.Load() == 2
	}, time.Second, 5*time.Millisecond)
}

func TestMarathon_NonPositiveIDIsDisabled(t *testing.T) {
	var hits atomic.Int64
	srv := newTestServer(t, &hits, []models.Marathon{{ID: 1, Name: "서울 국제 마라톤"}})

	c := New(srv.URL, testLogger())

	for _, id := range []int{0, -1} {
		m, err := c.Marathon(context.Background(), id)
		require.NoError(t, err)
		assert.Nil(t, m)
	}
	assert.Equal(t, int64(0), hits.Load(), "disabled lookup must not touch the network")
}

func TestMarathon_FetchesAndCaches(t *testing.T) {
	var hits atomic.Int64
	srv := newTestServer(t, &hits, []models.Marathon{{ID: 1, Name: "서울 국제 마라톤"}})

	c := New(srv.URL, testLogger())

	m, err := c.Marathon(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, "서울 국제 마라톤", m.Name)

	_, err = c.Marathon(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), hits.Load())
}

func TestMarathon_ErrorBodyIsSurfaced(t *testing.T) {
	var hits atomic.Int64
	srv := newTestServer(t, &hits, []models.Marathon{{ID: 1, Name: "서울 국제 마라톤"}})

	c := New(srv.URL, testLogger())

	_, err := c.Marathon(context.Background(), 999)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Marathon not found")
}
