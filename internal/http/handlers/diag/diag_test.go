package diag

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/runventure/marathon-finder/internal/storage/pg"
)

type MockProber struct {
	mock.Mock
}

func (m *MockProber) Status(ctx context.Context) pg.Status {
	args := m.Called(ctx)
	return args.Get(0).(pg.Status)
}

func (m *MockProber) TableInfo(ctx context.Context, table string) (*pg.TableInfo, error) {
	args := m.Called(ctx, table)
	if res := args.Get(0); res != nil {
		return res.(*pg.TableInfo), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestDBHealthHandler_Unconfigured(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	handler := NewDBHealth(logger, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/health/db", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "database diagnostics not configured")
}

func TestDBHealthHandler_ReportsStatus(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	prober := new(MockProber)
	prober.On("Status", mock.Anything).Return(pg.Status{
		Connected:   true,
		TableExists: true,
		RecordCount: 12,
	})

	handler := NewDBHealth(logger, prober)

	req := httptest.NewRequest(http.MethodGet, "/api/health/db", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"connected":true`)
	prober.AssertExpectations(t)
}

func TestTableInfoHandler_DefaultsToMarathons(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	prober := new(MockProber)
	prober.On("TableInfo", mock.Anything, "marathons").Return(&pg.TableInfo{
		TableName:   "marathons",
		RecordCount: 12,
	}, nil)

	handler := NewTableInfo(logger, prober)

	req := httptest.NewRequest(http.MethodGet, "/api/table-info", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"marathons"`)
	prober.AssertExpectations(t)
}

func TestTableInfoHandler_UsesURLParam(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	prober := new(MockProber)
	prober.On("TableInfo", mock.Anything, "runners").Return(nil, errors.New("relation does not exist"))

	handler := NewTableInfo(logger, prober)

	req := httptest.NewRequest(http.MethodGet, "/api/table-info/runners", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("table", "runners")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, strings.ToLower(w.Body.String()), "internal server error")
	prober.AssertExpectations(t)
}
