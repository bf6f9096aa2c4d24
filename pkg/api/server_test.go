package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/govwatcher/govwatcher/pkg/config"
	"github.com/govwatcher/govwatcher/pkg/delivery"
	"github.com/govwatcher/govwatcher/pkg/metrics"
	"github.com/govwatcher/govwatcher/pkg/models"
	"github.com/govwatcher/govwatcher/pkg/scheduler"
	"github.com/govwatcher/govwatcher/pkg/watcher"
)

// idleChain reports no active proposals so a forced tick is a no-op.
type idleChain struct{}

func (idleChain) ListActive(context.Context) ([]models.ProposalSummary, error) { return nil, nil }
func (idleChain) Fetch(context.Context, int64) (*models.Proposal, error) {
	return nil, errors.New("not found")
}

type idleCursorStore struct{}

func (idleCursorStore) Get(context.Context, string) (*models.Cursor, error) { return nil, nil }
func (idleCursorStore) Save(context.Context, models.Cursor) error           { return nil }

func newTestServer(t *testing.T) *Server {
	t.Helper()

	cfg := &config.Config{
		ChainRegistry: config.NewChainRegistry(map[string]*config.ChainConfig{
			"testchain-1": {Name: "Test Chain", Endpoints: []string{"https://rest.example.com"}},
		}),
		LLMProviderRegistry: config.NewLLMProviderRegistry(map[string]*config.LLMProviderConfig{
			"rules": {Type: config.LLMProviderTypeRules},
		}),
	}

	promReg := prometheus.NewRegistry()
	reg := metrics.NewRegistry(promReg)
	gate := delivery.NewGate(nil, nil, time.Second, nil)

	sched := scheduler.New(config.DefaultSchedulerConfig(), "", nil, nil, nil, gate, nil)
	sched.AddWatcher(watcher.New("testchain-1", "Test Chain", idleChain{}, nil, idleCursorStore{}, nil, nil))

	return NewServer(cfg, nil, gate, sched, reg, promReg)
}

func TestPauseHandler(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/pause",
		strings.NewReader(`{"paused": true}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "deliveries paused")
	assert.True(t, s.gate.Paused())

	req = httptest.NewRequest(http.MethodPost, "/api/v1/admin/pause",
		strings.NewReader(`{"paused": false}`))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "deliveries resumed")
	assert.False(t, s.gate.Paused())
}

func TestStatsHandler(t *testing.T) {
	s := newTestServer(t)
	s.metrics.IncTick()
	s.metrics.IncDelivery()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"ticks":1`)
	assert.Contains(t, body, `"deliveries":1`)
	assert.Contains(t, body, `"chains":1`)
	assert.Contains(t, body, `"deliveries_paused":false`)
}

func TestTickHandler(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/tick/testchain-1", nil)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "tick completed")
}

func TestTickHandlerUnknownChain(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/tick/otherchain-9", nil)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)
	s.metrics.IncTick()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "govwatcher_watcher_ticks_total 1")
}

func TestSecurityHeaders(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
}
