package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCounter struct{ a, p, c int }

func (s stubCounter) Counts() (int, int, int) { return s.a, s.p, s.c }

type stubBus int

func (b stubBus) Len() int { return int(b) }

func TestHealthHandler(t *testing.T) {
	h := &HealthHandler{Store: stubCounter{3, 3, 4}, Bus: stubBus(2), Version: "test"}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "no-cache, no-store, must-revalidate", rr.Header().Get("Cache-Control"))

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, map[string]int{"accounts": 3, "posts": 3, "comments": 4}, resp.Entities)
	assert.Equal(t, 2, resp.Subscriptions)
	assert.Equal(t, "test", resp.Version)
}

func TestReadyHandler(t *testing.T) {
	h := &ReadyHandler{}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)

	h.SetReady(true)
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ready", rr.Body.String())
}

func TestLiveHandler(t *testing.T) {
	rr := httptest.NewRecorder()
	(&LiveHandler{}).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/live", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "alive", rr.Body.String())
}
