// Package http holds the gateway's shared HTTP pieces: middleware, health probes
// and metrics exposure. Entity routes live in the account, post, comment and
// subscription subpackages.
package http

import (
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"postboard/internal/handler/http/respond"
)

// EntityCounter reports collection sizes. *memory.Store implements it.
type EntityCounter interface {
	Counts() (accounts, posts, comments int)
}

// SubscriptionCounter reports live event subscriptions. *eventbus.Bus implements it.
type SubscriptionCounter interface {
	Len() int
}

// HealthResponse represents the JSON response for the health endpoint.
type HealthResponse struct {
	Status        string         `json:"status"`
	Timestamp     string         `json:"timestamp"`
	Version       string         `json:"version,omitempty"`
	Entities      map[string]int `json:"entities"`
	Subscriptions int            `json:"subscriptions"`
}

// HealthHandler reports service status with entity and subscription counts.
type HealthHandler struct {
	Store   EntityCounter
	Bus     SubscriptionCounter
	Version string
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	accounts, posts, comments := h.Store.Counts()
	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   h.Version,
		Entities: map[string]int{
			"accounts": accounts,
			"posts":    posts,
			"comments": comments,
		},
	}
	if h.Bus != nil {
		resp.Subscriptions = h.Bus.Len()
	}

	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respond.JSON(w, http.StatusOK, resp)
}

// ReadyHandler answers readiness probes. It reports 503 until the seed has
// loaded and again once shutdown has begun.
type ReadyHandler struct {
	ready atomic.Bool
}

// SetReady flips the readiness state.
func (h *ReadyHandler) SetReady(ready bool) {
	h.ready.Store(ready)
}

func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !h.ready.Load() {
		writeText(w, http.StatusServiceUnavailable, "not ready")
		return
	}
	writeText(w, http.StatusOK, "ready")
}

// LiveHandler answers liveness probes.
type LiveHandler struct{}

func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusOK, "alive")
}

func writeText(w http.ResponseWriter, code int, body string) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(code)
	if _, err := w.Write([]byte(body)); err != nil {
		slog.Default().Warn("failed to write probe response", slog.Any("error", err))
	}
}
