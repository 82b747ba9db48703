package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/questparty/questparty-api/internal/mocks"
	"github.com/stretchr/testify/assert"
)

func TestHealth(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		deps := newTestDeps()

		rec, env := doRequest(t, deps.router(), http.MethodGet, "/api/health", "", false)

		assert.Equal(t, http.StatusOK, rec.Code)
		got := decodeData[HealthResponse](t, env)
		assert.Equal(t, "ok", got.Status)
		assert.Empty(t, got.Cache, "cache is omitted when not configured")
	})

	t.Run("cache reachable", func(t *testing.T) {
		deps := newTestDeps()
		deps.cache = &mocks.MockPinger{}

		rec, env := doRequest(t, deps.router(), http.MethodGet, "/api/health", "", false)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, CacheStatusOK, decodeData[HealthResponse](t, env).Cache)
	})

	t.Run("cache down is reported but not fatal", func(t *testing.T) {
		deps := newTestDeps()
		deps.cache = &mocks.MockPinger{Err: errors.New("dial tcp: connection refused")}

		rec, env := doRequest(t, deps.router(), http.MethodGet, "/api/health", "", false)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, env.Success)
		got := decodeData[HealthResponse](t, env)
		assert.Equal(t, "ok", got.Status)
		assert.Equal(t, CacheStatusUnavailable, got.Cache)
	})

	t.Run("database down", func(t *testing.T) {
		deps := newTestDeps()
		deps.pinger.Err = errors.New("connection refused")

		rec, env := doRequest(t, deps.router(), http.MethodGet, "/api/health", "", false)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.False(t, env.Success)
		assert.Equal(t, MsgServiceUnhealthy, env.Error)
	})
}

func TestUnmatchedRoutes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantError  string
	}{
		{"unknown path", http.MethodGet, "/api/monsters", http.StatusNotFound, MsgRouteNotFound},
		{"wrong method", http.MethodDelete, "/api/health", http.StatusMethodNotAllowed, MsgMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := doRequest(t, newTestDeps().router(), tt.method, tt.path, "", false)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.False(t, env.Success)
			assert.Equal(t, tt.wantError, env.Error)
		})
	}
}
