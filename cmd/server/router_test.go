package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/questparty/questparty-api/internal/config"
	"github.com/questparty/questparty-api/internal/domain"
	"github.com/questparty/questparty-api/internal/mocks"
	"github.com/questparty/questparty-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(environment string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:                   8080,
			LogLevel:               "info",
			Environment:            environment,
			ReadTimeoutSeconds:     5,
			WriteTimeoutSeconds:    10,
			ShutdownTimeoutSeconds: 10,
		},
		Auth: config.AuthConfig{
			JWTSecret:            "router-test-secret-that-is-32-chars-long",
			TokenLifetimeMinutes: 15,
		},
	}
}

// newTestApplication wires the real router and verifier over mock stores.
func newTestApplication(t *testing.T, environment string, users *mocks.MockUserStore) *application {
	t.Helper()

	cfg := testConfig(environment)
	jwtService, err := auth.NewJWTService(cfg.Auth)
	require.NoError(t, err)

	return &application{
		config:       cfg,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		health:       &mocks.MockPinger{},
		userStore:    users,
		partyStore:   mocks.NewMockPartyStore(),
		victoryStore: mocks.NewMockVictoryStore(),
		jwtService:   jwtService,
	}
}

func serve(t *testing.T, h http.Handler, method, path, token string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), "body: %s", rec.Body.String())
	return rec, body
}

func TestRouter_EndToEnd(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	users := mocks.NewMockUserStore(&domain.User{
		ID:          userID,
		Email:       "ranger@example.com",
		DisplayName: "Ranger",
		Timezone:    "Europe/Berlin",
	})
	app := newTestApplication(t, "development", users)
	router := app.setupRouter()

	token, err := app.jwtService.GenerateToken(context.Background(), userID)
	require.NoError(t, err)

	t.Run("health is public", func(t *testing.T) {
		rec, body := serve(t, router, http.MethodGet, "/api/health", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, map[string]any{"status": "ok"}, body["data"])
		assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
	})

	t.Run("health reports an unreachable cache", func(t *testing.T) {
		withCache := newTestApplication(t, "development", users)
		withCache.cacheHealth = &mocks.MockPinger{Err: errors.New("connection refused")}

		rec, body := serve(t, withCache.setupRouter(), http.MethodGet, "/api/health", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, map[string]any{"status": "ok", "cache": "unavailable"}, body["data"])
	})

	t.Run("me requires a token", func(t *testing.T) {
		rec, body := serve(t, router, http.MethodGet, "/api/auth/me", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, false, body["success"])
		assert.NotContains(t, body, "data")
	})

	t.Run("me rejects a forged token", func(t *testing.T) {
		rec, _ := serve(t, router, http.MethodGet, "/api/auth/me", token+"x")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("me with a valid token", func(t *testing.T) {
		rec, body := serve(t, router, http.MethodGet, "/api/auth/me", token)
		require.Equal(t, http.StatusOK, rec.Code)
		data, ok := body["data"].(map[string]any)
		require.True(t, ok)
		user, ok := data["user"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, userID.String(), user["id"])
		assert.Equal(t, "ranger@example.com", user["email"])
	})

	t.Run("unknown route", func(t *testing.T) {
		rec, body := serve(t, router, http.MethodGet, "/api/monsters", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Route not found", body["error"])
	})

	t.Run("wrong method", func(t *testing.T) {
		rec, body := serve(t, router, http.MethodDelete, "/api/health", "")
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.Equal(t, false, body["success"])
	})
}

func TestRouter_DiagnosticsByEnvironment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		environment string
		wantDetails bool
	}{
		{environment: "development", wantDetails: true},
		{environment: "staging", wantDetails: true},
		{environment: "production", wantDetails: false},
	}

	for _, tt := range tests {
		t.Run(tt.environment, func(t *testing.T) {
			users := mocks.NewMockUserStore()
			users.GetByIDFn = func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
				return nil, errors.New("connection reset by peer")
			}
			app := newTestApplication(t, tt.environment, users)
			token, err := app.jwtService.GenerateToken(context.Background(), uuid.New())
			require.NoError(t, err)

			rec, body := serve(t, app.setupRouter(), http.MethodGet, "/api/auth/me", token)

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.Equal(t, "An unexpected error occurred", body["error"])
			if tt.wantDetails {
				assert.Equal(t, "connection reset by peer", body["details"])
			} else {
				assert.NotContains(t, body, "details")
			}
		})
	}
}
