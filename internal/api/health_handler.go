package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/questparty/questparty-api/internal/api/shared"
	"github.com/questparty/questparty-api/internal/platform/logger"
	"github.com/questparty/questparty-api/internal/redact"
)

// Health states reported for the optional cache.
const (
	CacheStatusOK          = "ok"
	CacheStatusUnavailable = "unavailable"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// CachePinger is satisfied by the Redis client.
type CachePinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports whether the service can reach its backing stores.
type HealthHandler struct {
	db      Pinger
	cache   CachePinger
	timeout time.Duration
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db, timeout: 2 * time.Second}
}

// WithCache adds the Redis cache to the check. A nil cache leaves it out.
func (h *HealthHandler) WithCache(cache CachePinger) *HealthHandler {
	h.cache = cache
	return h
}

// Check handles GET /health. The database is required; the cache is
// optional, so an unreachable cache is reported but still answers 200.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		shared.RespondErrorAndLog(w, r, http.StatusServiceUnavailable, MsgServiceUnhealthy, err)
		return
	}

	resp := HealthResponse{Status: "ok"}
	if h.cache != nil {
		resp.Cache = CacheStatusOK
		if err := h.cache.Ping(ctx); err != nil {
			logger.FromContext(r.Context()).Warn("cache health check failed", slog.String("error", redact.Error(err)))
			resp.Cache = CacheStatusUnavailable
		}
	}

	shared.RespondSuccess(w, r, resp, "")
}
