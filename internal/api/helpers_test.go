package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/questparty/questparty-api/internal/api/middleware"
	"github.com/questparty/questparty-api/internal/domain"
	"github.com/questparty/questparty-api/internal/mocks"
	"github.com/questparty/questparty-api/internal/service/auth"
	"github.com/stretchr/testify/require"
)

const testToken = "Bearer test-token"

// testDeps holds the mocks behind a test router.
type testDeps struct {
	userID    uuid.UUID
	users     *mocks.MockUserStore
	parties   *mocks.MockPartyStore
	victories *mocks.MockVictoryStore
	pinger    *mocks.MockPinger
	cache     CachePinger
	jwt       *mocks.MockJWTService
}

func newTestDeps() *testDeps {
	userID := uuid.New()
	return &testDeps{
		userID:    userID,
		users:     mocks.NewMockUserStore(),
		parties:   mocks.NewMockPartyStore(),
		victories: mocks.NewMockVictoryStore(),
		pinger:    &mocks.MockPinger{},
		jwt:       mocks.NewAuthenticatedJWTService(userID),
	}
}

// router serves the API routes over the mocks.
func (d *testDeps) router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	RegisterRoutes(r, Handlers{
		Auth:    NewAuthHandler(d.users),
		Profile: NewProfileHandler(d.users),
		Party:   NewPartyHandler(d.parties),
		Victory: NewVictoryHandler(d.victories),
		Health:  NewHealthHandler(d.pinger).WithCache(d.cache),
	}, middleware.NewAuthMiddleware(d.jwt).Authenticate)
	return r
}

func (d *testDeps) seedUser() *domain.User {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	user := &domain.User{
		ID:             d.userID,
		Email:          "hero@example.com",
		DisplayName:    "Hero",
		Timezone:       "UTC",
		CharacterName:  "Squire",
		OnboardingStep: 1,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	d.users.Users[user.ID] = user
	return user
}

func (d *testDeps) rejectAllTokens() {
	d.jwt = &mocks.MockJWTService{ValidateErr: auth.ErrInvalidToken}
}

// envelope is the decoded response body.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
	Details string          `json:"details"`
}

func doRequest(t *testing.T, h http.Handler, method, target, body string, authed bool) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", testToken)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), "body: %s", rec.Body.String())
	return rec, env
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out
}
