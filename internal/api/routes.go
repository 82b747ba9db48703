package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/questparty/questparty-api/internal/api/shared"
)

// Messages for requests that match no route.
const (
	MsgRouteNotFound    = "Route not found"
	MsgMethodNotAllowed = "Method not allowed"
)

// Handlers groups the handlers served by RegisterRoutes.
type Handlers struct {
	Auth    *AuthHandler
	Profile *ProfileHandler
	Party   *PartyHandler
	Victory *VictoryHandler
	Health  *HealthHandler
}

// RegisterRoutes mounts the API under /api on r. Every route except
// health and check-email runs behind authenticate. Unmatched paths and
// methods are answered with the failure envelope.
func RegisterRoutes(r chi.Router, h Handlers, authenticate func(http.Handler) http.Handler) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health.Check)
		r.Get("/auth/check-email", h.Auth.CheckEmail)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)

			r.Get("/auth/me", h.Auth.Me)
			r.Put("/profile", h.Profile.UpdateProfile)
			r.Patch("/user", h.Profile.PatchUser)
			r.Post("/parties/leave", h.Party.Leave)
			r.Get("/victory/{id}", h.Victory.Get)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondError(w, r, http.StatusNotFound, MsgRouteNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondError(w, r, http.StatusMethodNotAllowed, MsgMethodNotAllowed)
	})
}
