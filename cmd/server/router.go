package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/questparty/questparty-api/internal/api"
	apiMiddleware "github.com/questparty/questparty-api/internal/api/middleware"
)

// setupRouter creates the router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.Trace(app.logger))
	r.Use(apiMiddleware.Recoverer)
	r.Use(apiMiddleware.Diagnostics(!app.config.Server.IsProduction()))

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	api.RegisterRoutes(r, api.Handlers{
		Auth:    api.NewAuthHandler(app.userStore),
		Profile: api.NewProfileHandler(app.userStore),
		Party:   api.NewPartyHandler(app.partyStore),
		Victory: api.NewVictoryHandler(app.victoryStore),
		Health:  api.NewHealthHandler(app.health).WithCache(app.cacheHealth),
	}, authMiddleware.Authenticate)

	return r
}
