package main

import (
	"context"
	"net/http"
	"time"

	"github.com/flipwise/flipwise/internal/api"
	apiMiddleware "github.com/flipwise/flipwise/internal/api/middleware"
	"github.com/flipwise/flipwise/internal/api/shared"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const healthCheckTimeout = 2 * time.Second

// setupRouter creates the router with middleware, the API routes and the
// health check.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace(app.logger))

	r.Route("/api", func(r chi.Router) {
		api.RegisterRoutes(r, app.handlers())
	})

	r.Get("/health", app.health)

	return r
}

type healthResponse struct {
	Status         string `json:"status"`
	Database       string `json:"database"`
	ActiveSessions int    `json:"active_sessions"`
}

// health reports whether the database answers a ping.
func (app *application) health(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{
		Status:         "ok",
		Database:       "ok",
		ActiveSessions: app.sessionService.ActiveSessions(),
	}

	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()
	if err := app.db.PingContext(ctx); err != nil {
		resp.Status = "degraded"
		resp.Database = "unreachable"
		shared.RespondWithJSON(w, r, http.StatusServiceUnavailable, resp)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}
