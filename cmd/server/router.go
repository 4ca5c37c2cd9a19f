package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/motionfix-api/internal/api"
	apiMiddleware "github.com/phrazzld/motionfix-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. It accepts the application dependencies to create handlers
// and register routes. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	// Create a router
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware) // Add trace IDs for correlated logging

	// Create API handlers using the application's services
	audioHandler := api.NewAudioHandler(app.audioService, app.logger)
	systemHandler := api.NewSystemHandler()

	// Register routes
	r.Get("/", systemHandler.Root)
	r.Get("/health", systemHandler.HealthCheck)
	r.Post("/process-audio", audioHandler.ProcessAudio)
	r.Get("/task/{taskID}", audioHandler.GetTaskStatus)

	return r
}
