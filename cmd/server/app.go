package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/motionfix-api/internal/audio"
	"github.com/phrazzld/motionfix-api/internal/config"
	"github.com/phrazzld/motionfix-api/internal/service"
	"github.com/phrazzld/motionfix-api/internal/task"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger

	// Task state and processing
	taskStore  *task.InMemoryStore
	selector   *audio.Selector
	dispatcher *task.Dispatcher

	// Service interfaces
	audioService service.AudioService
}

// newApplication creates a new application instance with all dependencies
// initialized. The dispatcher's workers are already running when this
// returns.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	// Task records live in memory only; they do not survive a restart
	app.taskStore = task.NewInMemoryStore()

	// Both processor variants share one simulated work delay
	app.selector = audio.NewSelector(cfg.Processing.Delay(), logger)
	logger.Info("audio processors initialized",
		"processing_delay", cfg.Processing.Delay())

	// Initialize and start the task dispatcher
	app.dispatcher = setupDispatcher(app)

	// Initialize audio service
	var err error
	app.audioService, err = service.NewAudioService(
		app.dispatcher,
		app.taskStore,
		app.selector,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	// Set up router using the application dependencies
	router := app.setupRouter()

	// Start the HTTP server
	err := app.startHTTPServer(ctx, router)
	if err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// setupDispatcher initializes and starts the background task dispatcher.
// It uses the application struct to access required dependencies.
func setupDispatcher(app *application) *task.Dispatcher {
	dispatcher := task.NewDispatcher(app.taskStore, task.DispatcherConfig{
		QueueSize:   app.config.Task.QueueSize,
		WorkerCount: app.config.Task.WorkerCount,
	}, app.logger)

	dispatcher.Start()
	return dispatcher
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	// Stop the dispatcher; in-flight tasks run to completion
	if app.dispatcher != nil {
		app.dispatcher.Stop()
	}

	app.logger.Info("Application shutdown completed")
}
