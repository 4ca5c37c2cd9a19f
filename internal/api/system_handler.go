package api

import (
	"net/http"

	"github.com/phrazzld/motionfix-api/internal/api/shared"
)

// ServiceName identifies this service in health and metadata responses.
const ServiceName = "motionfix-api"

// ServiceVersion is the version reported by the root endpoint.
const ServiceVersion = "0.1.0"

// HealthResponse represents the response for a health check.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// RootResponse represents the service metadata returned by the root endpoint.
type RootResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// SystemHandler serves the unauthenticated service endpoints: health checks
// and root metadata.
type SystemHandler struct{}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

// HealthCheck handles GET /health requests
func (h *SystemHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Service: ServiceName,
	})
}

// Root handles GET / requests with API information
func (h *SystemHandler) Root(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, RootResponse{
		Message: "Motionfix Audio Processing API",
		Version: ServiceVersion,
		Endpoints: map[string]string{
			"health":        "/health",
			"process_audio": "/process-audio",
			"task_result":   "/task/{taskID}",
		},
	})
}
