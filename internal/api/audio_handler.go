package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/phrazzld/motionfix-api/internal/api/shared"
	"github.com/phrazzld/motionfix-api/internal/audio"
	"github.com/phrazzld/motionfix-api/internal/domain"
	"github.com/phrazzld/motionfix-api/internal/platform/logger"
	"github.com/phrazzld/motionfix-api/internal/service"
	"github.com/phrazzld/motionfix-api/internal/task"
)

// ProcessAudioRequest represents the request body for starting an audio
// processing job. Volume and Format are optional; absent fields keep the
// defaults the handler pre-populates before decoding.
type ProcessAudioRequest struct {
	FileName string  `json:"file_name" validate:"required,min=1"`
	Motion   bool    `json:"motion"`
	Volume   float64 `json:"volume" validate:"gte=0,lte=2"`
	Format   string  `json:"format"`
}

// ProcessAudioResponse represents the response for a successfully
// dispatched processing job.
type ProcessAudioResponse struct {
	TaskID   string `json:"task_id"`
	Status   string `json:"status"`
	FileName string `json:"file_name"`
	Message  string `json:"message"`
}

// TaskStatusResponse represents the response data for a task status lookup.
// Exactly one of FileName, Result or Error is populated, depending on the
// task's status.
type TaskStatusResponse struct {
	Status   string                   `json:"status"`
	FileName string                   `json:"file_name,omitempty"`
	Result   *domain.ProcessingResult `json:"result,omitempty"`
	Error    string                   `json:"error,omitempty"`
}

// AudioHandler handles audio-processing HTTP requests
type AudioHandler struct {
	audioService service.AudioService
	validator    *validator.Validate
	logger       *slog.Logger
}

// NewAudioHandler creates a new AudioHandler
func NewAudioHandler(audioService service.AudioService, logger *slog.Logger) *AudioHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for AudioHandler")
	}

	return &AudioHandler{
		audioService: audioService,
		validator:    validator.New(),
		logger:       logger.With(slog.String("component", "audio_handler")),
	}
}

// ProcessAudio handles POST /process-audio requests.
// It validates the request, registers a task record and dispatches the job
// to the background workers, replying 202 before the job runs.
func (h *AudioHandler) ProcessAudio(w http.ResponseWriter, r *http.Request) {
	// Get logger from context or use default
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	// The use_fixed query parameter selects the implementation variant.
	// It defaults to the fixed one.
	useFixed := true
	if raw := r.URL.Query().Get("use_fixed"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			log.Warn("invalid use_fixed query parameter", slog.String("use_fixed", raw))
			shared.RespondWithError(w, r, http.StatusUnprocessableEntity,
				"Invalid use_fixed parameter, must be true or false")
			return
		}
		useFixed = parsed
	}

	// Parse request body. Pre-populate defaults so absent fields keep them.
	req := ProcessAudioRequest{
		Volume: domain.DefaultVolume,
		Format: domain.DefaultFormat,
	}
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, "Invalid request format")
		return
	}

	// Validate request
	if err := h.validator.Struct(req); err != nil {
		log.Warn("validation error", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, SanitizeValidationError(err))
		return
	}

	// Build the domain request; its own validation is the source of truth
	procReq, err := domain.NewProcessingRequest(req.FileName, req.Motion, req.Volume, req.Format)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	variant := audio.VariantBuggy
	if useFixed {
		variant = audio.VariantFixed
	}

	// Register the task and hand it to the dispatcher
	taskID, err := h.audioService.StartProcessing(r.Context(), procReq, variant)
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)

		// For generic server errors during dispatch, use a specific message
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to start audio processing"
		}

		// Log the full error details but only send sanitized message to client
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	log.Info("audio processing dispatched",
		slog.String("task_id", taskID.String()),
		slog.String("file_name", req.FileName),
		slog.String("variant", variant.String()))

	response := ProcessAudioResponse{
		TaskID:   taskID.String(),
		Status:   string(task.StatusProcessing),
		FileName: req.FileName,
		Message:  fmt.Sprintf("Audio processing started in background (%s version)", variant),
	}

	// Return response with 202 Accepted status (since processing happens asynchronously)
	shared.RespondWithJSON(w, r, http.StatusAccepted, response)
}

// GetTaskStatus handles GET /task/{taskID} requests.
// It returns the current record for a dispatched task: the file name while
// processing, the result once completed, or the error message on failure.
func (h *AudioHandler) GetTaskStatus(w http.ResponseWriter, r *http.Request) {
	// Get logger from context or use default
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	// Extract task ID from URL path using chi router. Malformed IDs read as
	// unknown tasks rather than bad requests, so clients see one shape of
	// lookup failure.
	pathTaskID := chi.URLParam(r, "taskID")
	taskID, err := uuid.Parse(pathTaskID)
	if err != nil {
		log.Debug("invalid task ID format", slog.String("task_id", pathTaskID))
		shared.RespondWithError(w, r, http.StatusNotFound, "Task not found")
		return
	}

	record, err := h.audioService.GetTask(r.Context(), taskID)
	if err != nil {
		// Log the full error details but only send sanitized message to client
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("task status retrieved",
		slog.String("task_id", taskID.String()),
		slog.String("status", string(record.Status)))
	shared.RespondWithJSON(w, r, http.StatusOK, taskRecordToResponse(record))
}

// taskRecordToResponse converts a task.Record to a TaskStatusResponse,
// exposing only the fields that match the record's status.
func taskRecordToResponse(record *task.Record) TaskStatusResponse {
	response := TaskStatusResponse{Status: string(record.Status)}

	switch record.Status {
	case task.StatusCompleted:
		response.Result = record.Result
	case task.StatusFailed:
		response.Error = record.Error
	default:
		response.FileName = record.FileName
	}

	return response
}
