package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/phrazzld/motionfix-api/internal/audio"
	"github.com/phrazzld/motionfix-api/internal/domain"
	"github.com/phrazzld/motionfix-api/internal/task"
)

// Dispatcher defines the interface for submitting background tasks
type Dispatcher interface {
	// Submit registers a task and adds it to the processing queue
	Submit(ctx context.Context, t task.Task) error
}

// TaskReader provides read access to task records
type TaskReader interface {
	// Get retrieves a copy of the record for the given task ID
	Get(ctx context.Context, id uuid.UUID) (*task.Record, error)
}

// ProcessorSelector resolves a processing variant to its implementation
type ProcessorSelector interface {
	// ForVariant returns the processor registered for v
	ForVariant(v audio.Variant) (audio.Processor, error)
}

// AudioService provides audio processing operations
type AudioService interface {
	// StartProcessing builds a background task for the request and queues it
	// for execution with the given processor variant. The returned task ID is
	// immediately valid for GetTask lookups.
	StartProcessing(
		ctx context.Context,
		request *domain.ProcessingRequest,
		variant audio.Variant,
	) (uuid.UUID, error)

	// GetTask retrieves the current record for a task
	GetTask(ctx context.Context, id uuid.UUID) (*task.Record, error)
}

// Common sentinel errors for AudioService
var (
	// ErrTaskNotFound indicates that the task does not exist
	ErrTaskNotFound = errors.New("task not found")
)

// AudioServiceError wraps errors from the audio service with context.
type AudioServiceError struct {
	// Operation is the operation that failed (e.g., "start_processing", "get_task")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for AudioServiceError.
func (e *AudioServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("audio service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("audio service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *AudioServiceError) Unwrap() error {
	return e.Err
}

// NewAudioServiceError creates a new AudioServiceError.
// It returns known sentinel errors directly without wrapping.
func NewAudioServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	// Check for service-defined sentinel errors
	if errors.Is(err, ErrTaskNotFound) {
		return ErrTaskNotFound
	}

	// Check for task-level sentinel errors that should be mapped to service-level ones
	if errors.Is(err, task.ErrTaskNotFound) {
		return ErrTaskNotFound
	}

	return &AudioServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// Verify interface compliance at compile time
var _ AudioService = (*audioServiceImpl)(nil)

// audioServiceImpl implements the AudioService interface
type audioServiceImpl struct {
	dispatcher Dispatcher
	tasks      TaskReader
	selector   ProcessorSelector
	logger     *slog.Logger
}

// NewAudioService creates a new AudioService.
// It returns an error if any of the required dependencies are nil.
func NewAudioService(
	dispatcher Dispatcher,
	tasks TaskReader,
	selector ProcessorSelector,
	logger *slog.Logger,
) (AudioService, error) {
	// Validate dependencies
	if dispatcher == nil {
		return nil, &AudioServiceError{
			Operation: "create_service",
			Message:   "dispatcher cannot be nil",
			Err:       nil,
		}
	}
	if tasks == nil {
		return nil, &AudioServiceError{
			Operation: "create_service",
			Message:   "task reader cannot be nil",
			Err:       nil,
		}
	}
	if selector == nil {
		return nil, &AudioServiceError{
			Operation: "create_service",
			Message:   "processor selector cannot be nil",
			Err:       nil,
		}
	}

	// Use provided logger or create default
	if logger == nil {
		logger = slog.Default()
	}

	return &audioServiceImpl{
		dispatcher: dispatcher,
		tasks:      tasks,
		selector:   selector,
		logger:     logger.With("component", "audio_service"),
	}, nil
}

// StartProcessing builds a background task for the request and queues it for
// execution. The dispatcher registers the record before queuing, so once this
// returns the task ID resolves through GetTask.
func (s *audioServiceImpl) StartProcessing(
	ctx context.Context,
	request *domain.ProcessingRequest,
	variant audio.Variant,
) (uuid.UUID, error) {
	processor, err := s.selector.ForVariant(variant)
	if err != nil {
		s.logger.Error("failed to resolve processor variant",
			"error", err,
			"variant", variant.String())
		return uuid.Nil, NewAudioServiceError(
			"start_processing",
			"failed to resolve processor variant",
			err,
		)
	}

	processingTask, err := task.NewProcessingTask(request, variant, processor, s.logger)
	if err != nil {
		s.logger.Error("failed to create processing task",
			"error", err,
			"variant", variant.String())
		return uuid.Nil, NewAudioServiceError(
			"start_processing",
			"failed to create processing task",
			err,
		)
	}

	if err := s.dispatcher.Submit(ctx, processingTask); err != nil {
		s.logger.Error("failed to submit processing task",
			"error", err,
			"task_id", processingTask.ID(),
			"file_name", request.FileName)
		return uuid.Nil, NewAudioServiceError(
			"start_processing",
			"failed to queue processing task",
			err,
		)
	}

	s.logger.Info("audio processing task queued",
		"task_id", processingTask.ID(),
		"file_name", request.FileName,
		"variant", variant.String())

	return processingTask.ID(), nil
}

// GetTask retrieves the current record for a task
func (s *audioServiceImpl) GetTask(ctx context.Context, id uuid.UUID) (*task.Record, error) {
	record, err := s.tasks.Get(ctx, id)
	if err != nil {
		if errors.Is(err, task.ErrTaskNotFound) {
			s.logger.Debug("task not found", "task_id", id)
			return nil, ErrTaskNotFound
		}

		s.logger.Error("failed to retrieve task record",
			"error", err,
			"task_id", id)
		return nil, NewAudioServiceError("get_task", "failed to retrieve task record", err)
	}

	s.logger.Debug("retrieved task record",
		"task_id", id,
		"status", record.Status)

	return record, nil
}
