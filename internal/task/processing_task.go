package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/phrazzld/motionfix-api/internal/audio"
	"github.com/phrazzld/motionfix-api/internal/domain"
)

// Common errors
var (
	ErrNilRequest   = errors.New("processing request cannot be nil")
	ErrNilProcessor = errors.New("processor cannot be nil")
	ErrNilLogger    = errors.New("logger cannot be nil")
)

// ProcessingTask implements the Task interface for running one audio request
// through a selected processor variant.
type ProcessingTask struct {
	id        uuid.UUID
	request   *domain.ProcessingRequest
	variant   audio.Variant
	processor audio.Processor
	logger    *slog.Logger
}

// NewProcessingTask creates a new audio processing task
func NewProcessingTask(
	request *domain.ProcessingRequest,
	variant audio.Variant,
	processor audio.Processor,
	logger *slog.Logger,
) (*ProcessingTask, error) {
	// Validate dependencies
	if request == nil {
		return nil, ErrNilRequest
	}
	if processor == nil {
		return nil, ErrNilProcessor
	}
	if logger == nil {
		return nil, ErrNilLogger
	}

	return &ProcessingTask{
		id:        uuid.New(),
		request:   request,
		variant:   variant,
		processor: processor,
		logger: logger.With(
			"task_type", TypeAudioProcessing,
			"file_name", request.FileName,
			"variant", variant.String(),
		),
	}, nil
}

// ID returns the task's unique identifier
func (t *ProcessingTask) ID() uuid.UUID {
	return t.id
}

// Type returns the task type identifier
func (t *ProcessingTask) Type() string {
	return TypeAudioProcessing
}

// FileName returns the name of the audio file the task operates on
func (t *ProcessingTask) FileName() string {
	return t.request.FileName
}

// Variant returns the processor variant the task was built with.
func (t *ProcessingTask) Variant() audio.Variant {
	return t.variant
}

// Execute runs the audio pipeline for the task's request and returns the
// computed result.
func (t *ProcessingTask) Execute(ctx context.Context) (*domain.ProcessingResult, error) {
	t.logger.Info("starting audio processing task")

	// Check for context cancellation
	if err := ctx.Err(); err != nil {
		t.logger.Error("task cancelled by context", "error", err)
		return nil, fmt.Errorf("task cancelled by context: %w", err)
	}

	result, err := t.processor.Process(ctx, t.request)
	if err != nil {
		t.logger.Error("audio processing failed", "error", err)
		return nil, fmt.Errorf("audio processing failed: %w", err)
	}

	t.logger.Info("audio processing task finished",
		"motion_applied", result.MotionApplied,
		"channels_differ", result.ChannelsDiffer)

	return result, nil
}

// Ensure ProcessingTask implements the Task interface
var _ Task = (*ProcessingTask)(nil)
