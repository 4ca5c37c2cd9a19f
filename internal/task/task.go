package task

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/phrazzld/motionfix-api/internal/domain"
)

// Status represents the current state of a task
type Status string

// Possible task status values. Tasks enter the store in StatusProcessing and
// settle into exactly one of the two terminal states.
const (
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// Terminal reports whether s permits no further transitions.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Task type constants
const (
	// TypeAudioProcessing represents the task type for running the audio pipeline
	TypeAudioProcessing = "audio_processing"
)

// Task represents a unit of background work to be processed
type Task interface {
	// ID returns the task's unique identifier
	ID() uuid.UUID

	// Type returns the task type identifier
	Type() string

	// FileName returns the name of the audio file the task operates on
	FileName() string

	// Execute runs the task logic and returns the computed result
	Execute(ctx context.Context) (*domain.ProcessingResult, error)
}

// Record is the queryable state of a task. The store hands out copies, so a
// Record held by a caller never shares memory with the stored entry.
type Record struct {
	ID        uuid.UUID
	FileName  string
	Status    Status
	Result    *domain.ProcessingResult
	Error     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// clone returns a deep copy of r. ProcessingResult holds only value fields,
// so copying the struct it points to is enough.
func (r *Record) clone() *Record {
	c := *r
	if r.Result != nil {
		result := *r.Result
		c.Result = &result
	}
	return &c
}
