package mocks

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/motionfix-api/internal/audio"
	"github.com/phrazzld/motionfix-api/internal/domain"
	"github.com/phrazzld/motionfix-api/internal/service"
	"github.com/phrazzld/motionfix-api/internal/task"
)

// MockAudioService implements service.AudioService for testing
type MockAudioService struct {
	// Custom behavior functions
	StartProcessingFn func(ctx context.Context, req *domain.ProcessingRequest, variant audio.Variant) (uuid.UUID, error)
	GetTaskFn         func(ctx context.Context, id uuid.UUID) (*task.Record, error)

	// Default response values
	TaskID uuid.UUID
	Record *task.Record
	Err    error

	// Call tracking for verification
	StartProcessingCalls struct {
		mu       sync.Mutex
		Count    int
		Requests []*domain.ProcessingRequest
		Variants []audio.Variant
	}

	GetTaskCalls struct {
		mu      sync.Mutex
		Count   int
		TaskIDs []uuid.UUID
	}
}

// StartProcessing implements the service.AudioService interface
func (m *MockAudioService) StartProcessing(
	ctx context.Context,
	req *domain.ProcessingRequest,
	variant audio.Variant,
) (uuid.UUID, error) {
	// Track call details for verification
	m.StartProcessingCalls.mu.Lock()
	m.StartProcessingCalls.Count++
	m.StartProcessingCalls.Requests = append(m.StartProcessingCalls.Requests, req)
	m.StartProcessingCalls.Variants = append(m.StartProcessingCalls.Variants, variant)
	m.StartProcessingCalls.mu.Unlock()

	// Use custom function if provided
	if m.StartProcessingFn != nil {
		return m.StartProcessingFn(ctx, req, variant)
	}

	// Return default values
	return m.TaskID, m.Err
}

// GetTask implements the service.AudioService interface
func (m *MockAudioService) GetTask(ctx context.Context, id uuid.UUID) (*task.Record, error) {
	// Track call details for verification
	m.GetTaskCalls.mu.Lock()
	m.GetTaskCalls.Count++
	m.GetTaskCalls.TaskIDs = append(m.GetTaskCalls.TaskIDs, id)
	m.GetTaskCalls.mu.Unlock()

	// Use custom function if provided
	if m.GetTaskFn != nil {
		return m.GetTaskFn(ctx, id)
	}

	// Return default values
	return m.Record, m.Err
}

// Reset resets the call tracking state for both methods
func (m *MockAudioService) Reset() {
	m.StartProcessingCalls.mu.Lock()
	m.StartProcessingCalls.Count = 0
	m.StartProcessingCalls.Requests = nil
	m.StartProcessingCalls.Variants = nil
	m.StartProcessingCalls.mu.Unlock()

	m.GetTaskCalls.mu.Lock()
	m.GetTaskCalls.Count = 0
	m.GetTaskCalls.TaskIDs = nil
	m.GetTaskCalls.mu.Unlock()
}

// Functional option pattern for configuring mock

// MockOption is a function type that configures a MockAudioService
type MockOption func(*MockAudioService)

// WithTaskID sets the default task ID to return from StartProcessing
func WithTaskID(id uuid.UUID) MockOption {
	return func(m *MockAudioService) {
		m.TaskID = id
	}
}

// WithRecord sets the default record to return from GetTask
func WithRecord(record *task.Record) MockOption {
	return func(m *MockAudioService) {
		m.Record = record
	}
}

// WithError sets the default error to return from both methods
func WithError(err error) MockOption {
	return func(m *MockAudioService) {
		m.Err = err
	}
}

// WithStartProcessingFn sets a custom function for StartProcessing
func WithStartProcessingFn(
	fn func(ctx context.Context, req *domain.ProcessingRequest, variant audio.Variant) (uuid.UUID, error),
) MockOption {
	return func(m *MockAudioService) {
		m.StartProcessingFn = fn
	}
}

// WithGetTaskFn sets a custom function for GetTask
func WithGetTaskFn(fn func(ctx context.Context, id uuid.UUID) (*task.Record, error)) MockOption {
	return func(m *MockAudioService) {
		m.GetTaskFn = fn
	}
}

// NewMockAudioService creates a new MockAudioService with the given options
func NewMockAudioService(opts ...MockOption) *MockAudioService {
	mock := &MockAudioService{}

	// Apply all options
	for _, opt := range opts {
		opt(mock)
	}

	return mock
}

// Convenience constructors for common test scenarios

// NewMockAudioServiceWithTaskNotFound returns a mock that simulates an
// unknown task ID
func NewMockAudioServiceWithTaskNotFound() *MockAudioService {
	return NewMockAudioService(
		WithError(service.ErrTaskNotFound),
	)
}

// NewMockAudioServiceWithQueueFull returns a mock that simulates a
// saturated dispatch queue
func NewMockAudioServiceWithQueueFull() *MockAudioService {
	return NewMockAudioService(
		WithError(task.ErrQueueFull),
	)
}
