package task

import (
	"context"

	"github.com/google/uuid"

	"github.com/phrazzld/motionfix-api/internal/domain"
)

// MockTask is a simple implementation of the Task interface for testing
type MockTask struct {
	TaskID       uuid.UUID
	TaskType     string
	TaskFileName string
	ExecuteFn    func(ctx context.Context) (*domain.ProcessingResult, error)
}

// NewMockTask creates a new MockTask with the given ID, type, and file name
func NewMockTask(id uuid.UUID, taskType, fileName string) *MockTask {
	return &MockTask{
		TaskID:       id,
		TaskType:     taskType,
		TaskFileName: fileName,
		ExecuteFn: func(ctx context.Context) (*domain.ProcessingResult, error) {
			return nil, nil
		},
	}
}

// ID returns the task's unique identifier
func (t *MockTask) ID() uuid.UUID {
	return t.TaskID
}

// Type returns the task type identifier
func (t *MockTask) Type() string {
	return t.TaskType
}

// FileName returns the name of the audio file the task operates on
func (t *MockTask) FileName() string {
	return t.TaskFileName
}

// Execute runs the task logic
func (t *MockTask) Execute(ctx context.Context) (*domain.ProcessingResult, error) {
	return t.ExecuteFn(ctx)
}

// CreateMockTask is a helper function to create a MockTask with a fresh ID
// and a default result produced on execution.
func CreateMockTask(fileName string) *MockTask {
	mock := NewMockTask(uuid.New(), "mock_task", fileName)
	mock.ExecuteFn = func(ctx context.Context) (*domain.ProcessingResult, error) {
		return domain.NewProcessingResult(fileName, false, 0.5, 0.5, 1.0, "wav"), nil
	}
	return mock
}
