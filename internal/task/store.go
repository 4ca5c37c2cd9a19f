package task

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/phrazzld/motionfix-api/internal/domain"
)

// Common errors returned by the Store
var (
	// ErrTaskNotFound indicates no record exists for the requested ID.
	ErrTaskNotFound = errors.New("task not found")

	// ErrTaskExists indicates a record is already registered under the ID.
	ErrTaskExists = errors.New("task already registered")

	// ErrTaskTerminal indicates the record already reached a terminal state
	// and cannot transition again.
	ErrTaskTerminal = errors.New("task already in a terminal state")
)

// Store defines the interface for tracking task state
type Store interface {
	// Put registers a new record for t in the processing state
	Put(ctx context.Context, t Task) error

	// Get retrieves a copy of the record for the given task ID
	Get(ctx context.Context, id uuid.UUID) (*Record, error)

	// Complete transitions the task to the completed state with its result
	Complete(ctx context.Context, id uuid.UUID, result *domain.ProcessingResult) error

	// Fail transitions the task to the failed state with an error message
	Fail(ctx context.Context, id uuid.UUID, errMsg string) error
}

// InMemoryStore keeps task records in a mutex-guarded map. Records never
// leave the map once registered, and terminal transitions swap the whole
// entry in one step, so readers see either the processing record or the
// settled one and nothing in between.
type InMemoryStore struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*Record
}

// Ensure InMemoryStore implements the Store interface
var _ Store = (*InMemoryStore)(nil)

// NewInMemoryStore creates an empty InMemoryStore.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		records: make(map[uuid.UUID]*Record),
	}
}

// Put registers a new record for t in the processing state.
func (s *InMemoryStore) Put(ctx context.Context, t Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := t.ID()
	if _, exists := s.records[id]; exists {
		return fmt.Errorf("%w: %s", ErrTaskExists, id)
	}

	now := time.Now().UTC()
	s.records[id] = &Record{
		ID:        id,
		FileName:  t.FileName(),
		Status:    StatusProcessing,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return nil
}

// Get retrieves a copy of the record for the given task ID.
func (s *InMemoryStore) Get(ctx context.Context, id uuid.UUID) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	return record.clone(), nil
}

// Complete transitions the task to the completed state with its result.
func (s *InMemoryStore) Complete(ctx context.Context, id uuid.UUID, result *domain.ProcessingResult) error {
	return s.settle(id, StatusCompleted, result, "")
}

// Fail transitions the task to the failed state with an error message.
func (s *InMemoryStore) Fail(ctx context.Context, id uuid.UUID, errMsg string) error {
	return s.settle(id, StatusFailed, nil, errMsg)
}

// settle replaces the stored record with a terminal copy.
func (s *InMemoryStore) settle(id uuid.UUID, status Status, result *domain.ProcessingResult, errMsg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	if record.Status.Terminal() {
		return fmt.Errorf("%w: %s is already %s", ErrTaskTerminal, id, record.Status)
	}

	next := record.clone()
	next.Status = status
	next.Error = errMsg
	next.UpdatedAt = time.Now().UTC()
	if result != nil {
		r := *result
		next.Result = &r
	}
	s.records[id] = next
	return nil
}
