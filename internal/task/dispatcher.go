package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/phrazzld/motionfix-api/internal/domain"
)

// ErrQueueFull indicates the in-memory queue has no free slot left.
var ErrQueueFull = errors.New("task queue is full")

// DispatcherConfig holds configuration for the dispatcher
type DispatcherConfig struct {
	// WorkerCount determines how many concurrent workers execute tasks
	WorkerCount int

	// QueueSize determines the buffer size for the in-memory task queue
	QueueSize int
}

// DefaultDispatcherConfig returns a DispatcherConfig with reasonable defaults
func DefaultDispatcherConfig() DispatcherConfig {
	return DispatcherConfig{
		WorkerCount: 4,
		QueueSize:   100,
	}
}

// Dispatcher manages background task execution. Tasks are registered in the
// store before they are queued, so a successful Submit guarantees the task is
// already visible to status lookups.
type Dispatcher struct {
	store      Store
	taskChan   chan Task
	ctx        context.Context
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
	config     DispatcherConfig
	logger     *slog.Logger
	errHandler func(task Task, err error)
}

// NewDispatcher creates a new Dispatcher. Non-positive config values fall
// back to the defaults from DefaultDispatcherConfig.
func NewDispatcher(store Store, config DispatcherConfig, logger *slog.Logger) *Dispatcher {
	defaults := DefaultDispatcherConfig()
	if config.WorkerCount <= 0 {
		config.WorkerCount = defaults.WorkerCount
	}
	if config.QueueSize <= 0 {
		config.QueueSize = defaults.QueueSize
	}
	if logger == nil {
		logger = slog.Default()
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Dispatcher{
		store:      store,
		taskChan:   make(chan Task, config.QueueSize),
		ctx:        ctx,
		cancelFunc: cancel,
		wg:         sync.WaitGroup{},
		config:     config,
		logger:     logger,
		errHandler: func(task Task, err error) {
			// Default error handler just logs the error
			logger.Error("task execution failed",
				"task_id", task.ID(),
				"task_type", task.Type(),
				"error", err)
		},
	}
}

// SetErrorHandler allows setting a custom error handler function
func (d *Dispatcher) SetErrorHandler(handler func(task Task, err error)) {
	d.errHandler = handler
}

// Submit registers the task in the store and adds it to the queue. When the
// queue is full the record is settled as failed before ErrQueueFull is
// returned, so the ID never lingers in the processing state with no worker
// coming for it.
func (d *Dispatcher) Submit(ctx context.Context, t Task) error {
	if err := d.store.Put(ctx, t); err != nil {
		return fmt.Errorf("failed to register task: %w", err)
	}

	select {
	case d.taskChan <- t:
		return nil
	default:
		if failErr := d.store.Fail(ctx, t.ID(), ErrQueueFull.Error()); failErr != nil {
			d.logger.Error("failed to settle rejected task",
				"task_id", t.ID(),
				"task_type", t.Type(),
				"error", failErr)
		}
		return fmt.Errorf("%w: capacity %d reached", ErrQueueFull, cap(d.taskChan))
	}
}

// Start launches the worker pool and begins processing tasks
func (d *Dispatcher) Start() {
	for i := 0; i < d.config.WorkerCount; i++ {
		d.wg.Add(1)
		go d.worker(i)
	}

	d.logger.Info("dispatcher started",
		"worker_count", d.config.WorkerCount,
		"queue_size", d.config.QueueSize)
}

// Stop gracefully shuts down the dispatcher. Tasks already picked up by a
// worker run to completion; tasks still sitting in the queue are not started.
func (d *Dispatcher) Stop() {
	d.cancelFunc()
	d.wg.Wait()
	close(d.taskChan)
}

// worker processes tasks from the queue
func (d *Dispatcher) worker(id int) {
	defer d.wg.Done()

	d.logger.Debug("starting worker", "worker_id", id)

	for {
		select {
		case <-d.ctx.Done():
			d.logger.Debug("stopping worker", "worker_id", id)
			return

		case t, ok := <-d.taskChan:
			if !ok {
				d.logger.Debug("task channel closed, stopping worker", "worker_id", id)
				return
			}

			d.processTask(t, id)
		}
	}
}

// processTask handles execution of a single task and settles its record.
// Execution uses a fresh context so work picked up before shutdown still
// finishes.
func (d *Dispatcher) processTask(t Task, workerID int) {
	ctx := context.Background()
	logger := d.logger.With(
		"task_id", t.ID(),
		"task_type", t.Type(),
		"worker_id", workerID,
	)

	logger.Info("processing task")

	result, err := d.executeTask(ctx, t)
	if err != nil {
		logger.Error("task execution failed", "error", err)
		if updateErr := d.store.Fail(ctx, t.ID(), err.Error()); updateErr != nil {
			logger.Error("failed to update task status to failed", "error", updateErr)
		}

		d.errHandler(t, err)
		return
	}

	logger.Info("task completed successfully")
	if updateErr := d.store.Complete(ctx, t.ID(), result); updateErr != nil {
		logger.Error("failed to update task status to completed", "error", updateErr)
	}
}

// executeTask runs t and converts panics into ordinary errors so a
// misbehaving task cannot take down its worker.
func (d *Dispatcher) executeTask(ctx context.Context, t Task) (result *domain.ProcessingResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("task panicked: %v", r)
		}
	}()

	return t.Execute(ctx)
}
