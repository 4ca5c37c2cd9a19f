package audio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/motionfix-api/internal/domain"
)

// Variant identifies which processing implementation handles a request.
type Variant string

const (
	// VariantBuggy selects the implementation with the broken motion check.
	VariantBuggy Variant = "buggy"
	// VariantFixed selects the implementation with the corrected motion check.
	VariantFixed Variant = "fixed"
)

// String returns the variant's wire value.
func (v Variant) String() string {
	return string(v)
}

// DefaultProcessingDelay is the simulated processing time applied by both
// variants when no explicit delay is configured.
const DefaultProcessingDelay = 100 * time.Millisecond

// ErrUnknownVariant indicates a variant value with no registered processor.
var ErrUnknownVariant = errors.New("unknown processing variant")

// Processor defines the capability to run the simulated audio pipeline for a
// single request. Implementations honor context cancellation during the
// simulated work and return a result describing the computed channel averages.
type Processor interface {
	// Process runs the pipeline for req and returns the computed result.
	// It returns ctx.Err() if the context is cancelled before the simulated
	// work completes.
	Process(ctx context.Context, req *domain.ProcessingRequest) (*domain.ProcessingResult, error)
}

// Selector owns one processor per variant and hands out the matching
// implementation for a request. Both processors share the same configured
// delay so timing never skews a side-by-side comparison.
type Selector struct {
	buggy Processor
	fixed Processor
}

// NewSelector builds a Selector with both variants configured. A
// non-positive delay falls back to DefaultProcessingDelay and a nil logger
// falls back to slog.Default().
func NewSelector(delay time.Duration, logger *slog.Logger) *Selector {
	if delay <= 0 {
		delay = DefaultProcessingDelay
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Selector{
		buggy: NewBuggyProcessor(delay, logger),
		fixed: NewFixedProcessor(delay, logger),
	}
}

// ForVariant returns the processor registered for v, or ErrUnknownVariant
// when v names no implementation.
func (s *Selector) ForVariant(v Variant) (Processor, error) {
	switch v {
	case VariantBuggy:
		return s.buggy, nil
	case VariantFixed:
		return s.fixed, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, v)
	}
}

// simulateWork blocks for the configured delay, standing in for the real
// decode and filter stages. Returns early with ctx.Err() on cancellation.
func simulateWork(ctx context.Context, delay time.Duration) error {
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
