package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyFileName is returned when a processing request has no file name.
	ErrEmptyFileName = errors.New("file name cannot be empty")

	// ErrVolumeOutOfRange is returned when a volume multiplier falls outside
	// the closed range [MinVolume, MaxVolume].
	ErrVolumeOutOfRange = errors.New("volume must be between 0.0 and 2.0")
)
