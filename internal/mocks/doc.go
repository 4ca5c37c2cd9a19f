// Package mocks provides shared mock implementations for testing.
//
// The interfaces mocked here are exercised from several test packages, so
// the mocks live in one place rather than as inline duplicates in each
// test file. Every mock exposes function fields that tests override to
// script the behavior they need.
//
// Usage:
//
//	import "github.com/phrazzld/motionfix-api/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    mockService := mocks.NewMockAudioService(
//	        mocks.WithTaskID(uuid.New()),
//	    )
//
//	    // Use the mock in your test...
//	}
//
// New mocks follow the same shape: one file per interface, a struct with a
// function field per method, and functional options for the common cases.
package mocks
