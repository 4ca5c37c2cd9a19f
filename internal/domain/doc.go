// Package domain holds the core types of the audio processing workflow:
// processing requests, their validation rules and the results produced by
// a processor run. It depends on no transport or infrastructure packages.
package domain
