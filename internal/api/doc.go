// Package api handles incoming HTTP requests, routing, request validation,
// and response formatting for the audio processing service. It acts as an
// adapter between external clients and the internal application services,
// translating HTTP concerns to processing and task-lookup operations.
package api
