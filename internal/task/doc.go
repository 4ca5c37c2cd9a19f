// Package task manages background job queuing, execution, and lifecycle.
// It provides the dispatcher that runs audio processing jobs on a worker
// pool and the store that tracks each job from processing to a terminal
// completed or failed state, so HTTP handlers can accept work and answer
// status queries without blocking.
package task
