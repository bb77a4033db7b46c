// Package api
// Author: Tim Raphael
//
// Runner contract for task dispatch onto pooled workers.

package api

// Task is a unit of work executed by a worker.
type Task func()

// Runner abstracts task dispatch onto a fixed pool of workers.
type Runner interface {
	// Submit schedules a task for execution.
	Submit(task Task) error

	// SubmitUrgent schedules a task ahead of staged backlog.
	SubmitUrgent(task Task) error

	// Stats returns a snapshot of the dispatch counters.
	Stats() map[string]int64

	// Close stops the workers once accepted tasks have run.
	Close() error
}
