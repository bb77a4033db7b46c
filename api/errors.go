// Package api
// Author: Tim Raphael
//
// Common error values shared across the library.

package api

import "fmt"

// Common errors used across the library.
var (
	// ErrInvalidCapacity indicates a non-positive size or depth argument.
	ErrInvalidCapacity = fmt.Errorf("invalid capacity")

	// ErrInvalidWorkerCount indicates a non-positive worker count.
	ErrInvalidWorkerCount = fmt.Errorf("invalid worker count")

	// ErrSchedulerClosed indicates the scheduler has been shut down.
	ErrSchedulerClosed = fmt.Errorf("scheduler is closed")

	// ErrSchedulerSaturated indicates every worker inbox is full.
	ErrSchedulerSaturated = fmt.Errorf("scheduler is saturated")
)
