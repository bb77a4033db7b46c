// File: sched/options.go
// Author: Tim Raphael

package sched

import "runtime"

// Config holds the tunables for a Scheduler.
type Config struct {
	// Workers is the number of worker goroutines.
	Workers int

	// QueueDepth is the capacity of each worker's staging deque.
	QueueDepth int

	// InboxSize is the buffer size of each worker's submission channel.
	InboxSize int
}

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() Config {
	return Config{
		Workers:    runtime.NumCPU(),
		QueueDepth: 64,
		InboxSize:  256,
	}
}

// Option adjusts a Config before the Scheduler starts.
type Option func(*Config)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) Option {
	return func(c *Config) { c.Workers = n }
}

// WithQueueDepth sets the capacity of each worker's staging deque.
func WithQueueDepth(n int) Option {
	return func(c *Config) { c.QueueDepth = n }
}

// WithInboxSize sets the buffer size of each worker's submission channel.
func WithInboxSize(n int) Option {
	return func(c *Config) { c.InboxSize = n }
}
