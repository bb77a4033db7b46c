// Package ringbuffer
// Author: Tim Raphael
//
// Fixed-capacity double-ended ring buffer for single-threaded use.
// All operations are O(1), non-blocking, and free of steady-state
// allocation: the backing array is allocated once at construction and
// never resized. Full and empty conditions are reported through return
// values, never through panics.
// See ringbuffer.go for the cursor layout and the sentinel-slot rule.
package ringbuffer
