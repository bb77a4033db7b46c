// Package window
// Author: Tim Raphael
//
// Sliding-window aggregates built on the fixed-capacity ring buffer:
// a rolling arithmetic mean and monotonic minimum/maximum trackers
// over the last N samples of a stream.
// All aggregates run in O(1) amortized time per sample and allocate
// only at construction.
// See average.go and minmax.go for implementation details.
package window
