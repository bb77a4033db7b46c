// File: window/average.go
// Author: Tim Raphael

package window

import (
	"github.com/pkg/errors"

	"github.com/Tim-Raphael/ring-buffer/api"
	"github.com/Tim-Raphael/ring-buffer/ringbuffer"
)

// Average maintains the arithmetic mean of the most recent samples.
// The sum is tracked incrementally so Push and Value are O(1).
type Average struct {
	samples *ringbuffer.RingBuffer[float64]
	sum     float64
}

// NewAverage returns an Average over a window of size samples.
func NewAverage(size int) (*Average, error) {
	if size < 1 {
		return nil, errors.Wrapf(api.ErrInvalidCapacity, "window size %d", size)
	}
	// One extra slot keeps the sentinel gap out of the window.
	return &Average{samples: ringbuffer.New[float64](size + 1)}, nil
}

// Push adds a sample, evicting the oldest one once the window is full.
func (a *Average) Push(v float64) {
	if a.samples.IsFull() {
		old, _ := a.samples.PopFront()
		a.sum -= old
	}
	a.samples.PushBack(v)
	a.sum += v
}

// Value returns the current mean. The second result is false until at
// least one sample has been pushed.
func (a *Average) Value() (float64, bool) {
	n := a.samples.Len()
	if n == 0 {
		return 0, false
	}
	return a.sum / float64(n), true
}

// Len reports how many samples are currently in the window.
func (a *Average) Len() int {
	return a.samples.Len()
}
