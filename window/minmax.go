// File: window/minmax.go
// Author: Tim Raphael

package window

import (
	"cmp"

	"github.com/pkg/errors"

	"github.com/Tim-Raphael/ring-buffer/api"
	"github.com/Tim-Raphael/ring-buffer/ringbuffer"
)

// entry pairs a sample with its position in the stream so expired
// candidates can be dropped once they fall out of the window.
type entry[T cmp.Ordered] struct {
	seq uint64
	val T
}

// monotonic is the shared core of Min and Max: a deque of candidates
// ordered so the current extremum always sits at the front. keep
// reports whether an existing candidate survives an incoming sample.
type monotonic[T cmp.Ordered] struct {
	candidates *ringbuffer.RingBuffer[entry[T]]
	window     uint64
	seq        uint64
	keep       func(candidate, incoming T) bool
}

func newMonotonic[T cmp.Ordered](size int, keep func(candidate, incoming T) bool) (*monotonic[T], error) {
	if size < 1 {
		return nil, errors.Wrapf(api.ErrInvalidCapacity, "window size %d", size)
	}
	// At most size candidates are ever live, plus the sentinel slot.
	return &monotonic[T]{
		candidates: ringbuffer.New[entry[T]](size + 1),
		window:     uint64(size),
		keep:       keep,
	}, nil
}

// push admits a sample. Expiry runs before admission so the deque never
// holds more than a window's worth of candidates at once.
func (m *monotonic[T]) push(v T) {
	if front, ok := m.candidates.Front(); ok && front.seq+m.window <= m.seq {
		m.candidates.PopFront()
	}
	for {
		back, ok := m.candidates.Back()
		if !ok || m.keep(back.val, v) {
			break
		}
		m.candidates.PopBack()
	}
	m.candidates.PushBack(entry[T]{seq: m.seq, val: v})
	m.seq++
}

func (m *monotonic[T]) value() (T, bool) {
	front, ok := m.candidates.Front()
	if !ok {
		var zero T
		return zero, false
	}
	return front.val, true
}

// Min tracks the minimum of the most recent samples of a stream.
type Min[T cmp.Ordered] struct {
	core *monotonic[T]
}

// NewMin returns a Min over a window of size samples.
func NewMin[T cmp.Ordered](size int) (*Min[T], error) {
	core, err := newMonotonic[T](size, func(candidate, incoming T) bool {
		return candidate < incoming
	})
	if err != nil {
		return nil, err
	}
	return &Min[T]{core: core}, nil
}

// Push adds a sample to the window.
func (m *Min[T]) Push(v T) { m.core.push(v) }

// Value returns the minimum over the window. The second result is
// false until at least one sample has been pushed.
func (m *Min[T]) Value() (T, bool) { return m.core.value() }

// Max tracks the maximum of the most recent samples of a stream.
type Max[T cmp.Ordered] struct {
	core *monotonic[T]
}

// NewMax returns a Max over a window of size samples.
func NewMax[T cmp.Ordered](size int) (*Max[T], error) {
	core, err := newMonotonic[T](size, func(candidate, incoming T) bool {
		return candidate > incoming
	})
	if err != nil {
		return nil, err
	}
	return &Max[T]{core: core}, nil
}

// Push adds a sample to the window.
func (m *Max[T]) Push(v T) { m.core.push(v) }

// Value returns the maximum over the window. The second result is
// false until at least one sample has been pushed.
func (m *Max[T]) Value() (T, bool) { return m.core.value() }
