// File: ringbuffer/ringbuffer.go
// Author: Tim Raphael
// License: Apache-2.0
//
// RingBuffer is a bounded circular deque over a single backing array.
// front indexes the oldest element, back indexes the next back-side
// write slot; cursor equality means empty, and one slot is kept vacant
// as a sentinel gap so that full is (back+1) mod cap == front.

package ringbuffer

import (
	"github.com/Tim-Raphael/ring-buffer/api"
)

// Ensure compile-time interface compliance.
var _ api.Deque[any] = (*RingBuffer[any])(nil)

// RingBuffer is a fixed-capacity deque. It never reallocates: a full
// buffer rejects pushes instead of growing, and a buffer of capacity n
// holds at most n-1 items because of the sentinel gap.
//
// Not safe for concurrent use. Mutating calls need exclusive access;
// read-only calls may run concurrently with each other but not with a
// mutator.
type RingBuffer[T any] struct {
	data  []T
	front int
	back  int
}

// New allocates an empty ring buffer with the given number of slots.
// capacity must be at least 1. A zero or negative capacity leaves the
// cursors without a valid range, so New panics; this is the only
// condition anywhere in the package that aborts.
func New[T any](capacity int) *RingBuffer[T] {
	if capacity < 1 {
		panic("ringbuffer: capacity must be at least 1")
	}
	return &RingBuffer[T]{data: make([]T, capacity)}
}

// PushBack inserts item at the back, returns false if the buffer is full.
// A rejected item is not retained in any form.
func (r *RingBuffer[T]) PushBack(item T) bool {
	if r.IsFull() {
		return false
	}
	r.data[r.back] = item
	r.back = r.next(r.back)
	return true
}

// PushFront inserts item at the front, returns false if the buffer is full.
func (r *RingBuffer[T]) PushFront(item T) bool {
	if r.IsFull() {
		return false
	}
	r.front = r.prev(r.front)
	r.data[r.front] = item
	return true
}

// PopBack removes and returns the back item. On an empty buffer it
// returns the zero value and false without mutating anything.
func (r *RingBuffer[T]) PopBack() (item T, ok bool) {
	if r.IsEmpty() {
		return item, false
	}
	r.back = r.prev(r.back)
	item = r.data[r.back]
	var zero T
	r.data[r.back] = zero
	return item, true
}

// PopFront removes and returns the front item. On an empty buffer it
// returns the zero value and false without mutating anything.
func (r *RingBuffer[T]) PopFront() (item T, ok bool) {
	if r.IsEmpty() {
		return item, false
	}
	item = r.data[r.front]
	var zero T
	r.data[r.front] = zero
	r.front = r.next(r.front)
	return item, true
}

// Front returns a copy of the front item without removing it, or the
// zero value and false if the buffer is empty. The copy is shallow: it
// shares any referenced memory with the stored item.
func (r *RingBuffer[T]) Front() (item T, ok bool) {
	if r.IsEmpty() {
		return item, false
	}
	return r.data[r.front], true
}

// Back returns a copy of the back item without removing it, or the zero
// value and false if the buffer is empty.
func (r *RingBuffer[T]) Back() (item T, ok bool) {
	if r.IsEmpty() {
		return item, false
	}
	return r.data[r.prev(r.back)], true
}

// FrontRef returns a pointer to the front item's slot, or nil if the
// buffer is empty. The pointer is read-only and is invalidated by the
// next mutating call; callers must not write through or retain it.
func (r *RingBuffer[T]) FrontRef() *T {
	if r.IsEmpty() {
		return nil
	}
	return &r.data[r.front]
}

// BackRef returns a pointer to the back item's slot, or nil if the
// buffer is empty. Same aliasing rules as FrontRef.
func (r *RingBuffer[T]) BackRef() *T {
	if r.IsEmpty() {
		return nil
	}
	return &r.data[r.prev(r.back)]
}

// IsEmpty reports whether the buffer holds no items.
func (r *RingBuffer[T]) IsEmpty() bool {
	return r.front == r.back
}

// IsFull reports whether the buffer can accept no further item, that is,
// whether the next back-side write would land on the sentinel gap.
func (r *RingBuffer[T]) IsFull() bool {
	return r.next(r.back) == r.front
}

// Len returns the number of items currently in the buffer.
func (r *RingBuffer[T]) Len() int {
	n := len(r.data)
	return (r.back - r.front + n) % n
}

// Cap returns the fixed slot count. A full buffer holds Cap()-1 items.
func (r *RingBuffer[T]) Cap() int {
	return len(r.data)
}

// Clear resets the buffer to empty and zeroes every slot, releasing any
// references held by stored items.
func (r *RingBuffer[T]) Clear() {
	clear(r.data)
	r.front = 0
	r.back = 0
}

// next is the cursor position one step forward, wrapping past the end.
func (r *RingBuffer[T]) next(i int) int {
	return (i + 1) % len(r.data)
}

// prev is the cursor position one step backward, wrapping below zero.
func (r *RingBuffer[T]) prev(i int) int {
	if i == 0 {
		return len(r.data) - 1
	}
	return i - 1
}
