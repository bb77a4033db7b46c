// File: api/deque.go
// Author: Tim Raphael
//
// Fixed-capacity double-ended queue contract.

package api

// Deque is a bounded double-ended queue contract.
//
// Implementations provide no internal synchronization: confine a deque to
// one goroutine, or guard it with external locking.
type Deque[T any] interface {
	// PushFront inserts an item at the front, returns false if full.
	PushFront(item T) bool
	// PushBack inserts an item at the back, returns false if full.
	PushBack(item T) bool
	// PopFront removes and returns the front item, returns false if empty.
	PopFront() (T, bool)
	// PopBack removes and returns the back item, returns false if empty.
	PopBack() (T, bool)
	// Front returns a copy of the front item without removing it.
	Front() (T, bool)
	// Back returns a copy of the back item without removing it.
	Back() (T, bool)
	// Len returns the current number of items.
	Len() int
	// Cap returns the fixed slot count; a full deque holds Cap()-1 items.
	Cap() int
	// IsEmpty reports whether the deque holds no items.
	IsEmpty() bool
	// IsFull reports whether the deque can accept no further item.
	IsFull() bool
}
