// Package api
// Author: Tim Raphael
//
// Mock/testing utilities for the library contracts.

package api

// MockDeque is a test and mock-friendly implementation of Deque.
type MockDeque[T any] struct {
	PushFrontFunc func(T) bool
	PushBackFunc  func(T) bool
	PopFrontFunc  func() (T, bool)
	PopBackFunc   func() (T, bool)
	FrontFunc     func() (T, bool)
	BackFunc      func() (T, bool)
	LenFunc       func() int
	CapFunc       func() int
	IsEmptyFunc   func() bool
	IsFullFunc    func() bool
}

var _ Deque[any] = (*MockDeque[any])(nil)

func (m *MockDeque[T]) PushFront(item T) bool { return m.PushFrontFunc(item) }
func (m *MockDeque[T]) PushBack(item T) bool  { return m.PushBackFunc(item) }
func (m *MockDeque[T]) PopFront() (T, bool)   { return m.PopFrontFunc() }
func (m *MockDeque[T]) PopBack() (T, bool)    { return m.PopBackFunc() }
func (m *MockDeque[T]) Front() (T, bool)      { return m.FrontFunc() }
func (m *MockDeque[T]) Back() (T, bool)       { return m.BackFunc() }
func (m *MockDeque[T]) Len() int              { return m.LenFunc() }
func (m *MockDeque[T]) Cap() int              { return m.CapFunc() }
func (m *MockDeque[T]) IsEmpty() bool         { return m.IsEmptyFunc() }
func (m *MockDeque[T]) IsFull() bool          { return m.IsFullFunc() }
