// File: sched/scheduler.go
// Author: Tim Raphael

// Package sched runs submitted tasks on a fixed pool of workers. Each
// worker owns a private staging deque fed by a buffered inbox channel;
// urgent submissions jump to the front of the staging deque so they run
// ahead of that worker's backlog.
package sched

import (
	"sync/atomic"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/Tim-Raphael/ring-buffer/api"
	"github.com/Tim-Raphael/ring-buffer/ringbuffer"
)

// Task is a unit of work executed by a worker.
type Task = api.Task

// submission carries a task and its routing hint through an inbox.
type submission struct {
	task   Task
	urgent bool
}

var _ api.Runner = (*Scheduler)(nil)

// Scheduler distributes tasks across a fixed pool of workers.
type Scheduler struct {
	inboxes    []chan submission
	queueDepth int
	closeCh    chan struct{}
	group      *errgroup.Group

	closed atomic.Bool
	next   atomic.Uint64

	submitted atomic.Int64
	completed atomic.Int64
	rejected  atomic.Int64
	panicked  atomic.Int64
}

// New builds a Scheduler and starts its workers.
func New(opts ...Option) (*Scheduler, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Workers < 1 {
		return nil, errors.Wrapf(api.ErrInvalidWorkerCount, "workers %d", cfg.Workers)
	}
	if cfg.QueueDepth < 1 {
		return nil, errors.Wrapf(api.ErrInvalidCapacity, "queue depth %d", cfg.QueueDepth)
	}
	if cfg.InboxSize < 1 {
		return nil, errors.Wrapf(api.ErrInvalidCapacity, "inbox size %d", cfg.InboxSize)
	}

	s := &Scheduler{
		inboxes:    make([]chan submission, cfg.Workers),
		queueDepth: cfg.QueueDepth,
		closeCh:    make(chan struct{}),
		group:      &errgroup.Group{},
	}
	for i := range s.inboxes {
		s.inboxes[i] = make(chan submission, cfg.InboxSize)
	}
	for i := range s.inboxes {
		i := i // per-iteration copy; the module builds with pre-1.22 loop semantics
		s.group.Go(func() error { return s.runWorker(i) })
	}
	return s, nil
}

// Submit enqueues a task on one of the workers. It never blocks: when
// every inbox is full it returns ErrSchedulerSaturated.
func (s *Scheduler) Submit(task Task) error {
	return s.submit(submission{task: task})
}

// SubmitUrgent enqueues a task that runs ahead of its worker's staged
// backlog.
func (s *Scheduler) SubmitUrgent(task Task) error {
	return s.submit(submission{task: task, urgent: true})
}

func (s *Scheduler) submit(sub submission) error {
	if sub.task == nil {
		return errors.New("sched: nil task")
	}
	if s.closed.Load() {
		return api.ErrSchedulerClosed
	}
	start := int(s.next.Add(1) % uint64(len(s.inboxes)))
	for i := 0; i < len(s.inboxes); i++ {
		select {
		case s.inboxes[(start+i)%len(s.inboxes)] <- sub:
			s.submitted.Add(1)
			return nil
		default:
		}
	}
	s.rejected.Add(1)
	return api.ErrSchedulerSaturated
}

// Close stops the workers after every accepted task has run. Calling
// Close again after the first call returns nil immediately.
func (s *Scheduler) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	close(s.closeCh)
	return s.group.Wait()
}

// Stats returns a snapshot of the scheduler counters.
func (s *Scheduler) Stats() map[string]int64 {
	return map[string]int64{
		"workers":   int64(len(s.inboxes)),
		"submitted": s.submitted.Load(),
		"completed": s.completed.Load(),
		"rejected":  s.rejected.Load(),
		"panicked":  s.panicked.Load(),
	}
}

func (s *Scheduler) runWorker(id int) error {
	staging := ringbuffer.New[Task](s.queueDepth + 1)
	inbox := s.inboxes[id]
	for {
		s.fill(staging, inbox)
		if task, ok := staging.PopFront(); ok {
			s.execute(task)
			continue
		}
		select {
		case sub := <-inbox:
			stage(staging, sub)
		case <-s.closeCh:
			// Alternate refills and pops so late arrivals in the
			// inbox still run before the worker exits.
			for {
				s.fill(staging, inbox)
				task, ok := staging.PopFront()
				if !ok {
					return nil
				}
				s.execute(task)
			}
		}
	}
}

// fill moves every immediately available submission into the staging
// deque without blocking.
func (s *Scheduler) fill(staging api.Deque[Task], inbox <-chan submission) {
	for !staging.IsFull() {
		select {
		case sub := <-inbox:
			stage(staging, sub)
		default:
			return
		}
	}
}

// stage routes a submission into the staging deque. The caller
// guarantees there is room.
func stage(staging api.Deque[Task], sub submission) bool {
	if sub.urgent {
		return staging.PushFront(sub.task)
	}
	return staging.PushBack(sub.task)
}

func (s *Scheduler) execute(task Task) {
	defer func() {
		if r := recover(); r != nil {
			s.panicked.Add(1)
		}
	}()
	task()
	s.completed.Add(1)
}
