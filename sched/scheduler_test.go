// File: sched/scheduler_test.go
// Author: Tim Raphael

package sched_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tim-Raphael/ring-buffer/api"
	"github.com/Tim-Raphael/ring-buffer/sched"
)

func TestSchedulerExecutesAll(t *testing.T) {
	s, err := sched.New(sched.WithWorkers(4), sched.WithQueueDepth(8), sched.WithInboxSize(64))
	require.NoError(t, err)

	const tasks = 200
	var ran atomic.Int64
	var wg sync.WaitGroup
	wg.Add(tasks)
	for i := 0; i < tasks; i++ {
		err := s.Submit(func() {
			ran.Add(1)
			wg.Done()
		})
		require.NoError(t, err)
	}
	wg.Wait()
	require.NoError(t, s.Close())

	assert.Equal(t, int64(tasks), ran.Load())
	stats := s.Stats()
	assert.Equal(t, int64(tasks), stats["submitted"])
	assert.Equal(t, int64(tasks), stats["completed"])
	assert.Equal(t, int64(0), stats["rejected"])
	assert.Equal(t, int64(4), stats["workers"])
}

func TestSubmitAfterClose(t *testing.T) {
	s, err := sched.New(sched.WithWorkers(1))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	err = s.Submit(func() {})
	assert.ErrorIs(t, err, api.ErrSchedulerClosed)

	// Closing again is a no-op.
	assert.NoError(t, s.Close())
}

func TestSubmitNilTask(t *testing.T) {
	s, err := sched.New(sched.WithWorkers(1))
	require.NoError(t, err)
	defer s.Close()

	assert.Error(t, s.Submit(nil))
}

func TestSaturationAndRecovery(t *testing.T) {
	s, err := sched.New(sched.WithWorkers(1), sched.WithQueueDepth(2), sched.WithInboxSize(4))
	require.NoError(t, err)

	started := make(chan struct{})
	gate := make(chan struct{})
	require.NoError(t, s.Submit(func() {
		close(started)
		<-gate
	}))
	<-started

	// The single worker is parked inside the gate task, so these pile
	// up in its inbox until the buffer runs out.
	var wg sync.WaitGroup
	wg.Add(4)
	for i := 0; i < 4; i++ {
		require.NoError(t, s.Submit(func() { wg.Done() }))
	}
	err = s.Submit(func() {})
	assert.ErrorIs(t, err, api.ErrSchedulerSaturated)

	close(gate)
	wg.Wait()
	require.NoError(t, s.Close())

	stats := s.Stats()
	assert.Equal(t, int64(5), stats["submitted"])
	assert.Equal(t, int64(5), stats["completed"])
	assert.Equal(t, int64(1), stats["rejected"])
}

func TestPanicDoesNotKillWorker(t *testing.T) {
	s, err := sched.New(sched.WithWorkers(1))
	require.NoError(t, err)

	require.NoError(t, s.Submit(func() { panic("boom") }))

	done := make(chan struct{})
	require.NoError(t, s.Submit(func() { close(done) }))
	<-done
	require.NoError(t, s.Close())

	stats := s.Stats()
	assert.Equal(t, int64(1), stats["panicked"])
	assert.Equal(t, int64(1), stats["completed"])
}

func TestUrgentRunsBeforeBacklog(t *testing.T) {
	s, err := sched.New(sched.WithWorkers(1), sched.WithQueueDepth(8), sched.WithInboxSize(8))
	require.NoError(t, err)

	started := make(chan struct{})
	gate := make(chan struct{})
	require.NoError(t, s.Submit(func() {
		close(started)
		<-gate
	}))
	<-started

	// While the worker is parked, build a backlog and then jump it.
	order := make(chan string, 3)
	require.NoError(t, s.Submit(func() { order <- "first" }))
	require.NoError(t, s.Submit(func() { order <- "second" }))
	require.NoError(t, s.SubmitUrgent(func() { order <- "urgent" }))

	close(gate)
	require.NoError(t, s.Close())

	assert.Equal(t, "urgent", <-order)
	assert.Equal(t, "first", <-order)
	assert.Equal(t, "second", <-order)
}

func TestCloseDrainsBacklog(t *testing.T) {
	s, err := sched.New(sched.WithWorkers(1), sched.WithQueueDepth(2), sched.WithInboxSize(8))
	require.NoError(t, err)

	started := make(chan struct{})
	gate := make(chan struct{})
	require.NoError(t, s.Submit(func() {
		close(started)
		<-gate
	}))
	<-started

	var ran atomic.Int64
	for i := 0; i < 6; i++ {
		require.NoError(t, s.Submit(func() { ran.Add(1) }))
	}

	close(gate)
	require.NoError(t, s.Close())

	assert.Equal(t, int64(6), ran.Load())
	assert.Equal(t, int64(7), s.Stats()["completed"])
}

func TestOptionValidation(t *testing.T) {
	_, err := sched.New(sched.WithWorkers(0))
	assert.ErrorIs(t, err, api.ErrInvalidWorkerCount)

	_, err = sched.New(sched.WithQueueDepth(0))
	assert.ErrorIs(t, err, api.ErrInvalidCapacity)

	_, err = sched.New(sched.WithInboxSize(-1))
	assert.ErrorIs(t, err, api.ErrInvalidCapacity)
}
