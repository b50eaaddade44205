// Package syncx provides the synchronization primitives of the office
// protocol: a counting semaphore used for client admission and worker
// dismissal, and a count-down latch used for the closing barrier.
//
// The primitives deliberately expose no cancellation: the protocol has no
// timeout on any blocking wait, and every wait is matched by a guaranteed
// post as long as the orchestrator drives the closing handshake.
package syncx

import "sync"

// Semaphore is a counting semaphore with no upper bound. Unlike a buffered
// channel it supports posting without a prior acquire, which the admission
// protocol relies on.
type Semaphore struct {
	mu    sync.Mutex
	ready *sync.Cond
	count int
}

// NewSemaphore creates a semaphore with the given initial count.
func NewSemaphore(initial int) *Semaphore {
	if initial < 0 {
		panic("syncx: negative initial semaphore count")
	}
	s := &Semaphore{count: initial}
	s.ready = sync.NewCond(&s.mu)
	return s
}

// Wait blocks until the count is positive, then decrements it.
func (s *Semaphore) Wait() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for s.count <= 0 {
		s.ready.Wait()
	}
	s.count--
}

// TryWait decrements the count if it is positive without blocking.
func (s *Semaphore) TryWait() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.count <= 0 {
		return false
	}
	s.count--
	return true
}

// Post increments the count, waking one waiter.
func (s *Semaphore) Post() {
	s.PostN(1)
}

// PostN increments the count by n, waking up to n waiters.
func (s *Semaphore) PostN(n int) {
	if n <= 0 {
		return
	}
	s.mu.Lock()
	s.count += n
	for i := 0; i < n; i++ {
		s.ready.Signal()
	}
	s.mu.Unlock()
}
