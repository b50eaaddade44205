// Package office holds the shared arena of a simulation run and the client
// and worker state machines operating on it.
package office

import (
	"errors"
	"sync"

	"github.com/queuesim/postoffice/internal/infrastructure/monitoring"
	"github.com/queuesim/postoffice/internal/shared/syncx"
	"github.com/queuesim/postoffice/internal/shared/types"
)

// ErrDestroyed reports a second teardown of the arena, which is a
// programming error.
var ErrDestroyed = errors.New("office: shared state already destroyed")

// State is the arena every client and worker shares: the open flag, the
// three queue counters and the synchronization objects of the closing
// handshake. It is built once by the orchestrator and handed to every actor
// by reference; Destroy reclaims it exactly once.
//
// The mutex guards open and queues. No blocking operation happens while it
// is held; semaphore posts outside the admission pairing are counted, not
// blocking.
type State struct {
	mu     sync.Mutex
	open   bool
	queues [types.ServiceCount]uint

	admission [types.ServiceCount]*syncx.Semaphore
	leaving   *syncx.Latch
	dismissal *syncx.Semaphore

	metrics   *monitoring.Metrics
	destroyed bool
}

// NewState creates an open office expecting the given number of workers to
// take part in the closing handshake.
func NewState(workers int, metrics *monitoring.Metrics) *State {
	s := &State{
		open:      true,
		leaving:   syncx.NewLatch(workers),
		dismissal: syncx.NewSemaphore(0),
		metrics:   metrics,
	}
	for i := range s.admission {
		s.admission[i] = syncx.NewSemaphore(0)
	}
	return s
}

// Enter atomically checks the open flag and joins the queue for svc. A
// false return means the office had already closed; the caller must not
// wait for admission. This is the single place where the race between
// "just missed closing" and "queue join" is decided.
func (s *State) Enter(svc types.Service) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return false
	}
	s.queues[svc.Index()]++
	s.metrics.ClientQueued(svc)
	return true
}

// Admission returns the semaphore a queued client blocks on until a worker
// takes it out of the queue for svc.
func (s *State) Admission(svc types.Service) *syncx.Semaphore {
	return s.admission[svc.Index()]
}

// Snapshot atomically reads whether any client is queued and whether the
// office is open. The worker's three-way decision is computed from exactly
// one snapshot.
func (s *State) Snapshot() (hasClients, open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.anyQueued(), s.open
}

// Claim removes one client from a queue: the preferred one when non-empty,
// otherwise the lowest-indexed non-empty queue. The deterministic fallback
// guarantees progress when only one queue is populated. A false return
// means another worker drained the queues since the caller's snapshot.
func (s *State) Claim(preferred types.Service) (types.Service, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.queues[preferred.Index()] > 0 {
		s.take(preferred)
		return preferred, true
	}
	for _, svc := range types.AllServices() {
		if s.queues[svc.Index()] > 0 {
			s.take(svc)
			return svc, true
		}
	}
	return 0, false
}

// Close flips the office to closed. The orchestrator is the only caller;
// the mutex makes the flip visible to every reader's next snapshot.
func (s *State) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = false
}

// Empty reports whether every queue is drained.
func (s *State) Empty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.anyQueued()
}

// ReleaseWaiting posts each admission semaphore once per still-queued
// client so nobody stays blocked at shutdown. With admission strictly
// paired to Claim the pending counts are zero by the time a worker leaves;
// the release mirrors the defensive unblock of the closing protocol.
func (s *State) ReleaseWaiting() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, svc := range types.AllServices() {
		if n := s.queues[svc.Index()]; n > 0 {
			s.admission[svc.Index()].PostN(int(n))
		}
	}
}

// Leaving returns the closing barrier workers count down when they are done
// working.
func (s *State) Leaving() *syncx.Latch {
	return s.leaving
}

// Dismissal returns the semaphore workers block on until the orchestrator
// sends them home.
func (s *State) Dismissal() *syncx.Semaphore {
	return s.dismissal
}

// Destroy reclaims the arena. A second call returns ErrDestroyed.
func (s *State) Destroy() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.destroyed {
		return ErrDestroyed
	}
	s.destroyed = true
	return nil
}

// anyQueued must be called with the mutex held.
func (s *State) anyQueued() bool {
	for _, n := range s.queues {
		if n > 0 {
			return true
		}
	}
	return false
}

// take must be called with the mutex held and the queue non-empty.
func (s *State) take(svc types.Service) {
	s.queues[svc.Index()]--
	s.metrics.ClientClaimed(svc)
}
