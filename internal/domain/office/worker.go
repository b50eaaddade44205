package office

import (
	"time"

	"go.uber.org/zap"

	"github.com/queuesim/postoffice/internal/domain/journal"
	"github.com/queuesim/postoffice/internal/infrastructure/monitoring"
	"github.com/queuesim/postoffice/internal/shared/random"
)

// phase is the worker's next move, computed from one arena snapshot.
type phase int

const (
	phaseServe phase = iota
	phaseBreak
	phaseLeave
)

// decide maps a snapshot onto a phase. The three cases cover every
// combination of the two flags, so the run loop needs no fallback branch.
func decide(hasClients, open bool) phase {
	switch {
	case hasClients:
		return phaseServe
	case open:
		return phaseBreak
	default:
		return phaseLeave
	}
}

// Worker enacts one clerk. Each loop iteration takes a single locked
// snapshot of the arena and serves a client, takes a break, or starts
// leaving.
//
// The closing barrier is counted down in exactly one place, after the
// worker has verified the office is closed and every queue is drained. A
// worker that counted down never initiates another service, so the closing
// record always follows the last "serving" record.
type Worker struct {
	ID       int
	State    *State
	Journal  *journal.Journal
	Metrics  *monitoring.Metrics
	Log      *zap.Logger
	Rand     *random.Source
	MaxBreak time.Duration
}

// Run drives the worker until dismissal.
func (w *Worker) Run() {
	w.Journal.WorkerStarted(w.ID)
	for {
		hasClients, open := w.State.Snapshot()
		switch decide(hasClients, open) {
		case phaseServe:
			w.serve()
		case phaseBreak:
			w.rest()
		case phaseLeave:
			if w.leave() {
				return
			}
		}
	}
}

// serve claims one queued client and services them. The claim can lose the
// race to another worker, in which case the loop takes a fresh snapshot.
func (w *Worker) serve() {
	svc, ok := w.State.Claim(w.Rand.Service())
	if !ok {
		return
	}
	w.State.Admission(svc).Post()

	w.Log.Debug("worker serving",
		zap.Int("worker", w.ID),
		zap.Stringer("service", svc))
	w.Journal.WorkerServing(w.ID, svc)
	start := time.Now()
	w.Rand.Sleep(maxServiceTime)
	w.Journal.WorkerServed(w.ID)
	w.Metrics.RecordServiceDuration(time.Since(start))
}

// rest takes a break while the office is open and no client waits.
func (w *Worker) rest() {
	w.Journal.WorkerBreak(w.ID)
	w.Metrics.RecordBreak()
	w.Rand.Sleep(w.MaxBreak)
	w.Journal.WorkerBreakDone(w.ID)
}

// leave finishes the worker's shift. It returns false when a client joined
// a queue between the snapshot and this check; the worker loops around and
// serves them first. Otherwise the worker counts into the closing barrier,
// unblocks anyone still waiting for admission, and sleeps until dismissed.
func (w *Worker) leave() bool {
	if !w.State.Empty() {
		return false
	}
	w.Log.Debug("worker ready to leave", zap.Int("worker", w.ID))
	w.State.Leaving().CountDown()
	w.State.ReleaseWaiting()

	w.State.Dismissal().Wait()
	w.Journal.WorkerHome(w.ID)
	return true
}
