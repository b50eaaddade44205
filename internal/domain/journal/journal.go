// Package journal implements the sequenced event log shared by every actor
// in a run. It is the only specified output of the simulator.
package journal

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/queuesim/postoffice/internal/shared/types"
)

// Actor kind prefixes in the log.
const (
	kindClient = "Z"
	kindWorker = "U"
)

// Event descriptions, verbatim from the log format.
const (
	evStarted      = "started"
	evCalled       = "called by office worker"
	evGoingHome    = "going home"
	evServiceDone  = "service finished"
	evBreakStarted = "taking break"
	evBreakDone    = "break finished"
	evClosing      = "closing"
)

// Journal is an append-only sink of numbered event records. Records are
// numbered from 1 with no gaps; the lock that assigns the number also
// orders the write, so a record is fully visible before the next writer
// proceeds.
type Journal struct {
	mu     sync.Mutex
	seq    uint64
	w      io.Writer
	file   *os.File // nil when writing to a caller-supplied writer
	closed bool
}

// Open creates a journal writing to the file at path, truncating any
// previous run's log.
func Open(path string) (*Journal, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	return &Journal{w: f, file: f}, nil
}

// New creates a journal writing to w. Used by tests and embedding programs.
func New(w io.Writer) *Journal {
	return &Journal{w: w}
}

// Record appends one event line with the next sequence number. os.File
// writes are unbuffered, so the record reaches the file before the lock is
// released.
func (j *Journal) Record(line string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.seq++
	fmt.Fprintf(j.w, "%d: %s\n", j.seq, line)
}

// Seq returns the number of records written so far.
func (j *Journal) Seq() uint64 {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.seq
}

// Close closes the underlying file, if any. Safe to call more than once.
func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.file == nil || j.closed {
		return nil
	}
	j.closed = true
	return j.file.Close()
}

func (j *Journal) actor(kind string, id int, event string) {
	j.Record(fmt.Sprintf("%s %d: %s", kind, id, event))
}

// ClientStarted records a client starting up.
func (j *Journal) ClientStarted(id int) {
	j.actor(kindClient, id, evStarted)
}

// ClientEntering records a client joining the queue for svc.
func (j *Journal) ClientEntering(id int, svc types.Service) {
	j.actor(kindClient, id, fmt.Sprintf("entering office for a service %d", svc))
}

// ClientCalled records a client being admitted by a worker.
func (j *Journal) ClientCalled(id int) {
	j.actor(kindClient, id, evCalled)
}

// ClientHome records a client leaving, served or not.
func (j *Journal) ClientHome(id int) {
	j.actor(kindClient, id, evGoingHome)
}

// WorkerStarted records a worker starting up.
func (j *Journal) WorkerStarted(id int) {
	j.actor(kindWorker, id, evStarted)
}

// WorkerServing records a worker starting a service of the given type.
func (j *Journal) WorkerServing(id int, svc types.Service) {
	j.actor(kindWorker, id, fmt.Sprintf("serving a service of type %d", svc))
}

// WorkerServed records a worker finishing a service.
func (j *Journal) WorkerServed(id int) {
	j.actor(kindWorker, id, evServiceDone)
}

// WorkerBreak records a worker starting a break.
func (j *Journal) WorkerBreak(id int) {
	j.actor(kindWorker, id, evBreakStarted)
}

// WorkerBreakDone records a worker returning from a break.
func (j *Journal) WorkerBreakDone(id int) {
	j.actor(kindWorker, id, evBreakDone)
}

// WorkerHome records a worker leaving after dismissal.
func (j *Journal) WorkerHome(id int) {
	j.actor(kindWorker, id, evGoingHome)
}

// Closing records the office closing. This is the only unprefixed record.
func (j *Journal) Closing() {
	j.Record(evClosing)
}
