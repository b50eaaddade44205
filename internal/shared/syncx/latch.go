package syncx

import "sync"

// Latch is a single-use count-down latch. Wait returns once CountDown has
// been called n times; counting down past zero is a programming error.
type Latch struct {
	mu   sync.Mutex
	zero *sync.Cond
	left int
}

// NewLatch creates a latch that opens after n count-downs.
func NewLatch(n int) *Latch {
	if n < 0 {
		panic("syncx: negative latch count")
	}
	l := &Latch{left: n}
	l.zero = sync.NewCond(&l.mu)
	return l
}

// CountDown records one arrival. It panics when called more than n times.
func (l *Latch) CountDown() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.left == 0 {
		panic("syncx: latch counted down past zero")
	}
	l.left--
	if l.left == 0 {
		l.zero.Broadcast()
	}
}

// Wait blocks until every expected arrival has counted down.
func (l *Latch) Wait() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for l.left > 0 {
		l.zero.Wait()
	}
}
