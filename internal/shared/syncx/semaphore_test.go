package syncx

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSemaphoreInitialCount(t *testing.T) {
	s := NewSemaphore(2)

	assert.True(t, s.TryWait())
	assert.True(t, s.TryWait())
	assert.False(t, s.TryWait())
}

func TestSemaphorePostWakesWaiter(t *testing.T) {
	s := NewSemaphore(0)

	done := make(chan struct{})
	go func() {
		s.Wait()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("Wait returned before Post")
	case <-time.After(20 * time.Millisecond):
	}

	s.Post()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after Post")
	}
}

func TestSemaphorePostN(t *testing.T) {
	s := NewSemaphore(0)

	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Wait()
		}()
	}

	s.PostN(3)

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("not all waiters woke after PostN")
	}

	// Count is drained again
	assert.False(t, s.TryWait())
}

func TestSemaphorePostBeforeWait(t *testing.T) {
	s := NewSemaphore(0)
	s.Post()
	s.Post()

	// Both posts are remembered
	assert.True(t, s.TryWait())
	assert.True(t, s.TryWait())
	assert.False(t, s.TryWait())
}

func TestSemaphoreNegativeInitialPanics(t *testing.T) {
	require.Panics(t, func() { NewSemaphore(-1) })
}
