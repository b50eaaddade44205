package office

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/queuesim/postoffice/internal/domain/journal"
	"github.com/queuesim/postoffice/internal/infrastructure/monitoring"
	"github.com/queuesim/postoffice/internal/shared/random"
	"github.com/queuesim/postoffice/internal/shared/types"
)

func TestDecideCoversEveryCombination(t *testing.T) {
	cases := []struct {
		hasClients bool
		open       bool
		want       phase
	}{
		{true, true, phaseServe},
		{true, false, phaseServe}, // drain queues before leaving
		{false, true, phaseBreak},
		{false, false, phaseLeave},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, decide(tc.hasClients, tc.open))
	}
}

func TestWorkerServesQueuedClientThenLeaves(t *testing.T) {
	var buf bytes.Buffer
	jnl := journal.New(&buf)
	metrics := monitoring.NewMetrics(nil)
	state := NewState(1, metrics)

	require.True(t, state.Enter(types.ServicePackages))
	state.Close()

	w := &Worker{
		ID:      1,
		State:   state,
		Journal: jnl,
		Metrics: metrics,
		Log:     zap.NewNop(),
		Rand:    random.New(1),
	}

	done := make(chan struct{})
	go func() {
		w.Run()
		close(done)
	}()

	// The worker drains the queue before signaling the barrier.
	state.Leaving().Wait()
	assert.True(t, state.Empty())
	assert.True(t, state.Admission(types.ServicePackages).TryWait())

	state.Dismissal().Post()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not leave after dismissal")
	}

	out := buf.String()
	assert.Contains(t, out, "U 1: started")
	assert.Contains(t, out, "U 1: serving a service of type 2")
	assert.Contains(t, out, "U 1: service finished")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.True(t, strings.HasSuffix(lines[len(lines)-1], "U 1: going home"))
}

func TestWorkerLeavesImmediatelyWhenClosedAndEmpty(t *testing.T) {
	var buf bytes.Buffer
	jnl := journal.New(&buf)
	metrics := monitoring.NewMetrics(nil)
	state := NewState(1, metrics)
	state.Close()

	w := &Worker{
		ID:      2,
		State:   state,
		Journal: jnl,
		Metrics: metrics,
		Log:     zap.NewNop(),
		Rand:    random.New(2),
	}

	done := make(chan struct{})
	go func() {
		w.Run()
		close(done)
	}()

	state.Leaving().Wait()
	state.Dismissal().Post()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not leave after dismissal")
	}

	out := buf.String()
	assert.NotContains(t, out, "serving")
	assert.NotContains(t, out, "taking break")
	assert.Contains(t, out, "U 2: going home")
}
