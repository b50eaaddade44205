package monitoring

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/queuesim/postoffice/internal/shared/types"
)

func TestQueueGaugeFollowsEnterAndClaim(t *testing.T) {
	m := NewMetrics(nil)

	m.ClientQueued(types.ServiceLetters)
	m.ClientQueued(types.ServiceLetters)
	m.ClientClaimed(types.ServiceLetters)

	gauge := m.QueueLength.WithLabelValues("1")
	assert.Equal(t, 1.0, testutil.ToFloat64(gauge))
}

func TestCounters(t *testing.T) {
	m := NewMetrics(nil)

	m.RecordServed()
	m.RecordServed()
	m.RecordTurnedAway()
	m.RecordBreak()
	m.RecordServiceDuration(5 * time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ClientsServed))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ClientsTurnedAway))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BreaksTaken))
}

func TestPrivateRegistriesStayIsolated(t *testing.T) {
	// Two collectors with the same metric names may coexist when each gets
	// its own registry; a shared registry rejects the duplicate.
	require.NotPanics(t, func() {
		NewMetrics(nil)
		NewMetrics(nil)
	})

	reg := prometheus.NewRegistry()
	NewMetrics(reg)
	require.Panics(t, func() { NewMetrics(reg) })
}
