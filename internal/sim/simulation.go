// Package sim wires the arena, the journal and the actors together and
// drives one complete open-serve-close cycle.
package sim

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/queuesim/postoffice/internal/domain/journal"
	"github.com/queuesim/postoffice/internal/domain/office"
	"github.com/queuesim/postoffice/internal/infrastructure/config"
	"github.com/queuesim/postoffice/internal/infrastructure/monitoring"
	"github.com/queuesim/postoffice/internal/shared/random"
)

// Simulation runs one post office day: spawn all clients and workers, keep
// the office open for a random slice of the closing window, then drive the
// closing handshake and reap every actor.
//
// Run has no cancellation path: every blocking wait in the protocol is
// matched by a guaranteed post, and the run is bounded by the configured
// delays.
type Simulation struct {
	params  config.Params
	journal *journal.Journal
	metrics *monitoring.Metrics
	log     *zap.Logger
}

// New creates a simulation. The journal stays owned by the caller; Run
// never closes it.
func New(params config.Params, jnl *journal.Journal, metrics *monitoring.Metrics, log *zap.Logger) *Simulation {
	return &Simulation{
		params:  params,
		journal: jnl,
		metrics: metrics,
		log:     log,
	}
}

// Run executes the simulation to completion and reclaims the arena.
func (s *Simulation) Run() error {
	log := s.log.With(zap.String("run_id", uuid.New().String()))
	log.Info("opening office",
		zap.Int("workers", s.params.Workers),
		zap.Int("clients", s.params.Clients),
		zap.Duration("closing_window", s.params.ClosingWindow))

	state := office.NewState(s.params.Workers, s.metrics)

	var wg sync.WaitGroup
	for i := 1; i <= s.params.Clients; i++ {
		c := &office.Client{
			ID:         i,
			State:      state,
			Journal:    s.journal,
			Metrics:    s.metrics,
			Log:        log,
			Rand:       random.New(i),
			MaxArrival: s.params.MaxArrival,
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Run()
		}()
	}
	for i := 1; i <= s.params.Workers; i++ {
		w := &office.Worker{
			ID:       i,
			State:    state,
			Journal:  s.journal,
			Metrics:  s.metrics,
			Log:      log,
			Rand:     random.New(s.params.Clients + i),
			MaxBreak: s.params.MaxBreak,
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.Run()
		}()
	}

	// Keep the office open for a uniform duration in [window/2, window].
	clock := random.New(0)
	openFor := clock.Between(s.params.ClosingWindow/2, s.params.ClosingWindow)
	time.Sleep(openFor)

	log.Info("closing office", zap.Duration("open_for", openFor))
	state.Close()

	// Closing handshake: every worker counts down once when it is done
	// working, then the single closing record goes out, then the workers
	// are dismissed.
	state.Leaving().Wait()
	s.journal.Closing()
	state.Dismissal().PostN(s.params.Workers)

	wg.Wait()
	log.Info("all actors finished", zap.Uint64("records", s.journal.Seq()))
	return state.Destroy()
}
