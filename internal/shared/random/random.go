// Package random provides the uniform delay generation used by simulation
// actors. Each actor owns its own Source, so no generator state is shared
// between goroutines.
package random

import (
	"math/rand/v2"
	"time"

	"github.com/queuesim/postoffice/internal/shared/types"
)

// Source generates uniformly distributed delays and service picks for one
// actor. Seeding mixes wall time with the actor identity so concurrently
// created sources diverge.
type Source struct {
	rng *rand.Rand
}

// New creates a source for the actor with the given id.
func New(id int) *Source {
	seed := uint64(time.Now().UnixNano()) ^ uint64(id)<<32
	return &Source{rng: rand.New(rand.NewPCG(seed, uint64(id)+1))}
}

// Between returns a uniform duration in [lo, hi].
func (s *Source) Between(lo, hi time.Duration) time.Duration {
	if hi <= lo {
		return lo
	}
	return lo + time.Duration(s.rng.Int64N(int64(hi-lo)+1))
}

// Sleep suspends the caller for a uniform duration in [0, max].
func (s *Source) Sleep(max time.Duration) {
	if d := s.Between(0, max); d > 0 {
		time.Sleep(d)
	}
}

// Service picks one of the three service types uniformly.
func (s *Source) Service() types.Service {
	return types.Service(s.rng.IntN(types.ServiceCount) + 1)
}
