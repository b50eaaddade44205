package office

import (
	"time"

	"go.uber.org/zap"

	"github.com/queuesim/postoffice/internal/domain/journal"
	"github.com/queuesim/postoffice/internal/infrastructure/monitoring"
	"github.com/queuesim/postoffice/internal/shared/random"
)

// maxServiceTime bounds the in-service delay of both actors.
const maxServiceTime = 10 * time.Millisecond

// Client enacts one customer: arrive after a random delay, pick a service,
// join its queue if the office is still open, wait to be called, get
// served, go home. A client turned away at the door goes home immediately.
type Client struct {
	ID         int
	State      *State
	Journal    *journal.Journal
	Metrics    *monitoring.Metrics
	Log        *zap.Logger
	Rand       *random.Source
	MaxArrival time.Duration
}

// Run drives the client to completion.
func (c *Client) Run() {
	c.Journal.ClientStarted(c.ID)
	c.Rand.Sleep(c.MaxArrival)

	svc := c.Rand.Service()
	if !c.State.Enter(svc) {
		c.Log.Debug("client found office closed",
			zap.Int("client", c.ID),
			zap.Stringer("service", svc))
		c.Journal.ClientHome(c.ID)
		c.Metrics.RecordTurnedAway()
		return
	}
	c.Journal.ClientEntering(c.ID, svc)
	c.Log.Debug("client queued",
		zap.Int("client", c.ID),
		zap.Stringer("service", svc))

	c.State.Admission(svc).Wait()

	c.Journal.ClientCalled(c.ID)
	c.Rand.Sleep(maxServiceTime)
	c.Journal.ClientHome(c.ID)
	c.Metrics.RecordServed()
	c.Log.Debug("client served", zap.Int("client", c.ID))
}
