// config/availability.go
package config

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/event"
)

// Availability owns the single process-wide "store reachable" flag.
// The flag is flipped by the initial connect loop and by driver
// heartbeat events; everything else reads it through Connected().
type Availability struct {
	connected atomic.Bool
	log       *zerolog.Logger
}

func NewAvailability(log *zerolog.Logger) *Availability {
	return &Availability{log: log}
}

// Connected reports whether the document store is currently reachable.
func (a *Availability) Connected() bool {
	return a.connected.Load()
}

// SetConnected updates the flag and logs transitions.
func (a *Availability) SetConnected(up bool) {
	prev := a.connected.Swap(up)
	if prev == up {
		return
	}
	if up {
		a.log.Info().Msg("document store connected")
	} else {
		a.log.Warn().Msg("document store disconnected")
	}
}

// ServerMonitor subscribes the flag to driver heartbeat events. The
// event stream, not the initial retry outcome, is authoritative for the
// lifetime of the process.
func (a *Availability) ServerMonitor() *event.ServerMonitor {
	return &event.ServerMonitor{
		ServerHeartbeatSucceeded: func(_ *event.ServerHeartbeatSucceededEvent) {
			a.SetConnected(true)
		},
		ServerHeartbeatFailed: func(e *event.ServerHeartbeatFailedEvent) {
			a.log.Error().Err(e.Failure).Msg("store heartbeat failed")
			a.SetConnected(false)
		},
	}
}

// ConnectWithRetry runs ping up to attempts times, waiting backoff
// between failures. Exhaustion is not fatal: the process continues in
// degraded mode and reports false.
func (a *Availability) ConnectWithRetry(ctx context.Context, attempts int, backoff time.Duration, ping func(context.Context) error) bool {
	for i := 1; i <= attempts; i++ {
		a.log.Info().Int("attempt", i).Int("max", attempts).Msg("attempting store connection")
		if err := ping(ctx); err == nil {
			a.SetConnected(true)
			return true
		} else {
			a.log.Error().Err(err).Int("attempt", i).Msg("store connection attempt failed")
		}
		if i < attempts {
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				a.log.Warn().Msg("store connection cancelled")
				return false
			}
		}
	}
	a.log.Warn().Msg("starting without document store, serving fallback data")
	return false
}
