package config

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/event"
)

func testAvailability() *Availability {
	log := zerolog.Nop()
	return NewAvailability(&log)
}

func TestConnectWithRetryExhaustsAttempts(t *testing.T) {
	avail := testAvailability()

	attempts := 0
	start := time.Now()
	ok := avail.ConnectWithRetry(context.Background(), 3, 10*time.Millisecond, func(context.Context) error {
		attempts++
		return errors.New("connection refused")
	})
	elapsed := time.Since(start)

	assert.False(t, ok)
	assert.Equal(t, 3, attempts)
	assert.False(t, avail.Connected())
	// Two backoff waits between three attempts.
	assert.GreaterOrEqual(t, elapsed, 20*time.Millisecond)
}

func TestConnectWithRetrySucceedsMidway(t *testing.T) {
	avail := testAvailability()

	attempts := 0
	ok := avail.ConnectWithRetry(context.Background(), 3, time.Millisecond, func(context.Context) error {
		attempts++
		if attempts < 2 {
			return errors.New("connection refused")
		}
		return nil
	})

	assert.True(t, ok)
	assert.Equal(t, 2, attempts)
	assert.True(t, avail.Connected())
}

func TestConnectWithRetryHonoursCancellation(t *testing.T) {
	avail := testAvailability()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	attempts := 0
	ok := avail.ConnectWithRetry(ctx, 3, time.Minute, func(context.Context) error {
		attempts++
		return errors.New("connection refused")
	})

	assert.False(t, ok)
	assert.Equal(t, 1, attempts, "cancelled context must not wait out the backoff")
	assert.False(t, avail.Connected())
}

func TestSetConnectedTransitions(t *testing.T) {
	avail := testAvailability()

	assert.False(t, avail.Connected())
	avail.SetConnected(true)
	assert.True(t, avail.Connected())
	avail.SetConnected(true)
	assert.True(t, avail.Connected())
	avail.SetConnected(false)
	assert.False(t, avail.Connected())
}

func TestServerMonitorFlipsFlag(t *testing.T) {
	avail := testAvailability()
	monitor := avail.ServerMonitor()
	require.NotNil(t, monitor.ServerHeartbeatSucceeded)
	require.NotNil(t, monitor.ServerHeartbeatFailed)

	monitor.ServerHeartbeatSucceeded(&event.ServerHeartbeatSucceededEvent{})
	assert.True(t, avail.Connected())

	monitor.ServerHeartbeatFailed(&event.ServerHeartbeatFailedEvent{Failure: errors.New("timeout")})
	assert.False(t, avail.Connected())

	monitor.ServerHeartbeatSucceeded(&event.ServerHeartbeatSucceededEvent{})
	assert.True(t, avail.Connected(), "flag recovers when heartbeats resume")
}
