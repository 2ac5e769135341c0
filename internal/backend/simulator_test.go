package backend

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSimulator(latency time.Duration) *Simulator {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewSimulator(latency, logger)
}

func TestCallRunsFunction(t *testing.T) {
	s := newTestSimulator(0)

	ran := false
	err := s.Call(context.Background(), "test", func() error {
		ran = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, ran)
}

func TestCallPropagatesFunctionError(t *testing.T) {
	s := newTestSimulator(0)
	sentinel := errors.New("rejected")

	err := s.Call(context.Background(), "test", func() error { return sentinel })
	assert.ErrorIs(t, err, sentinel)
}

func TestCallHonorsLatency(t *testing.T) {
	s := newTestSimulator(20 * time.Millisecond)

	start := time.Now()
	err := s.Call(context.Background(), "test", func() error { return nil })
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestCancelledContextDropsCall(t *testing.T) {
	s := newTestSimulator(time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ran := false
	start := time.Now()
	err := s.Call(ctx, "test", func() error {
		ran = true
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, ran, "a dropped call must not run its function")
	assert.Less(t, time.Since(start), time.Second, "cancellation must not wait out the latency")
}

func TestCancelledContextWithZeroLatency(t *testing.T) {
	s := newTestSimulator(0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ran := false
	err := s.Call(ctx, "test", func() error {
		ran = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, ran)
}
