package backend

import (
	"context"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// Simulator stands in for a remote API. Nothing leaves the process; each
// call just waits a fixed latency before running its function, like the
// timers the original screens wrapped their submissions in. Cancelling the
// context before the latency elapses drops the call entirely.
type Simulator struct {
	latency time.Duration
	logger  *logrus.Logger
}

func NewSimulator(latency time.Duration, logger *logrus.Logger) *Simulator {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}
	return &Simulator{latency: latency, logger: logger}
}

// Latency returns the configured delay.
func (s *Simulator) Latency() time.Duration {
	return s.latency
}

// Call runs fn after the configured latency. Tests use a zero latency or a
// cancelled context to control timing deterministically.
func (s *Simulator) Call(ctx context.Context, op string, fn func() error) error {
	if s.latency > 0 {
		timer := time.NewTimer(s.latency)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			s.logger.WithFields(logrus.Fields{
				"op":     op,
				"reason": ctx.Err(),
			}).Debug("Simulated call dropped")
			return ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return err
	}

	s.logger.WithField("op", op).Debug("Simulated call completed")
	return fn()
}
