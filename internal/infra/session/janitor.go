package session

import (
	"context"
	"log/slog"
	"time"

	"barberflow/internal/infra/metrics"
)

// Sweeper is a store the janitor can expire.
type Sweeper interface {
	Kind() string
	Sweep() int
	Len() int
}

type Janitor struct {
	interval time.Duration
	sweepers []Sweeper
	logger   *slog.Logger
	metrics  *metrics.Metrics
	cancel   context.CancelFunc
	done     chan struct{}
}

func NewJanitor(interval time.Duration, logger *slog.Logger, m *metrics.Metrics, sweepers ...Sweeper) *Janitor {
	return &Janitor{
		interval: interval,
		sweepers: sweepers,
		logger:   logger,
		metrics:  m,
	}
}

// Start runs the sweep loop until Stop is called.
func (j *Janitor) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	j.cancel = cancel
	j.done = make(chan struct{})

	go func() {
		defer close(j.done)
		ticker := time.NewTicker(j.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				j.SweepOnce()
			}
		}
	}()
}

func (j *Janitor) Stop(ctx context.Context) error {
	if j.cancel == nil {
		return nil
	}
	j.cancel()
	select {
	case <-j.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (j *Janitor) SweepOnce() {
	for _, s := range j.sweepers {
		if removed := s.Sweep(); removed > 0 {
			j.logger.Info("Expired sessions removed",
				slog.String("kind", s.Kind()),
				slog.Int("count", removed),
			)
		}
		j.metrics.SetActiveSessions(s.Kind(), s.Len())
	}
}
