package question

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/Palaka108/kb-quiz-adventure/internal/metrics"
)

type refresher interface {
	Refresh(ctx context.Context) ([]Question, error)
}

// RefreshWorker periodically reloads the bank so edits in Postgres reach the
// cache before its TTL runs out.
type RefreshWorker struct {
	bank     refresher
	interval time.Duration
	timeout  time.Duration
	metrics  *metrics.Metrics
	logger   zerolog.Logger
}

func NewRefreshWorker(bank refresher, interval, timeout time.Duration, m *metrics.Metrics, logger zerolog.Logger) *RefreshWorker {
	if interval <= 0 {
		interval = time.Minute
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &RefreshWorker{
		bank:     bank,
		interval: interval,
		timeout:  timeout,
		metrics:  m,
		logger:   logger.With().Str("component", "bank_refresh").Logger(),
	}
}

// Run refreshes once immediately, then on every tick until ctx is done.
func (w *RefreshWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.refresh(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *RefreshWorker) refresh(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	bank, err := w.bank.Refresh(ctx)
	if err != nil {
		w.metrics.RefreshFailed()
		w.logger.Warn().Err(err).Msg("bank refresh failed")
		return
	}
	w.logger.Debug().Int("questions", len(bank)).Msg("bank refreshed")
}
