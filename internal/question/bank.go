package question

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Palaka108/kb-quiz-adventure/internal/db/queries"
	"github.com/Palaka108/kb-quiz-adventure/internal/metrics"
)

// BankCache is implemented by the Redis-backed Cache.
type BankCache interface {
	Get(ctx context.Context) ([]Question, error)
	Set(ctx context.Context, bank []Question) error
}

// bankStore is satisfied by repository.QuestionRepository.
type bankStore interface {
	All(ctx context.Context) ([]queries.Question, error)
}

// Bank serves the question bank, reading through the cache to Postgres.
type Bank struct {
	store   bankStore
	cache   BankCache
	metrics *metrics.Metrics
	logger  zerolog.Logger
}

// NewBank wires a bank. cache and m may be nil.
func NewBank(store bankStore, cache BankCache, m *metrics.Metrics, logger zerolog.Logger) *Bank {
	return &Bank{
		store:   store,
		cache:   cache,
		metrics: m,
		logger:  logger.With().Str("component", "question_bank").Logger(),
	}
}

// Load returns the cached bank when present, otherwise reads Postgres and
// fills the cache. Cache failures never fail the load.
func (b *Bank) Load(ctx context.Context) ([]Question, error) {
	if b.cache != nil {
		cached, err := b.cache.Get(ctx)
		switch {
		case err != nil:
			b.logger.Warn().Err(err).Msg("bank cache read failed")
		case cached != nil:
			b.metrics.CacheHit()
			return cached, nil
		}
	}
	b.metrics.CacheMiss()
	return b.Refresh(ctx)
}

// Refresh reloads the bank from Postgres and rewrites the cache.
func (b *Bank) Refresh(ctx context.Context) ([]Question, error) {
	rows, err := b.store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load question bank: %w", err)
	}

	bank := make([]Question, 0, len(rows))
	for _, row := range rows {
		q, err := FromRow(row)
		if err != nil {
			return nil, err
		}
		bank = append(bank, q)
	}

	if b.cache != nil {
		if err := b.cache.Set(ctx, bank); err != nil {
			b.logger.Warn().Err(err).Msg("bank cache write failed")
		}
	}
	return bank, nil
}
