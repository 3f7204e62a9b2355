// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "kbquiz"

// Metrics groups the service collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	QuizzesBuilt     prometheus.Counter
	ShortQuizzes     prometheus.Counter
	SelectionLatency prometheus.Histogram
	BankCache        *prometheus.CounterVec
	RefreshFailures  prometheus.Counter
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		QuizzesBuilt: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quizzes_built_total",
			Help:      "Adaptive quizzes assembled.",
		}),
		ShortQuizzes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quizzes_short_total",
			Help:      "Quizzes returned with fewer questions than requested.",
		}),
		SelectionLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "quiz_build_seconds",
			Help:      "Time spent loading inputs and selecting questions.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
		}),
		BankCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "question_bank_cache_total",
			Help:      "Question bank cache lookups by result.",
		}, []string{"result"}),
		RefreshFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "question_bank_refresh_failures_total",
			Help:      "Failed background bank refreshes.",
		}),
	}

	for _, c := range []prometheus.Collector{
		m.QuizzesBuilt,
		m.ShortQuizzes,
		m.SelectionLatency,
		m.BankCache,
		m.RefreshFailures,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// ObserveQuiz records one assembled quiz.
func (m *Metrics) ObserveQuiz(elapsed time.Duration, short bool) {
	if m == nil {
		return
	}
	m.QuizzesBuilt.Inc()
	if short {
		m.ShortQuizzes.Inc()
	}
	m.SelectionLatency.Observe(elapsed.Seconds())
}

// CacheHit counts a bank served from cache.
func (m *Metrics) CacheHit() {
	if m == nil {
		return
	}
	m.BankCache.WithLabelValues("hit").Inc()
}

// CacheMiss counts a bank loaded from Postgres.
func (m *Metrics) CacheMiss() {
	if m == nil {
		return
	}
	m.BankCache.WithLabelValues("miss").Inc()
}

// RefreshFailed counts a failed background refresh.
func (m *Metrics) RefreshFailed() {
	if m == nil {
		return
	}
	m.RefreshFailures.Inc()
}
