package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRecord(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := New(reg)
	require.NoError(t, err)

	m.ObserveQuiz(20*time.Millisecond, false)
	m.ObserveQuiz(5*time.Millisecond, true)
	m.CacheHit()
	m.CacheHit()
	m.CacheMiss()
	m.RefreshFailed()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.QuizzesBuilt))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ShortQuizzes))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.BankCache.WithLabelValues("hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BankCache.WithLabelValues("miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RefreshFailures))
	assert.Equal(t, 1, testutil.CollectAndCount(m.SelectionLatency))
}

func TestMetricsDoubleRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := New(reg)
	require.NoError(t, err)

	_, err = New(reg)
	assert.Error(t, err)
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveQuiz(time.Second, true)
		m.CacheHit()
		m.CacheMiss()
		m.RefreshFailed()
	})
}
