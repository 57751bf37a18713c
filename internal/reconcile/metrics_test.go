package reconcile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/cfdistro/internal/config"
)

func TestMetrics_RecordsOutcomes(t *testing.T) {
	t.Parallel()

	m := NewMetrics()
	r := New(&MockClient{}, testTranslator, WithMetrics(m))

	_, err := r.Reconcile(context.Background(), desiredFoo())
	require.NoError(t, err)
	_, err = r.Reconcile(context.Background(), &config.Desired{})
	require.Error(t, err)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.reconcileTotal.WithLabelValues("created")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.reconcileTotal.WithLabelValues("error")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.reconcileTotal))
}

func TestMetrics_Duration(t *testing.T) {
	t.Parallel()

	m := NewMetrics()
	r := New(&MockClient{}, testTranslator, WithMetrics(m))
	start := time.Unix(1000, 0)
	ticks := []time.Time{start, start.Add(1500 * time.Millisecond)}
	r.now = func() time.Time {
		next := ticks[0]
		ticks = ticks[1:]
		return next
	}

	_, err := r.Reconcile(context.Background(), desiredFoo())
	require.NoError(t, err)

	expected := `
# HELP cfdistro_reconcile_total Total number of reconciliations by result
# TYPE cfdistro_reconcile_total counter
cfdistro_reconcile_total{result="created"} 1
`
	require.NoError(t, testutil.GatherAndCompare(m.Gatherer(), strings.NewReader(expected), "cfdistro_reconcile_total"))
	assert.Equal(t, 1, testutil.CollectAndCount(m.reconcileDuration))

	families, err := m.Gatherer().Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() == "cfdistro_reconcile_duration_seconds" {
			assert.InDelta(t, 1.5, mf.GetMetric()[0].GetHistogram().GetSampleSum(), 1e-9)
		}
	}
}

func TestMetrics_NilIsNoop(t *testing.T) {
	t.Parallel()

	var m *Metrics
	assert.NotPanics(t, func() { m.record("created", 1) })
}

func TestMetrics_WriteTextfile(t *testing.T) {
	t.Parallel()

	m := NewMetrics()
	m.record("unchanged", 0.2)

	path := filepath.Join(t.TempDir(), "cfdistro.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `cfdistro_reconcile_total{result="unchanged"} 1`)
	assert.Contains(t, string(data), "cfdistro_reconcile_duration_seconds_count 1")
}
