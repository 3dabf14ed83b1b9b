package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Counts(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(reg)

	r.EntriesAddedTo(KindStaticAmmo, 2)
	r.EntriesAddedTo(KindMapSpawn, 1)
	r.EntriesAddedTo(KindStaticLoot, 0)
	r.GroupPropagated()
	r.GroupSkipped("zero_sum")
	r.FieldEdited("flea_price")

	assert.Equal(t, 2.0, testutil.ToFloat64(r.EntriesAdded.WithLabelValues(KindStaticAmmo)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.EntriesAdded.WithLabelValues(KindMapSpawn)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.GroupsTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.GroupsSkipped.WithLabelValues("zero_sum")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.FieldEdits.WithLabelValues("flea_price")))
}

func TestRecorder_NilIsNoop(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() {
		r.EntriesAddedTo(KindStaticLoot, 1)
		r.GroupPropagated()
		r.GroupSkipped("x")
		r.RecordSkipped("x")
		r.FieldEdited("x")
		r.FieldEditMissed("x")
	})
}

func TestWriteTextFile(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(reg)
	r.EntriesAddedTo(KindStaticLoot, 1)

	path := filepath.Join(t.TempDir(), "metrics.prom")
	require.NoError(t, WriteTextFile(reg, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), MetricNameEntriesAdded)
	assert.Contains(t, string(data), `kind="static_loot"`)
}

func TestWriteTextFile_ReplacesExistingFile(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewRecorder(reg).GroupPropagated()

	path := filepath.Join(t.TempDir(), "metrics.prom")
	require.NoError(t, os.WriteFile(path, []byte("stale\n"), 0o644))
	require.NoError(t, WriteTextFile(reg, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale")
	assert.Contains(t, string(data), MetricNameGroupsTotal)
}

func TestWriteTextFile_MissingDirectory(t *testing.T) {
	reg := prometheus.NewRegistry()
	err := WriteTextFile(reg, filepath.Join(t.TempDir(), "missing", "metrics.prom"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write metrics file")
}
