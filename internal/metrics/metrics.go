package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder holds the counters of one balancing run. A nil *Recorder is valid
// and records nothing.
type Recorder struct {
	EntriesAdded    *prometheus.CounterVec
	GroupsTotal     prometheus.Counter
	GroupsSkipped   *prometheus.CounterVec
	RecordsSkipped  *prometheus.CounterVec
	FieldEdits      *prometheus.CounterVec
	FieldEditMisses *prometheus.CounterVec
}

// NewRecorder registers the balancing counters on reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		EntriesAdded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricNameEntriesAdded,
				Help: HelpTextEntriesAdded,
			},
			[]string{LabelKind},
		),
		GroupsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: MetricNameGroupsTotal,
				Help: HelpTextGroupsTotal,
			},
		),
		GroupsSkipped: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricNameGroupsSkipped,
				Help: HelpTextGroupsSkipped,
			},
			[]string{LabelReason},
		),
		RecordsSkipped: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricNameRecordsSkipped,
				Help: HelpTextRecordsSkipped,
			},
			[]string{LabelReason},
		),
		FieldEdits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricNameFieldEdits,
				Help: HelpTextFieldEdits,
			},
			[]string{LabelField},
		),
		FieldEditMisses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricNameFieldEditMisses,
				Help: HelpTextFieldEditMisses,
			},
			[]string{LabelField},
		),
	}
}

// EntriesAddedTo counts n new loot entries of the given table kind.
func (r *Recorder) EntriesAddedTo(kind string, n int) {
	if r == nil || n <= 0 {
		return
	}
	r.EntriesAdded.WithLabelValues(kind).Add(float64(n))
}

// GroupPropagated counts a variant group that reached the patchers.
func (r *Recorder) GroupPropagated() {
	if r == nil {
		return
	}
	r.GroupsTotal.Inc()
}

// GroupSkipped counts a variant group dropped before propagation.
func (r *Recorder) GroupSkipped(reason string) {
	if r == nil {
		return
	}
	r.GroupsSkipped.WithLabelValues(reason).Inc()
}

// RecordSkipped counts a config record rejected before grouping.
func (r *Recorder) RecordSkipped(reason string) {
	if r == nil {
		return
	}
	r.RecordsSkipped.WithLabelValues(reason).Inc()
}

// FieldEdited counts an applied catalog field edit.
func (r *Recorder) FieldEdited(field string) {
	if r == nil {
		return
	}
	r.FieldEdits.WithLabelValues(field).Inc()
}

// FieldEditMissed counts a catalog field edit whose target was not found.
func (r *Recorder) FieldEditMissed(field string) {
	if r == nil {
		return
	}
	r.FieldEditMisses.WithLabelValues(field).Inc()
}
