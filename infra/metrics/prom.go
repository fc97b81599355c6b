package metrics

import (
	"errors"

	coremetrics "github.com/kilianp07/timegrid/core/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// PromSink records layout events in Prometheus metrics.
type PromSink struct {
	layouts     *prometheus.CounterVec
	conflicts   *prometheus.GaugeVec
	intervals   *prometheus.GaugeVec
	diagnostics *prometheus.CounterVec
	duration    prometheus.Histogram
	laneConf    *prometheus.GaugeVec
}

// NewPromSink registers layout metrics on the default Prometheus registerer.
// The /metrics endpoint is started separately with StartPromServer.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	layouts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "timegrid_layouts_total",
		Help: "Total number of computed layouts",
	}, []string{"source"})
	conflicts := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "timegrid_conflict_occurrences",
		Help: "Distinct conflict occurrences in the last layout",
	}, []string{"source"})
	intervals := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "timegrid_intervals",
		Help: "Number of intervals in the last layout",
	}, []string{"source"})
	diagnostics := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "timegrid_diagnostics_total",
		Help: "Diagnostics emitted while computing layouts",
	}, []string{"kind"})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "timegrid_layout_duration_seconds",
		Help:    "Time spent computing a layout",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
	})
	laneConf := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "timegrid_lane_conflict_pairs",
		Help: "Distinct conflicting pairs per lane in the last layout",
	}, []string{"source", "lane"})

	var err error
	if layouts, err = register(reg, layouts); err != nil {
		return nil, err
	}
	if conflicts, err = register(reg, conflicts); err != nil {
		return nil, err
	}
	if intervals, err = register(reg, intervals); err != nil {
		return nil, err
	}
	if diagnostics, err = register(reg, diagnostics); err != nil {
		return nil, err
	}
	if duration, err = register(reg, duration); err != nil {
		return nil, err
	}
	if laneConf, err = register(reg, laneConf); err != nil {
		return nil, err
	}
	return &PromSink{
		layouts:     layouts,
		conflicts:   conflicts,
		intervals:   intervals,
		diagnostics: diagnostics,
		duration:    duration,
		laneConf:    laneConf,
	}, nil
}

// register adds c to reg, reusing an identical collector registered earlier.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// RecordLayout updates counters and gauges for one layout computation.
func (s *PromSink) RecordLayout(ev coremetrics.LayoutEvent) error {
	s.layouts.WithLabelValues(ev.Source).Inc()
	s.conflicts.WithLabelValues(ev.Source).Set(float64(ev.Conflicts))
	s.intervals.WithLabelValues(ev.Source).Set(float64(ev.Intervals))
	for _, d := range ev.Diagnostics {
		s.diagnostics.WithLabelValues(d.Kind.String()).Inc()
	}
	s.duration.Observe(ev.Duration.Seconds())
	return nil
}

// RecordLaneConflicts sets the per-lane conflict pair gauge.
func (s *PromSink) RecordLaneConflicts(source string, counts map[string]int) error {
	for lane, n := range counts {
		s.laneConf.WithLabelValues(source, lane).Set(float64(n))
	}
	return nil
}
