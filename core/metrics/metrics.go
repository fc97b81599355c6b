package metrics

import (
	"time"

	"github.com/kilianp07/timegrid/core/model"
)

// LayoutEvent summarises one layout computation.
type LayoutEvent struct {
	Source      string
	Entries     int
	Lanes       int
	Intervals   int
	Conflicts   int
	Diagnostics []model.Diagnostic
	Duration    time.Duration
	Time        time.Time
}

// LayoutRecorder records layout events for observability purposes.
type LayoutRecorder interface {
	RecordLayout(ev LayoutEvent) error
}

// LaneConflictRecorder records the per-lane conflict pair counts of a layout.
type LaneConflictRecorder interface {
	RecordLaneConflicts(source string, counts map[string]int) error
}

// NopSink implements LayoutRecorder with no-op methods.
type NopSink struct{}

func (NopSink) RecordLayout(LayoutEvent) error { return nil }

func (NopSink) RecordLaneConflicts(string, map[string]int) error { return nil }

// MultiSink fans events out to several sinks.
type MultiSink struct {
	Sinks []LayoutRecorder
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...LayoutRecorder) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordLayout forwards the event to all sinks, returning the first error encountered.
func (m *MultiSink) RecordLayout(ev LayoutEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordLayout(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordLaneConflicts forwards lane counts when supported by the sink.
func (m *MultiSink) RecordLaneConflicts(source string, counts map[string]int) error {
	for _, s := range m.Sinks {
		if r, ok := s.(LaneConflictRecorder); ok {
			if err := r.RecordLaneConflicts(source, counts); err != nil {
				return err
			}
		}
	}
	return nil
}
