package metrics

import (
	"context"
	"testing"
	"time"

	coremetrics "github.com/kilianp07/timegrid/core/metrics"
	"github.com/kilianp07/timegrid/core/model"
	"github.com/kilianp07/timegrid/internal/eventbus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEvent() coremetrics.LayoutEvent {
	return coremetrics.LayoutEvent{
		Source:    "day1.yaml",
		Entries:   4,
		Lanes:     2,
		Intervals: 5,
		Conflicts: 2,
		Diagnostics: []model.Diagnostic{
			{Kind: model.MalformedEntry, EntryID: "x"},
			{Kind: model.MalformedEntry, EntryID: "y"},
			{Kind: model.UnknownLaneReference, EntryID: "z"},
		},
		Duration: 3 * time.Millisecond,
		Time:     time.Now(),
	}
}

func TestPromSink_RecordLayout(t *testing.T) {
	reg := prometheus.NewRegistry()
	s, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)

	require.NoError(t, s.RecordLayout(sampleEvent()))
	require.NoError(t, s.RecordLayout(sampleEvent()))

	assert.Equal(t, 2.0, testutil.ToFloat64(s.layouts.WithLabelValues("day1.yaml")))
	assert.Equal(t, 2.0, testutil.ToFloat64(s.conflicts.WithLabelValues("day1.yaml")))
	assert.Equal(t, 5.0, testutil.ToFloat64(s.intervals.WithLabelValues("day1.yaml")))
	assert.Equal(t, 4.0, testutil.ToFloat64(s.diagnostics.WithLabelValues("malformed_entry")))
	assert.Equal(t, 2.0, testutil.ToFloat64(s.diagnostics.WithLabelValues("unknown_lane")))
	assert.Equal(t, 1, testutil.CollectAndCount(s.duration))
}

func TestPromSink_LaneConflicts(t *testing.T) {
	reg := prometheus.NewRegistry()
	s, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)
	require.NoError(t, s.RecordLaneConflicts("day1.yaml", map[string]int{"video": 3, "audio": 0}))
	assert.Equal(t, 3.0, testutil.ToFloat64(s.laneConf.WithLabelValues("day1.yaml", "video")))
	assert.Equal(t, 0.0, testutil.ToFloat64(s.laneConf.WithLabelValues("day1.yaml", "audio")))
}

func TestPromSink_ReuseRegistered(t *testing.T) {
	reg := prometheus.NewRegistry()
	s1, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)
	s2, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)
	require.NoError(t, s1.RecordLayout(sampleEvent()))
	assert.Equal(t, 1.0, testutil.ToFloat64(s2.layouts.WithLabelValues("day1.yaml")))
}

func TestBuiltinSinks(t *testing.T) {
	assert.Contains(t, coremetrics.SinkTypes(), "nop")
	assert.Contains(t, coremetrics.SinkTypes(), "prometheus")
}

type captureSink struct {
	events chan coremetrics.LayoutEvent
	lanes  chan map[string]int
}

func (c *captureSink) RecordLayout(ev coremetrics.LayoutEvent) error {
	c.events <- ev
	return nil
}

func (c *captureSink) RecordLaneConflicts(_ string, counts map[string]int) error {
	c.lanes <- counts
	return nil
}

func TestStartLayoutCollector(t *testing.T) {
	bus := eventbus.New[LayoutComputed]()
	sink := &captureSink{events: make(chan coremetrics.LayoutEvent, 1), lanes: make(chan map[string]int, 1)}
	ctx, cancel := context.WithCancel(context.Background())
	done := StartLayoutCollector(ctx, bus, sink)

	bus.Publish(LayoutComputed{Event: sampleEvent(), LaneCounts: map[string]int{"video": 1}})

	select {
	case ev := <-sink.events:
		assert.Equal(t, 4, ev.Entries)
	case <-time.After(time.Second):
		t.Fatal("layout event not recorded")
	}
	select {
	case counts := <-sink.lanes:
		assert.Equal(t, 1, counts["video"])
	case <-time.After(time.Second):
		t.Fatal("lane counts not recorded")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("collector did not stop")
	}
	assert.Equal(t, 0, bus.Subscribers())
}

func TestStartLayoutCollector_NilBus(t *testing.T) {
	done := StartLayoutCollector(context.Background(), nil, coremetrics.NopSink{})
	_, ok := <-done
	assert.False(t, ok)
}
