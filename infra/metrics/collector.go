package metrics

import (
	"context"

	coremetrics "github.com/kilianp07/timegrid/core/metrics"
	"github.com/kilianp07/timegrid/internal/eventbus"
)

// LayoutComputed is published on the bus each time a layout is rebuilt.
type LayoutComputed struct {
	Event      coremetrics.LayoutEvent
	LaneCounts map[string]int
}

// StartLayoutCollector subscribes to the bus and records every published
// layout on sink. It stops when ctx is canceled or the bus is closed. The
// returned channel is closed once the collector has exited.
func StartLayoutCollector(ctx context.Context, bus *eventbus.Bus[LayoutComputed], sink coremetrics.LayoutRecorder) <-chan struct{} {
	done := make(chan struct{})
	if bus == nil || sink == nil {
		close(done)
		return done
	}
	sub := bus.Subscribe()
	go func() {
		defer close(done)
		defer bus.Unsubscribe(sub)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-sub:
				if !ok {
					return
				}
				_ = sink.RecordLayout(ev.Event)
				if r, ok := sink.(coremetrics.LaneConflictRecorder); ok && ev.LaneCounts != nil {
					_ = r.RecordLaneConflicts(ev.Event.Source, ev.LaneCounts)
				}
			}
		}
	}()
	return done
}
