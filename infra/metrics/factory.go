package metrics

import (
	coremetrics "github.com/kilianp07/timegrid/core/metrics"
)

// init registers built-in metrics sinks.
func init() {
	_ = coremetrics.RegisterSink("nop", func(map[string]any) (coremetrics.LayoutRecorder, error) {
		return coremetrics.NopSink{}, nil
	})

	_ = coremetrics.RegisterSink("prometheus", func(map[string]any) (coremetrics.LayoutRecorder, error) {
		// The listen address lives in metrics.prometheus_addr; PromSink only registers collectors.
		return NewPromSink()
	})
}
