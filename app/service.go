package app

import (
	"context"
	"fmt"
	"time"

	"github.com/kilianp07/timegrid/config"
	"github.com/kilianp07/timegrid/core/layout"
	coremetrics "github.com/kilianp07/timegrid/core/metrics"
	"github.com/kilianp07/timegrid/core/model"
	"github.com/kilianp07/timegrid/infra/logger"
	"github.com/kilianp07/timegrid/infra/metrics"
	"github.com/kilianp07/timegrid/infra/schedule"
	"github.com/kilianp07/timegrid/internal/eventbus"
)

// Result is one computed layout together with the entries it was built from.
type Result struct {
	Source      string
	Entries     []model.Entry
	Layout      layout.Layout
	Diagnostics []model.Diagnostic
}

// Service turns schedules into layouts and reports each computation to the
// configured metrics sinks.
type Service struct {
	cfg  *config.Config
	log  logger.Logger
	sink coremetrics.LayoutRecorder
	bus  *eventbus.Bus[metrics.LayoutComputed]
	now  func() time.Time

	collectorDone <-chan struct{}
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	sink, err := coremetrics.NewSink(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}
	return NewWithDeps(cfg, logger.NewZerologLogger(cfg.Logging, "service"), sink), nil
}

// NewWithDeps creates a Service with explicit logger and sink.
func NewWithDeps(cfg *config.Config, log logger.Logger, sink coremetrics.LayoutRecorder) *Service {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	if sink == nil {
		sink = coremetrics.NopSink{}
	}
	return &Service{
		cfg:  cfg,
		log:  log,
		sink: sink,
		bus:  eventbus.New[metrics.LayoutComputed](),
		now:  time.Now,
	}
}

// Bus exposes the layout event bus so callers can observe rebuilds.
func (s *Service) Bus() *eventbus.Bus[metrics.LayoutComputed] { return s.bus }

// Config returns the active configuration.
func (s *Service) Config() *config.Config { return s.cfg }

// Start launches the metrics collector and, when configured, the Prometheus
// endpoint. Both stop when ctx is canceled.
func (s *Service) Start(ctx context.Context) {
	if s.collectorDone == nil {
		s.collectorDone = metrics.StartLayoutCollector(ctx, s.bus, s.sink)
	}
	if addr := s.cfg.Metrics.PrometheusAddr; addr != "" {
		go func() {
			if err := metrics.StartPromServer(ctx, addr, s.log); err != nil {
				s.log.Errorf("prometheus server: %v", err)
			}
		}()
	}
}

// Build ingests the schedule and computes its layout. Data problems are
// logged as warnings and returned in the result; Build never fails.
func (s *Service) Build(source string, sch *schedule.Schedule) Result {
	if sch == nil {
		sch = &schedule.Schedule{}
	}
	start := s.now()
	entries, diags := sch.Ingest()
	l := layout.Compute(entries, sch.Lanes, s.cfg.Layout)
	diags = append(diags, l.Diagnostics...)
	elapsed := s.now().Sub(start)

	for _, d := range diags {
		s.log.Warnf("%s: %s", source, d)
	}
	s.log.Infow("layout computed", map[string]any{
		"source":      source,
		"entries":     len(entries),
		"lanes":       len(l.Grid.Lanes),
		"intervals":   len(l.Grid.Intervals),
		"conflicts":   len(l.Grid.ConflictOccurrences),
		"diagnostics": len(diags),
	})

	s.bus.Publish(metrics.LayoutComputed{
		Event: coremetrics.LayoutEvent{
			Source:      source,
			Entries:     len(entries),
			Lanes:       len(l.Grid.Lanes),
			Intervals:   len(l.Grid.Intervals),
			Conflicts:   len(l.Grid.ConflictOccurrences),
			Diagnostics: diags,
			Duration:    elapsed,
			Time:        start,
		},
		LaneCounts: l.Grid.ConflictPairCountByLane,
	})
	return Result{Source: source, Entries: entries, Layout: l, Diagnostics: diags}
}

// BuildFile loads the schedule at path and builds its layout.
func (s *Service) BuildFile(path string) (Result, error) {
	sch, err := schedule.LoadFile(path)
	if err != nil {
		return Result{}, err
	}
	return s.Build(path, sch), nil
}

// Watch builds the schedule at path now and on every change until ctx is
// canceled, calling fn with each result.
func (s *Service) Watch(ctx context.Context, path string, debounce time.Duration, fn func(Result)) error {
	s.Start(ctx)
	w := schedule.NewWatcher(path, debounce, s.log, func(sch *schedule.Schedule) {
		res := s.Build(path, sch)
		if fn != nil {
			fn(res)
		}
	})
	s.log.Infof("watching %s", path)
	return w.Watch(ctx)
}

// Close releases the event bus and waits for the collector to drain.
func (s *Service) Close() error {
	s.bus.Close()
	if s.collectorDone != nil {
		<-s.collectorDone
	}
	return nil
}
