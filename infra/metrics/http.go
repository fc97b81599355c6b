package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/kilianp07/timegrid/core/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// StartPromServer starts an HTTP server exposing Prometheus metrics from the
// default gatherer. It blocks until ctx is canceled.
func StartPromServer(ctx context.Context, addr string, log logger.Logger) error {
	return ServeGatherer(ctx, addr, prometheus.DefaultGatherer, log)
}

// ServeGatherer exposes g on /metrics at addr until ctx is canceled.
// A dedicated ServeMux is used to avoid interfering with other handlers.
func ServeGatherer(ctx context.Context, addr string, g prometheus.Gatherer, log logger.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil && log != nil {
			log.Errorf("prom server shutdown: %v", err)
		}
	}()
	if log != nil {
		log.Infof("serving metrics on %s/metrics", addr)
	}
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
