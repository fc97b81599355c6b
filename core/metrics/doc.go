// Package metrics defines the events emitted after each layout computation
// and the sinks that record them. Sinks are built from configuration through
// a registry; infra/metrics registers the built-in "nop" and "prometheus"
// sinks. Several configured sinks are combined with a MultiSink.
package metrics
