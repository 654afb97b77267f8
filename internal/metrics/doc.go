// Package metrics exports the log view's virtualization counters to
// Prometheus.
//
// Collector implements vstack.Observer, so attaching it to a panel records
// how many row containers were created, reused from the recycle pool,
// recycled and destroyed, plus the size of the realized window. A healthy
// view creates roughly one screen of containers and reuses them from then on.
//
// Serve exposes the registry on /metrics. It is only started when
// metrics_addr is configured.
package metrics
