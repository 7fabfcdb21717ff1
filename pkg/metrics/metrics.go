// Package metrics holds the Prometheus instruments shared across the service.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// DefaultBuckets provides a common set of histogram buckets in seconds that
// can be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

//nolint: gochecknoglobals
var (
	checkInsCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "gympass",
		Subsystem: "checkins",
		Name:      "created_total",
		Help:      "Number of check-ins recorded.",
	})
	checkInsExpiredUnvalidated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "gympass",
		Subsystem: "checkins",
		Name:      "expired_unvalidated_total",
		Help:      "Number of check-ins that passed the validation window without being validated.",
	})
)

//nolint: gochecknoinits
func init() {
	prometheus.MustRegister(checkInsCreated, checkInsExpiredUnvalidated)
}

// RecordCheckInCreated increments the created check-ins counter.
func RecordCheckInCreated() {
	checkInsCreated.Inc()
}

// RecordCheckInExpiredUnvalidated increments the expired-unvalidated counter.
func RecordCheckInExpiredUnvalidated() {
	checkInsExpiredUnvalidated.Inc()
}
