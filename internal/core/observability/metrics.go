// Package observability exposes the service's Prometheus metrics.
package observability

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14), // 0.5ms to ~4s
		},
		[]string{"method", "route", "status"},
	)

	routeComputationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "route_computations_total",
			Help: "Route searches by outcome.",
		},
		[]string{"outcome"},
	)

	routeDistanceNM = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "route_distance_nm",
			Help:    "Total distance of computed routes in nautical miles.",
			Buckets: prometheus.ExponentialBuckets(50, 2, 10), // 50nm to ~25k nm
		},
	)

	pointChecksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "point_checks_total",
			Help: "Zone point checks by result.",
		},
		[]string{"result"},
	)

	cacheResultsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_results_total",
			Help: "Point-check cache results by outcome.",
		},
		[]string{"outcome", "tier"},
	)

	cacheOpSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cache_op_duration_seconds",
			Help:    "Duration of shared-cache operations in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 12),
		},
		[]string{"op", "status"},
	)

	buildInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_build_info",
			Help: "Build information for the binary.",
		},
		[]string{"version"},
	)
)

func ObserveHTTP(method, route string, status int, durationSeconds float64) {
	st := strconv.Itoa(status)
	httpRequestsTotal.WithLabelValues(method, route, st).Inc()
	httpRequestDurationSeconds.WithLabelValues(method, route, st).Observe(durationSeconds)
}

// ObserveRoute records one route computation. Outcome is one of
// ok, no_route, degenerate.
func ObserveRoute(outcome string, distanceNM float64) {
	routeComputationsTotal.WithLabelValues(outcome).Inc()
	if outcome == "ok" {
		routeDistanceNM.Observe(distanceNM)
	}
}

func ObservePointCheck(inside bool) {
	result := "outside"
	if inside {
		result = "inside"
	}
	pointChecksTotal.WithLabelValues(result).Inc()
}

func IncCacheHit(tier string)  { cacheResultsTotal.WithLabelValues("hit", tier).Inc() }
func IncCacheMiss(tier string) { cacheResultsTotal.WithLabelValues("miss", tier).Inc() }

func ObserveCacheOp(op string, err error, durationSeconds float64) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	cacheOpSeconds.WithLabelValues(op, status).Observe(durationSeconds)
}

func ExposeBuildInfo(version string) {
	if version == "" {
		version = "dev"
	}
	buildInfo.WithLabelValues(version).Set(1)
}
