package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	PlansComputed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePlansComputed,
			Help: HelpTextPlansComputed,
		},
	)

	PlansInfeasible = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePlansInfeasible,
			Help: HelpTextPlansInfeasible,
		},
	)

	OptimizerDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameOptimizerDuration,
			Help:    HelpTextOptimizerDuration,
			Buckets: OptimizerDurationBuckets,
		},
	)

	OCRRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameOCRRequests,
			Help: HelpTextOCRRequests,
		},
		[]string{LabelOutcome},
	)

	ItemsResolved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameItemsResolved,
			Help: HelpTextItemsResolved,
		},
	)

	ResolverMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameResolverMisses,
			Help: HelpTextResolverMisses,
		},
	)
)
