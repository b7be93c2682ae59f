package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNamePlansComputed     = "ritual_plans_computed_total"
	MetricNamePlansInfeasible   = "ritual_plans_infeasible_total"
	MetricNameOptimizerDuration = "optimizer_duration_seconds"
	MetricNameOCRRequests       = "ocr_requests_total"
	MetricNameItemsResolved     = "items_resolved_total"
	MetricNameResolverMisses    = "resolver_misses_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextPlansComputed     = "Total number of ritual plans computed"
	HelpTextPlansInfeasible   = "Total number of plan requests with no feasible combination"
	HelpTextOptimizerDuration = "Time spent inside the offering optimizer in seconds"
	HelpTextOCRRequests       = "Total number of OCR backend calls"
	HelpTextItemsResolved     = "Total number of inventory items resolved from transcripts"
	HelpTextResolverMisses    = "Total number of transcript tokens that matched no catalog item"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelOutcome = "outcome"
)

// Outcome label values
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// OptimizerDurationBuckets covers the DP fill, which stays well under a
// second for the capped table sizes but degrades with maxUnits.
var OptimizerDurationBuckets = []float64{.0005, .001, .005, .01, .05, .1, .5, 1, 5}
