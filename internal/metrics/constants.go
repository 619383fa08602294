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

// Provider metric names
const (
	MetricNameRemoteRequestsTotal = "tradingpost_remote_requests_total"
	MetricNameRemoteDuration      = "tradingpost_remote_request_duration_seconds"
	MetricNameRateLimitWaits      = "tradingpost_rate_limit_waits_total"
)

// Cache metric names
const (
	MetricNameCacheLookups          = "tradingpost_cache_lookups_total"
	MetricNamePlaceholdersResolved  = "tradingpost_placeholders_resolved_total"
	MetricNameReconciliationsFailed = "tradingpost_reconciliations_failed_total"
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

// Provider metric help text
const (
	HelpTextRemoteRequestsTotal = "Total number of provider API requests by endpoint and outcome"
	HelpTextRemoteDuration      = "Provider API request latency in seconds"
	HelpTextRateLimitWaits      = "Number of times the outbound quota forced a cool-down"
)

// Cache metric help text
const (
	HelpTextCacheLookups          = "Cache-aside lookups by entity kind and result"
	HelpTextPlaceholdersResolved  = "Placeholder items resolved by reconciliation"
	HelpTextReconciliationsFailed = "Reconciliation runs that returned an error"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelEndpoint = "endpoint"
	LabelOutcome  = "outcome"
	LabelKind     = "kind"
	LabelResult   = "result"
)

// Label values
const (
	KindItem    = "item"
	KindRecipe  = "recipe"
	KindListing = "listing"

	ResultHit    = "hit"
	ResultMiss   = "miss"
	ResultStale  = "stale"
	ResultStatic = "static"

	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// HTTPLatencyBuckets are the histogram buckets for HTTP latency
var HTTPLatencyBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5}

// RemoteLatencyBuckets are the histogram buckets for provider latency
var RemoteLatencyBuckets = []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30}
