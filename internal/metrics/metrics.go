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

// Provider Metrics
var (
	RemoteRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRemoteRequestsTotal,
			Help: HelpTextRemoteRequestsTotal,
		},
		[]string{LabelEndpoint, LabelOutcome},
	)

	RemoteRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameRemoteDuration,
			Help:    HelpTextRemoteDuration,
			Buckets: RemoteLatencyBuckets,
		},
		[]string{LabelEndpoint},
	)

	RateLimitWaits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRateLimitWaits,
			Help: HelpTextRateLimitWaits,
		},
	)
)

// Cache Metrics
var (
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCacheLookups,
			Help: HelpTextCacheLookups,
		},
		[]string{LabelKind, LabelResult},
	)

	PlaceholdersResolved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePlaceholdersResolved,
			Help: HelpTextPlaceholdersResolved,
		},
	)

	ReconciliationsFailed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameReconciliationsFailed,
			Help: HelpTextReconciliationsFailed,
		},
	)
)
