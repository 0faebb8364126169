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
	SessionsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSessionsCreated,
			Help: HelpTextSessionsCreated,
		},
	)

	CodeRedemptions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCodeRedemptions,
			Help: HelpTextCodeRedemptions,
		},
		[]string{LabelOutcome},
	)

	NextCodeDraws = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameNextCodeDraws,
			Help: HelpTextNextCodeDraws,
		},
		[]string{LabelRarity},
	)

	CatalogExhaustedHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCatalogExhausted,
			Help: HelpTextCatalogExhausted,
		},
	)
)
