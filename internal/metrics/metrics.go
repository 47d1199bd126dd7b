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

// Swap meet metrics
var (
	VendorsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameVendorsCreated,
			Help: HelpTextVendorsCreated,
		},
	)

	ItemsAdded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsAdded,
			Help: HelpTextItemsAdded,
		},
		[]string{LabelCategory},
	)

	ItemsRemoved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsRemoved,
			Help: HelpTextItemsRemoved,
		},
		[]string{LabelCategory},
	)

	SwapsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSwapsTotal,
			Help: HelpTextSwapsTotal,
		},
		[]string{LabelKind, LabelOutcome},
	)

	SearchesPerformed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSearchesPerformed,
			Help: HelpTextSearchesPerformed,
		},
		[]string{LabelKind},
	)

	VendorCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameVendorCacheLookups,
			Help: HelpTextVendorCacheLookups,
		},
		[]string{LabelResult},
	)
)
