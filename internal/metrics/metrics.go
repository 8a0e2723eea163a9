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
	SignupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSignupsTotal,
			Help: HelpTextSignupsTotal,
		},
		[]string{LabelResult}, // created / exists / error
	)

	GameLaunchesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGameLaunchesTotal,
			Help: HelpTextGameLaunchesTotal,
		},
	)

	TokenValidationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTokenValidationsTotal,
			Help: HelpTextTokenValidationsTotal,
		},
		[]string{LabelValid},
	)

	TelemetryEventsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTelemetryEventsTotal,
			Help: HelpTextTelemetryEventsTotal,
		},
	)

	ScoreSubmissionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameScoreSubmissionsTotal,
			Help: HelpTextScoreSubmissionsTotal,
		},
	)
)
