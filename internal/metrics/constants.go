package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameSignupsTotal          = "signups_total"
	MetricNameGameLaunchesTotal     = "game_launches_total"
	MetricNameTokenValidationsTotal = "token_validations_total"
	MetricNameTelemetryEventsTotal  = "telemetry_events_total"
	MetricNameScoreSubmissionsTotal = "score_submissions_total"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextSignupsTotal          = "Total number of signup attempts"
	HelpTextGameLaunchesTotal     = "Total number of game launch links issued"
	HelpTextTokenValidationsTotal = "Total number of session token validations"
	HelpTextTelemetryEventsTotal  = "Total number of telemetry sessions recorded"
	HelpTextScoreSubmissionsTotal = "Total number of score submissions recorded"
)

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelResult = "result"
	LabelValid  = "valid"
)

// HTTPLatencyBuckets are the histogram buckets for request latency
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}
