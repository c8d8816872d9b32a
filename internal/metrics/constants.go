package metrics

// Metric names
const (
	MetricNameSessionsActive       = "valley_sessions_active"
	MetricNameSessionsTotal        = "valley_sessions_total"
	MetricNameDaysCompleted        = "valley_days_completed_total"
	MetricNameGoldShipped          = "valley_gold_shipped_total"
	MetricNameCropsHarvested       = "valley_crops_harvested_total"
	MetricNameSaves                = "valley_saves_total"
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Help text
const (
	HelpTextSessionsActive       = "Current number of connected play sessions"
	HelpTextSessionsTotal        = "Total number of play sessions started"
	HelpTextDaysCompleted        = "In-game days ended by sleeping or passing out"
	HelpTextGoldShipped          = "Gold paid out by shipping bins"
	HelpTextCropsHarvested       = "Crops harvested across all sessions"
	HelpTextSaves                = "Save attempts by trigger and outcome"
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Labels
const (
	LabelForced  = "forced"
	LabelTrigger = "trigger"
	LabelResult  = "result"
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
)

// Label values
const (
	TriggerAutosave = "autosave"
	TriggerQuit     = "quit"
	ResultOK        = "ok"
	ResultFailed    = "failed"
)

// HTTPLatencyBuckets covers the handful of cheap endpoints the server exposes.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .05, .1, .5, 1}
