package prometheus

// AppMetrics groups every metric the service emits, registered once at
// startup and injected into the layers that record them.
type AppMetrics struct {
	// HTTP layer
	HTTPRequestsTotal   CounterVec
	HTTPRequestDuration HistogramVec
	HTTPActiveRequests  GaugeVec

	// Inference layer
	InferenceRequestsTotal CounterVec
	InferenceDuration      HistogramVec
	InferenceTokensTotal   CounterVec

	// Recognition pipeline
	RecognizeRequestsTotal CounterVec
	MergedSpansTotal       CounterVec
	MalformedTokensTotal   CounterVec

	// System health
	ErrorsTotal CounterVec
}

// Default histogram buckets.
var (
	DefaultDurationBuckets  = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
	DefaultInferenceBuckets = []float64{.05, .1, .25, .5, 1, 2, 5, 10, 30, 60}
)

// NewAppMetrics registers all application metrics with the collector.
func NewAppMetrics(collector MetricsCollector) *AppMetrics {
	m := &AppMetrics{}

	m.HTTPRequestsTotal = collector.RegisterCounter(
		"http_requests_total", "Total HTTP requests", "method", "path", "status_code")
	m.HTTPRequestDuration = collector.RegisterHistogram(
		"http_request_duration_seconds", "HTTP request duration", DefaultDurationBuckets, "method", "path")
	m.HTTPActiveRequests = collector.RegisterGauge(
		"http_active_requests", "Active HTTP requests", "method")

	m.InferenceRequestsTotal = collector.RegisterCounter(
		"inference_requests_total", "Inference endpoint calls", "model", "status")
	m.InferenceDuration = collector.RegisterHistogram(
		"inference_duration_seconds", "Inference call duration", DefaultInferenceBuckets, "model")
	m.InferenceTokensTotal = collector.RegisterCounter(
		"inference_tokens_total", "Token predictions returned by the endpoint", "model")

	m.RecognizeRequestsTotal = collector.RegisterCounter(
		"recognize_requests_total", "Recognition pipeline runs", "status")
	m.MergedSpansTotal = collector.RegisterCounter(
		"merged_spans_total", "Entity spans produced by the merger", "category")
	m.MalformedTokensTotal = collector.RegisterCounter(
		"malformed_tokens_total", "Token predictions rejected during validation", "reason")

	m.ErrorsTotal = collector.RegisterCounter(
		"errors_total", "Errors by code", "code")

	return m
}
