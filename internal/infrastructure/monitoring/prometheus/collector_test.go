package prometheus

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/ner-spotlight/internal/infrastructure/monitoring/logging"
)

func newTestCollector(t *testing.T) MetricsCollector {
	t.Helper()
	c, err := NewMetricsCollector(CollectorConfig{Namespace: "nerspotlight"}, logging.NewNopLogger())
	require.NoError(t, err)
	return c
}

func TestNewMetricsCollector_RequiresNamespace(t *testing.T) {
	_, err := NewMetricsCollector(CollectorConfig{}, nil)
	assert.Error(t, err)
}

func TestRegisterCounter_IncrementAndExpose(t *testing.T) {
	c := newTestCollector(t)

	counter := c.RegisterCounter("recognize_requests_total", "runs", "status")
	counter.WithLabelValues("ok").Inc()
	counter.WithLabelValues("ok").Add(2)
	counter.WithLabelValues("error").Inc()

	body := scrape(t, c)
	assert.Contains(t, body, `nerspotlight_recognize_requests_total{status="ok"} 3`)
	assert.Contains(t, body, `nerspotlight_recognize_requests_total{status="error"} 1`)
}

func TestRegisterGauge_SetIncDec(t *testing.T) {
	c := newTestCollector(t)

	gauge := c.RegisterGauge("http_active_requests", "active", "method")
	g := gauge.WithLabelValues("POST")
	g.Set(5)
	g.Inc()
	g.Dec()

	body := scrape(t, c)
	assert.Contains(t, body, `nerspotlight_http_active_requests{method="POST"} 5`)
}

func TestRegisterHistogram_Observes(t *testing.T) {
	c := newTestCollector(t)

	hist := c.RegisterHistogram("inference_duration_seconds", "latency", DefaultInferenceBuckets, "model")
	hist.WithLabelValues("bert-ner").Observe(0.3)
	hist.WithLabelValues("bert-ner").Observe(1.2)

	body := scrape(t, c)
	assert.Contains(t, body, `nerspotlight_inference_duration_seconds_count{model="bert-ner"} 2`)
}

func TestRegister_DuplicateReturnsExisting(t *testing.T) {
	c := newTestCollector(t)

	first := c.RegisterCounter("errors_total", "errors", "code")
	second := c.RegisterCounter("errors_total", "errors", "code")

	first.WithLabelValues("NER_001").Inc()
	second.WithLabelValues("NER_001").Inc()

	body := scrape(t, c)
	assert.Contains(t, body, `nerspotlight_errors_total{code="NER_001"} 2`)
}

func TestNewAppMetrics_RegistersEverything(t *testing.T) {
	c := newTestCollector(t)

	m := NewAppMetrics(c)
	require.NotNil(t, m)

	m.HTTPRequestsTotal.WithLabelValues("POST", "/api/v1/recognize", "200").Inc()
	m.InferenceRequestsTotal.WithLabelValues("bert-ner", "ok").Inc()
	m.MergedSpansTotal.WithLabelValues("PER").Inc()
	m.MalformedTokensTotal.WithLabelValues("missing_score").Inc()

	body := scrape(t, c)
	assert.Contains(t, body, "nerspotlight_http_requests_total")
	assert.Contains(t, body, "nerspotlight_merged_spans_total")
}

func scrape(t *testing.T, c MetricsCollector) string {
	t.Helper()
	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	b, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)
	return string(b)
}
