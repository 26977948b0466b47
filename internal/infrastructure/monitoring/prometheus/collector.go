// Package prometheus wraps prometheus/client_golang behind a small collector
// facade so business packages register metrics without importing the
// prometheus API directly.
package prometheus

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/turtacn/ner-spotlight/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/ner-spotlight/pkg/errors"
)

// MetricsCollector registers and serves application metrics.
type MetricsCollector interface {
	RegisterCounter(name, help string, labels ...string) CounterVec
	RegisterGauge(name, help string, labels ...string) GaugeVec
	RegisterHistogram(name, help string, buckets []float64, labels ...string) HistogramVec
	Handler() http.Handler
}

// CounterVec is a labeled monotonically increasing counter.
type CounterVec interface {
	WithLabelValues(lvs ...string) Counter
}

// Counter is a single counter time series.
type Counter interface {
	Inc()
	Add(delta float64)
}

// GaugeVec is a labeled gauge.
type GaugeVec interface {
	WithLabelValues(lvs ...string) Gauge
}

// Gauge is a single gauge time series.
type Gauge interface {
	Set(value float64)
	Inc()
	Dec()
}

// HistogramVec is a labeled histogram.
type HistogramVec interface {
	WithLabelValues(lvs ...string) Histogram
}

// Histogram is a single histogram time series.
type Histogram interface {
	Observe(value float64)
}

// CollectorConfig holds construction parameters for the collector.
type CollectorConfig struct {
	Namespace            string
	Subsystem            string
	EnableProcessMetrics bool
	EnableGoMetrics      bool
}

type prometheusCollector struct {
	registry   *prometheus.Registry
	config     CollectorConfig
	registered map[string]prometheus.Collector
	mu         sync.Mutex
	logger     logging.Logger
}

// NewMetricsCollector constructs a collector with its own registry so tests
// never collide on the global default registry.
func NewMetricsCollector(cfg CollectorConfig, logger logging.Logger) (MetricsCollector, error) {
	if cfg.Namespace == "" {
		return nil, errors.InvalidConfig("metrics namespace is required")
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	registry := prometheus.NewRegistry()
	if cfg.EnableProcessMetrics {
		registry.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{
			Namespace: cfg.Namespace,
		}))
	}
	if cfg.EnableGoMetrics {
		registry.MustRegister(prometheus.NewGoCollector())
	}

	return &prometheusCollector{
		registry:   registry,
		config:     cfg,
		registered: make(map[string]prometheus.Collector),
		logger:     logger,
	}, nil
}

func (c *prometheusCollector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// register stores the collector under its fully-qualified name; duplicate
// registrations return the existing collector so repeated construction in
// tests is harmless.
func (c *prometheusCollector) register(name string, newCollector prometheus.Collector) prometheus.Collector {
	c.mu.Lock()
	defer c.mu.Unlock()

	fullName := prometheus.BuildFQName(c.config.Namespace, c.config.Subsystem, name)
	if existing, ok := c.registered[fullName]; ok {
		return existing
	}
	if err := c.registry.Register(newCollector); err != nil {
		c.logger.Warn("metric registration failed",
			logging.String("metric", fullName), logging.Err(err))
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector
		}
	}
	c.registered[fullName] = newCollector
	return newCollector
}

func (c *prometheusCollector) RegisterCounter(name, help string, labels ...string) CounterVec {
	vec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: c.config.Namespace,
		Subsystem: c.config.Subsystem,
		Name:      name,
		Help:      help,
	}, labels)
	return &counterVec{vec: c.register(name, vec).(*prometheus.CounterVec)}
}

func (c *prometheusCollector) RegisterGauge(name, help string, labels ...string) GaugeVec {
	vec := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: c.config.Namespace,
		Subsystem: c.config.Subsystem,
		Name:      name,
		Help:      help,
	}, labels)
	return &gaugeVec{vec: c.register(name, vec).(*prometheus.GaugeVec)}
}

func (c *prometheusCollector) RegisterHistogram(name, help string, buckets []float64, labels ...string) HistogramVec {
	if len(buckets) == 0 {
		buckets = DefaultDurationBuckets
	}
	vec := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: c.config.Namespace,
		Subsystem: c.config.Subsystem,
		Name:      name,
		Help:      help,
		Buckets:   buckets,
	}, labels)
	return &histogramVec{vec: c.register(name, vec).(*prometheus.HistogramVec)}
}

type counterVec struct {
	vec *prometheus.CounterVec
}

func (v *counterVec) WithLabelValues(lvs ...string) Counter {
	return v.vec.WithLabelValues(lvs...)
}

type gaugeVec struct {
	vec *prometheus.GaugeVec
}

func (v *gaugeVec) WithLabelValues(lvs ...string) Gauge {
	return v.vec.WithLabelValues(lvs...)
}

type histogramVec struct {
	vec *prometheus.HistogramVec
}

func (v *histogramVec) WithLabelValues(lvs ...string) Histogram {
	return v.vec.WithLabelValues(lvs...)
}
