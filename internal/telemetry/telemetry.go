// Package telemetry provides OpenTelemetry instrumentation for the
// extraction pipeline. It exports Prometheus metrics and provides
// tracing capabilities.
package telemetry

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "cookscan"

// Metrics holds all extraction Prometheus metrics
type Metrics struct {
	// Pipeline metrics
	PagesProcessed  prometheus.Counter
	PagesFailed     prometheus.Counter
	CandidatesTotal prometheus.Counter
	RecipesAccepted prometheus.Counter
	RecipesRejected *prometheus.CounterVec

	// Classifier metrics
	ClassificationsTotal *prometheus.CounterVec
	ClassifyDuration     prometheus.Histogram

	// Validator metrics
	VerdictConfidence prometheus.Histogram
}

// Provider wraps telemetry providers
type Provider struct {
	Tracer   trace.Tracer
	Metrics  *Metrics
	registry *prometheus.Registry
}

// NewProvider initializes telemetry with a dedicated Prometheus registry
func NewProvider() *Provider {
	registry := prometheus.NewRegistry()
	return &Provider{
		Tracer:   otel.Tracer(serviceName),
		Metrics:  initMetrics(registry),
		registry: registry,
	}
}

// Handler returns the Prometheus HTTP handler for the /metrics endpoint
func (p *Provider) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}

func initMetrics(registry *prometheus.Registry) *Metrics {
	factory := promauto.With(registry)
	m := &Metrics{}

	m.PagesProcessed = factory.NewCounter(prometheus.CounterOpts{
		Name: "cookscan_pages_processed_total",
		Help: "Total PDF pages with extracted text",
	})

	m.PagesFailed = factory.NewCounter(prometheus.CounterOpts{
		Name: "cookscan_pages_failed_total",
		Help: "Total PDF pages skipped due to extraction errors",
	})

	m.CandidatesTotal = factory.NewCounter(prometheus.CounterOpts{
		Name: "cookscan_candidates_total",
		Help: "Total recipe candidates assembled by the segmenter",
	})

	m.RecipesAccepted = factory.NewCounter(prometheus.CounterOpts{
		Name: "cookscan_recipes_accepted_total",
		Help: "Total candidates that passed validation",
	})

	m.RecipesRejected = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "cookscan_recipes_rejected_total",
		Help: "Total candidates rejected by validation, by reason",
	}, []string{"reason"})

	m.ClassificationsTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "cookscan_classifications_total",
		Help: "Total text blocks classified, by content kind",
	}, []string{"kind"})

	m.ClassifyDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Name:    "cookscan_classify_duration_seconds",
		Help:    "Time to classify a single text block",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1},
	})

	m.VerdictConfidence = factory.NewHistogram(prometheus.HistogramOpts{
		Name:    "cookscan_verdict_confidence",
		Help:    "Overall confidence of validation verdicts",
		Buckets: []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0},
	})

	return m
}

// RecordClassification records metrics for a single classification
func (p *Provider) RecordClassification(kind string, duration time.Duration) {
	p.Metrics.ClassificationsTotal.WithLabelValues(kind).Inc()
	p.Metrics.ClassifyDuration.Observe(duration.Seconds())
}

// RecordPage records one extracted page, or one skipped page on failure
func (p *Provider) RecordPage(ok bool) {
	if ok {
		p.Metrics.PagesProcessed.Inc()
		return
	}
	p.Metrics.PagesFailed.Inc()
}

// RecordCandidate records one assembled candidate
func (p *Provider) RecordCandidate() {
	p.Metrics.CandidatesTotal.Inc()
}

// RecordVerdict records a validation outcome with its confidence
func (p *Provider) RecordVerdict(valid bool, confidence float64, reason string) {
	p.Metrics.VerdictConfidence.Observe(confidence)
	if valid {
		p.Metrics.RecipesAccepted.Inc()
		return
	}
	p.Metrics.RecipesRejected.WithLabelValues(reason).Inc()
}
