package metrics

import (
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
// Make fields public so they can be accessed from other packages.
type AppMetrics struct {
	QuizRequestsTotal        metric.Int64Counter
	QuizDurationSeconds      metric.Float64Histogram
	QuizFallbacksTotal       metric.Int64Counter
	SuggestionRequestsTotal  metric.Int64Counter
	EnrichmentRequestsTotal  metric.Int64Counter
	GeocodeRequestsTotal     metric.Int64Counter
	LlmCallErrorsTotal       metric.Int64Counter
}

var (
	// Global instance of AppMetrics (initialized once)
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics initializes the global metrics instruments ONLY ONCE.
// It gets the Meter from the globally configured MeterProvider.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("BrainTripPlanner")
		var err error
		m := &AppMetrics{}

		m.QuizRequestsTotal, err = meter.Int64Counter(
			"quiz_requests_total",
			metric.WithDescription("Total number of quiz generation requests completed"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create quiz_requests_total: %v", err)
		}

		m.QuizDurationSeconds, err = meter.Float64Histogram(
			"quiz_duration_seconds",
			metric.WithDescription("Duration of quiz generation requests in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create quiz_duration_seconds: %v", err)
		}

		m.QuizFallbacksTotal, err = meter.Int64Counter(
			"quiz_fallbacks_total",
			metric.WithDescription("Total number of quiz responses served from curated fallback"),
			metric.WithUnit("{response}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create quiz_fallbacks_total: %v", err)
		}

		m.SuggestionRequestsTotal, err = meter.Int64Counter(
			"suggestion_requests_total",
			metric.WithDescription("Total number of suggestion generation requests completed"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create suggestion_requests_total: %v", err)
		}

		m.EnrichmentRequestsTotal, err = meter.Int64Counter(
			"enrichment_requests_total",
			metric.WithDescription("Total number of POI enrichment requests completed"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create enrichment_requests_total: %v", err)
		}

		m.GeocodeRequestsTotal, err = meter.Int64Counter(
			"geocode_requests_total",
			metric.WithDescription("Total number of geocode requests completed"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create geocode_requests_total: %v", err)
		}

		m.LlmCallErrorsTotal, err = meter.Int64Counter(
			"llm_call_errors_total",
			metric.WithDescription("Total number of failed language model calls"),
			metric.WithUnit("{error}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create llm_call_errors_total: %v", err)
		}

		log.Println("Application metrics instruments initialized.")
		appMetrics = m
	})
}

// Get returns the globally initialized AppMetrics instance, initializing
// against the current global meter provider on first use.
func Get() *AppMetrics {
	if appMetrics == nil {
		InitAppMetrics()
	}
	return appMetrics
}
