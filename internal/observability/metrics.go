package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// report bot.
type Metrics struct {
	ReportCycles  prometheus.Counter
	CycleFailures *prometheus.CounterVec // labels: stage={fetch_current,fetch_forecast,deliver}
	CycleDuration prometheus.Histogram

	// AirNow API metrics.
	AirNowRequests *prometheus.CounterVec // labels: endpoint={observation,forecast}, status

	// Webhook delivery metrics.
	WebhookDeliveries prometheus.Counter
	WebhookErrors     prometheus.Counter

	SchedulerRunning prometheus.Gauge
}

// NewMetrics creates and registers all bot metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		ReportCycles: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "aqi_bot",
			Name:      "report_cycles_total",
			Help:      "Total report cycles completed and delivered.",
		}),
		CycleFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "aqi_bot",
			Name:      "report_cycle_failures_total",
			Help:      "Report cycle failures by stage.",
		}, []string{"stage"}),
		CycleDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "aqi_bot",
			Name:      "report_cycle_duration_seconds",
			Help:      "Duration of a complete fetch-render-deliver cycle.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		AirNowRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "aqi_bot",
			Name:      "airnow_requests_total",
			Help:      "AirNow API requests by endpoint and HTTP status.",
		}, []string{"endpoint", "status"}),
		WebhookDeliveries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "aqi_bot",
			Name:      "webhook_deliveries_total",
			Help:      "Total reports accepted by the Discord webhook.",
		}),
		WebhookErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "aqi_bot",
			Name:      "webhook_errors_total",
			Help:      "Total webhook deliveries rejected or failed.",
		}),
		SchedulerRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "aqi_bot",
			Name:      "scheduler_running",
			Help:      "1 when the cron scheduler is active, 0 when shut down.",
		}),
	}

	prometheus.MustRegister(
		m.ReportCycles,
		m.CycleFailures,
		m.CycleDuration,
		m.AirNowRequests,
		m.WebhookDeliveries,
		m.WebhookErrors,
		m.SchedulerRunning,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		ReportCycles:      prometheus.NewCounter(prometheus.CounterOpts{Namespace: "aqi_bot", Name: "report_cycles_total"}),
		CycleFailures:     prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "aqi_bot", Name: "report_cycle_failures_total"}, []string{"stage"}),
		CycleDuration:     prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "aqi_bot", Name: "report_cycle_duration_seconds"}),
		AirNowRequests:    prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "aqi_bot", Name: "airnow_requests_total"}, []string{"endpoint", "status"}),
		WebhookDeliveries: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "aqi_bot", Name: "webhook_deliveries_total"}),
		WebhookErrors:     prometheus.NewCounter(prometheus.CounterOpts{Namespace: "aqi_bot", Name: "webhook_errors_total"}),
		SchedulerRunning:  prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "aqi_bot", Name: "scheduler_running"}),
	}
}
