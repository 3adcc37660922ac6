// Package reporter orchestrates the fetch-render-deliver report cycle.
package reporter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/sirfuzzalot/discord-aqi-bot/internal/config"
	"github.com/sirfuzzalot/discord-aqi-bot/internal/domain"
	"github.com/sirfuzzalot/discord-aqi-bot/internal/observability"
	"github.com/sirfuzzalot/discord-aqi-bot/internal/render"
)

// Source provides current observations and forecasts for a zip code.
type Source interface {
	Current(ctx context.Context, zipCode string) (domain.Observation, error)
	Forecast(ctx context.Context, zipCode string) ([]domain.Forecast, error)
}

// Publisher delivers a rendered report message.
type Publisher interface {
	Publish(ctx context.Context, content string) error
}

// Reporter runs report cycles: fetch air quality data, render the report,
// deliver it. Each cycle is a single attempt; a failed cycle surfaces its
// error and the next scheduled run starts fresh.
type Reporter struct {
	source    Source
	publisher Publisher
	zipCode   string
	window    render.Window
	logger    *slog.Logger
	metrics   *observability.Metrics
	ready     atomic.Bool
}

// New creates a Reporter with the given source and publisher.
func New(source Source, publisher Publisher, cfg *config.Config, metrics *observability.Metrics, logger *slog.Logger) *Reporter {
	return &Reporter{
		source:    source,
		publisher: publisher,
		zipCode:   cfg.ZipCode,
		window:    render.Window{StartHour: cfg.MorningStart, EndHour: cfg.MorningEnd},
		logger:    logger,
		metrics:   metrics,
	}
}

// CheckReadiness returns nil once the scheduler has started, or an error
// describing why the service is not yet ready.
func (r *Reporter) CheckReadiness(_ context.Context) error {
	if !r.ready.Load() {
		return errors.New("scheduler has not started yet")
	}
	return nil
}

// Run executes one report cycle.
func (r *Reporter) Run(ctx context.Context) error {
	start := time.Now()

	obs, err := r.source.Current(ctx, r.zipCode)
	if err != nil {
		r.metrics.CycleFailures.WithLabelValues("fetch_current").Inc()
		return fmt.Errorf("fetch current observation: %w", err)
	}

	forecasts, err := r.source.Forecast(ctx, r.zipCode)
	if err != nil {
		r.metrics.CycleFailures.WithLabelValues("fetch_forecast").Inc()
		return fmt.Errorf("fetch forecasts: %w", err)
	}

	message := render.Message(obs, forecasts, r.window)

	if err := r.publisher.Publish(ctx, message); err != nil {
		r.metrics.CycleFailures.WithLabelValues("deliver").Inc()
		return fmt.Errorf("deliver report: %w", err)
	}

	r.metrics.ReportCycles.Inc()
	r.metrics.CycleDuration.Observe(time.Since(start).Seconds())
	r.logger.Info("report delivered",
		"zip_code", r.zipCode,
		"reporting_area", obs.ReportingArea,
		"forecast_days", len(forecasts),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}
