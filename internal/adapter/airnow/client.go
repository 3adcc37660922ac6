// Package airnow queries the AirNow REST API and maps its responses into
// domain entities.
package airnow

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/sirfuzzalot/discord-aqi-bot/internal/config"
	"github.com/sirfuzzalot/discord-aqi-bot/internal/domain"
	"github.com/sirfuzzalot/discord-aqi-bot/internal/observability"
)

const (
	observationPath = "/aq/observation/zipCode/current/"
	forecastPath    = "/aq/forecast/zipCode/"
	formatJSON      = "application/json"
)

// Client is an AirNow API client. Calls are synchronous and single-attempt;
// a failed call fails the report cycle and the scheduler is the retry.
type Client struct {
	token      string
	distance   int
	httpClient *http.Client
	baseURL    string
	clock      clockwork.Clock
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates an AirNow client from the bot configuration.
func NewClient(cfg *config.Config, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		token:      cfg.AirNowToken,
		distance:   cfg.SearchDistance,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    cfg.AirNowBaseURL,
		clock:      clockwork.NewRealClock(),
		metrics:    metrics,
		logger:     logger,
	}
}

// Current fetches the current observation for a zip code.
func (c *Client) Current(ctx context.Context, zipCode string) (domain.Observation, error) {
	records, err := c.fetch(ctx, observationPath, "observation", url.Values{
		"format":   {formatJSON},
		"zipCode":  {zipCode},
		"distance": {strconv.Itoa(c.distance)},
		"API_KEY":  {c.token},
	})
	if err != nil {
		return domain.Observation{}, err
	}
	if len(records) == 0 {
		return domain.Observation{}, fmt.Errorf("%w for zip code %s", domain.ErrNoData, zipCode)
	}

	obs, err := domain.BuildObservation(records)
	if err != nil {
		return domain.Observation{}, fmt.Errorf("build observation: %w", err)
	}

	c.logger.Debug("fetched current observation",
		"zip_code", zipCode,
		"reporting_area", obs.ReportingArea,
	)
	return obs, nil
}

// Forecast fetches forecasts for a zip code dated today (UTC).
func (c *Client) Forecast(ctx context.Context, zipCode string) ([]domain.Forecast, error) {
	return c.ForecastFor(ctx, zipCode, c.clock.Now().UTC())
}

// ForecastFor fetches forecasts for a zip code on a specific date. AirNow may
// answer with records for several days around that date; the result carries
// one Forecast per day, in response order.
func (c *Client) ForecastFor(ctx context.Context, zipCode string, date time.Time) ([]domain.Forecast, error) {
	records, err := c.fetch(ctx, forecastPath, "forecast", url.Values{
		"format":   {formatJSON},
		"zipCode":  {zipCode},
		"date":     {date.Format(time.DateOnly)},
		"distance": {strconv.Itoa(c.distance)},
		"API_KEY":  {c.token},
	})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w for zip code %s", domain.ErrNoData, zipCode)
	}

	forecasts, err := domain.BuildForecasts(records)
	if err != nil {
		return nil, fmt.Errorf("build forecasts: %w", err)
	}

	c.logger.Debug("fetched forecasts", "zip_code", zipCode, "days", len(forecasts))
	return forecasts, nil
}

func (c *Client) fetch(ctx context.Context, path, endpoint string, params url.Values) ([]domain.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s request: %w", endpoint, err)
	}
	defer resp.Body.Close()

	c.metrics.AirNowRequests.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("airnow API error: status %d: %s", resp.StatusCode, body)
	}

	var records []domain.Record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: decode %s response: %v", domain.ErrMalformedResponse, endpoint, err)
	}
	return records, nil
}
