package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all bot settings, populated from environment variables.
type Config struct {
	// AirNow API access.
	AirNowToken    string
	AirNowBaseURL  string
	ZipCode        string
	SearchDistance int // miles around the zip code to look for data

	// Discord delivery.
	WebhookURL string

	// Morning window, UTC hours, both bounds inclusive.
	MorningStart int
	MorningEnd   int

	// Schedule is a cron expression (seconds field included); empty means
	// run one report cycle and exit.
	Schedule string

	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration
}

// Load reads configuration from environment variables, applying defaults
// where unset. A local .env file is merged in first when present, for
// development runs outside a managed environment. The settings the bot cannot
// run without are validated here so a missing key fails before any network
// call, naming the key.
func Load() (*Config, error) {
	_ = godotenv.Load()

	shutdownTimeout, err := parseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	distance, err := parseSearchDistance()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		AirNowToken:     os.Getenv("AQI_BOT_AIRNOW_API_TOKEN"),
		AirNowBaseURL:   envOrDefault("AQI_BOT_AIRNOW_BASE_URL", "https://www.airnowapi.org"),
		ZipCode:         os.Getenv("AQI_BOT_AIRNOW_ZIP_CODE"),
		SearchDistance:  distance,
		WebhookURL:      os.Getenv("AQI_BOT_DISCORD_BOT_URL"),
		Schedule:        os.Getenv("AQI_BOT_SCHEDULE"),
		HTTPAddr:        envOrDefault("AQI_BOT_HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("AQI_BOT_LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("AQI_BOT_LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,
	}

	if cfg.AirNowToken == "" {
		return nil, errors.New("AQI_BOT_AIRNOW_API_TOKEN is required")
	}
	if cfg.ZipCode == "" {
		return nil, errors.New("AQI_BOT_AIRNOW_ZIP_CODE is required")
	}
	if cfg.WebhookURL == "" {
		return nil, errors.New("AQI_BOT_DISCORD_BOT_URL is required")
	}

	rawWindow := os.Getenv("AQI_BOT_MORNING_RANGE_UTC")
	if rawWindow == "" {
		return nil, errors.New("AQI_BOT_MORNING_RANGE_UTC is required")
	}
	cfg.MorningStart, cfg.MorningEnd, err = parseMorningRange(rawWindow)
	if err != nil {
		return nil, fmt.Errorf("invalid AQI_BOT_MORNING_RANGE_UTC %q: %w", rawWindow, err)
	}

	return cfg, nil
}

// parseMorningRange parses "start,end" as two UTC hours, each 0-23.
func parseMorningRange(s string) (int, int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, errors.New("want two comma-separated hours")
	}

	var hours [2]int
	for i, part := range parts {
		h, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return 0, 0, fmt.Errorf("hour %q is not an integer", part)
		}
		if h < 0 || h > 23 {
			return 0, 0, fmt.Errorf("hour %d outside range 0-23", h)
		}
		hours[i] = h
	}
	return hours[0], hours[1], nil
}

func parseSearchDistance() (int, error) {
	s := os.Getenv("AQI_BOT_SEARCH_DISTANCE")
	if s == "" {
		return 25, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid AQI_BOT_SEARCH_DISTANCE %q: want a positive number of miles", s)
	}
	return n, nil
}

func parseShutdownTimeout() (time.Duration, error) {
	s := envOrDefault("AQI_BOT_SHUTDOWN_TIMEOUT", "10s")
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid AQI_BOT_SHUTDOWN_TIMEOUT %q: want a positive duration", s)
	}
	return d, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
