// Command preview fetches live AirNow data and prints the rendered report to
// stdout without delivering it anywhere, for checking message formatting
// against real responses before pointing the bot at a channel.
//
// Usage:
//
//	go run ./cmd/preview -zip 94103 -window 15,19
//
// The AirNow token is read from AQI_BOT_AIRNOW_API_TOKEN; a local .env file
// is honored.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/sirfuzzalot/discord-aqi-bot/internal/adapter/airnow"
	"github.com/sirfuzzalot/discord-aqi-bot/internal/config"
	"github.com/sirfuzzalot/discord-aqi-bot/internal/observability"
	"github.com/sirfuzzalot/discord-aqi-bot/internal/render"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	_ = godotenv.Load()

	zip := flag.String("zip", os.Getenv("AQI_BOT_AIRNOW_ZIP_CODE"), "zip code to report on")
	window := flag.String("window", "15,19", `morning window as UTC hours "start,end"`)
	distance := flag.Int("distance", 25, "search radius in miles")
	flag.Parse()

	if *zip == "" {
		flag.Usage()
		return fmt.Errorf("missing zip code: pass -zip or set AQI_BOT_AIRNOW_ZIP_CODE")
	}

	token := os.Getenv("AQI_BOT_AIRNOW_API_TOKEN")
	if token == "" {
		return fmt.Errorf("AQI_BOT_AIRNOW_API_TOKEN is required")
	}

	win, err := parseWindow(*window)
	if err != nil {
		return fmt.Errorf("invalid -window %q: %w", *window, err)
	}

	cfg := &config.Config{
		AirNowToken:    token,
		AirNowBaseURL:  "https://www.airnowapi.org",
		ZipCode:        *zip,
		SearchDistance: *distance,
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	client := airnow.NewClient(cfg, observability.NewMetrics(), logger)

	ctx := context.Background()

	obs, err := client.Current(ctx, *zip)
	if err != nil {
		return fmt.Errorf("fetch current observation: %w", err)
	}
	log.Printf("observation: %s, %s (hour %d %s)",
		obs.ReportingArea, obs.StateCode, obs.HourObserved, obs.LocalTimeZone)

	forecasts, err := client.Forecast(ctx, *zip)
	if err != nil {
		return fmt.Errorf("fetch forecasts: %w", err)
	}
	log.Printf("forecasts: %d day(s)", len(forecasts))

	fmt.Println(render.Message(obs, forecasts, win))
	return nil
}

func parseWindow(s string) (render.Window, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return render.Window{}, fmt.Errorf("want two comma-separated hours")
	}

	var hours [2]int
	for i, part := range parts {
		h, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return render.Window{}, fmt.Errorf("hour %q is not an integer", part)
		}
		if h < 0 || h > 23 {
			return render.Window{}, fmt.Errorf("hour %d outside range 0-23", h)
		}
		hours[i] = h
	}
	return render.Window{StartHour: hours[0], EndHour: hours[1]}, nil
}
