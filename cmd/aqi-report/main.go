package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirfuzzalot/discord-aqi-bot/internal/adapter/airnow"
	"github.com/sirfuzzalot/discord-aqi-bot/internal/adapter/discord"
	httpadapter "github.com/sirfuzzalot/discord-aqi-bot/internal/adapter/http"
	"github.com/sirfuzzalot/discord-aqi-bot/internal/config"
	"github.com/sirfuzzalot/discord-aqi-bot/internal/observability"
	"github.com/sirfuzzalot/discord-aqi-bot/internal/reporter"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	client := airnow.NewClient(cfg, metrics, logger)
	webhook := discord.NewWebhook(cfg, metrics, logger)
	rep := reporter.New(client, webhook, cfg, metrics, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Run-once mode: one report cycle, exit status reflects the outcome.
	if cfg.Schedule == "" {
		if err := rep.Run(ctx); err != nil {
			logger.Error("report cycle failed", "error", err)
			os.Exit(1)
		}
		return
	}

	sched := reporter.NewScheduler(rep, cfg, metrics, logger)
	srv := httpadapter.NewServer(cfg.HTTPAddr, rep, logger)

	// Start ops server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("ops server error", "error", err)
		}
	}()

	// Start the scheduler. A registration failure leaves nothing to run, so
	// it triggers shutdown rather than idling forever.
	schedDone := make(chan struct{})
	go func() {
		defer close(schedDone)
		if err := sched.Start(ctx); err != nil {
			logger.Error("scheduler error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("ops server shutdown error", "error", err)
	}

	// Let an in-flight report cycle finish before the process exits.
	select {
	case <-schedDone:
	case <-shutdownCtx.Done():
		logger.Warn("scheduler did not stop before timeout")
	}

	logger.Info("shutdown complete")
}
