// Package discord delivers report messages to a Discord channel webhook.
package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/sirfuzzalot/discord-aqi-bot/internal/config"
	"github.com/sirfuzzalot/discord-aqi-bot/internal/observability"
)

// Webhook posts messages to a Discord channel webhook URL.
// It implements reporter.Publisher.
type Webhook struct {
	url        string
	httpClient *http.Client
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewWebhook creates a webhook publisher for the configured Discord URL.
func NewWebhook(cfg *config.Config, metrics *observability.Metrics, logger *slog.Logger) *Webhook {
	return &Webhook{
		url:        cfg.WebhookURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		metrics:    metrics,
		logger:     logger,
	}
}

type webhookPayload struct {
	Content string `json:"content"`
}

// Publish posts the message content to the webhook. Discord answers 204 on
// success; any 2xx status is accepted.
func (w *Webhook) Publish(ctx context.Context, content string) error {
	body, err := json.Marshal(webhookPayload{Content: content})
	if err != nil {
		return fmt.Errorf("serialize webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		w.metrics.WebhookErrors.Inc()
		return fmt.Errorf("webhook request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		w.metrics.WebhookErrors.Inc()
		detail, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("webhook error: status %d: %s", resp.StatusCode, detail)
	}

	w.metrics.WebhookDeliveries.Inc()
	w.logger.Info("delivered report to webhook", "bytes", len(body))
	return nil
}
