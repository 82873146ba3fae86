package webhook

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"eventmatch/internal/domain"
)

// IdempotencyHeader carries the delivery id so the receiver can drop replays of a retried notification.
const IdempotencyHeader = "Idempotency-Key"

type httpNotifier struct {
	client *http.Client
	url    string
}

// NewHTTPNotifier returns a Notifier that POSTs payloads to url.
// The body is JSON but sent as text/plain, which the matching receiver expects.
func NewHTTPNotifier(client *http.Client, url string) domain.Notifier {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpNotifier{client: client, url: url}
}

func (n *httpNotifier) Notify(ctx context.Context, deliveryID string, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain")
	req.Header.Set(IdempotencyHeader, deliveryID)

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to post webhook: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook returned status: %d", resp.StatusCode)
	}
	return nil
}

type noopNotifier struct {
	logger *slog.Logger
}

// NewNoopNotifier returns a Notifier that only logs. Used when no webhook URL is configured.
func NewNoopNotifier(logger *slog.Logger) domain.Notifier {
	return &noopNotifier{logger: logger}
}

func (n *noopNotifier) Notify(ctx context.Context, deliveryID string, payload []byte) error {
	n.logger.InfoContext(ctx, "webhook would be sent", "delivery_id", deliveryID, "bytes", len(payload))
	return nil
}
