package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"ordertracker/internal/pkg/errs"
)

const webhookRequestTimeout = 10 * time.Second

var _ Channel = (*WebhookChannel)(nil)

// WebhookChannel posts the notification message as JSON to a configured
// endpoint. Any transport error or non-2xx response is a failed delivery,
// which the retrying wrapper turns into another attempt.
type WebhookChannel struct {
	client *http.Client
	url    string
}

// NewWebhookChannel creates a webhook channel posting to baseURL+path.
// Returns an error when baseURL is empty.
func NewWebhookChannel(baseURL, path string) (*WebhookChannel, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}

	return &WebhookChannel{
		client: &http.Client{Timeout: webhookRequestTimeout},
		url:    baseURL + path,
	}, nil
}

// Name implements Channel.
func (c *WebhookChannel) Name() string {
	return "webhook"
}

// Send implements Channel.
func (c *WebhookChannel) Send(ctx context.Context, msg Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("post webhook: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	return nil
}
