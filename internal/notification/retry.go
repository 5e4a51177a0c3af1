package notification

import (
	"context"
	"log/slog"
	"time"
)

// Default retry policy for webhook deliveries.
const (
	DefaultRetryMaxAttempts  = 3
	DefaultRetryInitialDelay = 200 * time.Millisecond
	DefaultRetryMultiplier   = 2.0
)

// RetryPolicy configures the exponential backoff applied between delivery
// attempts. The delay before attempt n+1 is InitialDelay * Multiplier^(n-1).
type RetryPolicy struct {
	MaxAttempts  int
	InitialDelay time.Duration
	Multiplier   float64
}

// normalize replaces non-positive values with the defaults.
func (p RetryPolicy) normalize() RetryPolicy {
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = DefaultRetryMaxAttempts
	}
	if p.InitialDelay <= 0 {
		p.InitialDelay = DefaultRetryInitialDelay
	}
	if p.Multiplier <= 0 {
		p.Multiplier = DefaultRetryMultiplier
	}

	return p
}

var _ Channel = (*RetryingChannel)(nil)

// RetryingChannel wraps a channel with exponential backoff retries. When all
// attempts fail the message is logged with its type and payload and the
// delivery resolves as handled, so callers never see an exhausted retry as
// an error.
type RetryingChannel struct {
	inner  Channel
	policy RetryPolicy
	logger *slog.Logger
}

// NewRetryingChannel wraps inner with the given retry policy. Non-positive
// policy values fall back to the defaults.
func NewRetryingChannel(inner Channel, policy RetryPolicy, logger *slog.Logger) *RetryingChannel {
	return &RetryingChannel{
		inner:  inner,
		policy: policy.normalize(),
		logger: logger.With("component", "notification.retry", "channel", inner.Name()),
	}
}

// Name implements Channel. The wrapper is transparent and keeps the inner
// channel's name so configuration refers to the real channel.
func (c *RetryingChannel) Name() string {
	return c.inner.Name()
}

// Send implements Channel. Retries transient failures with exponential
// backoff; the sleep between attempts honors context cancellation, in which
// case the context error is returned immediately.
func (c *RetryingChannel) Send(ctx context.Context, msg Message) error {
	delay := c.policy.InitialDelay

	var lastErr error
	for attempt := 1; attempt <= c.policy.MaxAttempts; attempt++ {
		lastErr = c.inner.Send(ctx, msg)
		if lastErr == nil {
			return nil
		}

		if attempt == c.policy.MaxAttempts {
			break
		}

		c.logger.Info("delivery attempt failed, retrying",
			"attempt", attempt,
			"delay", delay,
			"error", lastErr,
		)

		if err := sleepContext(ctx, delay); err != nil {
			return err
		}

		delay = time.Duration(float64(delay) * c.policy.Multiplier)
	}

	c.logger.Warn("delivery failed after all attempts, giving up",
		"attempts", c.policy.MaxAttempts,
		"type", msg.Type,
		"payload", msg.Payload,
		"error", lastErr,
	)

	return nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
