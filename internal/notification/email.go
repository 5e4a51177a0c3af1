package notification

import (
	"context"
	"log/slog"
)

var _ Channel = (*EmailChannel)(nil)

// EmailChannel is a logging stub for email delivery. It records the outbound
// notification with the configured addresses and always succeeds, standing in
// for a real mail gateway integration.
type EmailChannel struct {
	logger *slog.Logger
	to     string
	from   string
}

// NewEmailChannel creates the email channel stub.
func NewEmailChannel(logger *slog.Logger, to, from string) *EmailChannel {
	return &EmailChannel{
		logger: logger.With("component", "notification.email"),
		to:     to,
		from:   from,
	}
}

// Name implements Channel.
func (c *EmailChannel) Name() string {
	return "email"
}

// Send implements Channel.
func (c *EmailChannel) Send(_ context.Context, msg Message) error {
	c.logger.Info("email notification sent",
		"to", c.to,
		"from", c.from,
		"type", msg.Type,
		"payload", msg.Payload,
	)

	return nil
}
