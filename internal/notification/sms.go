package notification

import (
	"context"
	"log/slog"
)

var _ Channel = (*SMSChannel)(nil)

// SMSChannel is a logging stub for SMS delivery. It records the outbound
// notification with the configured numbers and always succeeds, standing in
// for a real SMS provider integration.
type SMSChannel struct {
	logger *slog.Logger
	to     string
	from   string
}

// NewSMSChannel creates the SMS channel stub.
func NewSMSChannel(logger *slog.Logger, to, from string) *SMSChannel {
	return &SMSChannel{
		logger: logger.With("component", "notification.sms"),
		to:     to,
		from:   from,
	}
}

// Name implements Channel.
func (c *SMSChannel) Name() string {
	return "sms"
}

// Send implements Channel.
func (c *SMSChannel) Send(_ context.Context, msg Message) error {
	c.logger.Info("sms notification sent",
		"to", c.to,
		"from", c.from,
		"type", msg.Type,
		"payload", msg.Payload,
	)

	return nil
}
