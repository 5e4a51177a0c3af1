package notification

import (
	"context"
	"log/slog"
)

// Router fans a message out to every enabled channel. Channel problems are
// logged and skipped, a notification failure must never surface to the
// business operation that triggered it.
type Router struct {
	registry *Registry
	enabled  []string
	logger   *slog.Logger
}

// NewRouter creates a router over the registry. enabled lists channel names
// in dispatch order; names without a registered channel are reported at
// dispatch time and skipped.
func NewRouter(registry *Registry, enabled []string, logger *slog.Logger) *Router {
	return &Router{
		registry: registry,
		enabled:  enabled,
		logger:   logger.With("component", "notification.router"),
	}
}

// NotifyAllEnabled delivers msg on every enabled channel in configuration
// order. Unresolved channel names and send failures are logged and do not
// stop the fan-out.
func (r *Router) NotifyAllEnabled(ctx context.Context, msg Message) {
	for _, name := range r.enabled {
		channel, ok := r.registry.Lookup(name)
		if !ok {
			r.logger.Warn("enabled channel is not registered, skipping",
				"channel", name,
				"type", msg.Type,
			)
			continue
		}

		if err := channel.Send(ctx, msg); err != nil {
			r.logger.Error("notification delivery failed",
				"channel", name,
				"type", msg.Type,
				"error", err,
			)
		}
	}
}
