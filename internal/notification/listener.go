package notification

import (
	"context"
	"log/slog"
	"time"

	"ordertracker/internal/core/domain/model/order"
)

// OrderListener translates order domain events into notification messages
// and fans them out through the router. It subscribes to the event bus and
// runs on the dispatcher goroutine.
type OrderListener struct {
	router *Router
	logger *slog.Logger
	now    func() time.Time
}

// NewOrderListener creates the listener over the given router.
func NewOrderListener(router *Router, logger *slog.Logger) *OrderListener {
	return &OrderListener{
		router: router,
		logger: logger.With("component", "notification.listener"),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// HandleEvent dispatches a notification for the given domain event. Unknown
// event kinds are logged and ignored.
func (l *OrderListener) HandleEvent(ctx context.Context, event order.Event) {
	switch e := event.(type) {
	case order.CreatedEvent:
		l.router.NotifyAllEnabled(ctx, NewOrderCreatedMessage(e.OrderID.String(), l.now()))
	case order.StatusChangedEvent:
		l.router.NotifyAllEnabled(ctx, NewOrderStatusChangedMessage(
			e.OrderID.String(),
			e.From.String(),
			e.To.String(),
			l.now(),
		))
	default:
		l.logger.Warn("unknown event kind, no notification sent", "event", event.EventName())
	}
}
