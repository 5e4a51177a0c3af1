package notification

import "time"

// Message types for order lifecycle notifications.
const (
	TypeOrderCreated       = "ORDER_CREATED"
	TypeOrderStatusChanged = "ORDER_STATUS_CHANGED"
)

// Message is the channel-agnostic notification payload. Messages are built
// per dispatch from domain events and never persisted.
type Message struct {
	Type       string            `json:"type"`
	OccurredAt time.Time         `json:"occurredAt"`
	Payload    map[string]string `json:"payload"`
}

// NewOrderCreatedMessage builds the notification for a newly created order.
func NewOrderCreatedMessage(orderID string, occurredAt time.Time) Message {
	return Message{
		Type:       TypeOrderCreated,
		OccurredAt: occurredAt,
		Payload: map[string]string{
			"orderId": orderID,
		},
	}
}

// NewOrderStatusChangedMessage builds the notification for a status
// transition.
func NewOrderStatusChangedMessage(orderID, from, to string, occurredAt time.Time) Message {
	return Message{
		Type:       TypeOrderStatusChanged,
		OccurredAt: occurredAt,
		Payload: map[string]string{
			"orderId": orderID,
			"from":    from,
			"to":      to,
		},
	}
}
