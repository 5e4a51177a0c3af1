package notification

import "context"

// Channel delivers a notification message to a single destination.
type Channel interface {
	// Name returns the channel identifier used in configuration.
	Name() string

	// Send delivers the message. A non-nil error marks the delivery as
	// failed for this channel only, the router continues with the rest.
	Send(ctx context.Context, msg Message) error
}

// Registry is an immutable name to channel mapping built once at startup.
// Safe for concurrent reads without locking.
type Registry struct {
	channels map[string]Channel
}

// NewRegistry builds a registry from the given channels. Later channels
// with a duplicate name replace earlier ones.
func NewRegistry(channels ...Channel) *Registry {
	byName := make(map[string]Channel, len(channels))
	for _, channel := range channels {
		byName[channel.Name()] = channel
	}

	return &Registry{channels: byName}
}

// Lookup returns the channel registered under name.
func (r *Registry) Lookup(name string) (Channel, bool) {
	channel, ok := r.channels[name]
	return channel, ok
}
