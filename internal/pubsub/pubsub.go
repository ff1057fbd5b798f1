package pubsub

import (
	"context"
)

// Message is the unit passed over the bus.
type Message struct {
	// Topic names the channel, e.g. "portfolio.activity".
	Topic string
	// Payload is the encoded event.
	Payload []byte
	// Metadata carries optional context such as the request id.
	Metadata map[string]string
}

// Handler processes one received message.
type Handler func(ctx context.Context, msg Message) error

// Publisher sends messages.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// Subscriber receives messages.
type Subscriber interface {
	// Subscribe starts delivering messages on topic to handler in the
	// background until ctx is cancelled or the subscriber is closed.
	Subscribe(ctx context.Context, topic string, handler Handler) error
	Close() error
}
