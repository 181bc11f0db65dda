package pkg

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
)

const (
	SubjectTableUploaded = "datachat.table.uploaded"
	SubjectQueryAnswered = "datachat.query.answered"
)

// EventPublisher emits domain events. Implementations must be safe for
// concurrent use.
type EventPublisher interface {
	Publish(ctx context.Context, subject string, payload any) error
	Close()
}

// NopPublisher drops every event.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, any) error { return nil }
func (NopPublisher) Close()                                     {}

// NATSPublisher publishes JSON events on a NATS connection.
type NATSPublisher struct {
	conn *nats.Conn
}

func NewNATSPublisher(natsURL string) (*NATSPublisher, error) {
	nc, err := nats.Connect(natsURL, nats.Name("datachat"))
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}
	return &NATSPublisher{conn: nc}, nil
}

func (p *NATSPublisher) Publish(ctx context.Context, subject string, payload any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal event %q: %w", subject, err)
	}
	if err := p.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("nats publish %q: %w", subject, err)
	}
	return nil
}

// Close drains the NATS connection.
func (p *NATSPublisher) Close() {
	if p.conn != nil {
		_ = p.conn.Drain()
	}
}
