package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

// NatsPublisher publishes events as JSON messages on a NATS connection.
type NatsPublisher struct {
	nc     *nats.Conn
	prefix string
}

// Connect dials url and returns a publisher whose subjects are prefixed with prefix.
func Connect(url, prefix string) (*NatsPublisher, error) {
	nc, err := nats.Connect(url,
		nats.Name("yatube"),
		nats.Timeout(3*time.Second),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}
	return NewNatsPublisher(nc, prefix), nil
}

// NewNatsPublisher wraps an existing connection.
func NewNatsPublisher(nc *nats.Conn, prefix string) *NatsPublisher {
	return &NatsPublisher{nc: nc, prefix: prefix}
}

func (p *NatsPublisher) Publish(ctx context.Context, ev Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now()
	}
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", ev.Subject, err)
	}
	msg := &nats.Msg{Subject: p.prefix + ev.Subject, Data: data, Header: nats.Header{}}
	msg.Header.Set("Content-Type", "application/json")
	return p.nc.PublishMsg(msg)
}

// Close drains pending messages and closes the connection.
func (p *NatsPublisher) Close() {
	if err := p.nc.Drain(); err != nil {
		p.nc.Close()
	}
}
