package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
)

// NATS publishes events as JSON messages on NATS subjects. Subscriptions
// join a queue group when one is set, so each event reaches one instance.
type NATS struct {
	nc    *nats.Conn
	queue string
}

// ConnectNATS dials url and uses name as both the connection name and the
// queue group.
func ConnectNATS(url, name string) (*NATS, error) {
	nc, err := nats.Connect(url,
		nats.Name(name),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				slog.Warn("nats disconnected", "err", err)
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			slog.Info("nats reconnected", "url", c.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}
	return &NATS{nc: nc, queue: name}, nil
}

func NewNATS(nc *nats.Conn, queue string) *NATS {
	return &NATS{nc: nc, queue: queue}
}

func (b *NATS) Publish(ctx context.Context, subject string, payload any) error {
	evt, err := NewEvent(subject, payload)
	if err != nil {
		return err
	}
	return b.PublishEvent(ctx, evt)
}

func (b *NATS) PublishEvent(_ context.Context, evt Event) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	return b.nc.Publish(evt.Subject, data)
}

func (b *NATS) Subscribe(subject string, h Handler) error {
	cb := func(msg *nats.Msg) {
		var evt Event
		if err := json.Unmarshal(msg.Data, &evt); err != nil {
			slog.Warn("events: dropping malformed message", "subject", msg.Subject, "err", err)
			return
		}
		h(context.Background(), evt)
	}

	var err error
	if b.queue != "" {
		_, err = b.nc.QueueSubscribe(subject, b.queue, cb)
	} else {
		_, err = b.nc.Subscribe(subject, cb)
	}
	if err != nil {
		return fmt.Errorf("nats subscribe %s: %w", subject, err)
	}
	return nil
}

// Close drains subscriptions and pending publishes before closing.
func (b *NATS) Close() error {
	return b.nc.Drain()
}
