// Package events moves domain events between the request path and background workers.
//
// Subjects are dot-separated and prefixed with the configured namespace, for
// example "portfolio.contact.submitted". The local bus delivers in process;
// the NATS bus delivers across instances; the Kafka sink mirrors published
// events to a topic for offline analytics.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	ContactSubmitted = "contact.submitted"
	PageViewed       = "analytics.pageview"
)

// Event is the envelope every bus carries.
type Event struct {
	ID         string          `json:"id"`
	Subject    string          `json:"subject"`
	OccurredAt time.Time       `json:"occurredAt"`
	Payload    json.RawMessage `json:"payload"`
}

// Decode unmarshals the payload into v.
func (e Event) Decode(v any) error {
	return json.Unmarshal(e.Payload, v)
}

type Handler func(ctx context.Context, evt Event)

type Bus interface {
	// Publish wraps payload in an Event and delivers it to subscribers of subject.
	Publish(ctx context.Context, subject string, payload any) error

	// PublishEvent delivers an already built envelope.
	PublishEvent(ctx context.Context, evt Event) error

	// Subscribe registers h for subject. Handlers run outside the publisher's goroutine.
	Subscribe(subject string, h Handler) error

	Close() error
}

// NewEvent builds an envelope with a fresh id.
func NewEvent(subject string, payload any) (Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Event{}, err
	}
	return Event{
		ID:         uuid.NewString(),
		Subject:    subject,
		OccurredAt: time.Now().UTC(),
		Payload:    data,
	}, nil
}

// Subject joins the namespace prefix and a bare subject.
func Subject(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
