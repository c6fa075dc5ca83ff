// Package ledger stores contact messages and page-view counters.
//
// A Ledger is process-wide state: it is built once at startup, injected into
// the services that need it and discarded at exit. The Memory implementation
// keeps everything in process memory; Redis keeps the same shapes in Redis so
// several instances can share them.
package ledger

import (
	"context"
	"time"
)

const (
	StatusNew = "new"

	DefaultSubject = "General Inquiry"
)

// Message is a stored contact form submission. It is never modified after
// it has been recorded.
type Message struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Subject      string    `json:"subject"`
	Body         string    `json:"message"`
	SubmittedAt  time.Time `json:"timestamp"`
	Status       string    `json:"status"`
	TicketNumber string    `json:"ticketNumber"`
}

// NewMessage is a validated submission that has not been stored yet.
type NewMessage struct {
	Name    string
	Email   string
	Subject string
	Body    string
}

type MessageList struct {
	Total    int       `json:"total"`
	New      int       `json:"new"`
	Messages []Message `json:"messages"`
}

// PageView is the state of the counters right after one recorded view.
type PageView struct {
	Page          string `json:"page"`
	Views         int64  `json:"views"`
	TotalVisitors int64  `json:"totalVisitors"`
}

type Stats struct {
	Messages  int `json:"messages"`
	Analytics int `json:"analytics"`
}

type Ledger interface {
	// RecordMessage appends a message in arrival order and returns the stored record.
	RecordMessage(ctx context.Context, m NewMessage) (*Message, error)

	// RecordPageView bumps the page counter and the visitor tally together.
	RecordPageView(ctx context.Context, page string) (*PageView, error)

	// ListMessages returns every message in submission order.
	ListMessages(ctx context.Context) (*MessageList, error)

	// Stats returns the message count and the number of distinct pages seen.
	Stats(ctx context.Context) (*Stats, error)
}

// build fills the derived fields of a message.
func build(m NewMessage, id int64, at time.Time) Message {
	subject := m.Subject
	if subject == "" {
		subject = DefaultSubject
	}
	return Message{
		ID:           id,
		Name:         m.Name,
		Email:        m.Email,
		Subject:      subject,
		Body:         m.Body,
		SubmittedAt:  at.UTC().Truncate(time.Millisecond),
		Status:       StatusNew,
		TicketNumber: TicketNumber(id),
	}
}

func countNew(msgs []Message) int {
	n := 0
	for _, m := range msgs {
		if m.Status == StatusNew {
			n++
		}
	}
	return n
}
