package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rd1855/portfolio_backend/internal/ledger"
	"github.com/rd1855/portfolio_backend/pkg/email"
)

type mockSender struct {
	enabled bool
	owner   string
	sent    []email.Message
	failTo  string
}

func (m *mockSender) IsEnabled() bool { return m.enabled }
func (m *mockSender) Owner() string   { return m.owner }

func (m *mockSender) Send(_ context.Context, msg email.Message) error {
	m.sent = append(m.sent, msg)
	if len(msg.To) > 0 && msg.To[0] == m.failTo {
		return errors.New("550 mailbox unavailable")
	}
	return nil
}

var submitted = ledger.Message{
	ID:           1767225600000,
	Name:         "Ada",
	Email:        "ada@example.com",
	Subject:      "Hiring",
	Body:         "Hello there",
	SubmittedAt:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	Status:       ledger.StatusNew,
	TicketNumber: "TKT-25600000",
}

func TestContactReceived(t *testing.T) {
	tests := []struct {
		name    string
		sender  *mockSender
		wantTo  []string
		wantErr bool
	}{
		{
			name:   "disabled",
			sender: &mockSender{enabled: false, owner: "me@example.com"},
		},
		{
			name:   "owner and visitor",
			sender: &mockSender{enabled: true, owner: "me@example.com"},
			wantTo: []string{"me@example.com", "ada@example.com"},
		},
		{
			name:   "no owner address",
			sender: &mockSender{enabled: true},
			wantTo: []string{"ada@example.com"},
		},
		{
			name:    "visitor bounce",
			sender:  &mockSender{enabled: true, owner: "me@example.com", failTo: "ada@example.com"},
			wantTo:  []string{"me@example.com", "ada@example.com"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := New(tt.sender, Owner{Name: "Rohit", Phone: "+91-0000000000"})
			err := svc.ContactReceived(context.Background(), submitted)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrDeliveryFailed)
			} else {
				require.NoError(t, err)
			}

			var to []string
			for _, m := range tt.sender.sent {
				to = append(to, m.To...)
			}
			assert.Equal(t, tt.wantTo, to)
		})
	}
}

func TestContactReceived_NilSender(t *testing.T) {
	svc := New(nil, Owner{})
	assert.NoError(t, svc.ContactReceived(context.Background(), submitted))
}

func TestContactReceived_ReplyToVisitor(t *testing.T) {
	sender := &mockSender{enabled: true, owner: "me@example.com"}
	require.NoError(t, New(sender, Owner{}).ContactReceived(context.Background(), submitted))

	require.Len(t, sender.sent, 2)
	assert.Equal(t, "ada@example.com", sender.sent[0].Headers["Reply-To"])
	assert.Contains(t, sender.sent[1].TextBody, "TKT-25600000")
}
