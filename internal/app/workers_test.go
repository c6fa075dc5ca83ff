package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rd1855/portfolio_backend/internal/ledger"
	"github.com/rd1855/portfolio_backend/pkg/events"
)

type recordingNotifier struct {
	got chan ledger.Message
}

func (n *recordingNotifier) ContactReceived(_ context.Context, msg ledger.Message) error {
	n.got <- msg
	return nil
}

func TestNotificationWorker(t *testing.T) {
	bus := events.NewLocal()
	defer bus.Close()

	n := &recordingNotifier{got: make(chan ledger.Message, 1)}
	require.NoError(t, startNotificationWorker(bus, "portfolio", n))

	msg := ledger.Message{ID: 1, Name: "Ada", Email: "ada@example.com", TicketNumber: "TKT-00000001"}
	require.NoError(t, bus.Publish(context.Background(), "portfolio.contact.submitted", msg))

	select {
	case got := <-n.got:
		assert.Equal(t, msg.TicketNumber, got.TicketNumber)
	case <-time.After(time.Second):
		t.Fatal("worker did not receive the submission")
	}
}

func TestNotificationWorker_ClosedBus(t *testing.T) {
	bus := events.NewLocal()
	require.NoError(t, bus.Close())
	assert.Error(t, startNotificationWorker(bus, "portfolio", &recordingNotifier{}))
}
