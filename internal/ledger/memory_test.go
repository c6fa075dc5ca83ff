package ledger

import (
	"context"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ticketPattern = regexp.MustCompile(`^TKT-\d{8}$`)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestMemory_RecordMessage(t *testing.T) {
	at := time.Date(2025, 12, 1, 10, 0, 0, 0, time.UTC)
	l := NewMemory(NewSequence(fixedClock(at)))

	msg, err := l.RecordMessage(context.Background(), NewMessage{
		Name:  "Ada",
		Email: "ada@example.com",
		Body:  "hello",
	})
	require.NoError(t, err)

	assert.Equal(t, at.UnixMilli(), msg.ID)
	assert.Equal(t, DefaultSubject, msg.Subject)
	assert.Equal(t, StatusNew, msg.Status)
	assert.Equal(t, at, msg.SubmittedAt)
	assert.Regexp(t, ticketPattern, msg.TicketNumber)
	assert.Equal(t, TicketNumber(msg.ID), msg.TicketNumber)
}

func TestMemory_RecordMessage_KeepsSubject(t *testing.T) {
	l := NewMemory(nil)
	msg, err := l.RecordMessage(context.Background(), NewMessage{
		Name: "Ada", Email: "ada@example.com", Subject: "Hiring", Body: "hello",
	})
	require.NoError(t, err)
	assert.Equal(t, "Hiring", msg.Subject)
}

func TestMemory_ListMessages_Order(t *testing.T) {
	l := NewMemory(NewSequence(fixedClock(time.Now())))
	ctx := context.Background()

	list, err := l.ListMessages(ctx)
	require.NoError(t, err)
	assert.NotNil(t, list.Messages)
	assert.Empty(t, list.Messages)

	names := []string{"first", "second", "third"}
	for _, n := range names {
		_, err := l.RecordMessage(ctx, NewMessage{Name: n, Email: "x@y.io", Body: "b"})
		require.NoError(t, err)
	}

	list, err = l.ListMessages(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, list.Total)
	assert.Equal(t, 3, list.New)
	for i, n := range names {
		assert.Equal(t, n, list.Messages[i].Name)
	}

	// same millisecond: ids still strictly increase
	assert.Less(t, list.Messages[0].ID, list.Messages[1].ID)
	assert.Less(t, list.Messages[1].ID, list.Messages[2].ID)
}

func TestMemory_ListMessages_ReturnsCopy(t *testing.T) {
	l := NewMemory(nil)
	ctx := context.Background()
	_, err := l.RecordMessage(ctx, NewMessage{Name: "Ada", Email: "x@y.io", Body: "b"})
	require.NoError(t, err)

	list, err := l.ListMessages(ctx)
	require.NoError(t, err)
	list.Messages[0].Name = "changed"

	again, err := l.ListMessages(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ada", again.Messages[0].Name)
}

func TestMemory_RecordPageView(t *testing.T) {
	l := NewMemory(nil)
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		pv, err := l.RecordPageView(ctx, "home")
		require.NoError(t, err)
		assert.Equal(t, "home", pv.Page)
		assert.Equal(t, want, pv.Views)
		assert.Equal(t, want, pv.TotalVisitors)
	}

	pv, err := l.RecordPageView(ctx, "about")
	require.NoError(t, err)
	assert.Equal(t, int64(1), pv.Views)
	assert.Equal(t, int64(4), pv.TotalVisitors)
}

func TestMemory_Stats(t *testing.T) {
	l := NewMemory(nil)
	ctx := context.Background()

	stats, err := l.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, Stats{}, *stats)

	_, err = l.RecordMessage(ctx, NewMessage{Name: "Ada", Email: "x@y.io", Body: "b"})
	require.NoError(t, err)
	_, err = l.RecordPageView(ctx, "home")
	require.NoError(t, err)
	_, err = l.RecordPageView(ctx, "home")
	require.NoError(t, err)

	stats, err = l.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, Stats{Messages: 1, Analytics: 1}, *stats)
}

func TestMemory_ConcurrentWrites(t *testing.T) {
	l := NewMemory(nil)
	ctx := context.Background()

	const workers, perWorker = 8, 50
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				_, _ = l.RecordPageView(ctx, "home")
				_, _ = l.RecordMessage(ctx, NewMessage{Name: "n", Email: "x@y.io", Body: "b"})
			}
		}()
	}
	wg.Wait()

	pv, err := l.RecordPageView(ctx, "home")
	require.NoError(t, err)
	assert.Equal(t, int64(workers*perWorker+1), pv.Views)
	assert.Equal(t, int64(workers*perWorker+1), pv.TotalVisitors)

	list, err := l.ListMessages(ctx)
	require.NoError(t, err)
	require.Len(t, list.Messages, workers*perWorker)
	for i := 1; i < len(list.Messages); i++ {
		assert.Less(t, list.Messages[i-1].ID, list.Messages[i].ID)
	}
}
