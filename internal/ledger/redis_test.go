package ledger

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRedis connects to PORTFOLIO_TEST_REDIS_ADDR when set and to an
// in-process miniredis otherwise.
func newTestRedis(t *testing.T) (*redis.Client, string) {
	t.Helper()
	addr := os.Getenv("PORTFOLIO_TEST_REDIS_ADDR")
	if addr == "" {
		addr = miniredis.RunT(t).Addr()
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})
	require.NoError(t, rdb.Ping(context.Background()).Err())

	prefix := fmt.Sprintf("portfolio-test-%d", time.Now().UnixNano())
	t.Cleanup(func() {
		ctx := context.Background()
		rdb.Del(ctx, prefix+":messages", prefix+":pageviews", prefix+":visitors")
		_ = rdb.Close()
	})
	return rdb, prefix
}

func TestRedis_Ledger(t *testing.T) {
	rdb, prefix := newTestRedis(t)
	l := NewRedis(rdb, nil, prefix)
	ctx := context.Background()

	stats, err := l.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, Stats{}, *stats)

	first, err := l.RecordMessage(ctx, NewMessage{Name: "Ada", Email: "ada@example.com", Body: "hi"})
	require.NoError(t, err)
	second, err := l.RecordMessage(ctx, NewMessage{Name: "Bob", Email: "bob@example.com", Subject: "Job", Body: "hey"})
	require.NoError(t, err)
	assert.Less(t, first.ID, second.ID)

	list, err := l.ListMessages(ctx)
	require.NoError(t, err)
	require.Len(t, list.Messages, 2)
	assert.Equal(t, 2, list.New)
	assert.Equal(t, "Ada", list.Messages[0].Name)
	assert.Equal(t, DefaultSubject, list.Messages[0].Subject)
	assert.Equal(t, "Job", list.Messages[1].Subject)

	for want := int64(1); want <= 3; want++ {
		pv, err := l.RecordPageView(ctx, "home")
		require.NoError(t, err)
		assert.Equal(t, want, pv.Views)
		assert.Equal(t, want, pv.TotalVisitors)
	}

	stats, err = l.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, Stats{Messages: 2, Analytics: 1}, *stats)
}

func TestRedis_PageViewsUpdateJointly(t *testing.T) {
	rdb, prefix := newTestRedis(t)
	l := NewRedis(rdb, nil, prefix)
	ctx := context.Background()

	pages := []string{"home", "about", "home", "projects", "home"}
	for i, p := range pages {
		pv, err := l.RecordPageView(ctx, p)
		require.NoError(t, err)
		assert.Equal(t, int64(i+1), pv.TotalVisitors)
	}

	views, err := rdb.HGetAll(ctx, prefix+":pageviews").Result()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"home": "3", "about": "1", "projects": "1"}, views)

	total, err := rdb.Get(ctx, prefix+":visitors").Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(len(pages)), total)
}

func TestRedis_MessagesRoundTrip(t *testing.T) {
	rdb, prefix := newTestRedis(t)
	at := time.Date(2026, 3, 4, 5, 6, 7, 891_000_000, time.UTC)
	l := NewRedis(rdb, NewSequence(func() time.Time { return at }), prefix)
	ctx := context.Background()

	var recorded []*Message
	for _, name := range []string{"a", "b", "c"} {
		m, err := l.RecordMessage(ctx, NewMessage{Name: name, Email: name + "@x.io", Body: "body " + name})
		require.NoError(t, err)
		recorded = append(recorded, m)
	}

	list, err := l.ListMessages(ctx)
	require.NoError(t, err)
	require.Len(t, list.Messages, len(recorded))
	for i, m := range list.Messages {
		assert.Equal(t, recorded[i].ID, m.ID)
		assert.Equal(t, recorded[i].TicketNumber, m.TicketNumber)
		assert.Equal(t, recorded[i].Name, m.Name)
		assert.Equal(t, recorded[i].Body, m.Body)
		assert.Equal(t, StatusNew, m.Status)
		assert.True(t, at.Equal(m.SubmittedAt), "submittedAt %v", m.SubmittedAt)
	}
	assert.Equal(t, recorded[0].ID+1, recorded[1].ID)
	assert.Equal(t, recorded[1].ID+1, recorded[2].ID)
}

func TestRedis_ServerDown(t *testing.T) {
	srv := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: srv.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = rdb.Close() })
	l := NewRedis(rdb, nil, "down")
	srv.Close()

	_, err := l.RecordMessage(context.Background(), NewMessage{Name: "a", Email: "a@b.co", Body: "m"})
	assert.Error(t, err)
	_, err = l.Stats(context.Background())
	assert.Error(t, err)
}
