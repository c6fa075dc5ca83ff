package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Redis keeps the ledger in Redis:
//
//	<prefix>:messages   list of JSON-encoded messages, oldest first
//	<prefix>:pageviews  hash page -> views
//	<prefix>:visitors   integer visitor tally
type Redis struct {
	rdb *redis.Client
	seq *Sequence

	// serialises id allocation and append within this process
	mu sync.Mutex

	messagesKey string
	pagesKey    string
	visitorsKey string
}

func NewRedis(rdb *redis.Client, seq *Sequence, prefix string) *Redis {
	if seq == nil {
		seq = NewSequence(nil)
	}
	if prefix == "" {
		prefix = "portfolio"
	}
	return &Redis{
		rdb:         rdb,
		seq:         seq,
		messagesKey: prefix + ":messages",
		pagesKey:    prefix + ":pageviews",
		visitorsKey: prefix + ":visitors",
	}
}

func (l *Redis) RecordMessage(ctx context.Context, m NewMessage) (*Message, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	id, at := l.seq.Next()
	msg := build(m, id, at)

	data, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("encode message: %w", err)
	}
	if err := l.rdb.RPush(ctx, l.messagesKey, data).Err(); err != nil {
		return nil, fmt.Errorf("append message: %w", err)
	}
	return &msg, nil
}

func (l *Redis) RecordPageView(ctx context.Context, page string) (*PageView, error) {
	var views, total *redis.IntCmd
	_, err := l.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		views = pipe.HIncrBy(ctx, l.pagesKey, page, 1)
		total = pipe.Incr(ctx, l.visitorsKey)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("record page view: %w", err)
	}
	return &PageView{
		Page:          page,
		Views:         views.Val(),
		TotalVisitors: total.Val(),
	}, nil
}

func (l *Redis) ListMessages(ctx context.Context) (*MessageList, error) {
	raw, err := l.rdb.LRange(ctx, l.messagesKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	msgs := make([]Message, 0, len(raw))
	for _, r := range raw {
		var m Message
		if err := json.Unmarshal([]byte(r), &m); err != nil {
			return nil, fmt.Errorf("decode message: %w", err)
		}
		msgs = append(msgs, m)
	}

	return &MessageList{
		Total:    len(msgs),
		New:      countNew(msgs),
		Messages: msgs,
	}, nil
}

func (l *Redis) Stats(ctx context.Context) (*Stats, error) {
	var msgs, pages *redis.IntCmd
	_, err := l.rdb.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		msgs = pipe.LLen(ctx, l.messagesKey)
		pages = pipe.HLen(ctx, l.pagesKey)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("ledger stats: %w", err)
	}
	return &Stats{
		Messages:  int(msgs.Val()),
		Analytics: int(pages.Val()),
	}, nil
}
