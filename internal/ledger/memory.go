package ledger

import (
	"context"
	"sync"
)

// Memory is the process-memory Ledger. One mutex covers the message list,
// the page counters and the visitor tally so concurrent handlers observe
// them changing together.
type Memory struct {
	mu            sync.RWMutex
	seq           *Sequence
	messages      []Message
	pageViews     map[string]int64
	totalVisitors int64
}

func NewMemory(seq *Sequence) *Memory {
	if seq == nil {
		seq = NewSequence(nil)
	}
	return &Memory{
		seq:       seq,
		pageViews: make(map[string]int64),
	}
}

func (l *Memory) RecordMessage(_ context.Context, m NewMessage) (*Message, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	// ids are taken under the ledger lock so list order matches id order.
	id, at := l.seq.Next()
	msg := build(m, id, at)
	l.messages = append(l.messages, msg)

	out := msg
	return &out, nil
}

func (l *Memory) RecordPageView(_ context.Context, page string) (*PageView, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.pageViews[page]++
	l.totalVisitors++

	return &PageView{
		Page:          page,
		Views:         l.pageViews[page],
		TotalVisitors: l.totalVisitors,
	}, nil
}

func (l *Memory) ListMessages(_ context.Context) (*MessageList, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	msgs := make([]Message, len(l.messages))
	copy(msgs, l.messages)

	return &MessageList{
		Total:    len(msgs),
		New:      countNew(msgs),
		Messages: msgs,
	}, nil
}

func (l *Memory) Stats(_ context.Context) (*Stats, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return &Stats{
		Messages:  len(l.messages),
		Analytics: len(l.pageViews),
	}, nil
}
