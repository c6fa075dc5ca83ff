package events

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

var ErrClosed = errors.New("events: bus closed")

// Local is an in-process Bus. Each delivery runs in its own goroutine;
// Close waits for in-flight deliveries.
type Local struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	closed   bool
	wg       sync.WaitGroup
}

func NewLocal() *Local {
	return &Local{handlers: make(map[string][]Handler)}
}

func (b *Local) Publish(ctx context.Context, subject string, payload any) error {
	evt, err := NewEvent(subject, payload)
	if err != nil {
		return err
	}
	return b.PublishEvent(ctx, evt)
}

func (b *Local) PublishEvent(ctx context.Context, evt Event) error {
	subject := evt.Subject

	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return ErrClosed
	}

	// Handlers outlive the request that published the event.
	dctx := context.WithoutCancel(ctx)
	for _, h := range b.handlers[subject] {
		b.wg.Add(1)
		go func(h Handler) {
			defer b.wg.Done()
			defer func() {
				if r := recover(); r != nil {
					slog.Error("events: handler panicked", "subject", subject, "panic", r)
				}
			}()
			h(dctx, evt)
		}(h)
	}
	return nil
}

func (b *Local) Subscribe(subject string, h Handler) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrClosed
	}
	b.handlers[subject] = append(b.handlers[subject], h)
	return nil
}

func (b *Local) Close() error {
	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()

	b.wg.Wait()
	return nil
}
