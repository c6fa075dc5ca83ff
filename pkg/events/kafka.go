package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/rd1855/portfolio_backend/config"
)

// KafkaSink writes every event to a single topic, keyed by subject.
type KafkaSink struct {
	writer *kafka.Writer
}

func NewKafkaSink(cfg config.KafkaConfig) (*KafkaSink, error) {
	if len(cfg.Brokers) == 0 || cfg.Topic == "" {
		return nil, errors.New("kafka sink configuration incomplete: both brokers and topic are required")
	}

	batchSize := cfg.BatchSize
	if batchSize == 0 {
		batchSize = 100
	}

	batchTimeout := time.Duration(cfg.BatchTimeoutMs) * time.Millisecond
	if batchTimeout == 0 {
		batchTimeout = 100 * time.Millisecond
	}

	writeTimeout := time.Duration(cfg.WriteTimeoutSeconds) * time.Second
	if writeTimeout == 0 {
		writeTimeout = 5 * time.Second
	}

	var acks kafka.RequiredAcks
	switch cfg.RequiredAcks {
	case "none":
		acks = kafka.RequireNone
	case "all":
		acks = kafka.RequireAll
	default:
		acks = kafka.RequireOne
	}

	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		BatchSize:    batchSize,
		BatchTimeout: batchTimeout,
		WriteTimeout: writeTimeout,
		RequiredAcks: acks,
		// page views must never wait on the broker
		Async: true,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				slog.Warn("kafka sink: write failed", "count", len(messages), "err", err)
			}
		},
	}

	return &KafkaSink{writer: w}, nil
}

func (s *KafkaSink) Write(ctx context.Context, evt Event) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	return s.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(evt.Subject),
		Value: data,
		Time:  evt.OccurredAt,
	})
}

func (s *KafkaSink) Close() error {
	return s.writer.Close()
}

// Sink receives a copy of every published event.
type Sink interface {
	Write(ctx context.Context, evt Event) error
	Close() error
}

// Tee publishes on the wrapped bus and mirrors each event to a sink.
// A sink failure is logged; delivery to subscribers still counts as success.
type Tee struct {
	Bus
	sink Sink
}

func NewTee(bus Bus, sink Sink) *Tee {
	return &Tee{Bus: bus, sink: sink}
}

func (t *Tee) Publish(ctx context.Context, subject string, payload any) error {
	evt, err := NewEvent(subject, payload)
	if err != nil {
		return err
	}
	return t.PublishEvent(ctx, evt)
}

func (t *Tee) PublishEvent(ctx context.Context, evt Event) error {
	if err := t.Bus.PublishEvent(ctx, evt); err != nil {
		return err
	}
	if err := t.sink.Write(ctx, evt); err != nil {
		slog.Warn("events: sink write failed", "subject", evt.Subject, "err", err)
	}
	return nil
}

func (t *Tee) Close() error {
	return errors.Join(t.Bus.Close(), wrapClose("sink", t.sink.Close()))
}

func wrapClose(what string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("close %s: %w", what, err)
}
