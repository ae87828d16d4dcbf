package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"slot-engine/internal/core/domain"
	"slot-engine/internal/metrics"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// EngagementSink implements port.EngagementSink over Kafka. Messages are
// keyed by unit so every counter's events stay in one partition. The
// writer is asynchronous: PublishEngagement only enqueues, and delivery
// results arrive in delivered.
type EngagementSink struct {
	writer messageWriter
	logger *slog.Logger
}

// NewEngagementSink builds an async writer for topic on brokers. Close
// flushes whatever is still queued.
func NewEngagementSink(brokers []string, topic string, batchTimeout time.Duration, logger *slog.Logger) *EngagementSink {
	s := &EngagementSink{logger: logger}
	s.writer = &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: batchTimeout,
		RequiredAcks: kafka.RequireOne,
		Async:        true,
		Completion:   s.delivered,
	}
	return s
}

// delivered records the outcome of one written batch.
func (s *EngagementSink) delivered(msgs []kafka.Message, err error) {
	if err != nil {
		metrics.EventsPublished.WithLabelValues("kafka", metrics.StatusError).Add(float64(len(msgs)))
		s.logger.Warn("engagement batch not delivered",
			slog.Int("messages", len(msgs)),
			slog.Any("error", err))
		return
	}
	metrics.EventsPublished.WithLabelValues("kafka", metrics.StatusOK).Add(float64(len(msgs)))
}

func (s *EngagementSink) PublishEngagement(ctx context.Context, e domain.Engagement) error {
	value, err := json.Marshal(e)
	if err != nil {
		return err
	}
	msg := kafka.Message{
		Key:   []byte(e.Unit.String()),
		Value: value,
		Time:  e.Timestamp,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(e.Type)},
		},
	}
	if err = s.writer.WriteMessages(ctx, msg); err != nil {
		metrics.EventsPublished.WithLabelValues("kafka", metrics.StatusError).Inc()
		return fmt.Errorf("write engagement %s: %w", e.ID, err)
	}
	return nil
}

func (s *EngagementSink) Close() error {
	return s.writer.Close()
}
