// Package events publishes headline changes and engagement records to the
// message brokers.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/nats-io/nats.go"

	"slot-engine/internal/core/domain"
	"slot-engine/internal/metrics"
)

type publisher interface {
	Publish(subject string, data []byte) error
}

// HeadlineNotifier implements port.HeadlineNotifier over NATS. Changes of
// area N go to "<subject>.N" so caches can subscribe per area.
type HeadlineNotifier struct {
	conn    publisher
	subject string
	close   func()
}

// NewHeadlineNotifier connects to the NATS server at url.
func NewHeadlineNotifier(url, subject string) (*HeadlineNotifier, error) {
	nc, err := nats.Connect(url,
		nats.Name("slot-engine"),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to nats: %w", err)
	}
	return &HeadlineNotifier{conn: nc, subject: subject, close: nc.Close}, nil
}

func (n *HeadlineNotifier) NotifyHeadlineChanged(_ context.Context, change domain.HeadlineChange) error {
	data, err := json.Marshal(change)
	if err != nil {
		return err
	}
	subject := n.subject + "." + strconv.Itoa(int(change.Area))
	if err = n.conn.Publish(subject, data); err != nil {
		metrics.EventsPublished.WithLabelValues("nats", metrics.StatusError).Inc()
		return fmt.Errorf("publish %s: %w", subject, err)
	}
	metrics.EventsPublished.WithLabelValues("nats", metrics.StatusOK).Inc()
	return nil
}

// Close closes the connection.
func (n *HeadlineNotifier) Close() {
	if n.close != nil {
		n.close()
	}
}
