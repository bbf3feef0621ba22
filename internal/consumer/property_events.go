// Package consumer subscribes to property change events published by the
// listing pipeline and invalidates the search cache when they arrive.
package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/streadway/amqp"
	"go.uber.org/zap"

	"github.com/dpletzke/LightBnB/internal/logging"
)

// Config selects the broker and queue. Disabled by default; the service runs
// fine without a broker, search results just go stale for a cache TTL after
// out-of-band property changes.
type Config struct {
	Enabled bool   `yaml:"enabled"`
	URL     string `yaml:"url"`
	Queue   string `yaml:"queue"`
}

// PropertyEvent mirrors the message shape published on the properties queue.
type PropertyEvent struct {
	Action     string `json:"action"`
	PropertyID string `json:"property_id"`
}

// Invalidator is the slice of the search cache the consumer needs.
type Invalidator interface {
	Invalidate(ctx context.Context) error
}

type Consumer struct {
	conn  *amqp.Connection
	ch    *amqp.Channel
	queue string
	inv   Invalidator
}

// New dials the broker and declares the durable queue.
func New(cfg Config, inv Invalidator) (*Consumer, error) {
	queue := cfg.Queue
	if queue == "" {
		queue = "properties_queue"
	}

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("dial amqp: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare queue %s: %w", queue, err)
	}
	if err := ch.Qos(1, 0, false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("set qos: %w", err)
	}
	return &Consumer{conn: conn, ch: ch, queue: queue, inv: inv}, nil
}

// Start consumes deliveries until ctx is canceled or the channel closes.
func (c *Consumer) Start(ctx context.Context) error {
	deliveries, err := c.ch.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume %s: %w", c.queue, err)
	}

	go func() {
		logging.Info(ctx, "property events consumer started", zap.String("queue", c.queue))
		for {
			select {
			case <-ctx.Done():
				return
			case d, ok := <-deliveries:
				if !ok {
					logging.Warn(ctx, "property events channel closed")
					return
				}
				if err := c.handle(ctx, d.Body); err != nil {
					logging.Warn(ctx, "property event rejected", zap.Error(err))
					_ = d.Nack(false, false)
					continue
				}
				_ = d.Ack(false)
			}
		}
	}()
	return nil
}

// handle decodes one event and invalidates the search cache.
func (c *Consumer) handle(ctx context.Context, body []byte) error {
	var ev PropertyEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("decode property event: %w", err)
	}
	if err := c.inv.Invalidate(ctx); err != nil {
		return err
	}
	logging.Debug(ctx, "search cache invalidated by event",
		zap.String("action", ev.Action),
		zap.String("property_id", ev.PropertyID),
	)
	return nil
}

// Close releases the channel and connection.
func (c *Consumer) Close() error {
	if c == nil {
		return nil
	}
	if c.ch != nil {
		_ = c.ch.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
