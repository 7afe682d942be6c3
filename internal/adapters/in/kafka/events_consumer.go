// Package kafka consumes the events topic and hands every event to the policies
// registered in this process.
package kafka

import (
	"context"
	"errors"
	"log/slog"
	"time"

	outkafka "bakery/internal/adapters/out/kafka"
	"bakery/internal/core/ports"

	kafkaGo "github.com/segmentio/kafka-go"
)

const (
	maxAttempts    = 3
	initialBackoff = 200 * time.Millisecond
)

// EventsConsumer reads the events topic as one consumer group. Offsets are committed
// after the local dispatch returned, so a crash redelivers the message.
type EventsConsumer struct {
	reader     *kafkaGo.Reader
	codec      outkafka.Codec
	dispatcher ports.EventPublisher
	logger     *slog.Logger
}

func NewEventsConsumer(
	brokers []string,
	topic string,
	groupID string,
	codec outkafka.Codec,
	dispatcher ports.EventPublisher,
	logger *slog.Logger,
) *EventsConsumer {
	return &EventsConsumer{
		reader: kafkaGo.NewReader(kafkaGo.ReaderConfig{
			Brokers: brokers,
			Topic:   topic,
			GroupID: groupID,
		}),
		codec:      codec,
		dispatcher: dispatcher,
		logger:     logger.With("component", "kafka_events_consumer", "topic", topic),
	}
}

// Consume blocks until ctx is cancelled.
func (c *EventsConsumer) Consume(ctx context.Context) {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				c.logger.Info("Consumer shutting down")
				return
			}
			c.logger.ErrorContext(ctx, "Error reading message", "error", err)
			continue
		}

		c.handle(ctx, msg)

		if err = c.reader.CommitMessages(ctx, msg); err != nil && ctx.Err() == nil {
			c.logger.ErrorContext(ctx, "Failed to commit offset", "offset", msg.Offset, "error", err)
		}
	}
}

func (c *EventsConsumer) handle(ctx context.Context, msg kafkaGo.Message) {
	envelope, err := outkafka.DecodeEnvelope(c.codec, msg.Value)
	if err != nil {
		c.logger.ErrorContext(ctx, "Skipping undecodable message",
			"partition", msg.Partition, "offset", msg.Offset, "error", err)
		return
	}

	backoff := initialBackoff
	for attempt := 1; ; attempt++ {
		err = c.dispatcher.Publish(ctx, envelope)
		if err == nil {
			return
		}
		if attempt == maxAttempts {
			break
		}
		c.logger.WarnContext(ctx, "Error handling event, retrying",
			"eventType", envelope.EventType(), "attempt", attempt, "error", err)
		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
			backoff *= 2
		}
	}

	c.logger.ErrorContext(ctx, "Giving up on event",
		"eventType", envelope.EventType(), "eventId", envelope.EventID.String(), "attempts", maxAttempts, "error", err)
}

func (c *EventsConsumer) Close() error {
	return c.reader.Close()
}
