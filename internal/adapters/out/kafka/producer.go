package kafka

import (
	"context"
	"log/slog"

	"bakery/internal/core/ports"

	kafkaGo "github.com/segmentio/kafka-go"
)

// Producer writes envelopes to the events topic keyed by stream id, so the events
// of one aggregate instance land on one partition in order.
type Producer struct {
	writer *kafkaGo.Writer
	codec  Codec
	logger *slog.Logger
}

var _ ports.EventPublisher = (*Producer)(nil)

func NewProducer(brokers []string, topic string, codec Codec, logger *slog.Logger) *Producer {
	return &Producer{
		writer: &kafkaGo.Writer{
			Addr:                   kafkaGo.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafkaGo.Hash{},
			RequiredAcks:           kafkaGo.RequireAll,
			AllowAutoTopicCreation: true,
		},
		codec:  codec,
		logger: logger.With("component", "kafka_producer", "topic", topic),
	}
}

// Publish writes the whole batch in one call. A failed batch is retried by the
// relay, so consumers must tolerate duplicates.
func (p *Producer) Publish(ctx context.Context, envelopes ...ports.Envelope) error {
	if len(envelopes) == 0 {
		return nil
	}

	messages := make([]kafkaGo.Message, 0, len(envelopes))
	for _, envelope := range envelopes {
		value, err := EncodeEnvelope(p.codec, envelope)
		if err != nil {
			return err
		}
		messages = append(messages, kafkaGo.Message{
			Key:   []byte(envelope.StreamID.String()),
			Value: value,
			Headers: []kafkaGo.Header{
				{Key: "event_type", Value: []byte(envelope.EventType())},
				{Key: "stream_type", Value: []byte(envelope.StreamType)},
			},
		})
	}

	if err := p.writer.WriteMessages(ctx, messages...); err != nil {
		p.logger.ErrorContext(ctx, "Failed to write events", "count", len(messages), "error", err)
		return err
	}

	p.logger.DebugContext(ctx, "Events written", "count", len(messages))
	return nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
