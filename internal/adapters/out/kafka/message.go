// Package kafka publishes stored domain events to a Kafka topic.
package kafka

import (
	"encoding/json"
	"fmt"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/ports"
)

// Codec turns domain events into payloads and back.
type Codec interface {
	Encode(e kernel.DomainEvent) ([]byte, error)
	Decode(eventType string, payload []byte) (kernel.DomainEvent, error)
}

// Message is the record value written to the events topic.
type Message struct {
	EventID    string          `json:"eventId"`
	EventType  string          `json:"eventType"`
	StreamID   string          `json:"streamId"`
	StreamType string          `json:"streamType"`
	Version    int             `json:"version"`
	Position   int64           `json:"position"`
	OccurredAt time.Time       `json:"occurredAt"`
	Payload    json.RawMessage `json:"payload"`
}

func EncodeEnvelope(codec Codec, envelope ports.Envelope) ([]byte, error) {
	payload, err := codec.Encode(envelope.Event)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Message{
		EventID:    envelope.EventID.String(),
		EventType:  envelope.EventType(),
		StreamID:   envelope.StreamID.String(),
		StreamType: envelope.StreamType,
		Version:    envelope.Version,
		Position:   envelope.Position,
		OccurredAt: envelope.OccurredAt,
		Payload:    payload,
	})
}

func DecodeEnvelope(codec Codec, value []byte) (ports.Envelope, error) {
	var msg Message
	if err := json.Unmarshal(value, &msg); err != nil {
		return ports.Envelope{}, fmt.Errorf("decode message: %w", err)
	}

	e, err := codec.Decode(msg.EventType, msg.Payload)
	if err != nil {
		return ports.Envelope{}, err
	}
	eventID, err := kernel.UUIDFromString(msg.EventID)
	if err != nil {
		return ports.Envelope{}, err
	}
	streamID, err := kernel.UUIDFromString(msg.StreamID)
	if err != nil {
		return ports.Envelope{}, err
	}

	return ports.Envelope{
		EventID:    eventID,
		Position:   msg.Position,
		StreamID:   streamID,
		StreamType: msg.StreamType,
		Version:    msg.Version,
		OccurredAt: msg.OccurredAt,
		Event:      e,
	}, nil
}
