// Package eventstore keeps every domain event in one append-only table. The table
// doubles as the transactional outbox: rows without published_at still have to be
// relayed to subscribers.
package eventstore

import (
	"time"

	"github.com/google/uuid"
)

// EventDTO is one stored event. Position orders events globally, Version orders
// them within their stream.
type EventDTO struct {
	Position    int64      `gorm:"primaryKey;autoIncrement"`
	EventID     uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	StreamID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_event_store_stream_version"`
	Version     int        `gorm:"not null;uniqueIndex:idx_event_store_stream_version"`
	StreamType  string     `gorm:"type:varchar(64);not null;index"`
	EventType   string     `gorm:"type:varchar(64);not null"`
	Payload     string     `gorm:"type:text;not null"`
	RecordedAt  time.Time  `gorm:"not null"`
	PublishedAt *time.Time `gorm:"index"`
}

func (EventDTO) TableName() string {
	return "event_store"
}
