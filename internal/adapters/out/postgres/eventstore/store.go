package eventstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/ports"
	"bakery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotifyChannel is the LISTEN/NOTIFY channel signalled on every append.
const NotifyChannel = "bakery_events"

// Store appends and loads event streams. Bound to a transaction it appends
// atomically with whatever else that transaction writes.
type Store struct {
	db       *gorm.DB
	registry *Registry
	now      func() time.Time
}

func NewStore(db *gorm.DB, registry *Registry) *Store {
	return &Store{db: db, registry: registry, now: time.Now}
}

// Load returns the stream in version order. An unknown stream is empty.
func (s *Store) Load(ctx context.Context, streamID kernel.UUID) ([]kernel.DomainEvent, error) {
	var dtos []EventDTO
	if err := s.db.WithContext(ctx).
		Where("stream_id = ?", streamID.Bytes()).
		Order("version").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	history := make([]kernel.DomainEvent, 0, len(dtos))
	for _, dto := range dtos {
		e, err := s.registry.Decode(dto.EventType, []byte(dto.Payload))
		if err != nil {
			return nil, err
		}
		history = append(history, e)
	}
	return history, nil
}

// Exists reports whether the stream holds at least one event of streamType.
func (s *Store) Exists(ctx context.Context, streamType string, streamID kernel.UUID) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&EventDTO{}).
		Where("stream_id = ? AND stream_type = ?", streamID.Bytes(), streamType).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Append stores the uncommitted changes of the aggregate after its current version.
// It returns errs.ErrVersionIsInvalid when the stream moved on since the aggregate
// was loaded.
func (s *Store) Append(ctx context.Context, streamType string, aggregate kernel.Aggregate) error {
	changes := aggregate.Changes()
	if len(changes) == 0 {
		return nil
	}

	db := s.db.WithContext(ctx)

	var current int
	if err := db.Model(&EventDTO{}).
		Select("COALESCE(MAX(version), 0)").
		Where("stream_id = ?", aggregate.ID().Bytes()).
		Scan(&current).Error; err != nil {
		return err
	}
	if current != aggregate.Version() {
		return errs.NewVersionIsInvalidError(
			streamType,
			fmt.Errorf("stream %s is at version %d, expected %d", aggregate.ID(), current, aggregate.Version()),
		)
	}

	recordedAt := s.now().UTC()
	dtos := make([]EventDTO, 0, len(changes))
	for i, e := range changes {
		payload, err := s.registry.Encode(e)
		if err != nil {
			return err
		}
		dtos = append(dtos, EventDTO{
			EventID:    uuid.New(),
			StreamID:   aggregate.ID().Bytes(),
			Version:    aggregate.Version() + i + 1,
			StreamType: streamType,
			EventType:  e.EventType(),
			Payload:    string(payload),
			RecordedAt: recordedAt,
		})
	}

	if err := db.Create(&dtos).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewVersionIsInvalidError(streamType, err)
		}
		return err
	}

	if db.Dialector.Name() == "postgres" {
		if err := db.Exec("SELECT pg_notify(?, ?)", NotifyChannel, streamType).Error; err != nil {
			return err
		}
	}
	return nil
}

// Outbox reads stored events that were not relayed yet.
type Outbox struct {
	db       *gorm.DB
	registry *Registry
	now      func() time.Time
}

var _ ports.Outbox = (*Outbox)(nil)

func NewOutbox(db *gorm.DB, registry *Registry) *Outbox {
	return &Outbox{db: db, registry: registry, now: time.Now}
}

func (o *Outbox) FetchUnpublished(ctx context.Context, limit int) ([]ports.Envelope, error) {
	var dtos []EventDTO
	if err := o.db.WithContext(ctx).
		Where("published_at IS NULL").
		Order("position").
		Limit(limit).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	envelopes := make([]ports.Envelope, 0, len(dtos))
	for _, dto := range dtos {
		envelope, err := toEnvelope(o.registry, dto)
		if err != nil {
			return nil, err
		}
		envelopes = append(envelopes, envelope)
	}
	return envelopes, nil
}

func (o *Outbox) MarkPublished(ctx context.Context, positions []int64) error {
	if len(positions) == 0 {
		return nil
	}
	return o.db.WithContext(ctx).Model(&EventDTO{}).
		Where("position IN ?", positions).
		Update("published_at", o.now().UTC()).Error
}

func toEnvelope(registry *Registry, dto EventDTO) (ports.Envelope, error) {
	e, err := registry.Decode(dto.EventType, []byte(dto.Payload))
	if err != nil {
		return ports.Envelope{}, err
	}
	eventID, err := kernel.UUIDFromBytes(dto.EventID[:])
	if err != nil {
		return ports.Envelope{}, err
	}
	streamID, err := kernel.UUIDFromBytes(dto.StreamID[:])
	if err != nil {
		return ports.Envelope{}, err
	}
	return ports.Envelope{
		EventID:    eventID,
		Position:   dto.Position,
		StreamID:   streamID,
		StreamType: dto.StreamType,
		Version:    dto.Version,
		OccurredAt: dto.RecordedAt.UTC(),
		Event:      e,
	}, nil
}
