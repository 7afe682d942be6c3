package kernel

import (
	"fmt"

	"bakery/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID identifies aggregates, events and offers. The zero value is invalid.
// It marshals as text so it can sit directly in JSON event payloads:
//
//	type CartItemRemoved struct {
//	    CartID kernel.UUID `json:"cartId"`
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID returns a random (v4) identifier.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromString parses the canonical and the urn/braced forms accepted by
// uuid.Parse.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes rejects slices that are not 16 bytes long and the nil UUID.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}
	return newID, nil
}

func (u UUID) String() string {
	return u.id.String()
}

// Bytes exposes the underlying google/uuid value for gorm columns and the
// generated HTTP types.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}

func (u UUID) MarshalText() ([]byte, error) {
	return u.id.MarshalText()
}

// UnmarshalText leaves a zero UUID for empty input, so optional ids decode
// from "" without error.
func (u *UUID) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		u.id = uuid.Nil
		return nil
	}
	id, err := uuid.ParseBytes(data)
	if err != nil {
		return fmt.Errorf("invalid UUID format: %w", err)
	}
	u.id = id
	return nil
}

func (u UUID) IsZero() bool {
	return u.id == uuid.Nil
}
