package commands

import (
	"errors"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/guard"
)

var ErrPublishBakedGoodCommandIsNotConstructed = errors.New(
	"PublishBakedGoodCommand must be created via NewPublishBakedGoodCommand constructor",
)

// PublishBakedGoodCommand lists a new baked good in the catalog.
//
// Example:
//
//	cmd, err := NewPublishBakedGoodCommand(kernel.NewUUID(), "Rye bread", "Sourdough", 350, 10, bakery)
//	if err != nil {
//	    return fmt.Errorf("invalid baked good: %w", err)
//	}
type PublishBakedGoodCommand struct { //nolint:recvcheck //using for validation
	bakedGoodsID kernel.UUID
	name         string
	description  string
	price        kernel.Money
	initialStock int
	location     kernel.GeoLocation

	guard guard.ConstructorGuard
}

// NewPublishBakedGoodCommand validates the identifiers and location. Catalog rules on
// price, stock and name are enforced by the aggregate.
func NewPublishBakedGoodCommand(
	bakedGoodsID kernel.UUID,
	name string,
	description string,
	price kernel.Money,
	initialStock int,
	location kernel.GeoLocation,
) (PublishBakedGoodCommand, error) {
	if err := errors.Join(bakedGoodsID.Validate(), location.Validate()); err != nil {
		return PublishBakedGoodCommand{}, err
	}

	return PublishBakedGoodCommand{
		bakedGoodsID: bakedGoodsID,
		name:         name,
		description:  description,
		price:        price,
		initialStock: initialStock,
		location:     location,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c PublishBakedGoodCommand) Validate() error {
	return c.guard.Validate(ErrPublishBakedGoodCommandIsNotConstructed)
}

func (c PublishBakedGoodCommand) BakedGoodsID() kernel.UUID {
	return c.bakedGoodsID
}

func (c PublishBakedGoodCommand) Name() string {
	return c.name
}

func (c PublishBakedGoodCommand) Description() string {
	return c.description
}

func (c PublishBakedGoodCommand) Price() kernel.Money {
	return c.price
}

func (c PublishBakedGoodCommand) InitialStock() int {
	return c.initialStock
}

func (c PublishBakedGoodCommand) Location() kernel.GeoLocation {
	return c.location
}
