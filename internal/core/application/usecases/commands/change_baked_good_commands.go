package commands

import (
	"errors"
	"fmt"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

var (
	ErrRestockBakedGoodCommandIsNotConstructed = errors.New(
		"RestockBakedGoodCommand must be created via NewRestockBakedGoodCommand constructor",
	)
	ErrAddReviewCommandIsNotConstructed = errors.New(
		"AddReviewCommand must be created via NewAddReviewCommand constructor",
	)
	ErrUpdatePriceCommandIsNotConstructed = errors.New(
		"UpdatePriceCommand must be created via NewUpdatePriceCommand constructor",
	)
)

// RestockBakedGoodCommand adds amount units to the stock of a baked good.
type RestockBakedGoodCommand struct { //nolint:recvcheck //using for validation
	bakedGoodsID kernel.UUID
	amount       int

	guard guard.ConstructorGuard
}

func NewRestockBakedGoodCommand(bakedGoodsID kernel.UUID, amount int) (RestockBakedGoodCommand, error) {
	var amountErr error
	if amount <= 0 {
		amountErr = errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("Restock amount must be positive, got %d", amount))
	}
	if err := errors.Join(bakedGoodsID.Validate(), amountErr); err != nil {
		return RestockBakedGoodCommand{}, err
	}

	return RestockBakedGoodCommand{
		bakedGoodsID: bakedGoodsID,
		amount:       amount,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c RestockBakedGoodCommand) Validate() error {
	return c.guard.Validate(ErrRestockBakedGoodCommandIsNotConstructed)
}

func (c RestockBakedGoodCommand) BakedGoodsID() kernel.UUID {
	return c.bakedGoodsID
}

func (c RestockBakedGoodCommand) Amount() int {
	return c.amount
}

// AddReviewCommand attaches a rated review to a baked good.
type AddReviewCommand struct { //nolint:recvcheck //using for validation
	bakedGoodsID kernel.UUID
	reviewID     kernel.UUID
	authorID     kernel.UUID
	rating       int
	content      string

	guard guard.ConstructorGuard
}

// NewAddReviewCommand checks identifiers only. The 1..5 rating range belongs to the
// aggregate.
func NewAddReviewCommand(
	bakedGoodsID kernel.UUID,
	reviewID kernel.UUID,
	authorID kernel.UUID,
	rating int,
	content string,
) (AddReviewCommand, error) {
	if err := errors.Join(bakedGoodsID.Validate(), reviewID.Validate(), authorID.Validate()); err != nil {
		return AddReviewCommand{}, err
	}

	return AddReviewCommand{
		bakedGoodsID: bakedGoodsID,
		reviewID:     reviewID,
		authorID:     authorID,
		rating:       rating,
		content:      content,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c AddReviewCommand) Validate() error {
	return c.guard.Validate(ErrAddReviewCommandIsNotConstructed)
}

func (c AddReviewCommand) BakedGoodsID() kernel.UUID {
	return c.bakedGoodsID
}

func (c AddReviewCommand) ReviewID() kernel.UUID {
	return c.reviewID
}

func (c AddReviewCommand) AuthorID() kernel.UUID {
	return c.authorID
}

func (c AddReviewCommand) Rating() int {
	return c.rating
}

func (c AddReviewCommand) Content() string {
	return c.content
}

// UpdatePriceCommand sets a new unit price.
type UpdatePriceCommand struct { //nolint:recvcheck //using for validation
	bakedGoodsID kernel.UUID
	price        kernel.Money

	guard guard.ConstructorGuard
}

func NewUpdatePriceCommand(bakedGoodsID kernel.UUID, price kernel.Money) (UpdatePriceCommand, error) {
	if err := errors.Join(bakedGoodsID.Validate(), price.Validate()); err != nil {
		return UpdatePriceCommand{}, err
	}

	return UpdatePriceCommand{
		bakedGoodsID: bakedGoodsID,
		price:        price,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c UpdatePriceCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePriceCommandIsNotConstructed)
}

func (c UpdatePriceCommand) BakedGoodsID() kernel.UUID {
	return c.bakedGoodsID
}

func (c UpdatePriceCommand) Price() kernel.Money {
	return c.price
}
