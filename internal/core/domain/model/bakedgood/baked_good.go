package bakedgood

import (
	"errors"
	"fmt"
	"strings"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
)

const (
	RatingMin = 1
	RatingMax = 5

	// VisibilityRadiusKm limits the catalog shown for a chosen location.
	VisibilityRadiusKm = 100.0
)

var (
	ErrBakedGoodIsNotConstructed = errors.New("BakedGood must be created via Publish or Restore")
	ErrNameIsRequired            = errs.NewValueIsRequiredError("name")
)

// Review is a customer rating of a baked good.
type Review struct {
	ID       kernel.UUID
	AuthorID kernel.UUID
	Rating   int
	Content  string
}

// BakedGood is the catalog aggregate. It has no cross-aggregate effects.
type BakedGood struct {
	kernel.BaseAggregate

	name        string
	description string
	price       kernel.Money
	stock       int
	location    kernel.GeoLocation
	reviews     []Review
}

// Publish lists a new baked good at the baker's location.
func Publish(
	id kernel.UUID,
	name string,
	description string,
	price kernel.Money,
	initialStock int,
	location kernel.GeoLocation,
) (*BakedGood, error) {
	var nameErr error
	if strings.TrimSpace(name) == "" {
		nameErr = ErrNameIsRequired
	}
	var stockErr error
	if initialStock < 0 {
		stockErr = errs.NewValueIsInvalidErrorWithCause("initial stock is invalid",
			fmt.Errorf("Initial stock must be >= 0, got %d", initialStock))
	}
	var priceErr error
	if price < 0 {
		priceErr = errs.NewValueIsInvalidErrorWithCause("price is invalid",
			fmt.Errorf("Price must be non-negative, got %d", price.Cents()))
	}

	if err := errors.Join(id.Validate(), nameErr, stockErr, priceErr, location.Validate()); err != nil {
		return nil, err
	}

	g := &BakedGood{BaseAggregate: kernel.NewBaseAggregate(id)}
	g.Raise(BakedGoodPublished{
		BakedGoodsID: id,
		Name:         name,
		Description:  description,
		Price:        price,
		InitialStock: initialStock,
		Lat:          location.Lat(),
		Lon:          location.Lon(),
	}, g.apply)
	return g, nil
}

func Restore(id kernel.UUID, history []kernel.DomainEvent) (*BakedGood, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if len(history) == 0 {
		return nil, ErrBakedGoodIsNotConstructed
	}

	g := &BakedGood{BaseAggregate: kernel.NewBaseAggregate(id)}
	g.Replay(history, g.apply)
	return g, nil
}

func (g *BakedGood) Validate() error {
	if g == nil || g.ID().IsZero() {
		return ErrBakedGoodIsNotConstructed
	}
	return nil
}

func (g *BakedGood) Name() string {
	return g.name
}

func (g *BakedGood) Description() string {
	return g.description
}

func (g *BakedGood) Price() kernel.Money {
	return g.price
}

func (g *BakedGood) Stock() int {
	return g.stock
}

func (g *BakedGood) Location() kernel.GeoLocation {
	return g.location
}

func (g *BakedGood) Reviews() []Review {
	out := make([]Review, len(g.reviews))
	copy(out, g.reviews)
	return out
}

// AverageRating is 0 when there are no reviews.
func (g *BakedGood) AverageRating() float64 {
	if len(g.reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range g.reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(g.reviews))
}

func (g *BakedGood) Restock(amount int) error {
	if err := g.Validate(); err != nil {
		return err
	}
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("restock amount is invalid",
			fmt.Errorf("Restock amount must be > 0, got %d", amount))
	}

	g.Raise(BakedGoodRestocked{
		BakedGoodsID: g.ID(),
		Amount:       amount,
		NewStock:     g.stock + amount,
	}, g.apply)
	return nil
}

func (g *BakedGood) AddReview(reviewID kernel.UUID, authorID kernel.UUID, rating int, content string) error {
	if err := errors.Join(g.Validate(), reviewID.Validate(), authorID.Validate()); err != nil {
		return err
	}
	if rating < RatingMin || rating > RatingMax {
		return errs.NewValueIsOutOfRangeErrorWithCause("rating", rating, RatingMin, RatingMax,
			errors.New("Rating must be between 1 and 5"))
	}

	g.Raise(ReviewAdded{
		BakedGoodsID: g.ID(),
		ReviewID:     reviewID,
		AuthorID:     authorID,
		Rating:       rating,
		Content:      content,
	}, g.apply)
	return nil
}

func (g *BakedGood) UpdatePrice(newPrice kernel.Money) error {
	if err := g.Validate(); err != nil {
		return err
	}
	if newPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid",
			fmt.Errorf("Price must be non-negative, got %d", newPrice.Cents()))
	}
	if newPrice == g.price {
		return nil
	}

	g.Raise(PriceUpdated{
		BakedGoodsID: g.ID(),
		OldPrice:     g.price,
		NewPrice:     newPrice,
	}, g.apply)
	return nil
}

func (g *BakedGood) apply(e kernel.DomainEvent) {
	switch ev := e.(type) {
	case BakedGoodPublished:
		g.name = ev.Name
		g.description = ev.Description
		g.price = ev.Price
		g.stock = ev.InitialStock
		if loc, err := kernel.NewGeoLocation(ev.Lat, ev.Lon); err == nil {
			g.location = loc
		}
	case BakedGoodRestocked:
		g.stock = ev.NewStock
	case ReviewAdded:
		g.reviews = append(g.reviews, Review{
			ID:       ev.ReviewID,
			AuthorID: ev.AuthorID,
			Rating:   ev.Rating,
			Content:  ev.Content,
		})
	case PriceUpdated:
		g.price = ev.NewPrice
	}
}
