package queries

import (
	"errors"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/guard"
)

var (
	ErrListBakedGoodsQueryIsNotConstructed = errors.New(
		"ListBakedGoodsQuery must be created via NewListBakedGoodsQuery constructor",
	)
	ErrGetBakedGoodQueryIsNotConstructed = errors.New(
		"GetBakedGoodQuery must be created via NewGetBakedGoodQuery constructor",
	)
)

// ListBakedGoodsQuery lists the catalog. When a chosen location is given, only baked
// goods within the visibility radius of that location are returned, nearest first.
type ListBakedGoodsQuery struct { //nolint:recvcheck //using for validation
	locationID *kernel.UUID

	guard guard.ConstructorGuard
}

func NewListBakedGoodsQuery() ListBakedGoodsQuery {
	return ListBakedGoodsQuery{guard: guard.NewConstructorGuard()}
}

func NewListVisibleBakedGoodsQuery(locationID kernel.UUID) (ListBakedGoodsQuery, error) {
	if err := locationID.Validate(); err != nil {
		return ListBakedGoodsQuery{}, err
	}
	return ListBakedGoodsQuery{locationID: &locationID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListBakedGoodsQuery) Validate() error {
	return q.guard.Validate(ErrListBakedGoodsQueryIsNotConstructed)
}

func (q ListBakedGoodsQuery) LocationID() *kernel.UUID {
	return q.locationID
}

// GetBakedGoodQuery reads one catalog entry with its reviews.
type GetBakedGoodQuery struct { //nolint:recvcheck //using for validation
	bakedGoodsID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetBakedGoodQuery(bakedGoodsID kernel.UUID) (GetBakedGoodQuery, error) {
	if err := bakedGoodsID.Validate(); err != nil {
		return GetBakedGoodQuery{}, err
	}
	return GetBakedGoodQuery{bakedGoodsID: bakedGoodsID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetBakedGoodQuery) Validate() error {
	return q.guard.Validate(ErrGetBakedGoodQueryIsNotConstructed)
}

func (q GetBakedGoodQuery) BakedGoodsID() kernel.UUID {
	return q.bakedGoodsID
}

type BakedGoodResponse struct {
	ID            kernel.UUID
	Name          string
	Description   string
	Price         kernel.Money
	Stock         int
	Location      kernel.GeoLocation
	AverageRating float64
	ReviewCount   int
	DistanceKm    *float64
}

type ReviewResponse struct {
	ID       kernel.UUID
	AuthorID kernel.UUID
	Rating   int
	Content  string
}

type BakedGoodDetailsResponse struct {
	BakedGoodResponse
	Reviews []ReviewResponse
}
