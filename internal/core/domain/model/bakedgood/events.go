package bakedgood

import "bakery/internal/core/domain/model/kernel"

const StreamType = "BakedGood"

const (
	EventBakedGoodPublished = "BakedGoodPublished"
	EventBakedGoodRestocked = "BakedGoodRestocked"
	EventReviewAdded        = "ReviewAdded"
	EventPriceUpdated       = "PriceUpdated"
)

type BakedGoodPublished struct {
	BakedGoodsID kernel.UUID  `json:"bakedGoodsId"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Price        kernel.Money `json:"price"`
	InitialStock int          `json:"initialStock"`
	Lat          float64      `json:"lat"`
	Lon          float64      `json:"lon"`
}

func (BakedGoodPublished) EventType() string { return EventBakedGoodPublished }

type BakedGoodRestocked struct {
	BakedGoodsID kernel.UUID `json:"bakedGoodsId"`
	Amount       int         `json:"amount"`
	NewStock     int         `json:"newStock"`
}

func (BakedGoodRestocked) EventType() string { return EventBakedGoodRestocked }

type ReviewAdded struct {
	BakedGoodsID kernel.UUID `json:"bakedGoodsId"`
	ReviewID     kernel.UUID `json:"reviewId"`
	AuthorID     kernel.UUID `json:"authorId"`
	Rating       int         `json:"rating"`
	Content      string      `json:"content"`
}

func (ReviewAdded) EventType() string { return EventReviewAdded }

type PriceUpdated struct {
	BakedGoodsID kernel.UUID  `json:"bakedGoodsId"`
	OldPrice     kernel.Money `json:"oldPrice"`
	NewPrice     kernel.Money `json:"newPrice"`
}

func (PriceUpdated) EventType() string { return EventPriceUpdated }

func Events() []kernel.DomainEvent {
	return []kernel.DomainEvent{
		BakedGoodPublished{},
		BakedGoodRestocked{},
		ReviewAdded{},
		PriceUpdated{},
	}
}
