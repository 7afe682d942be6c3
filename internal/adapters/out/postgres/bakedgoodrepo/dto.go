// Package bakedgoodrepo stores catalog entries as event streams and keeps the
// catalog projection with its reviews.
package bakedgoodrepo

import (
	"bakery/internal/core/domain/model/bakedgood"

	"github.com/google/uuid"
)

type BakedGoodDTO struct {
	ID            uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Name          string      `gorm:"type:varchar(255);not null"`
	Description   string      `gorm:"type:text;not null"`
	Price         int64       `gorm:"not null"`
	Stock         int         `gorm:"not null"`
	Lat           float64     `gorm:"not null"`
	Lon           float64     `gorm:"not null"`
	AverageRating float64     `gorm:"not null"`
	ReviewCount   int         `gorm:"not null"`
	Reviews       []ReviewDTO `gorm:"foreignKey:BakedGoodsID;constraint:OnDelete:CASCADE"`
}

func (BakedGoodDTO) TableName() string {
	return "baked_goods"
}

type ReviewDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	BakedGoodsID uuid.UUID `gorm:"type:uuid;not null;index"`
	Position     int       `gorm:"not null"`
	AuthorID     uuid.UUID `gorm:"type:uuid;not null"`
	Rating       int       `gorm:"not null"`
	Content      string    `gorm:"type:text;not null"`
}

func (ReviewDTO) TableName() string {
	return "baked_good_reviews"
}

func fromDomain(g *bakedgood.BakedGood) BakedGoodDTO {
	reviews := make([]ReviewDTO, 0, len(g.Reviews()))
	for i, r := range g.Reviews() {
		reviews = append(reviews, ReviewDTO{
			ID:           r.ID.Bytes(),
			BakedGoodsID: g.ID().Bytes(),
			Position:     i,
			AuthorID:     r.AuthorID.Bytes(),
			Rating:       r.Rating,
			Content:      r.Content,
		})
	}

	return BakedGoodDTO{
		ID:            g.ID().Bytes(),
		Name:          g.Name(),
		Description:   g.Description(),
		Price:         g.Price().Cents(),
		Stock:         g.Stock(),
		Lat:           g.Location().Lat(),
		Lon:           g.Location().Lon(),
		AverageRating: g.AverageRating(),
		ReviewCount:   len(reviews),
		Reviews:       reviews,
	}
}
