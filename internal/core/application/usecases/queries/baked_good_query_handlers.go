package queries

import (
	"context"
	"sort"

	"bakery/internal/core/domain/model/bakedgood"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type bakedGoodRow struct {
	ID            uuid.UUID
	Name          string
	Description   string
	Price         int64
	Stock         int
	Lat           float64
	Lon           float64
	AverageRating float64
	ReviewCount   int
}

func (r bakedGoodRow) toResponse() (BakedGoodResponse, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return BakedGoodResponse{}, err
	}
	location, err := kernel.NewGeoLocation(r.Lat, r.Lon)
	if err != nil {
		return BakedGoodResponse{}, err
	}
	return BakedGoodResponse{
		ID:            id,
		Name:          r.Name,
		Description:   r.Description,
		Price:         kernel.Money(r.Price),
		Stock:         r.Stock,
		Location:      location,
		AverageRating: r.AverageRating,
		ReviewCount:   r.ReviewCount,
	}, nil
}

const selectBakedGoods = `
	SELECT
		id,
		name,
		description,
		price,
		stock,
		lat,
		lon,
		average_rating,
		review_count
	FROM baked_goods`

// ListBakedGoodsQueryHandler reads the catalog projection.
type ListBakedGoodsQueryHandler struct {
	db *gorm.DB
}

func NewListBakedGoodsQueryHandler(db *gorm.DB) ListBakedGoodsQueryHandler {
	return ListBakedGoodsQueryHandler{db: db}
}

func (h ListBakedGoodsQueryHandler) Handle(ctx context.Context, query ListBakedGoodsQuery) ([]BakedGoodResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var near *kernel.GeoLocation
	if locationID := query.LocationID(); locationID != nil {
		var chosen struct {
			Lat float64
			Lon float64
		}
		res := h.db.WithContext(ctx).
			Raw(`SELECT lat, lon FROM chosen_locations WHERE id = ?`, locationID.Bytes()).
			Scan(&chosen)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, errs.NewObjectNotFoundError("chosen location", *locationID)
		}
		point, err := kernel.NewGeoLocation(chosen.Lat, chosen.Lon)
		if err != nil {
			return nil, err
		}
		near = &point
	}

	var rows []bakedGoodRow
	if err := h.db.WithContext(ctx).Raw(selectBakedGoods + ` ORDER BY name, id`).Scan(&rows).Error; err != nil {
		return nil, err
	}

	goods := make([]BakedGoodResponse, 0, len(rows))
	for _, row := range rows {
		good, err := row.toResponse()
		if err != nil {
			return nil, err
		}
		if near != nil {
			distance := kernel.HaversineKm(near.Lat(), near.Lon(), row.Lat, row.Lon)
			if distance > bakedgood.VisibilityRadiusKm {
				continue
			}
			good.DistanceKm = &distance
		}
		goods = append(goods, good)
	}

	if near != nil {
		sort.SliceStable(goods, func(i, j int) bool {
			return *goods[i].DistanceKm < *goods[j].DistanceKm
		})
	}
	return goods, nil
}

// GetBakedGoodQueryHandler reads one catalog entry and its reviews.
type GetBakedGoodQueryHandler struct {
	db *gorm.DB
}

func NewGetBakedGoodQueryHandler(db *gorm.DB) GetBakedGoodQueryHandler {
	return GetBakedGoodQueryHandler{db: db}
}

func (h GetBakedGoodQueryHandler) Handle(ctx context.Context, query GetBakedGoodQuery) (BakedGoodDetailsResponse, error) {
	if err := query.Validate(); err != nil {
		return BakedGoodDetailsResponse{}, err
	}

	var row bakedGoodRow
	res := h.db.WithContext(ctx).Raw(selectBakedGoods+` WHERE id = ?`, query.BakedGoodsID().Bytes()).Scan(&row)
	if res.Error != nil {
		return BakedGoodDetailsResponse{}, res.Error
	}
	if res.RowsAffected == 0 {
		return BakedGoodDetailsResponse{}, errs.NewObjectNotFoundError("baked good", query.BakedGoodsID())
	}
	good, err := row.toResponse()
	if err != nil {
		return BakedGoodDetailsResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			author_id,
			rating,
			content
		FROM baked_good_reviews
		WHERE baked_goods_id = ?
		ORDER BY position
	`, query.BakedGoodsID().Bytes()).Rows()
	if err != nil {
		return BakedGoodDetailsResponse{}, err
	}
	defer rows.Close()

	details := BakedGoodDetailsResponse{BakedGoodResponse: good, Reviews: make([]ReviewResponse, 0)}
	for rows.Next() {
		var id, authorID uuid.UUID
		var review ReviewResponse
		if err = rows.Scan(&id, &authorID, &review.Rating, &review.Content); err != nil {
			return BakedGoodDetailsResponse{}, err
		}
		if review.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return BakedGoodDetailsResponse{}, err
		}
		if review.AuthorID, err = kernel.UUIDFromBytes(authorID[:]); err != nil {
			return BakedGoodDetailsResponse{}, err
		}
		details.Reviews = append(details.Reviews, review)
	}
	if err = rows.Err(); err != nil {
		return BakedGoodDetailsResponse{}, err
	}

	return details, nil
}
