package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Defines values for OfferStatus.
const (
	OfferStatusACCEPTED  OfferStatus = "ACCEPTED"
	OfferStatusCANCELLED OfferStatus = "CANCELLED"
	OfferStatusPENDING   OfferStatus = "PENDING"
)

// BakedGood defines model for BakedGood.
type BakedGood struct {
	AverageRating float64            `json:"averageRating"`
	Description   string             `json:"description"`
	DistanceKm    *float64           `json:"distanceKm,omitempty"`
	Id            openapi_types.UUID `json:"id"`
	Location      Location           `json:"location"`
	Name          string             `json:"name"`

	// Price Price in cents
	Price       int64 `json:"price"`
	ReviewCount int   `json:"reviewCount"`
	Stock       int   `json:"stock"`
}

// BakedGoodDetails defines model for BakedGoodDetails.
type BakedGoodDetails struct {
	BakedGood BakedGood `json:"bakedGood"`
	Reviews   []Review  `json:"reviews"`
}

// BakerDrop defines model for BakerDrop.
type BakerDrop struct {
	Location Location `json:"location"`
	PhotoUrl string   `json:"photoUrl"`
}

// CancelRequest defines model for CancelRequest.
type CancelRequest struct {
	Reason string `json:"reason"`
}

// Cart defines model for Cart.
type Cart struct {
	Id    openapi_types.UUID `json:"id"`
	Items []CartItem         `json:"items"`
}

// CartItem defines model for CartItem.
type CartItem struct {
	BakedGoodsId openapi_types.UUID `json:"bakedGoodsId"`
	Quantity     int                `json:"quantity"`
}

// CheckoutRequest defines model for CheckoutRequest.
type CheckoutRequest struct {
	LocationId openapi_types.UUID `json:"locationId"`
}

// CheckoutResult defines model for CheckoutResult.
type CheckoutResult struct {
	OrderId openapi_types.UUID `json:"orderId"`
}

// Courier defines model for Courier.
type Courier struct {
	DistanceKm    *float64           `json:"distanceKm,omitempty"`
	Id            openapi_types.UUID `json:"id"`
	LastUpdatedAt time.Time          `json:"lastUpdatedAt"`
	Location      Location           `json:"location"`
}

// CourierDrop defines model for CourierDrop.
type CourierDrop struct {
	CourierId openapi_types.UUID `json:"courierId"`
	Location  Location           `json:"location"`
	PhotoUrl  string             `json:"photoUrl"`
}

// CourierRef defines model for CourierRef.
type CourierRef struct {
	CourierId openapi_types.UUID `json:"courierId"`
}

// Created defines model for Created.
type Created struct {
	Id openapi_types.UUID `json:"id"`
}

// Delivery defines model for Delivery.
type Delivery struct {
	BakerDrop     *Drop               `json:"bakerDrop,omitempty"`
	CourierDrop   *Drop               `json:"courierDrop,omitempty"`
	CourierId     *openapi_types.UUID `json:"courierId,omitempty"`
	Customer      Location            `json:"customer"`
	DeliveredAt   *time.Time          `json:"deliveredAt,omitempty"`
	Id            openapi_types.UUID  `json:"id"`
	OfferId       *openapi_types.UUID `json:"offerId,omitempty"`
	OrderId       openapi_types.UUID  `json:"orderId"`
	PickedUpAt    *time.Time          `json:"pickedUpAt,omitempty"`
	RetrievedAt   *time.Time          `json:"retrievedAt,omitempty"`
	Status        string              `json:"status"`
	TransactionId string              `json:"transactionId"`
}

// Drop defines model for Drop.
type Drop struct {
	DroppedAt time.Time `json:"droppedAt"`
	Location  Location  `json:"location"`
	PhotoUrl  string    `json:"photoUrl"`
}

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Location defines model for Location.
type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// NewBakedGood defines model for NewBakedGood.
type NewBakedGood struct {
	Description *string  `json:"description,omitempty"`
	Location    Location `json:"location"`
	Name        string   `json:"name"`
	Price       int64    `json:"price"`
	Stock       int      `json:"stock"`
}

// NewReview defines model for NewReview.
type NewReview struct {
	AuthorId openapi_types.UUID `json:"authorId"`
	Content  *string            `json:"content,omitempty"`
	Rating   int                `json:"rating"`
}

// Offer defines model for Offer.
type Offer struct {
	AcceptedAt          *time.Time         `json:"acceptedAt,omitempty"`
	ApproximateLocation Location           `json:"approximateLocation"`
	CancelReason        *string            `json:"cancelReason,omitempty"`
	CourierId           openapi_types.UUID `json:"courierId"`
	DeliveryId          openapi_types.UUID `json:"deliveryId"`
	DroppedAt           time.Time          `json:"droppedAt"`
	Id                  openapi_types.UUID `json:"id"`
	OfferedAt           time.Time          `json:"offeredAt"`
	OrderId             openapi_types.UUID `json:"orderId"`
	Status              OfferStatus        `json:"status"`
}

// OfferStatus defines model for OfferStatus.
type OfferStatus string

// Order defines model for Order.
type Order struct {
	CartId    openapi_types.UUID `json:"cartId"`
	CreatedAt time.Time          `json:"createdAt"`
	Customer  Location           `json:"customer"`
	Id        openapi_types.UUID `json:"id"`
	Items     []OrderItem        `json:"items"`
	Status    string             `json:"status"`
	Subtotal  int64              `json:"subtotal"`
}

// OrderItem defines model for OrderItem.
type OrderItem struct {
	BakedGoodsId openapi_types.UUID `json:"bakedGoodsId"`
	LineTotal    int64              `json:"lineTotal"`
	Name         string             `json:"name"`
	Quantity     int                `json:"quantity"`
	UnitPrice    int64              `json:"unitPrice"`
}

// PackageLocation defines model for PackageLocation.
type PackageLocation struct {
	DeliveryId      openapi_types.UUID `json:"deliveryId"`
	DistanceMeters  *float64           `json:"distanceMeters,omitempty"`
	DroppedAt       time.Time          `json:"droppedAt"`
	IsExactLocation bool               `json:"isExactLocation"`
	Location        Location           `json:"location"`
	OrderId         openapi_types.UUID `json:"orderId"`
	PhotoUrl        *string            `json:"photoUrl,omitempty"`
}

// PayRequest defines model for PayRequest.
type PayRequest struct {
	WalletAddress *string `json:"walletAddress,omitempty"`
}

// PayResult defines model for PayResult.
type PayResult struct {
	Status string `json:"status"`
}

// Payment defines model for Payment.
type Payment struct {
	CartId        openapi_types.UUID `json:"cartId"`
	Customer      Location           `json:"customer"`
	FailureReason *string            `json:"failureReason,omitempty"`
	Items         []PaymentItem      `json:"items"`
	OrderId       openapi_types.UUID `json:"orderId"`
	Status        string             `json:"status"`
	Total         int64              `json:"total"`
	TransactionId *string            `json:"transactionId,omitempty"`
	WalletAddress *string            `json:"walletAddress,omitempty"`
}

// PaymentItem defines model for PaymentItem.
type PaymentItem struct {
	BakedGoodsId openapi_types.UUID `json:"bakedGoodsId"`
	Price        int64              `json:"price"`
	Quantity     int                `json:"quantity"`
	TotalPrice   int64              `json:"totalPrice"`
}

// PriceUpdate defines model for PriceUpdate.
type PriceUpdate struct {
	Price int64 `json:"price"`
}

// Quantity defines model for Quantity.
type Quantity struct {
	Quantity int `json:"quantity"`
}

// QuantityDelta defines model for QuantityDelta.
type QuantityDelta struct {
	Delta int `json:"delta"`
}

// Restock defines model for Restock.
type Restock struct {
	Amount int `json:"amount"`
}

// Review defines model for Review.
type Review struct {
	AuthorId openapi_types.UUID `json:"authorId"`
	Content  string             `json:"content"`
	Id       openapi_types.UUID `json:"id"`
	Rating   int                `json:"rating"`
}

// BakedGoodsId defines model for BakedGoodsId.
type BakedGoodsId = openapi_types.UUID

// CartId defines model for CartId.
type CartId = openapi_types.UUID

// CourierId defines model for CourierId.
type CourierId = openapi_types.UUID

// DeliveryId defines model for DeliveryId.
type DeliveryId = openapi_types.UUID

// LocationId defines model for LocationId.
type LocationId = openapi_types.UUID

// OfferId defines model for OfferId.
type OfferId = openapi_types.UUID

// OrderId defines model for OrderId.
type OrderId = openapi_types.UUID

// ListBakedGoodsParams defines parameters for ListBakedGoods.
type ListBakedGoodsParams struct {
	LocationId *openapi_types.UUID `form:"locationId,omitempty" json:"locationId,omitempty"`
}

// ListAvailableCouriersParams defines parameters for ListAvailableCouriers.
type ListAvailableCouriersParams struct {
	Lat      *float64 `form:"lat,omitempty" json:"lat,omitempty"`
	Lon      *float64 `form:"lon,omitempty" json:"lon,omitempty"`
	RadiusKm *float64 `form:"radiusKm,omitempty" json:"radiusKm,omitempty"`
}

// ListOffersParams defines parameters for ListOffers.
type ListOffersParams struct {
	CourierId  *openapi_types.UUID `form:"courierId,omitempty" json:"courierId,omitempty"`
	DeliveryId *openapi_types.UUID `form:"deliveryId,omitempty" json:"deliveryId,omitempty"`
	Status     *OfferStatus        `form:"status,omitempty" json:"status,omitempty"`
}

// GetPackageLocationParams defines parameters for GetPackageLocation.
type GetPackageLocationParams struct {
	CourierId openapi_types.UUID `form:"courierId" json:"courierId"`
	Lat       float64            `form:"lat" json:"lat"`
	Lon       float64            `form:"lon" json:"lon"`
}

// PublishBakedGoodJSONRequestBody defines body for PublishBakedGood for application/json ContentType.
type PublishBakedGoodJSONRequestBody = NewBakedGood

// UpdateBakedGoodPriceJSONRequestBody defines body for UpdateBakedGoodPrice for application/json ContentType.
type UpdateBakedGoodPriceJSONRequestBody = PriceUpdate

// RestockBakedGoodJSONRequestBody defines body for RestockBakedGood for application/json ContentType.
type RestockBakedGoodJSONRequestBody = Restock

// AddReviewJSONRequestBody defines body for AddReview for application/json ContentType.
type AddReviewJSONRequestBody = NewReview

// AddCartItemJSONRequestBody defines body for AddCartItem for application/json ContentType.
type AddCartItemJSONRequestBody = CartItem

// AdjustCartItemQuantityJSONRequestBody defines body for AdjustCartItemQuantity for application/json ContentType.
type AdjustCartItemQuantityJSONRequestBody = QuantityDelta

// SetCartItemQuantityJSONRequestBody defines body for SetCartItemQuantity for application/json ContentType.
type SetCartItemQuantityJSONRequestBody = Quantity

// CheckoutJSONRequestBody defines body for Checkout for application/json ContentType.
type CheckoutJSONRequestBody = CheckoutRequest

// MarkCourierAvailableJSONRequestBody defines body for MarkCourierAvailable for application/json ContentType.
type MarkCourierAvailableJSONRequestBody = Location

// UpdateCourierLocationJSONRequestBody defines body for UpdateCourierLocation for application/json ContentType.
type UpdateCourierLocationJSONRequestBody = Location

// DropByBakerJSONRequestBody defines body for DropByBaker for application/json ContentType.
type DropByBakerJSONRequestBody = BakerDrop

// DropByCourierJSONRequestBody defines body for DropByCourier for application/json ContentType.
type DropByCourierJSONRequestBody = CourierDrop

// PickUpPackageJSONRequestBody defines body for PickUpPackage for application/json ContentType.
type PickUpPackageJSONRequestBody = CourierRef

// ChooseLocationJSONRequestBody defines body for ChooseLocation for application/json ContentType.
type ChooseLocationJSONRequestBody = Location

// AcceptOfferJSONRequestBody defines body for AcceptOffer for application/json ContentType.
type AcceptOfferJSONRequestBody = CourierRef

// CancelOfferJSONRequestBody defines body for CancelOffer for application/json ContentType.
type CancelOfferJSONRequestBody = CancelRequest

// PayJSONRequestBody defines body for Pay for application/json ContentType.
type PayJSONRequestBody = PayRequest
