package cart

import "bakery/internal/core/domain/model/kernel"

const StreamType = "ShoppingCart"

const (
	EventShoppingCartCreated       = "ShoppingCartCreated"
	EventCartItemQuantityIncreased = "CartItemQuantityIncreased"
	EventCartItemQuantityDecreased = "CartItemQuantityDecreased"
	EventCartItemQuantitySet       = "CartItemQuantitySet"
	EventCartItemRemoved           = "CartItemRemoved"
	EventOrderCreatedFromCart      = "OrderCreatedFromCart"
	EventShoppingCartDeleted       = "ShoppingCartDeleted"
)

type ShoppingCartCreated struct {
	CartID kernel.UUID `json:"cartId"`
}

func (ShoppingCartCreated) EventType() string { return EventShoppingCartCreated }

type CartItemQuantityIncreased struct {
	CartID       kernel.UUID `json:"cartId"`
	BakedGoodsID kernel.UUID `json:"bakedGoodsId"`
	Delta        int         `json:"delta"`
	NewQuantity  int         `json:"newQuantity"`
}

func (CartItemQuantityIncreased) EventType() string { return EventCartItemQuantityIncreased }

// CartItemQuantityDecreased with NewQuantity 0 keeps the line until a
// CartItemRemoved follows.
type CartItemQuantityDecreased struct {
	CartID       kernel.UUID `json:"cartId"`
	BakedGoodsID kernel.UUID `json:"bakedGoodsId"`
	Delta        int         `json:"delta"`
	NewQuantity  int         `json:"newQuantity"`
}

func (CartItemQuantityDecreased) EventType() string { return EventCartItemQuantityDecreased }

type CartItemQuantitySet struct {
	CartID       kernel.UUID `json:"cartId"`
	BakedGoodsID kernel.UUID `json:"bakedGoodsId"`
	Quantity     int         `json:"quantity"`
}

func (CartItemQuantitySet) EventType() string { return EventCartItemQuantitySet }

type CartItemRemoved struct {
	CartID       kernel.UUID `json:"cartId"`
	BakedGoodsID kernel.UUID `json:"bakedGoodsId"`
}

func (CartItemRemoved) EventType() string { return EventCartItemRemoved }

// OrderLine is a priced cart line frozen at checkout.
type OrderLine struct {
	BakedGoodsID kernel.UUID  `json:"bakedGoodsId"`
	Quantity     int          `json:"quantity"`
	Price        kernel.Money `json:"price"`
	TotalPrice   kernel.Money `json:"totalPrice"`
}

type OrderCreatedFromCart struct {
	OrderID     kernel.UUID `json:"orderId"`
	CartID      kernel.UUID `json:"cartId"`
	Items       []OrderLine `json:"items"`
	CustomerLat float64     `json:"customerLat"`
	CustomerLon float64     `json:"customerLon"`
}

func (OrderCreatedFromCart) EventType() string { return EventOrderCreatedFromCart }

func (e OrderCreatedFromCart) ItemCount() int {
	n := 0
	for _, l := range e.Items {
		n += l.Quantity
	}
	return n
}

type ShoppingCartDeleted struct {
	CartID kernel.UUID `json:"cartId"`
}

func (ShoppingCartDeleted) EventType() string { return EventShoppingCartDeleted }

// Events lists a zero value of every event the cart raises.
func Events() []kernel.DomainEvent {
	return []kernel.DomainEvent{
		ShoppingCartCreated{},
		CartItemQuantityIncreased{},
		CartItemQuantityDecreased{},
		CartItemQuantitySet{},
		CartItemRemoved{},
		OrderCreatedFromCart{},
		ShoppingCartDeleted{},
	}
}
