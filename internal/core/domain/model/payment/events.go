package payment

import "bakery/internal/core/domain/model/kernel"

const StreamType = "Payment"

const (
	EventPaymentCreated    = "PaymentCreated"
	EventPaymentProcessing = "PaymentProcessing"
	EventPaymentSucceeded  = "PaymentSucceeded"
	EventPaymentFailed     = "PaymentFailed"
	EventPaymentMarkedPaid = "PaymentMarkedPaid"
	EventFundsReleased     = "FundsReleased"
)

type PaymentCreated struct {
	OrderID     kernel.UUID `json:"orderId"`
	CartID      kernel.UUID `json:"cartId"`
	Items       []Item      `json:"items"`
	CustomerLat float64     `json:"customerLat"`
	CustomerLon float64     `json:"customerLon"`
}

func (PaymentCreated) EventType() string { return EventPaymentCreated }

type PaymentProcessing struct {
	OrderID       kernel.UUID `json:"orderId"`
	WalletAddress string      `json:"walletAddress,omitempty"`
}

func (PaymentProcessing) EventType() string { return EventPaymentProcessing }

// PaymentSucceeded records the gateway approval. The payment stays Processing until
// it is marked paid.
type PaymentSucceeded struct {
	OrderID       kernel.UUID `json:"orderId"`
	TransactionID string      `json:"transactionId"`
}

func (PaymentSucceeded) EventType() string { return EventPaymentSucceeded }

type PaymentFailed struct {
	OrderID kernel.UUID `json:"orderId"`
	Reason  string      `json:"reason"`
}

func (PaymentFailed) EventType() string { return EventPaymentFailed }

type PaymentMarkedPaid struct {
	OrderID       kernel.UUID `json:"orderId"`
	CartID        kernel.UUID `json:"cartId"`
	TransactionID string      `json:"transactionId"`
	CustomerLat   float64     `json:"customerLat"`
	CustomerLon   float64     `json:"customerLon"`
}

func (PaymentMarkedPaid) EventType() string { return EventPaymentMarkedPaid }

type FundsReleased struct {
	OrderID       kernel.UUID `json:"orderId"`
	TransactionID string      `json:"transactionId"`
}

func (FundsReleased) EventType() string { return EventFundsReleased }

func Events() []kernel.DomainEvent {
	return []kernel.DomainEvent{
		PaymentCreated{},
		PaymentProcessing{},
		PaymentSucceeded{},
		PaymentFailed{},
		PaymentMarkedPaid{},
		FundsReleased{},
	}
}
