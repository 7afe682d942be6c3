package payment

import (
	"errors"
	"fmt"
	"strings"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
)

var (
	ErrPaymentIsNotConstructed = errors.New("Payment must be created via Create or Restore")
	ErrItemsAreRequired        = errs.NewValueIsRequiredError("items")
	ErrTransactionIDIsRequired = errs.NewValueIsRequiredError("transactionId")
)

// Item is an order line as charged by the payment.
type Item struct {
	BakedGoodsID kernel.UUID  `json:"bakedGoodsId"`
	Quantity     int          `json:"quantity"`
	Price        kernel.Money `json:"price"`
	TotalPrice   kernel.Money `json:"totalPrice"`
}

// Payment is the event-sourced aggregate keyed by the order it pays for.
type Payment struct {
	kernel.BaseAggregate

	cartID        kernel.UUID
	items         []Item
	customer      kernel.GeoLocation
	status        Status
	transactionID string
	failureReason string
	walletAddress string
}

func Create(orderID kernel.UUID, cartID kernel.UUID, items []Item, customer kernel.GeoLocation) (*Payment, error) {
	var itemsErr error
	if len(items) == 0 {
		itemsErr = ErrItemsAreRequired
	}
	for _, it := range items {
		if it.Quantity <= 0 {
			itemsErr = errors.Join(itemsErr, errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
				fmt.Errorf("%d is not greater than 0", it.Quantity)))
		}
	}
	if err := errors.Join(orderID.Validate(), cartID.Validate(), itemsErr, customer.Validate()); err != nil {
		return nil, err
	}

	p := &Payment{BaseAggregate: kernel.NewBaseAggregate(orderID)}
	p.Raise(PaymentCreated{
		OrderID:     orderID,
		CartID:      cartID,
		Items:       append([]Item(nil), items...),
		CustomerLat: customer.Lat(),
		CustomerLon: customer.Lon(),
	}, p.apply)
	return p, nil
}

func Restore(orderID kernel.UUID, history []kernel.DomainEvent) (*Payment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if len(history) == 0 {
		return nil, ErrPaymentIsNotConstructed
	}

	p := &Payment{BaseAggregate: kernel.NewBaseAggregate(orderID)}
	p.Replay(history, p.apply)
	return p, nil
}

func (p *Payment) Validate() error {
	if p == nil || p.ID().IsZero() || p.status == Unknown {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// OrderID is the payment identity.
func (p *Payment) OrderID() kernel.UUID {
	return p.ID()
}

func (p *Payment) CartID() kernel.UUID {
	return p.cartID
}

func (p *Payment) Items() []Item {
	out := make([]Item, len(p.items))
	copy(out, p.items)
	return out
}

// ItemCount is the total quantity over all lines.
func (p *Payment) ItemCount() int {
	n := 0
	for _, it := range p.items {
		n += it.Quantity
	}
	return n
}

func (p *Payment) Total() kernel.Money {
	var total kernel.Money
	for _, it := range p.items {
		total += it.TotalPrice
	}
	return total
}

func (p *Payment) Customer() kernel.GeoLocation {
	return p.customer
}

func (p *Payment) Status() Status {
	return p.status
}

func (p *Payment) TransactionID() string {
	return p.transactionID
}

func (p *Payment) FailureReason() string {
	return p.failureReason
}

func (p *Payment) WalletAddress() string {
	return p.walletAddress
}

// StartProcessing is the first step of paying; it is only allowed from Created.
func (p *Payment) StartProcessing(walletAddress string) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if _, err := p.status.StartProcessing(); err != nil {
		return err
	}

	p.Raise(PaymentProcessing{OrderID: p.ID(), WalletAddress: strings.TrimSpace(walletAddress)}, p.apply)
	return nil
}

// Succeed records a gateway approval while the payment is Processing.
func (p *Payment) Succeed(transactionID string) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.status != Processing || p.transactionID != "" {
		return errs.NewPreconditionViolationErrorf("Payment cannot succeed: status is %s", p.status)
	}
	if transactionID == "" {
		return ErrTransactionIDIsRequired
	}

	p.Raise(PaymentSucceeded{OrderID: p.ID(), TransactionID: transactionID}, p.apply)
	return nil
}

func (p *Payment) Fail(reason string) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if _, err := p.status.Fail(); err != nil {
		return err
	}
	if p.transactionID != "" {
		return errs.NewPreconditionViolationError("Payment cannot fail: gateway already approved it")
	}

	p.Raise(PaymentFailed{OrderID: p.ID(), Reason: reason}, p.apply)
	return nil
}

// MarkPaid requires a Processing payment that the gateway approved.
func (p *Payment) MarkPaid() error {
	if err := p.Validate(); err != nil {
		return err
	}
	if _, err := p.status.MarkPaid(); err != nil {
		return err
	}
	if p.transactionID == "" {
		return errs.NewPreconditionViolationError("Payment cannot be marked paid: no approved transaction")
	}

	p.Raise(PaymentMarkedPaid{
		OrderID:       p.ID(),
		CartID:        p.cartID,
		TransactionID: p.transactionID,
		CustomerLat:   p.customer.Lat(),
		CustomerLon:   p.customer.Lon(),
	}, p.apply)
	return nil
}

// ReleaseFunds pays the baker out. It requires Paid.
func (p *Payment) ReleaseFunds() error {
	if err := p.Validate(); err != nil {
		return err
	}
	if _, err := p.status.Release(); err != nil {
		return err
	}

	p.Raise(FundsReleased{OrderID: p.ID(), TransactionID: p.transactionID}, p.apply)
	return nil
}

func (p *Payment) apply(e kernel.DomainEvent) {
	switch ev := e.(type) {
	case PaymentCreated:
		p.cartID = ev.CartID
		p.items = append([]Item(nil), ev.Items...)
		if loc, err := kernel.NewGeoLocation(ev.CustomerLat, ev.CustomerLon); err == nil {
			p.customer = loc
		}
		p.status = Created
	case PaymentProcessing:
		p.walletAddress = ev.WalletAddress
		p.status = Processing
	case PaymentSucceeded:
		p.transactionID = ev.TransactionID
	case PaymentFailed:
		p.failureReason = ev.Reason
		p.status = Failed
	case PaymentMarkedPaid:
		p.status = Paid
	case FundsReleased:
		p.status = Released
	}
}
