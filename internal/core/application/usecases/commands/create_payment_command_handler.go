package commands

import (
	"context"

	"bakery/internal/core/domain/model/payment"
)

// CreatePaymentCommandHandler starts the payment stream of an order once. A second
// request for the same order is a no-op.
type CreatePaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
}

func NewCreatePaymentCommandHandler(uowFactory PaymentUoWFactory) CreatePaymentCommandHandler {
	return CreatePaymentCommandHandler{uowFactory: uowFactory}
}

// Handle reports whether a new payment was created.
func (h *CreatePaymentCommandHandler) Handle(ctx context.Context, cmd CreatePaymentCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PaymentRepository()
	exists, err := repo.Exists(ctx, cmd.OrderID())
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	p, err := payment.Create(cmd.OrderID(), cmd.CartID(), cmd.Items(), cmd.Customer())
	if err != nil {
		return false, err
	}

	if err = repo.Save(ctx, p); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
