package commands

import (
	"context"

	"bakery/internal/core/domain/model/payment"
)

// MarkPaymentPaidCommandHandler completes a successful charge. A payment that is
// already PAID is left untouched.
type MarkPaymentPaidCommandHandler struct {
	uowFactory PaymentUoWFactory
}

func NewMarkPaymentPaidCommandHandler(uowFactory PaymentUoWFactory) MarkPaymentPaidCommandHandler {
	return MarkPaymentPaidCommandHandler{uowFactory: uowFactory}
}

func (h *MarkPaymentPaidCommandHandler) Handle(ctx context.Context, cmd MarkPaymentPaidCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PaymentRepository()
	p, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if p.Status() == payment.Paid {
		return nil
	}

	if err = p.MarkPaid(); err != nil {
		return err
	}

	if err = repo.Save(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
