package commands

import (
	"context"
	"errors"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/payment"
	"bakery/internal/core/ports"
	"bakery/internal/pkg/errs"
)

// PayCommandHandler charges an order through the payment gateway.
//
// The charge runs between two transactions. The first records PROCESSING, which
// also keeps a concurrent pay of the same order out. The second records the
// outcome. A declined charge is recorded as FAILED and is not an error for the
// caller. A transport failure of the gateway is recorded as FAILED too and
// returned as errs.ErrExternalGatewayFailure.
type PayCommandHandler struct {
	uowFactory PaymentUoWFactory
	gateway    ports.PaymentGateway
}

func NewPayCommandHandler(uowFactory PaymentUoWFactory, gateway ports.PaymentGateway) PayCommandHandler {
	return PayCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

func (h *PayCommandHandler) Handle(ctx context.Context, cmd PayCommand) (payment.Status, error) {
	if err := cmd.Validate(); err != nil {
		return payment.Unknown, err
	}

	p, err := h.record(ctx, cmd.OrderID(), func(p *payment.Payment) error {
		return p.StartProcessing(cmd.WalletAddress())
	})
	if err != nil {
		return payment.Unknown, err
	}

	result, gatewayErr := h.gateway.ProcessPayment(ctx, p.OrderID(), p.ItemCount())
	if gatewayErr != nil {
		gatewayErr = errs.NewGatewayError("payment", gatewayErr)
		result = ports.PaymentResult{ErrorMessage: gatewayErr.Error()}
	}

	p, err = h.record(ctx, cmd.OrderID(), func(p *payment.Payment) error {
		if result.Success {
			return p.Succeed(result.TransactionID)
		}
		return p.Fail(result.ErrorMessage)
	})
	if err != nil {
		return payment.Unknown, errors.Join(gatewayErr, err)
	}

	return p.Status(), gatewayErr
}

// record applies change to the stored payment in its own transaction.
func (h *PayCommandHandler) record(
	ctx context.Context,
	orderID kernel.UUID,
	change func(p *payment.Payment) error,
) (*payment.Payment, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PaymentRepository()
	p, err := repo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err = change(p); err != nil {
		return nil, err
	}
	if err = repo.Save(ctx, p); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return p, nil
}
