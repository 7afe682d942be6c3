package commands

import (
	"context"
	"errors"

	"bakery/internal/core/domain/model/payment"
	"bakery/internal/core/ports"
	"bakery/internal/pkg/errs"
)

// ReleaseOutcome tells the caller what a release attempt did.
type ReleaseOutcome int

const (
	FundsReleased ReleaseOutcome = iota
	FundsAlreadyReleased
	PaymentMissing
	PaymentNotPaid
	PayrollRejected
)

func (o ReleaseOutcome) String() string {
	switch o {
	case FundsReleased:
		return "RELEASED"
	case FundsAlreadyReleased:
		return "ALREADY_RELEASED"
	case PaymentMissing:
		return "PAYMENT_MISSING"
	case PaymentNotPaid:
		return "NOT_PAID"
	case PayrollRejected:
		return "PAYROLL_REJECTED"
	default:
		return "UNKNOWN"
	}
}

// ReleaseFundsCommandHandler pays the baker out of a PAID payment. Only a PAID payment
// reaches the payroll gateway, so repeating the command is harmless.
type ReleaseFundsCommandHandler struct {
	uowFactory PaymentUoWFactory
	payroll    ports.PayrollGateway
}

func NewReleaseFundsCommandHandler(uowFactory PaymentUoWFactory, payroll ports.PayrollGateway) ReleaseFundsCommandHandler {
	return ReleaseFundsCommandHandler{
		uowFactory: uowFactory,
		payroll:    payroll,
	}
}

func (h *ReleaseFundsCommandHandler) Handle(ctx context.Context, cmd ReleaseFundsCommand) (ReleaseOutcome, error) {
	if err := cmd.Validate(); err != nil {
		return PaymentMissing, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return PaymentMissing, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PaymentRepository()
	p, err := repo.Get(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return PaymentMissing, nil
	}
	if err != nil {
		return PaymentMissing, err
	}

	switch p.Status() {
	case payment.Released:
		return FundsAlreadyReleased, nil
	case payment.Paid:
	default:
		return PaymentNotPaid, nil
	}

	ok, err := h.payroll.ReleaseFunds(ctx, p.OrderID(), p.TransactionID())
	if err != nil {
		return PayrollRejected, errs.NewGatewayError("payroll", err)
	}
	if !ok {
		return PayrollRejected, nil
	}

	if err = p.ReleaseFunds(); err != nil {
		return PayrollRejected, err
	}

	if err = repo.Save(ctx, p); err != nil {
		return PayrollRejected, err
	}

	if err = uow.Commit(ctx); err != nil {
		return PayrollRejected, err
	}

	return FundsReleased, nil
}
