package commands

import (
	"context"
	"errors"

	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/errs"
)

// OrderProjectionCommandHandler maintains the order snapshot.
type OrderProjectionCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewOrderProjectionCommandHandler(uowFactory OrderUoWFactory) OrderProjectionCommandHandler {
	return OrderProjectionCommandHandler{uowFactory: uowFactory}
}

// HandleRecord stores the order once. Line names come from the catalog; a baked good
// missing from it is recorded as order.UnknownProductName.
func (h *OrderProjectionCommandHandler) HandleRecord(ctx context.Context, cmd RecordOrderCommand) error {
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

	repo := uow.OrderRepository()
	exists, err := repo.Exists(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	catalog := uow.BakedGoodRepository()
	items := make([]order.Item, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		name := ""
		good, err := catalog.Get(ctx, line.BakedGoodsID)
		switch {
		case err == nil:
			name = good.Name()
		case !errors.Is(err, errs.ErrObjectNotFound):
			return err
		}

		items = append(items, order.Item{
			BakedGoodsID: line.BakedGoodsID,
			Name:         name,
			Quantity:     line.Quantity,
			UnitPrice:    line.UnitPrice,
		})
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.CartID(), items, cmd.Customer(), cmd.CreatedAt())
	if err != nil {
		return err
	}

	if err = repo.Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// HandleMarkPaid moves the snapshot to PAID. Marking a paid order again is a no-op.
func (h *OrderProjectionCommandHandler) HandleMarkPaid(ctx context.Context, cmd MarkOrderPaidCommand) error {
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

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if o.Status() == order.Paid {
		return nil
	}

	if err = o.MarkPaid(); err != nil {
		return err
	}

	if err = repo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
