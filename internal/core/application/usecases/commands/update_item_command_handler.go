package commands

import (
	"context"
)

// UpdateItemCommandHandler replaces the fields of a line item and persists
// the order with its recomputed total. The aggregate validates the new
// field values as a whole, so a rejected update leaves the item untouched.
type UpdateItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateItemCommandHandler creates a handler for line-item updates.
func NewUpdateItemCommandHandler(uowFactory OrderUoWFactory) UpdateItemCommandHandler {
	return UpdateItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, applies the new item fields and persists the
// aggregate. Returns a not-found error when either the order or item does
// not exist.
func (h *UpdateItemCommandHandler) Handle(ctx context.Context, cmd UpdateItemCommand) error {
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
	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	spec := cmd.Item()
	if err = aggregate.UpdateItem(
		cmd.ItemID(),
		spec.Name,
		spec.Category,
		spec.Description,
		spec.ProductID,
		spec.Price,
		spec.Quantity,
	); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
