package commands

import (
	"context"
)

// RepeatOrderCommandHandler clones an existing order into a new PENDING
// order for the same customer. Items are copied by value under fresh
// identities, so later changes to either order never leak into the other.
type RepeatOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRepeatOrderCommandHandler creates a handler for order repetition.
func NewRepeatOrderCommandHandler(uowFactory OrderUoWFactory) RepeatOrderCommandHandler {
	return RepeatOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the source order, clones it under the command's new id and
// persists the clone. Returns a not-found error when the source order does
// not exist.
func (h *RepeatOrderCommandHandler) Handle(ctx context.Context, cmd RepeatOrderCommand) error {
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
	source, err := repo.Get(ctx, cmd.SourceOrderID())
	if err != nil {
		return err
	}

	clone, err := source.Repeat(cmd.NewOrderID())
	if err != nil {
		return err
	}

	if err = repo.Add(ctx, clone); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
