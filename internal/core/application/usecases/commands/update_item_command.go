package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var (
	ErrUpdateItemCommandIsNotConstructed = errors.New(
		"UpdateItemCommand must be created via NewUpdateItemCommand constructor",
	)
)

// UpdateItemCommand represents a request to replace the fields of an
// existing line item on an order.
type UpdateItemCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	itemID  kernel.UUID
	item    ItemSpec

	guard guard.ConstructorGuard
}

// NewUpdateItemCommand creates a command to update a line item.
func NewUpdateItemCommand(orderID kernel.UUID, itemID kernel.UUID, item ItemSpec) (UpdateItemCommand, error) {
	cmd := UpdateItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemID(itemID),
	); err != nil {
		return UpdateItemCommand{}, err
	}

	cmd.item = item
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateItemCommandIsNotConstructed)
}

// OrderID returns the identifier of the order owning the item.
func (c UpdateItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the identifier of the line item to update.
func (c UpdateItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Item returns the replacement field values.
func (c UpdateItemCommand) Item() ItemSpec {
	return c.item
}

func (c *UpdateItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}
