package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var (
	ErrAddItemCommandIsNotConstructed = errors.New(
		"AddItemCommand must be created via NewAddItemCommand constructor",
	)
)

// AddItemCommand represents a request to append a new line item to an
// existing order. The item fields travel as a spec and are validated by
// the domain model when the item is built.
type AddItemCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	item    ItemSpec

	guard guard.ConstructorGuard
}

// NewAddItemCommand creates a command to add a line item to an order.
func NewAddItemCommand(orderID kernel.UUID, item ItemSpec) (AddItemCommand, error) {
	cmd := AddItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return AddItemCommand{}, err
	}

	cmd.item = item
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddItemCommand) Validate() error {
	return c.guard.Validate(ErrAddItemCommandIsNotConstructed)
}

// OrderID returns the identifier of the order receiving the item.
func (c AddItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Item returns the spec of the line item to add.
func (c AddItemCommand) Item() ItemSpec {
	return c.item
}

func (c *AddItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
