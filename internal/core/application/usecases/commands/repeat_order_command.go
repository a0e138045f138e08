package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var (
	ErrRepeatOrderCommandIsNotConstructed = errors.New(
		"RepeatOrderCommand must be created via NewRepeatOrderCommand constructor",
	)
)

// RepeatOrderCommand represents a request to clone an existing order into
// a fresh PENDING order under a pre-generated identity.
type RepeatOrderCommand struct { //nolint:recvcheck //using for validation
	sourceOrderID kernel.UUID
	newOrderID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewRepeatOrderCommand creates a command to repeat an order. The new
// order's id is generated by the caller so the operation stays idempotent
// under retries.
func NewRepeatOrderCommand(sourceOrderID kernel.UUID, newOrderID kernel.UUID) (RepeatOrderCommand, error) {
	cmd := RepeatOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSourceOrderID(sourceOrderID),
		cmd.setNewOrderID(newOrderID),
	); err != nil {
		return RepeatOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RepeatOrderCommand) Validate() error {
	return c.guard.Validate(ErrRepeatOrderCommandIsNotConstructed)
}

// SourceOrderID returns the identifier of the order to clone.
func (c RepeatOrderCommand) SourceOrderID() kernel.UUID {
	return c.sourceOrderID
}

// NewOrderID returns the identifier assigned to the clone.
func (c RepeatOrderCommand) NewOrderID() kernel.UUID {
	return c.newOrderID
}

func (c *RepeatOrderCommand) setSourceOrderID(sourceOrderID kernel.UUID) error {
	if err := sourceOrderID.Validate(); err != nil {
		return err
	}

	c.sourceOrderID = sourceOrderID
	return nil
}

func (c *RepeatOrderCommand) setNewOrderID(newOrderID kernel.UUID) error {
	if err := newOrderID.Validate(); err != nil {
		return err
	}

	c.newOrderID = newOrderID
	return nil
}
