package commands

import (
	"errors"
	"fmt"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
)

// UpdateOrderCommand represents a request to replace the mutable order
// fields: owning customer and lifecycle status. Items are managed through
// the dedicated item commands.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID int64
	status     order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to update an existing order.
// The status must be one of the recognized values.
func NewUpdateOrderCommand(orderID kernel.UUID, customerID int64, status order.Status) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setStatus(status),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the new owning customer's identifier.
func (c UpdateOrderCommand) CustomerID() int64 {
	return c.customerID
}

// Status returns the new lifecycle status.
func (c UpdateOrderCommand) Status() order.Status {
	return c.status
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setCustomerID(customerID int64) error {
	if customerID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"customer_id", fmt.Errorf("%d is not a valid customer reference", customerID))
	}

	c.customerID = customerID
	return nil
}

func (c *UpdateOrderCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
