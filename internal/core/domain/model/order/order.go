package order

import (
	"errors"
	"fmt"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrItemAlreadyAttached is returned when adding an item that already
	// belongs to an order.
	ErrItemAlreadyAttached = errors.New("item already belongs to an order")
)

// Order is the aggregate root representing one customer purchase request.
//
// Order maintains these invariants:
//   - customer id is required and positive
//   - status is always one of the four recognized values, PENDING initially
//   - total price equals the sum of item line totals after every mutation
//   - items are owned exclusively: they are attached on add, carry a
//     back-reference to this order, and cannot belong to two orders
//
// All fields are private; mutation goes through validated methods, each of
// which recomputes the derived total synchronously before returning. A
// failed mutation leaves the item set and total exactly as they were.
//
// Example:
//
//	price, _ := kernel.PriceFromString("999.99")
//	item, _ := order.NewItem(kernel.NewUUID(), "Laptop", "Electronics", "", 501, price, 1)
//	o, err := order.NewOrder(kernel.NewUUID(), 1001, []*order.Item{item})
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(o.TotalPrice()) // 999.99
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID
	// customerID identifies the owning customer
	customerID int64
	// status is the current lifecycle state
	status Status
	// totalPrice is derived from the item set, never set directly
	totalPrice kernel.Price
	// items is the owned collection of line items, in insertion order
	items []*Item
	// version backs optimistic concurrency control in the repository
	version int64
	// guard ensures the order was created via a constructor
	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in PENDING status with the given initial
// items (which may be empty). Each item must be valid and detached; items
// are attached to the new order and the total is computed from them.
func NewOrder(id kernel.UUID, customerID int64, items []*Item) (*Order, error) {
	o := &Order{
		status:     Pending,
		totalPrice: kernel.ZeroPrice(),
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
	); err != nil {
		return nil, err
	}

	for _, item := range items {
		if err := o.AddItem(item); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage with
// its persisted status, items and version. The derived total is recomputed
// from the restored items rather than trusted from storage.
func RestoreOrder(
	id kernel.UUID,
	customerID int64,
	status Status,
	items []*Item,
	version int64,
) (*Order, error) {
	o := &Order{
		totalPrice: kernel.ZeroPrice(),
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setStatus(status),
		o.setVersion(version),
	); err != nil {
		return nil, err
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		if !item.OrderID().IsEqual(o.id) {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"item", fmt.Errorf("item %s does not belong to order %s", item.ID(), o.id))
		}
		o.items = append(o.items, item)
	}
	if err := o.recomputeTotal(); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || o.guard.Validate(ErrOrderIsNotConstructed) != nil {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() int64 {
	return o.customerID
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// TotalPrice returns the derived total, Σ(item.price × item.quantity).
func (o *Order) TotalPrice() kernel.Price {
	return o.totalPrice
}

// Version returns the optimistic concurrency version of the aggregate.
func (o *Order) Version() int64 {
	return o.version
}

// Items returns the owned items in insertion order. The returned slice is
// a copy; the items themselves are shared with the aggregate.
func (o *Order) Items() []*Item {
	items := make([]*Item, len(o.items))
	copy(items, o.items)
	return items
}

// Item returns the owned item with the given id, or an ObjectNotFoundError
// identifying the missing item.
func (o *Order) Item(itemID kernel.UUID) (*Item, error) {
	for _, item := range o.items {
		if item.ID().IsEqual(itemID) {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("item", itemID.String())
}

// AddItem appends a detached item to the order and recomputes the total.
// Adding an item that belongs to another order, or a duplicate id, fails.
func (o *Order) AddItem(item *Item) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if item.OrderID().Validate() == nil && !item.OrderID().IsEqual(o.id) {
		return ErrItemAlreadyAttached
	}
	if _, err := o.Item(item.ID()); err == nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"item", fmt.Errorf("item %s is already part of the order", item.ID()))
	}

	item.attach(o.id)
	o.items = append(o.items, item)
	if err := o.recomputeTotal(); err != nil {
		o.items = o.items[:len(o.items)-1]
		item.detach()
		return err
	}
	return nil
}

// UpdateItem replaces the mutable fields of the item with the given id and
// recomputes the total. The candidate fields are validated as a whole
// before any of them is applied, so a failed update leaves the item, the
// item set and the total untouched.
func (o *Order) UpdateItem(
	itemID kernel.UUID,
	name string,
	category string,
	description string,
	productID int64,
	price kernel.Price,
	quantity int,
) error {
	item, err := o.Item(itemID)
	if err != nil {
		return err
	}

	candidate, err := NewItem(itemID, name, category, description, productID, price, quantity)
	if err != nil {
		return err
	}

	previous := *item
	item.replaceFields(candidate)
	if err = o.recomputeTotal(); err != nil {
		*item = previous
		return err
	}
	return nil
}

// RemoveItem detaches the item with the given id and recomputes the total.
func (o *Order) RemoveItem(itemID kernel.UUID) error {
	for idx, item := range o.items {
		if item.ID().IsEqual(itemID) {
			o.items = append(o.items[:idx], o.items[idx+1:]...)
			// Removal only shrinks a previously valid sum.
			return o.recomputeTotal()
		}
	}
	return errs.NewObjectNotFoundError("item", itemID.String())
}

// ChangeStatus sets the lifecycle state to any recognized value.
// Unrecognized values are rejected and leave the status unchanged.
// Transitions between recognized values are deliberately unconstrained.
func (o *Order) ChangeStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// ChangeCustomer reassigns the order to another customer.
func (o *Order) ChangeCustomer(customerID int64) error {
	return o.setCustomerID(customerID)
}

// Repeat produces a new Order for the same customer with the given id:
// status reset to PENDING, items cloned by value under fresh identities.
// The source order is left unmodified, and mutating a clone's items never
// affects the source.
func (o *Order) Repeat(newID kernel.UUID) (*Order, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	clones := make([]*Item, 0, len(o.items))
	for _, item := range o.items {
		clone, err := item.clone(kernel.NewUUID())
		if err != nil {
			return nil, err
		}
		clones = append(clones, clone)
	}

	return NewOrder(newID, o.customerID, clones)
}

// recomputeTotal rebuilds the derived total from the current item set.
// Every mutating method calls it before returning. The total is only
// replaced when the whole sum fits in int64 cents; on overflow the stored
// total stays as it was and the caller rolls the mutation back.
func (o *Order) recomputeTotal() error {
	total := kernel.ZeroPrice()
	for _, item := range o.items {
		line, err := item.LineTotal()
		if err != nil {
			return err
		}
		if total, err = total.Add(line); err != nil {
			return err
		}
	}
	o.totalPrice = total
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID int64) error {
	if customerID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"customer_id", fmt.Errorf("%d is not a valid customer reference", customerID))
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setVersion(version int64) error {
	if version < 0 {
		return errs.NewVersionIsInvalidErrorWithCause(
			"version", fmt.Errorf("%d is negative", version))
	}
	o.version = version
	return nil
}
