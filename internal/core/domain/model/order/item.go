package order

import (
	"errors"
	"fmt"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

const (
	// maxItemNameLength bounds the item name column.
	maxItemNameLength = 63
	// maxItemCategoryLength bounds the category label column.
	maxItemCategoryLength = 63
	// maxItemDescriptionLength bounds the optional description column.
	maxItemDescriptionLength = 1023

	// maxQuantity bounds the units per line item, keeping line totals far
	// from int64-cents overflow together with the price bound.
	maxQuantity = 1000000

	// DefaultQuantity is applied at the boundary when a caller omits the
	// item quantity.
	DefaultQuantity = 1
)

// Domain errors for item operations.
var (
	// ErrItemIsNotConstructed is returned when using an Item that was not
	// created via NewItem or RestoreItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
)

// Item is a line entry within an Order. It contributes price × quantity to
// the order total and exists only inside its parent aggregate: items are
// created through the Order, mutated through the Order, and removed when
// the Order is deleted.
//
// Invariants:
//   - name and category are required and bounded in length
//   - product id is required and positive
//   - price is a valid non-negative Price
//   - quantity is a positive integer
type Item struct {
	// id uniquely identifies the item within the system
	id kernel.UUID
	// orderID is the back-reference to the owning order; zero until attached
	orderID kernel.UUID
	// name is the display name of the purchased product
	name string
	// category is a free-form label such as "Electronics"
	category string
	// description is optional free text
	description string
	// productID references the product catalog entry
	productID int64
	// price is the unit price
	price kernel.Price
	// quantity is the number of units, always >= 1
	quantity int
	// guard ensures the item was created via a constructor
	guard guard.ConstructorGuard
}

// NewItem creates a detached Item with validated fields. The item belongs
// to no order until attached through Order.AddItem or an Order constructor.
//
// Example:
//
//	price, _ := kernel.PriceFromString("49.99")
//	item, err := order.NewItem(kernel.NewUUID(), "Mouse", "Electronics", "", 1200, price, 1)
func NewItem(
	id kernel.UUID,
	name string,
	category string,
	description string,
	productID int64,
	price kernel.Price,
	quantity int,
) (*Item, error) {
	item := &Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setCategory(category),
		item.setDescription(description),
		item.setProductID(productID),
		item.setPrice(price),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs an Item from persistent storage, including the
// back-reference to its owning order.
func RestoreItem(
	id kernel.UUID,
	orderID kernel.UUID,
	name string,
	category string,
	description string,
	productID int64,
	price kernel.Price,
	quantity int,
) (*Item, error) {
	item, err := NewItem(id, name, category, description, productID, price, quantity)
	if err != nil {
		return nil, err
	}

	if err = orderID.Validate(); err != nil {
		return nil, err
	}
	item.orderID = orderID

	return item, nil
}

// Validate ensures the Item was created through a constructor.
func (i *Item) Validate() error {
	if i == nil || i.guard.Validate(ErrItemIsNotConstructed) != nil {
		return ErrItemIsNotConstructed
	}
	return nil
}

// IsEqual compares two items by identity.
func (i *Item) IsEqual(other *Item) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// OrderID returns the identifier of the owning order.
// The zero UUID means the item is not attached yet.
func (i *Item) OrderID() kernel.UUID {
	return i.orderID
}

// Name returns the item name.
func (i *Item) Name() string {
	return i.name
}

// Category returns the category label.
func (i *Item) Category() string {
	return i.category
}

// Description returns the optional description, empty when unset.
func (i *Item) Description() string {
	return i.description
}

// ProductID returns the product catalog reference.
func (i *Item) ProductID() int64 {
	return i.productID
}

// Price returns the unit price.
func (i *Item) Price() kernel.Price {
	return i.price
}

// Quantity returns the number of units.
func (i *Item) Quantity() int {
	return i.quantity
}

// LineTotal returns price × quantity, the item's contribution to the
// order total. The product is overflow-checked: a price/quantity pair
// whose line total does not fit in int64 cents is rejected.
func (i *Item) LineTotal() (kernel.Price, error) {
	return i.price.MultiplyQuantity(i.quantity)
}

// clone returns a value copy with a fresh identity and no order
// attachment. Used by Order.Repeat so clones never share mutable state
// with the source items.
func (i *Item) clone(newID kernel.UUID) (*Item, error) {
	return NewItem(newID, i.name, i.category, i.description, i.productID, i.price, i.quantity)
}

// replaceFields overwrites all mutable fields from an already validated
// candidate, preserving identity and attachment.
func (i *Item) replaceFields(candidate *Item) {
	i.name = candidate.name
	i.category = candidate.category
	i.description = candidate.description
	i.productID = candidate.productID
	i.price = candidate.price
	i.quantity = candidate.quantity
}

// attach records the owning order. Called by the aggregate only.
func (i *Item) attach(orderID kernel.UUID) {
	i.orderID = orderID
}

// detach clears the order back-reference when a rejected add is rolled back.
func (i *Item) detach() {
	i.orderID = kernel.UUID{}
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if len(name) > maxItemNameLength {
		return errs.NewValueIsOutOfRangeError("name length", len(name), 1, maxItemNameLength)
	}
	i.name = name
	return nil
}

func (i *Item) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}
	if len(category) > maxItemCategoryLength {
		return errs.NewValueIsOutOfRangeError("category length", len(category), 1, maxItemCategoryLength)
	}
	i.category = category
	return nil
}

func (i *Item) setDescription(description string) error {
	if len(description) > maxItemDescriptionLength {
		return errs.NewValueIsOutOfRangeError("description length", len(description), 0, maxItemDescriptionLength)
	}
	i.description = description
	return nil
}

func (i *Item) setProductID(productID int64) error {
	if productID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"product_id", fmt.Errorf("%d is not a valid product reference", productID))
	}
	i.productID = productID
	return nil
}

func (i *Item) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	i.price = price
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if quantity > maxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxQuantity)
	}
	i.quantity = quantity
	return nil
}
