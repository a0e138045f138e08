package ports

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// OrderFilter is the optional criteria set applied when listing orders.
// Nil/empty fields mean "no constraint"; provided criteria combine with
// logical AND. An empty filter matches the whole collection. A filter can
// never fail a listing: criteria matching nothing yield an empty result.
type OrderFilter struct {
	// CustomerID matches orders of exactly this customer.
	CustomerID *int64

	// Status matches orders in exactly this lifecycle state.
	Status *order.Status

	// MinTotal and MaxTotal are inclusive bounds on the derived total.
	MinTotal *kernel.Price
	MaxTotal *kernel.Price

	// ItemName matches orders containing at least one item whose name
	// contains this substring, case-insensitively. Empty means no constraint.
	ItemName string
}

// IsEmpty reports whether no criterion is set.
func (f OrderFilter) IsEmpty() bool {
	return f.CustomerID == nil && f.Status == nil &&
		f.MinTotal == nil && f.MaxTotal == nil && f.ItemName == ""
}

// OrderRepository defines the persistence contract for order aggregates.
// Implementations must provide read-your-writes consistency and persist the
// aggregate together with its owned items.
type OrderRepository interface {
	// Add persists a new order aggregate with its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, pruning
	// removed items. Implementations detect concurrent modification via
	// the aggregate version and report it as a conflict.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate with its items by identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves orders matching the filter, in insertion order.
	// An empty filter returns the full collection; an empty result set is
	// not an error.
	GetAll(ctx context.Context, filter OrderFilter) ([]*order.Order, error)

	// Delete removes an order and cascades to all of its items.
	Delete(ctx context.Context, id kernel.UUID) error
}
