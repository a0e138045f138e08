package commands

import (
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// ItemSpec carries the raw line-item fields supplied by a caller when
// creating an order or adding/updating an item. The fields are validated
// by the domain when the item is built, so commands accept the spec as-is
// and handlers surface any validation error before touching storage.
type ItemSpec struct {
	Name        string
	Category    string
	Description string
	ProductID   int64
	Price       kernel.Price
	Quantity    int
}

// toDomainItem builds a detached domain item under a fresh identity.
func (s ItemSpec) toDomainItem() (*order.Item, error) {
	return order.NewItem(kernel.NewUUID(), s.Name, s.Category, s.Description, s.ProductID, s.Price, s.Quantity)
}
