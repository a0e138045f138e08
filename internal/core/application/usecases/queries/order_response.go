// Package queries contains read-only operations against the order store.
// Implements the Query side of the CQRS split: handlers never mutate
// state and return plain response structs shaped for presentation.
package queries

import (
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// OrderResponse represents a full order view including its line items.
type OrderResponse struct {
	ID         kernel.UUID
	CustomerID int64
	Status     order.Status
	TotalPrice kernel.Price
	Items      []ItemResponse
	Version    int64
}

// ItemResponse represents a single line item within an order view.
type ItemResponse struct {
	ID          kernel.UUID
	Name        string
	Category    string
	Description string
	ProductID   int64
	Price       kernel.Price
	Quantity    int
}

// newOrderResponse maps a domain aggregate into its read model.
func newOrderResponse(aggregate *order.Order) OrderResponse {
	items := make([]ItemResponse, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemResponse{
			ID:          item.ID(),
			Name:        item.Name(),
			Category:    item.Category(),
			Description: item.Description(),
			ProductID:   item.ProductID(),
			Price:       item.Price(),
			Quantity:    item.Quantity(),
		})
	}

	return OrderResponse{
		ID:         aggregate.ID(),
		CustomerID: aggregate.CustomerID(),
		Status:     aggregate.Status(),
		TotalPrice: aggregate.TotalPrice(),
		Items:      items,
		Version:    aggregate.Version(),
	}
}
