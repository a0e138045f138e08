package queries

import (
	"context"

	"orders/internal/core/ports"
)

// GetOrderQueryHandler loads a single order view from the repository.
type GetOrderQueryHandler struct {
	repo ports.OrderRepository
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(repo ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{repo: repo}
}

// Handle fetches the order and maps it into its read model. Returns a
// not-found error when the order does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	aggregate, err := h.repo.Get(ctx, query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}

	return newOrderResponse(aggregate), nil
}
