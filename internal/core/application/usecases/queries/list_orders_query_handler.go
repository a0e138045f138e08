package queries

import (
	"context"

	"orders/internal/core/ports"
)

// ListOrdersQueryHandler loads order views matching the query's filter.
type ListOrdersQueryHandler struct {
	repo ports.OrderRepository
}

// NewListOrdersQueryHandler creates a handler for order listing.
func NewListOrdersQueryHandler(repo ports.OrderRepository) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{repo: repo}
}

// Handle lists orders matching the filter, mapped into read models.
// Returns an empty slice, never nil, when nothing matches.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	aggregates, err := h.repo.GetAll(ctx, query.Filter())
	if err != nil {
		return nil, err
	}

	views := make([]OrderResponse, 0, len(aggregates))
	for _, aggregate := range aggregates {
		views = append(views, newOrderResponse(aggregate))
	}

	return views, nil
}
