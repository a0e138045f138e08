package queries

import (
	"errors"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/guard"
)

var (
	ErrGetOrderStatusCountsQueryIsNotConstructed = errors.New(
		"GetOrderStatusCountsQuery must be created via NewGetOrderStatusCountsQuery constructor",
	)
)

// GetOrderStatusCountsQuery retrieves the number of orders per lifecycle
// status. Used by the periodic report job and by operators checking
// fulfillment backlog.
type GetOrderStatusCountsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderStatusCountsQuery creates a query to count orders by status.
// This is a parameterless query covering the whole order store.
func NewGetOrderStatusCountsQuery() GetOrderStatusCountsQuery {
	return GetOrderStatusCountsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatusCountsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusCountsQueryIsNotConstructed)
}

// GetOrderStatusCountsQueryResponse represents the order count for one status.
type GetOrderStatusCountsQueryResponse struct {
	Status order.Status
	Count  int64
}
