package queries

import (
	"context"

	"orders/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrderStatusCountsQueryHandler aggregates order counts by status
// straight from the database, bypassing the aggregate repository.
type GetOrderStatusCountsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatusCountsQueryHandler creates a handler for status counts.
// Requires a GORM database connection for query execution.
func NewGetOrderStatusCountsQueryHandler(db *gorm.DB) GetOrderStatusCountsQueryHandler {
	return GetOrderStatusCountsQueryHandler{db: db}
}

// Handle counts orders grouped by status. Statuses with no orders are
// absent from the result. Results are sorted by status for consistent
// output.
func (h GetOrderStatusCountsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatusCountsQuery,
) ([]GetOrderStatusCountsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	counts := make([]GetOrderStatusCountsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM orders
		GROUP BY status
		ORDER BY status
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var status int
		var count int64

		if err = rows.Scan(&status, &count); err != nil {
			return nil, err
		}

		counts = append(counts, GetOrderStatusCountsQueryResponse{
			Status: order.Status(status),
			Count:  count,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}
