package http

import (
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderResponse is the JSON view of an order. Prices travel as strings
// with exactly two decimal places, e.g. "1049.98".
type OrderResponse struct {
	ID         string         `json:"id"`
	CustomerID int64          `json:"customer_id"`
	Status     string         `json:"status"`
	TotalPrice string         `json:"total_price"`
	Items      []ItemResponse `json:"items"`
}

// ItemResponse is the JSON view of a single line item.
type ItemResponse struct {
	ID          string `json:"id"`
	OrderID     string `json:"order_id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	ProductID   int64  `json:"product_id"`
	Price       string `json:"price"`
	Quantity    int    `json:"quantity"`
}

// CreateOrderRequest is the JSON body for order creation. Status is not
// accepted: new orders always start as PENDING.
type CreateOrderRequest struct {
	CustomerID int64         `json:"customer_id"`
	Items      []ItemRequest `json:"items"`
}

// UpdateOrderRequest is the JSON body for replacing an order's mutable
// top-level fields.
type UpdateOrderRequest struct {
	CustomerID int64  `json:"customer_id"`
	Status     string `json:"status"`
}

// ChangeStatusRequest is the JSON body for a status-only transition.
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// ItemRequest is the JSON body for creating or updating a line item.
// Quantity defaults to 1 when omitted.
type ItemRequest struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	ProductID   int64  `json:"product_id"`
	Price       string `json:"price"`
	Quantity    *int   `json:"quantity"`
}

// toItemSpec parses the wire item into a command spec, applying the
// quantity default.
func (r ItemRequest) toItemSpec() (commands.ItemSpec, error) {
	price, err := kernel.PriceFromString(r.Price)
	if err != nil {
		return commands.ItemSpec{}, err
	}

	quantity := order.DefaultQuantity
	if r.Quantity != nil {
		quantity = *r.Quantity
	}

	return commands.ItemSpec{
		Name:        r.Name,
		Category:    r.Category,
		Description: r.Description,
		ProductID:   r.ProductID,
		Price:       price,
		Quantity:    quantity,
	}, nil
}

// toOrderResponse maps an application read model into its wire form.
func toOrderResponse(view queries.OrderResponse) OrderResponse {
	items := make([]ItemResponse, 0, len(view.Items))
	for _, item := range view.Items {
		items = append(items, toItemResponse(view.ID, item))
	}

	return OrderResponse{
		ID:         view.ID.String(),
		CustomerID: view.CustomerID,
		Status:     view.Status.String(),
		TotalPrice: view.TotalPrice.String(),
		Items:      items,
	}
}

func toItemResponse(orderID kernel.UUID, item queries.ItemResponse) ItemResponse {
	return ItemResponse{
		ID:          item.ID.String(),
		OrderID:     orderID.String(),
		Name:        item.Name,
		Category:    item.Category,
		Description: item.Description,
		ProductID:   item.ProductID,
		Price:       item.Price.String(),
		Quantity:    item.Quantity,
	}
}
