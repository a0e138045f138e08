// Package http exposes the order management REST API. Handlers translate
// wire requests into commands and queries, and map domain errors onto
// HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFilterAll is the status query value matching every status.
const statusFilterAll = "ALL"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderHandler       commands.UpdateOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	deleteOrderHandler       commands.DeleteOrderCommandHandler
	addItemHandler           commands.AddItemCommandHandler
	updateItemHandler        commands.UpdateItemCommandHandler
	removeItemHandler        commands.RemoveItemCommandHandler
	repeatOrderHandler       commands.RepeatOrderCommandHandler

	// Query handlers
	getOrderHandler   queries.GetOrderQueryHandler
	listOrdersHandler queries.ListOrdersQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	addItemHandler commands.AddItemCommandHandler,
	updateItemHandler commands.UpdateItemCommandHandler,
	removeItemHandler commands.RemoveItemCommandHandler,
	repeatOrderHandler commands.RepeatOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderHandler:       updateOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		deleteOrderHandler:       deleteOrderHandler,
		addItemHandler:           addItemHandler,
		updateItemHandler:        updateItemHandler,
		removeItemHandler:        removeItemHandler,
		repeatOrderHandler:       repeatOrderHandler,
		getOrderHandler:          getOrderHandler,
		listOrdersHandler:        listOrdersHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.GetHealth)
	e.GET("/", s.GetIndex)

	e.POST("/orders", s.CreateOrder)
	e.GET("/orders", s.GetOrders)
	e.GET("/orders/:order_id", s.GetOrder)
	e.PUT("/orders/:order_id", s.UpdateOrder)
	e.PUT("/orders/:order_id/status", s.UpdateOrderStatus)
	e.DELETE("/orders/:order_id", s.DeleteOrder)
	e.POST("/orders/:order_id/repeat", s.RepeatOrder)

	e.POST("/orders/:order_id/items", s.AddItem)
	e.GET("/orders/:order_id/items", s.GetItems)
	e.GET("/orders/:order_id/items/:item_id", s.GetItem)
	e.PUT("/orders/:order_id/items/:item_id", s.UpdateItem)
	e.DELETE("/orders/:order_id/items/:item_id", s.DeleteItem)
}

// GetHealth handles GET /health - liveness probe.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "OK"})
}

// GetIndex handles GET / - service metadata.
func (s *Server) GetIndex(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{
		"name":    "Order Management REST API Service",
		"version": "1.0",
		"path":    "/orders",
	})
}

// CreateOrder handles POST /orders - creates a new order in PENDING status.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	items := make([]commands.ItemSpec, 0, len(req.Items))
	for _, itemReq := range req.Items {
		spec, err := itemReq.toItemSpec()
		if err != nil {
			return errorResponse(ctx, err)
		}
		items = append(items, spec)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, req.CustomerID, items)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	view, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderLocation, "/orders/"+orderID.String())
	return ctx.JSON(http.StatusCreated, toOrderResponse(view))
}

// GetOrders handles GET /orders - lists orders with optional filters.
// Supported query parameters: customer_id, status, min_total, max_total,
// name (alias item_name). Unknown parameters are rejected.
func (s *Server) GetOrders(ctx echo.Context) error {
	filter, err := parseOrderFilter(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewListOrdersQuery(filter)
	if err != nil {
		return errorResponse(ctx, err)
	}

	views, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]OrderResponse, 0, len(views))
	for _, view := range views {
		response = append(response, toOrderResponse(view))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /orders/:order_id - retrieves a single order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "order_id")
	if err != nil {
		return errorResponse(ctx, err)
	}

	view, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(view))
}

// UpdateOrder handles PUT /orders/:order_id - replaces the order's
// customer and status.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "order_id")
	if err != nil {
		return errorResponse(ctx, err)
	}

	var req UpdateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, req.CustomerID, status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.updateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	view, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(view))
}

// UpdateOrderStatus handles PUT /orders/:order_id/status - moves the order
// to a new lifecycle status without touching other fields.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "order_id")
	if err != nil {
		return errorResponse(ctx, err)
	}

	var req ChangeStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	view, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(view))
}

// DeleteOrder handles DELETE /orders/:order_id - removes the order and
// all of its items.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "order_id")
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RepeatOrder handles POST /orders/:order_id/repeat - clones an order
// into a fresh PENDING order for the same customer.
func (s *Server) RepeatOrder(ctx echo.Context) error {
	sourceID, err := parseUUIDParam(ctx, "order_id")
	if err != nil {
		return errorResponse(ctx, err)
	}

	newOrderID := kernel.NewUUID()
	cmd, err := commands.NewRepeatOrderCommand(sourceID, newOrderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.repeatOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	view, err := s.loadOrder(ctx, newOrderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderLocation, "/orders/"+newOrderID.String())
	return ctx.JSON(http.StatusCreated, toOrderResponse(view))
}

// AddItem handles POST /orders/:order_id/items - appends a line item.
func (s *Server) AddItem(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "order_id")
	if err != nil {
		return errorResponse(ctx, err)
	}

	var req ItemRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	spec, err := req.toItemSpec()
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewAddItemCommand(orderID, spec)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.addItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	view, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(view))
}

// GetItems handles GET /orders/:order_id/items - lists the order's items.
func (s *Server) GetItems(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "order_id")
	if err != nil {
		return errorResponse(ctx, err)
	}

	view, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	items := make([]ItemResponse, 0, len(view.Items))
	for _, item := range view.Items {
		items = append(items, toItemResponse(view.ID, item))
	}

	return ctx.JSON(http.StatusOK, items)
}

// GetItem handles GET /orders/:order_id/items/:item_id - retrieves one item.
func (s *Server) GetItem(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "order_id")
	if err != nil {
		return errorResponse(ctx, err)
	}

	itemID, err := parseUUIDParam(ctx, "item_id")
	if err != nil {
		return errorResponse(ctx, err)
	}

	view, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	for _, item := range view.Items {
		if item.ID.IsEqual(itemID) {
			return ctx.JSON(http.StatusOK, toItemResponse(view.ID, item))
		}
	}

	return errorResponse(ctx, errs.NewObjectNotFoundError("item", itemID.String()))
}

// UpdateItem handles PUT /orders/:order_id/items/:item_id - replaces the
// item's fields.
func (s *Server) UpdateItem(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "order_id")
	if err != nil {
		return errorResponse(ctx, err)
	}

	itemID, err := parseUUIDParam(ctx, "item_id")
	if err != nil {
		return errorResponse(ctx, err)
	}

	var req ItemRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	spec, err := req.toItemSpec()
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewUpdateItemCommand(orderID, itemID, spec)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.updateItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	view, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	for _, item := range view.Items {
		if item.ID.IsEqual(itemID) {
			return ctx.JSON(http.StatusOK, toItemResponse(view.ID, item))
		}
	}

	return errorResponse(ctx, errs.NewObjectNotFoundError("item", itemID.String()))
}

// DeleteItem handles DELETE /orders/:order_id/items/:item_id - detaches
// the item from the order.
func (s *Server) DeleteItem(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "order_id")
	if err != nil {
		return errorResponse(ctx, err)
	}

	itemID, err := parseUUIDParam(ctx, "item_id")
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewRemoveItemCommand(orderID, itemID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.removeItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// loadOrder fetches the read model for a single order.
func (s *Server) loadOrder(ctx echo.Context, orderID kernel.UUID) (queries.OrderResponse, error) {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return queries.OrderResponse{}, err
	}
	return s.getOrderHandler.Handle(ctx.Request().Context(), query)
}

// parseOrderFilter builds the repository filter from query parameters.
// The status value "ALL" matches any status, same as omitting the
// parameter. The item substring filter is "name", with "item_name"
// accepted as an alias. Unknown parameters are rejected so client typos
// fail loudly instead of silently ignoring a filter.
func parseOrderFilter(ctx echo.Context) (ports.OrderFilter, error) {
	allowed := map[string]bool{
		"customer_id": true,
		"status":      true,
		"min_total":   true,
		"max_total":   true,
		"name":        true,
		"item_name":   true,
	}
	for name := range ctx.QueryParams() {
		if !allowed[name] {
			return ports.OrderFilter{}, errs.NewValueIsInvalidError(name)
		}
	}

	var filter ports.OrderFilter

	if raw := ctx.QueryParam("customer_id"); raw != "" {
		customerID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return ports.OrderFilter{}, errs.NewValueIsInvalidErrorWithCause("customer_id", err)
		}
		filter.CustomerID = &customerID
	}

	if raw := ctx.QueryParam("status"); raw != "" && raw != statusFilterAll {
		status, err := order.StatusFromString(raw)
		if err != nil {
			return ports.OrderFilter{}, err
		}
		filter.Status = &status
	}

	if raw := ctx.QueryParam("min_total"); raw != "" {
		minTotal, err := kernel.PriceFromString(raw)
		if err != nil {
			return ports.OrderFilter{}, err
		}
		filter.MinTotal = &minTotal
	}

	if raw := ctx.QueryParam("max_total"); raw != "" {
		maxTotal, err := kernel.PriceFromString(raw)
		if err != nil {
			return ports.OrderFilter{}, err
		}
		filter.MaxTotal = &maxTotal
	}

	filter.ItemName = ctx.QueryParam("name")
	if filter.ItemName == "" {
		filter.ItemName = ctx.QueryParam("item_name")
	}

	return filter, nil
}

// parseUUIDParam extracts and validates a UUID path parameter.
func parseUUIDParam(ctx echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

// errorResponse maps domain errors onto HTTP status codes.
func errorResponse(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrVersionIsInvalid):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
