// Package http provides the inbound HTTP adapter for the ordering service.
// It translates echo requests into application commands and queries and maps
// their results and errors back to JSON responses.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"pathorder/internal/core/application/usecases/commands"
	"pathorder/internal/core/application/usecases/queries"
	"pathorder/internal/core/domain/model/kernel"
	"pathorder/internal/core/domain/model/order"
	"pathorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler   commands.PlaceOrderCommandHandler
	advanceOrderHandler commands.AdvanceOrderCommandHandler
	confirmOrderHandler commands.ConfirmOrderCommandHandler

	// Query handlers
	getDashboardHandler    queries.GetDashboardQueryHandler
	getPendingCountHandler queries.GetPendingCountQueryHandler
	getHistoryHandler      queries.GetOrderHistoryQueryHandler
	getHistoryRangeHandler queries.GetOrderHistoryByDateRangeQueryHandler
	listStoresHandler      queries.ListStoresQueryHandler
	getStoreDetailHandler  queries.GetStoreDetailQueryHandler
	getStoreMenusHandler   queries.GetStoreMenusQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	advanceOrderHandler commands.AdvanceOrderCommandHandler,
	confirmOrderHandler commands.ConfirmOrderCommandHandler,
	getDashboardHandler queries.GetDashboardQueryHandler,
	getPendingCountHandler queries.GetPendingCountQueryHandler,
	getHistoryHandler queries.GetOrderHistoryQueryHandler,
	getHistoryRangeHandler queries.GetOrderHistoryByDateRangeQueryHandler,
	listStoresHandler queries.ListStoresQueryHandler,
	getStoreDetailHandler queries.GetStoreDetailQueryHandler,
	getStoreMenusHandler queries.GetStoreMenusQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:      placeOrderHandler,
		advanceOrderHandler:    advanceOrderHandler,
		confirmOrderHandler:    confirmOrderHandler,
		getDashboardHandler:    getDashboardHandler,
		getPendingCountHandler: getPendingCountHandler,
		getHistoryHandler:      getHistoryHandler,
		getHistoryRangeHandler: getHistoryRangeHandler,
		listStoresHandler:      listStoresHandler,
		getStoreDetailHandler:  getStoreDetailHandler,
		getStoreMenusHandler:   getStoreMenusHandler,
	}
}

// RegisterRoutes mounts all API routes on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.PlaceOrder)
	api.POST("/orders/:orderId/confirm", s.ConfirmOrder)

	api.GET("/stores", s.ListStores)
	api.GET("/stores/:storeId", s.GetStoreDetail)
	api.GET("/stores/:storeId/menus", s.GetStoreMenus)
	api.GET("/stores/:storeId/dashboard", s.GetDashboard)
	api.GET("/stores/:storeId/orders/pending-count", s.GetPendingCount)
	api.GET("/stores/:storeId/orders/history", s.GetOrderHistory)
	api.POST("/stores/:storeId/orders/:orderId/advance", s.AdvanceOrder)
}

// Error is the JSON error payload returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrderRequest is the checkout payload for POST /api/v1/orders.
type NewOrderRequest struct {
	StoreID    string           `json:"storeId"`
	CustomerID string           `json:"customerId"`
	Items      []NewItemRequest `json:"items"`
}

// NewItemRequest is a single checkout line item.
type NewItemRequest struct {
	MenuID   string             `json:"menuId"`
	Name     string             `json:"name"`
	Price    int                `json:"price"`
	Quantity int                `json:"quantity"`
	Options  []NewOptionRequest `json:"options,omitempty"`
}

// NewOptionRequest is a selected menu option within a checkout line item.
type NewOptionRequest struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// ConfirmOrderRequest identifies the confirming customer.
type ConfirmOrderRequest struct {
	CustomerID string `json:"customerId"`
}

// Order is the JSON representation of an order returned by command endpoints.
type Order struct {
	ID         string      `json:"id"`
	StoreID    string      `json:"storeId"`
	CustomerID string      `json:"customerId"`
	Status     string      `json:"status"`
	CreatedAt  time.Time   `json:"createdAt"`
	TotalPrice int         `json:"totalPrice"`
	Items      []OrderItem `json:"items"`
}

// OrderItem is a line item within an order response.
type OrderItem struct {
	MenuID   string        `json:"menuId"`
	Name     string        `json:"name"`
	Price    int           `json:"price"`
	Quantity int           `json:"quantity"`
	Options  []OrderOption `json:"options,omitempty"`
	Subtotal int           `json:"subtotal"`
}

// OrderOption is a selected option within an order response line item.
type OrderOption struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// PlaceOrder handles POST /api/v1/orders - places a new order from a checkout.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var request NewOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	storeID, err := kernel.UUIDFromString(request.StoreID)
	if err != nil {
		return badRequest(ctx, "Invalid store id: "+err.Error())
	}
	customerID, err := kernel.UUIDFromString(request.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}

	items := make([]order.Item, 0, len(request.Items))
	for _, itemRequest := range request.Items {
		menuID, idErr := kernel.UUIDFromString(itemRequest.MenuID)
		if idErr != nil {
			return badRequest(ctx, "Invalid menu id: "+idErr.Error())
		}

		var options []order.Option
		for _, optionRequest := range itemRequest.Options {
			options = append(options, order.Option{
				Name:  optionRequest.Name,
				Price: optionRequest.Price,
			})
		}

		item, itemErr := order.NewItem(
			menuID, itemRequest.Name, itemRequest.Price, itemRequest.Quantity, options)
		if itemErr != nil {
			return badRequest(ctx, "Invalid line item: "+itemErr.Error())
		}
		items = append(items, item)
	}

	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), storeID, customerID, items)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	placed, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return commandError(ctx, err, "Failed to place order")
	}

	return ctx.JSON(http.StatusCreated, toOrderJSON(placed))
}

// AdvanceOrder handles POST /api/v1/stores/{storeId}/orders/{orderId}/advance -
// moves the order one step forward in the fulfillment pipeline. Advancing an
// already served or confirmed order succeeds without changing it.
func (s *Server) AdvanceOrder(ctx echo.Context) error {
	storeID, err := kernel.UUIDFromString(ctx.Param("storeId"))
	if err != nil {
		return badRequest(ctx, "Invalid store id: "+err.Error())
	}
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewAdvanceOrderCommand(storeID, orderID)
	if err != nil {
		return badRequest(ctx, "Invalid advance request: "+err.Error())
	}

	advanced, err := s.advanceOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return commandError(ctx, err, "Failed to advance order")
	}

	return ctx.JSON(http.StatusOK, toOrderJSON(advanced))
}

// ConfirmOrder handles POST /api/v1/orders/{orderId}/confirm - marks a served
// order as received by the ordering customer.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var request ConfirmOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	customerID, err := kernel.UUIDFromString(request.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}

	cmd, err := commands.NewConfirmOrderCommand(orderID, customerID)
	if err != nil {
		return badRequest(ctx, "Invalid confirm request: "+err.Error())
	}

	confirmed, err := s.confirmOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return commandError(ctx, err, "Failed to confirm order")
	}

	return ctx.JSON(http.StatusOK, toOrderJSON(confirmed))
}

// GetDashboard handles GET /api/v1/stores/{storeId}/dashboard - returns the
// store's active orders partitioned by status.
func (s *Server) GetDashboard(ctx echo.Context) error {
	storeID, err := kernel.UUIDFromString(ctx.Param("storeId"))
	if err != nil {
		return badRequest(ctx, "Invalid store id: "+err.Error())
	}

	query, err := queries.NewGetDashboardQuery(storeID)
	if err != nil {
		return badRequest(ctx, "Invalid dashboard request: "+err.Error())
	}

	dashboard, err := s.getDashboardHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to load dashboard")
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"pending":      toOrderListJSON(dashboard.Pending),
		"preparing":    toOrderListJSON(dashboard.Preparing),
		"prepared":     toOrderListJSON(dashboard.Prepared),
		"pendingCount": dashboard.PendingCount,
	})
}

// GetPendingCount handles GET /api/v1/stores/{storeId}/orders/pending-count -
// returns the badge count of orders awaiting acceptance.
func (s *Server) GetPendingCount(ctx echo.Context) error {
	storeID, err := kernel.UUIDFromString(ctx.Param("storeId"))
	if err != nil {
		return badRequest(ctx, "Invalid store id: "+err.Error())
	}

	query, err := queries.NewGetPendingCountQuery(storeID)
	if err != nil {
		return badRequest(ctx, "Invalid pending count request: "+err.Error())
	}

	count, err := s.getPendingCountHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to count pending orders")
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"pendingCount": count.PendingCount,
	})
}

// GetOrderHistory handles GET /api/v1/stores/{storeId}/orders/history - returns
// the store's completed orders, newest first. When both startDate and endDate
// query parameters are present (YYYY-MM-DD), returns the served orders of that
// inclusive date range instead, oldest first.
func (s *Server) GetOrderHistory(ctx echo.Context) error {
	storeID, err := kernel.UUIDFromString(ctx.Param("storeId"))
	if err != nil {
		return badRequest(ctx, "Invalid store id: "+err.Error())
	}

	startParam := ctx.QueryParam("startDate")
	endParam := ctx.QueryParam("endDate")
	if startParam != "" || endParam != "" {
		return s.orderHistoryByDateRange(ctx, storeID, startParam, endParam)
	}

	query, err := queries.NewGetOrderHistoryQuery(storeID)
	if err != nil {
		return badRequest(ctx, "Invalid history request: "+err.Error())
	}

	history, err := s.getHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to load order history")
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"orders": toOrderResponseListJSON(history.Orders),
	})
}

func (s *Server) orderHistoryByDateRange(
	ctx echo.Context, storeID kernel.UUID, startParam string, endParam string,
) error {
	start, err := time.Parse(time.DateOnly, startParam)
	if err != nil {
		return badRequest(ctx, "Invalid start date: expected YYYY-MM-DD")
	}
	end, err := time.Parse(time.DateOnly, endParam)
	if err != nil {
		return badRequest(ctx, "Invalid end date: expected YYYY-MM-DD")
	}

	query, err := queries.NewGetOrderHistoryByDateRangeQuery(storeID, start, end)
	if err != nil {
		return badRequest(ctx, "Invalid date range: "+err.Error())
	}

	history, err := s.getHistoryRangeHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to load order history")
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"orders": toOrderResponseListJSON(history.Orders),
	})
}

// ListStores handles GET /api/v1/stores - returns the store directory ranked
// by distance from the viewer position given in the lat/lng query parameters.
func (s *Server) ListStores(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.QueryParam("customerId"))
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}
	viewer, err := viewerFromParams(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewListStoresQuery(customerID, viewer)
	if err != nil {
		return badRequest(ctx, "Invalid store listing request: "+err.Error())
	}

	listing, err := s.listStoresHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to list stores")
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"stores": toStoreListJSON(listing.Stores),
	})
}

// GetStoreDetail handles GET /api/v1/stores/{storeId} - returns one store's
// profile with its like/review counts and the distance from the viewer.
func (s *Server) GetStoreDetail(ctx echo.Context) error {
	storeID, err := kernel.UUIDFromString(ctx.Param("storeId"))
	if err != nil {
		return badRequest(ctx, "Invalid store id: "+err.Error())
	}
	customerID, err := kernel.UUIDFromString(ctx.QueryParam("customerId"))
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}
	viewer, err := viewerFromParams(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetStoreDetailQuery(storeID, customerID, viewer)
	if err != nil {
		return badRequest(ctx, "Invalid store detail request: "+err.Error())
	}

	detail, err := s.getStoreDetailHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound(ctx, "Store not found")
		}
		return internalError(ctx, "Failed to load store")
	}

	return ctx.JSON(http.StatusOK, toStoreJSON(detail.Store))
}

// GetStoreMenus handles GET /api/v1/stores/{storeId}/menus - returns the
// store's menu board ordered by name.
func (s *Server) GetStoreMenus(ctx echo.Context) error {
	storeID, err := kernel.UUIDFromString(ctx.Param("storeId"))
	if err != nil {
		return badRequest(ctx, "Invalid store id: "+err.Error())
	}

	query, err := queries.NewGetStoreMenusQuery(storeID)
	if err != nil {
		return badRequest(ctx, "Invalid menu request: "+err.Error())
	}

	menus, err := s.getStoreMenusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound(ctx, "Store not found")
		}
		return internalError(ctx, "Failed to load menus")
	}

	menuList := make([]map[string]any, 0, len(menus.Menus))
	for _, menu := range menus.Menus {
		menuList = append(menuList, map[string]any{
			"id":          menu.ID.String(),
			"name":        menu.Name,
			"price":       menu.Price,
			"description": menu.Description,
		})
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"menus": menuList,
	})
}

// viewerFromParams parses the viewer position from the lat/lng query parameters.
func viewerFromParams(ctx echo.Context) (kernel.GeoPoint, error) {
	latParam := ctx.QueryParam("lat")
	lngParam := ctx.QueryParam("lng")
	if latParam == "" || lngParam == "" {
		return kernel.GeoPoint{}, errors.New("Viewer position is required: lat and lng query parameters")
	}

	lat, err := strconv.ParseFloat(latParam, 64)
	if err != nil {
		return kernel.GeoPoint{}, errors.New("Invalid lat: expected a decimal degree value")
	}
	lng, err := strconv.ParseFloat(lngParam, 64)
	if err != nil {
		return kernel.GeoPoint{}, errors.New("Invalid lng: expected a decimal degree value")
	}

	viewer, err := kernel.NewGeoPoint(lat, lng)
	if err != nil {
		return kernel.GeoPoint{}, err
	}
	return viewer, nil
}

// commandError maps a command handler error to the matching HTTP status.
func commandError(ctx echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return notFound(ctx, err.Error())
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	default:
		return internalError(ctx, fallback)
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func notFound(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusNotFound, Error{
		Code:    http.StatusNotFound,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}

// toOrderJSON maps an order aggregate to its JSON representation.
func toOrderJSON(aggregate *order.Order) Order {
	items := make([]OrderItem, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		var options []OrderOption
		for _, option := range item.Options() {
			options = append(options, OrderOption{Name: option.Name, Price: option.Price})
		}
		items = append(items, OrderItem{
			MenuID:   item.MenuID().String(),
			Name:     item.Name(),
			Price:    item.Price(),
			Quantity: item.Quantity(),
			Options:  options,
			Subtotal: item.Subtotal(),
		})
	}

	return Order{
		ID:         aggregate.ID().String(),
		StoreID:    aggregate.StoreID().String(),
		CustomerID: aggregate.CustomerID().String(),
		Status:     aggregate.Status().String(),
		CreatedAt:  aggregate.CreatedAt(),
		TotalPrice: aggregate.Total(),
		Items:      items,
	}
}

// toOrderListJSON maps read-model orders to their JSON representation.
func toOrderListJSON(orders []queries.OrderResponse) []map[string]any {
	return toOrderResponseListJSON(orders)
}

func toOrderResponseListJSON(orders []queries.OrderResponse) []map[string]any {
	list := make([]map[string]any, 0, len(orders))
	for _, orderResponse := range orders {
		items := make([]map[string]any, 0, len(orderResponse.Items))
		for _, item := range orderResponse.Items {
			options := make([]map[string]any, 0, len(item.Options))
			for _, option := range item.Options {
				options = append(options, map[string]any{
					"name":  option.Name,
					"price": option.Price,
				})
			}
			items = append(items, map[string]any{
				"menuId":   item.MenuID.String(),
				"name":     item.Name,
				"price":    item.Price,
				"quantity": item.Quantity,
				"options":  options,
				"subtotal": item.Subtotal,
			})
		}
		list = append(list, map[string]any{
			"id":         orderResponse.ID.String(),
			"customerId": orderResponse.CustomerID.String(),
			"status":     orderResponse.Status,
			"createdAt":  orderResponse.CreatedAt,
			"totalPrice": orderResponse.TotalPrice,
			"items":      items,
		})
	}
	return list
}

func toStoreListJSON(stores []queries.StoreResponse) []map[string]any {
	list := make([]map[string]any, 0, len(stores))
	for _, storeResponse := range stores {
		list = append(list, toStoreJSON(storeResponse))
	}
	return list
}

func toStoreJSON(storeResponse queries.StoreResponse) map[string]any {
	return map[string]any{
		"id":             storeResponse.ID.String(),
		"name":           storeResponse.Name,
		"address":        storeResponse.Address,
		"latitude":       storeResponse.Latitude,
		"longitude":      storeResponse.Longitude,
		"distanceMeters": storeResponse.DistanceMeters,
		"likeCount":      storeResponse.LikeCount,
		"likedByViewer":  storeResponse.LikedByViewer,
		"reviewCount":    storeResponse.ReviewCount,
	}
}
