// Package http exposes the order tracking use cases over a REST API.
// It coordinates between HTTP handlers and application use cases.
package http

import (
	"errors"
	"net/http"
	"time"

	"thalitrack/internal/core/application/usecases/commands"
	"thalitrack/internal/core/domain/model/kernel"
	"thalitrack/internal/core/domain/model/order"
	"thalitrack/internal/core/domain/services"
	"thalitrack/internal/core/ports"
	"thalitrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const dateOnlyLayout = "2006-01-02"

// Server handles HTTP requests for the order tracking API.
type Server struct {
	// Command handlers
	createOrderHandler    commands.CreateOrderCommandHandler
	recordDeliveryHandler commands.RecordDeliveryCommandHandler

	// Read side
	orders    ports.OrderRepository
	browser   services.OrderBrowser
	analytics services.AnalyticsCalculator
	exporter  services.CSVExporter
}

// NewServer creates a new HTTP server with the required command handlers and
// read-side dependencies.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	recordDeliveryHandler commands.RecordDeliveryCommandHandler,
	orders ports.OrderRepository,
) *Server {
	return &Server{
		createOrderHandler:    createOrderHandler,
		recordDeliveryHandler: recordDeliveryHandler,
		orders:                orders,
		browser:               services.NewOrderBrowser(),
		analytics:             services.NewAnalyticsCalculator(),
		exporter:              services.NewCSVExporter(),
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders/regular", s.CreateRegularOrder)
	api.POST("/orders/event", s.CreateEventOrder)
	api.GET("/orders", s.BrowseOrders)
	api.GET("/orders/analytics", s.GetAnalytics)
	api.GET("/orders/export", s.ExportOrders)
	api.POST("/orders/:id/deliveries", s.RecordDelivery)
}

// Error is the JSON error payload returned by all endpoints.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateRegularOrderRequest is the body for POST /api/v1/orders/regular.
type CreateRegularOrderRequest struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	ThaliCount int    `json:"thali_count"`
}

// CreateEventOrderRequest is the body for POST /api/v1/orders/event.
type CreateEventOrderRequest struct {
	EventName  string `json:"event_name"`
	BookerName string `json:"booker_name"`
	Phone      string `json:"phone"`
	GuestCount int    `json:"guest_count"`
	EventDate  string `json:"event_date"`
}

// RecordDeliveryRequest is the body for POST /api/v1/orders/:id/deliveries.
type RecordDeliveryRequest struct {
	Quantity    int    `json:"quantity"`
	DeliveredBy string `json:"delivered_by"`
	Note        string `json:"note"`
}

// OrderCreatedResponse returns the identifier assigned to a new order.
type OrderCreatedResponse struct {
	ID string `json:"id"`
}

// DeliveryResponse represents one recorded delivery.
type DeliveryResponse struct {
	Quantity    int    `json:"quantity"`
	DeliveredBy string `json:"delivered_by"`
	Note        string `json:"note,omitempty"`
	DeliveredAt string `json:"delivered_at"`
}

// OrderResponse represents an order with its delivery history.
type OrderResponse struct {
	ID                string             `json:"id"`
	Type              string             `json:"type"`
	Name              string             `json:"name"`
	BookerName        string             `json:"booker_name,omitempty"`
	Phone             string             `json:"phone"`
	EventDate         string             `json:"event_date,omitempty"`
	TotalQuantity     int                `json:"total_quantity"`
	DeliveredQuantity int                `json:"delivered_quantity"`
	RemainingQuantity int                `json:"remaining_quantity"`
	Status            string             `json:"status"`
	CreatedAt         string             `json:"created_at"`
	Deliveries        []DeliveryResponse `json:"deliveries"`
}

// AnalyticsResponse summarizes the order history.
type AnalyticsResponse struct {
	TotalOrders         int     `json:"total_orders"`
	CompletedOrders     int     `json:"completed_orders"`
	PendingOrders       int     `json:"pending_orders"`
	PartialOrders       int     `json:"partial_orders"`
	TotalQuantity       int     `json:"total_quantity"`
	DeliveredQuantity   int     `json:"delivered_quantity"`
	CompletionRate      float64 `json:"completion_rate"`
	DeliveryRate        float64 `json:"delivery_rate"`
	AvgQuantityPerOrder float64 `json:"avg_quantity_per_order"`
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateRegularOrder handles POST /api/v1/orders/regular.
func (s *Server) CreateRegularOrder(ctx echo.Context) error {
	var req CreateRegularOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	phone, err := kernel.NewPhone(req.Phone)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateRegularOrderCommand(orderID, req.Name, phone, req.ThaliCount)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorJSON(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, OrderCreatedResponse{ID: orderID.String()})
}

// CreateEventOrder handles POST /api/v1/orders/event.
func (s *Server) CreateEventOrder(ctx echo.Context) error {
	var req CreateEventOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	phone, err := kernel.NewPhone(req.Phone)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	eventAt, err := parseEventDate(req.EventDate)
	if err != nil {
		return badRequest(ctx, "Invalid event date: "+req.EventDate)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateEventOrderCommand(
		orderID, req.EventName, req.BookerName, phone, req.GuestCount, eventAt)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorJSON(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, OrderCreatedResponse{ID: orderID.String()})
}

// BrowseOrders handles GET /api/v1/orders - filtered, searched, sorted listing.
func (s *Server) BrowseOrders(ctx echo.Context) error {
	criteria, err := browseCriteriaFromQuery(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orders, err := s.orders.GetAll(ctx.Request().Context())
	if err != nil {
		return errorJSON(ctx, err)
	}

	visible := s.browser.Browse(orders, criteria)
	response := make([]OrderResponse, len(visible))
	for i, o := range visible {
		response[i] = toOrderResponse(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAnalytics handles GET /api/v1/orders/analytics.
func (s *Server) GetAnalytics(ctx echo.Context) error {
	orders, err := s.orders.GetAll(ctx.Request().Context())
	if err != nil {
		return errorJSON(ctx, err)
	}

	summary := s.analytics.Calculate(orders)
	return ctx.JSON(http.StatusOK, AnalyticsResponse{
		TotalOrders:         summary.Total,
		CompletedOrders:     summary.Completed,
		PendingOrders:       summary.Pending,
		PartialOrders:       summary.Partial,
		TotalQuantity:       summary.TotalQuantity,
		DeliveredQuantity:   summary.DeliveredQuantity,
		CompletionRate:      summary.CompletionRate,
		DeliveryRate:        summary.DeliveryRate,
		AvgQuantityPerOrder: summary.AvgQuantityPerOrder,
	})
}

// ExportOrders handles GET /api/v1/orders/export - CSV download.
// Accepts the same filter and sort params as the listing endpoint, so the
// download matches what is on screen.
func (s *Server) ExportOrders(ctx echo.Context) error {
	criteria, err := browseCriteriaFromQuery(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orders, err := s.orders.GetAll(ctx.Request().Context())
	if err != nil {
		return errorJSON(ctx, err)
	}

	csvData, err := s.exporter.Export(s.browser.Browse(orders, criteria))
	if err != nil {
		return errorJSON(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="orders.csv"`)
	return ctx.Blob(http.StatusOK, "text/csv", []byte(csvData))
}

// RecordDelivery handles POST /api/v1/orders/:id/deliveries.
func (s *Server) RecordDelivery(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+ctx.Param("id"))
	}

	var req RecordDeliveryRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRecordDeliveryCommand(orderID, req.Quantity, req.DeliveredBy, req.Note)
	if err != nil {
		return badRequest(ctx, "Invalid delivery data: "+err.Error())
	}

	if handleErr := s.recordDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorJSON(ctx, handleErr)
	}

	updated, err := s.orders.Get(ctx.Request().Context(), orderID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}

func browseCriteriaFromQuery(ctx echo.Context) (services.BrowseCriteria, error) {
	criteria := services.BrowseCriteria{
		SearchTerm: ctx.QueryParam("search"),
	}

	if raw := ctx.QueryParam("type"); raw != "" {
		orderType, err := order.TypeFromString(raw)
		if err != nil {
			return services.BrowseCriteria{}, err
		}
		criteria.Type = orderType
	}

	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := order.StatusFromString(raw)
		if err != nil {
			return services.BrowseCriteria{}, err
		}
		criteria.Status = status
	}

	sortKey, err := services.SortKeyFromString(ctx.QueryParam("sort_by"))
	if err != nil {
		return services.BrowseCriteria{}, err
	}
	criteria.SortKey = sortKey

	sortDir, err := services.SortDirectionFromString(ctx.QueryParam("sort_dir"))
	if err != nil {
		return services.BrowseCriteria{}, err
	}
	criteria.SortDirection = sortDir

	return criteria, nil
}

func parseEventDate(raw string) (time.Time, error) {
	if at, err := time.Parse(time.RFC3339, raw); err == nil {
		return at, nil
	}
	return time.Parse(dateOnlyLayout, raw)
}

func toOrderResponse(o *order.Order) OrderResponse {
	deliveries := o.Deliveries()
	deliveryResponses := make([]DeliveryResponse, len(deliveries))
	for i, d := range deliveries {
		deliveryResponses[i] = DeliveryResponse{
			Quantity:    d.Quantity(),
			DeliveredBy: d.DeliveredBy(),
			Note:        d.Note(),
			DeliveredAt: d.DeliveredAt().Format(time.RFC3339),
		}
	}

	response := OrderResponse{
		ID:                o.ID().String(),
		Type:              o.Type().String(),
		Name:              o.DisplayName(),
		BookerName:        o.BookerName(),
		Phone:             o.Phone().String(),
		TotalQuantity:     o.TotalQuantity(),
		DeliveredQuantity: o.TotalDelivered(),
		RemainingQuantity: o.RemainingQuantity(),
		Status:            o.Status().String(),
		CreatedAt:         o.CreatedAt().Format(time.RFC3339),
		Deliveries:        deliveryResponses,
	}

	if at := o.EventAt(); !at.IsZero() {
		response.EventDate = at.Format(time.RFC3339)
	}

	return response
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorJSON maps use case failures onto HTTP status codes: over-delivery is a
// conflict with the order's current state, unknown orders map to not found,
// domain validation failures map to bad request, everything else is a server error.
func errorJSON(ctx echo.Context, err error) error {
	var notFound *errs.ObjectNotFoundError

	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, order.ErrOverDelivery):
		code = http.StatusConflict
	case errors.As(err, &notFound) || errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case isValidationError(err):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}

func isValidationError(err error) bool {
	for _, sentinel := range []error{
		errs.ErrValueIsInvalid,
		errs.ErrValueIsRequired,
		errs.ErrValueIsOutOfRange,
		order.ErrDelivererIsRequired,
		order.ErrQuantityIsInvalid,
		order.ErrDeliveredAtIsRequired,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
