// Package http exposes the kitchen service over a JSON API built on Echo.
// Handlers translate requests into commands and queries, and map domain
// errors onto HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/application/usecases/queries"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// StatsSnapshotProvider serves the cached day-window statistics computed by
// the background refresh job.
type StatsSnapshotProvider interface {
	StatsSnapshot() *queries.GetKitchenStatsQueryResponse
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler     commands.CreateOrderCommandHandler
	transitionOrderHandler commands.TransitionOrderCommandHandler

	// Query handlers
	getActiveOrdersHandler     queries.GetActiveOrdersQueryHandler
	getOrderTimingHandler      queries.GetOrderTimingQueryHandler
	getKitchenStatsHandler     queries.GetKitchenStatsQueryHandler
	getHistoryHandler          queries.GetHistoryQueryHandler
	getStaffHandler            queries.GetStaffQueryHandler
	getStaffPerformanceHandler queries.GetStaffPerformanceQueryHandler
	statsSnapshotProvider      StatsSnapshotProvider
}

// NewServer creates a new HTTP server with the required command and query handlers.
// The snapshot provider may be nil, in which case every stats request is
// computed fresh.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	transitionOrderHandler commands.TransitionOrderCommandHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getOrderTimingHandler queries.GetOrderTimingQueryHandler,
	getKitchenStatsHandler queries.GetKitchenStatsQueryHandler,
	getHistoryHandler queries.GetHistoryQueryHandler,
	getStaffHandler queries.GetStaffQueryHandler,
	getStaffPerformanceHandler queries.GetStaffPerformanceQueryHandler,
	statsSnapshotProvider StatsSnapshotProvider,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		transitionOrderHandler:     transitionOrderHandler,
		getActiveOrdersHandler:     getActiveOrdersHandler,
		getOrderTimingHandler:      getOrderTimingHandler,
		getKitchenStatsHandler:     getKitchenStatsHandler,
		getHistoryHandler:          getHistoryHandler,
		getStaffHandler:            getStaffHandler,
		getStaffPerformanceHandler: getStaffPerformanceHandler,
		statsSnapshotProvider:      statsSnapshotProvider,
	}
}

// RegisterRoutes wires all endpoints onto the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetActiveOrders)
	api.POST("/orders/:id/transition", s.TransitionOrder)
	api.GET("/orders/:id/timing", s.GetOrderTiming)
	api.GET("/stats", s.GetKitchenStats)
	api.GET("/history", s.GetHistory)
	api.GET("/staff", s.GetStaff)
	api.GET("/staff/:id/performance", s.GetStaffPerformance)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders - registers a new kitchen order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	origin, err := order.OriginFromString(request.Origin)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid origin: "+err.Error())
	}

	priority, err := order.PriorityFromString(request.Priority)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid priority: "+err.Error())
	}

	items := make([]order.LineItem, 0, len(request.Items))
	for _, itemRequest := range request.Items {
		item, itemErr := order.NewLineItem(
			itemRequest.Name,
			itemRequest.Quantity,
			itemRequest.Notes,
			itemRequest.Modifiers,
		)
		if itemErr != nil {
			return errorJSON(ctx, http.StatusBadRequest, "Invalid line item: "+itemErr.Error())
		}
		items = append(items, item)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		request.OrderNumber,
		origin,
		request.TableRef,
		items,
		priority,
		request.EstimatedPrepMinutes,
	)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// TransitionOrder handles POST /api/v1/orders/:id/transition - advances an
// order to its next lifecycle status. Requesting the current status is an
// idempotent no-op; skipping ahead or moving backward yields 409.
func (s *Server) TransitionOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id")
	}

	var request TransitionRequest
	if err = ctx.Bind(&request); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	target, err := order.StatusFromString(request.Target)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid target status: "+err.Error())
	}

	var staffID *kernel.UUID
	if request.StaffID != "" {
		id, staffErr := kernel.UUIDFromString(request.StaffID)
		if staffErr != nil {
			return errorJSON(ctx, http.StatusBadRequest, "Invalid staff id")
		}
		staffID = &id
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, target, staffID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid transition data: "+err.Error())
	}

	aggregate, err := s.transitionOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err, "Failed to transition order")
	}

	return ctx.JSON(http.StatusOK, aggregateToResponse(aggregate))
}

// GetActiveOrders handles GET /api/v1/orders - the active board with timing.
// An optional status query parameter narrows the board to one status.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	var query queries.GetActiveOrdersQuery

	if statusParam := ctx.QueryParam("status"); statusParam != "" {
		status, err := order.StatusFromString(statusParam)
		if err != nil {
			return errorJSON(ctx, http.StatusBadRequest, "Invalid status filter: "+err.Error())
		}
		query, err = queries.NewGetActiveOrdersQueryWithStatus(status)
		if err != nil {
			return errorJSON(ctx, http.StatusBadRequest, "Invalid status filter: "+err.Error())
		}
	} else {
		query = queries.NewGetActiveOrdersQuery()
	}

	board, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err, "Failed to retrieve orders")
	}

	response := make([]OrderResponse, 0, len(board))
	for _, item := range board {
		response = append(response, activeOrderToResponse(item))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderTiming handles GET /api/v1/orders/:id/timing - the live timing
// evaluation for one active order.
func (s *Server) GetOrderTiming(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id")
	}

	query, err := queries.NewGetOrderTimingQuery(orderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid timing query: "+err.Error())
	}

	view, err := s.getOrderTimingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err, "Failed to evaluate order timing")
	}

	return ctx.JSON(http.StatusOK, timingToResponse(view))
}

// GetKitchenStats handles GET /api/v1/stats - aggregated metrics.
// Accepts optional from/to bounds (RFC 3339) and a staff_id scope. With no
// parameters the cached current-day snapshot is served when available.
func (s *Server) GetKitchenStats(ctx echo.Context) error {
	from, to, staffID, err := statsParams(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	if from == nil && to == nil && staffID == nil && s.statsSnapshotProvider != nil {
		if snapshot := s.statsSnapshotProvider.StatsSnapshot(); snapshot != nil {
			return ctx.JSON(http.StatusOK, statsToResponse(*snapshot))
		}
	}

	query, err := queries.NewGetKitchenStatsQuery(from, to, staffID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid stats query: "+err.Error())
	}

	response, err := s.getKitchenStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err, "Failed to compute statistics")
	}

	return ctx.JSON(http.StatusOK, statsToResponse(response))
}

// GetHistory handles GET /api/v1/history - the append-only cooking history
// feed. Accepts the same from/to/staff_id parameters as the stats endpoint.
func (s *Server) GetHistory(ctx echo.Context) error {
	from, to, staffID, err := statsParams(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	query, err := queries.NewGetHistoryQuery(from, to, staffID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid history query: "+err.Error())
	}

	feed, err := s.getHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err, "Failed to read history")
	}

	response := make([]HistoryRecordResponse, 0, len(feed))
	for _, record := range feed {
		response = append(response, historyRecordToResponse(record))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetStaff handles GET /api/v1/staff - the roster of members orders can be
// attributed to.
func (s *Server) GetStaff(ctx echo.Context) error {
	roster, err := s.getStaffHandler.Handle(ctx.Request().Context(), queries.NewGetStaffQuery())
	if err != nil {
		return domainError(ctx, err, "Failed to retrieve staff roster")
	}

	response := make([]StaffResponse, 0, len(roster))
	for _, member := range roster {
		response = append(response, staffToResponse(member))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetStaffPerformance handles GET /api/v1/staff/:id/performance - one roster
// member's metrics and performance score. Accepts optional from/to bounds
// (RFC 3339); unknown members yield 404.
func (s *Server) GetStaffPerformance(ctx echo.Context) error {
	staffID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid staff id")
	}

	from, to, _, err := statsParams(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	query, err := queries.NewGetStaffPerformanceQuery(staffID, from, to)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid performance query: "+err.Error())
	}

	response, err := s.getStaffPerformanceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err, "Failed to evaluate staff performance")
	}

	return ctx.JSON(http.StatusOK, performanceToResponse(response))
}

// statsParams parses the shared from/to/staff_id query parameters.
func statsParams(ctx echo.Context) (from, to *time.Time, staffID *kernel.UUID, err error) {
	if fromParam := ctx.QueryParam("from"); fromParam != "" {
		parsed, parseErr := time.Parse(time.RFC3339, fromParam)
		if parseErr != nil {
			return nil, nil, nil, errors.New("invalid from parameter, expected RFC 3339")
		}
		from = &parsed
	}

	if toParam := ctx.QueryParam("to"); toParam != "" {
		parsed, parseErr := time.Parse(time.RFC3339, toParam)
		if parseErr != nil {
			return nil, nil, nil, errors.New("invalid to parameter, expected RFC 3339")
		}
		to = &parsed
	}

	if staffParam := ctx.QueryParam("staff_id"); staffParam != "" {
		parsed, parseErr := kernel.UUIDFromString(staffParam)
		if parseErr != nil {
			return nil, nil, nil, errors.New("invalid staff_id parameter")
		}
		staffID = &parsed
	}

	return from, to, staffID, nil
}

// domainError maps domain errors onto HTTP status codes.
func domainError(ctx echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrInvalidTransition):
		return errorJSON(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrPreconditionFailed):
		return errorJSON(ctx, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	default:
		return errorJSON(ctx, http.StatusInternalServerError, fallback)
	}
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: message,
	})
}
