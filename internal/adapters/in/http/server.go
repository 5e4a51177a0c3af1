// Package http exposes the order tracking API over HTTP using echo.
// Handlers translate requests into commands and queries, and map domain
// errors onto the uniform APIError envelope.
package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"ordertracker/internal/core/application/usecases/commands"
	"ordertracker/internal/core/application/usecases/queries"
	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	defaultPage = 0
	defaultSize = 20
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler

	getOrderHandler     queries.GetOrderQueryHandler
	searchOrdersHandler queries.SearchOrdersQueryHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	searchOrdersHandler queries.SearchOrdersQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		getOrderHandler:          getOrderHandler,
		searchOrdersHandler:      searchOrdersHandler,
		logger:                   logger.With("component", "http"),
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/orders", s.CreateOrder)
	e.GET("/orders", s.SearchOrders)
	e.GET("/orders/:id", s.GetOrder)
	e.PATCH("/orders/:id/status", s.UpdateOrderStatus)
	e.GET("/health", s.Health)
}

// CreateOrder handles POST /orders - creates a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return s.writeError(ctx, http.StatusBadRequest, "Bad Request", "invalid request body")
	}

	cmd, err := commands.NewCreateOrderCommand(req.CustomerID)
	if err != nil {
		return s.writeDomainError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(created))
}

// GetOrder handles GET /orders/:id - retrieves a single order.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.writeError(ctx, http.StatusBadRequest, "Bad Request", "invalid order id")
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.writeDomainError(ctx, err)
	}

	row, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, queryRowToResponse(row))
}

// UpdateOrderStatus handles PATCH /orders/:id/status - transitions an order
// to a new status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.writeError(ctx, http.StatusBadRequest, "Bad Request", "invalid order id")
	}

	var req UpdateOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return s.writeError(ctx, http.StatusBadRequest, "Bad Request", "invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return s.writeDomainError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(id, status)
	if err != nil {
		return s.writeDomainError(ctx, err)
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// SearchOrders handles GET /orders - retrieves a filtered, paginated page of
// orders. Supported query parameters: status, from, to (RFC 3339), page,
// size.
func (s *Server) SearchOrders(ctx echo.Context) error {
	var statusFilter *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := order.StatusFromString(raw)
		if err != nil {
			return s.writeDomainError(ctx, err)
		}
		statusFilter = &status
	}

	fromFilter, err := parseTimeParam(ctx.QueryParam("from"))
	if err != nil {
		return s.writeError(ctx, http.StatusBadRequest, "Bad Request", "invalid from timestamp")
	}

	toFilter, err := parseTimeParam(ctx.QueryParam("to"))
	if err != nil {
		return s.writeError(ctx, http.StatusBadRequest, "Bad Request", "invalid to timestamp")
	}

	page, err := parseIntParam(ctx.QueryParam("page"), defaultPage)
	if err != nil {
		return s.writeError(ctx, http.StatusBadRequest, "Bad Request", "invalid page")
	}

	size, err := parseIntParam(ctx.QueryParam("size"), defaultSize)
	if err != nil {
		return s.writeError(ctx, http.StatusBadRequest, "Bad Request", "invalid size")
	}

	query, err := queries.NewSearchOrdersQuery(statusFilter, fromFilter, toFilter, page, size)
	if err != nil {
		return s.writeDomainError(ctx, err)
	}

	result, err := s.searchOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, pageToResponse(result))
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// writeDomainError maps application and domain errors onto HTTP statuses.
func (s *Server) writeDomainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return s.writeError(ctx, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, order.ErrInvalidStatusTransition):
		return s.writeError(ctx, http.StatusConflict, "Conflict", err.Error())
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return s.writeError(ctx, http.StatusBadRequest, "Bad Request", err.Error())
	default:
		s.logger.Error("request failed",
			"path", ctx.Request().URL.Path,
			"error", err,
		)
		return s.writeError(ctx, http.StatusInternalServerError, "Internal Server Error", "unexpected error")
	}
}

func (s *Server) writeError(ctx echo.Context, status int, errText, message string) error {
	return ctx.JSON(status, APIError{
		Timestamp: time.Now().UTC(),
		Status:    status,
		Error:     errText,
		Message:   message,
		Path:      ctx.Request().URL.Path,
	})
}

func parseTimeParam(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}

	return &parsed, nil
}

func parseIntParam(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}

	return strconv.Atoi(raw)
}
