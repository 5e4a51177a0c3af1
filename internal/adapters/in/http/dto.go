package http

import (
	"time"

	"ordertracker/internal/core/application/usecases/queries"
	"ordertracker/internal/core/domain/model/order"
)

// CreateOrderRequest is the body for POST /orders.
type CreateOrderRequest struct {
	CustomerID string `json:"customerId"`
}

// UpdateOrderStatusRequest is the body for PATCH /orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderResponse is the wire representation of a single order.
type OrderResponse struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customerId"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// PageResponse is the pagination envelope for order searches.
type PageResponse struct {
	Items         []OrderResponse `json:"items"`
	Page          int             `json:"page"`
	Size          int             `json:"size"`
	TotalElements int64           `json:"totalElements"`
	TotalPages    int             `json:"totalPages"`
}

// APIError is the uniform error envelope returned by every endpoint.
type APIError struct {
	Timestamp time.Time         `json:"timestamp"`
	Status    int               `json:"status"`
	Error     string            `json:"error"`
	Message   string            `json:"message"`
	Path      string            `json:"path"`
	Details   map[string]string `json:"details,omitempty"`
}

func orderToResponse(aggregate *order.Order) OrderResponse {
	return OrderResponse{
		ID:         aggregate.ID().String(),
		CustomerID: aggregate.CustomerID(),
		Status:     aggregate.Status().String(),
		CreatedAt:  aggregate.CreatedAt(),
		UpdatedAt:  aggregate.UpdatedAt(),
	}
}

func queryRowToResponse(row queries.OrderQueryResponse) OrderResponse {
	return OrderResponse{
		ID:         row.ID.String(),
		CustomerID: row.CustomerID,
		Status:     row.Status.String(),
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}

func pageToResponse(page queries.SearchOrdersQueryResponse) PageResponse {
	items := make([]OrderResponse, len(page.Items))
	for i, row := range page.Items {
		items[i] = queryRowToResponse(row)
	}

	return PageResponse{
		Items:         items,
		Page:          page.Page,
		Size:          page.Size,
		TotalElements: page.TotalElements,
		TotalPages:    page.TotalPages,
	}
}
