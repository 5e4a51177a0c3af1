package queries

import (
	"context"
	"errors"
	"time"

	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// orderRow is the read-side row shape scanned from the orders table.
type orderRow struct {
	ID         uuid.UUID
	CustomerID string
	Status     int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (r orderRow) toResponse() (OrderQueryResponse, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return OrderQueryResponse{}, err
	}

	return OrderQueryResponse{
		ID:         id,
		CustomerID: r.CustomerID,
		Status:     order.Status(r.Status),
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}, nil
}

// GetOrderQueryHandler retrieves a single order from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the lookup. Returns an ObjectNotFoundError when no order
// matches the requested identifier.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderQueryResponse{}, err
	}

	var row orderRow
	err := h.db.WithContext(ctx).
		Table("orders").
		Take(&row, "id = ?", query.OrderID().Bytes()).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return OrderQueryResponse{}, err
	}

	return row.toResponse()
}
