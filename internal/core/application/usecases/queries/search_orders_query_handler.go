package queries

import (
	"context"

	"gorm.io/gorm"
)

// SearchOrdersQueryHandler executes filtered, paginated order searches
// against the database.
//
// Example:
//
//	handler := NewSearchOrdersQueryHandler(db)
//	status := order.Created
//	query, _ := NewSearchOrdersQuery(&status, nil, nil, 0, 2)
//
//	page, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("page %d of %d\n", page.Page, page.TotalPages)
type SearchOrdersQueryHandler struct {
	db *gorm.DB
}

// NewSearchOrdersQueryHandler creates a handler for paged order searches.
// Requires a GORM database connection for query execution.
func NewSearchOrdersQueryHandler(db *gorm.DB) SearchOrdersQueryHandler {
	return SearchOrdersQueryHandler{db: db}
}

// Handle executes the search. Filters are applied conjunctively and results
// are sorted by creation time then id so that pagination is stable.
func (h SearchOrdersQueryHandler) Handle(
	ctx context.Context,
	query SearchOrdersQuery,
) (SearchOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return SearchOrdersQueryResponse{}, err
	}

	tx := h.db.WithContext(ctx).Table("orders")

	if status := query.Status(); status != nil {
		tx = tx.Where("status = ?", int(*status))
	}
	if from := query.From(); from != nil {
		tx = tx.Where("created_at >= ?", *from)
	}
	if to := query.To(); to != nil {
		tx = tx.Where("created_at <= ?", *to)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return SearchOrdersQueryResponse{}, err
	}

	rows := make([]orderRow, 0, query.Size())
	err := tx.
		Order("created_at ASC, id ASC").
		Offset(query.Page() * query.Size()).
		Limit(query.Size()).
		Find(&rows).
		Error
	if err != nil {
		return SearchOrdersQueryResponse{}, err
	}

	items := make([]OrderQueryResponse, 0, len(rows))
	for _, row := range rows {
		item, rowErr := row.toResponse()
		if rowErr != nil {
			return SearchOrdersQueryResponse{}, rowErr
		}
		items = append(items, item)
	}

	return SearchOrdersQueryResponse{
		Items:         items,
		Page:          query.Page(),
		Size:          query.Size(),
		TotalElements: total,
		TotalPages:    totalPages(total, query.Size()),
	}, nil
}

func totalPages(total int64, size int) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}
