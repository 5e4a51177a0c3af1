package queries

import (
	"errors"
	"math"
	"time"

	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/pkg/errs"
	"ordertracker/internal/pkg/guard"
)

var ErrSearchOrdersQueryIsNotConstructed = errors.New(
	"SearchOrdersQuery must be created via NewSearchOrdersQuery constructor",
)

// Pagination bounds for the search endpoint.
const (
	MinPageSize = 1
	MaxPageSize = 100
)

// SearchOrdersQuery retrieves a filtered, paginated slice of orders.
// Filters compose conjunctively: each non-nil filter narrows the result set,
// omitted filters impose no constraint.
//
// Example:
//
//	status := order.Created
//	query, err := NewSearchOrdersQuery(&status, nil, nil, 0, 20)
//	if err != nil {
//	    return err
//	}
//
//	page, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("found %d orders total\n", page.TotalElements)
type SearchOrdersQuery struct {
	status *order.Status
	from   *time.Time
	to     *time.Time
	page   int
	size   int

	guard guard.ConstructorGuard
}

// NewSearchOrdersQuery creates a search query.
// Page is zero-based and must be non-negative; size must be within
// [MinPageSize, MaxPageSize]. A non-nil status filter must be a valid status.
func NewSearchOrdersQuery(
	status *order.Status,
	from, to *time.Time,
	page, size int,
) (SearchOrdersQuery, error) {
	if page < 0 {
		return SearchOrdersQuery{}, errs.NewValueIsOutOfRangeError("page", page, 0, math.MaxInt32)
	}
	if size < MinPageSize || size > MaxPageSize {
		return SearchOrdersQuery{}, errs.NewValueIsOutOfRangeError("size", size, MinPageSize, MaxPageSize)
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return SearchOrdersQuery{}, err
		}
	}

	return SearchOrdersQuery{
		status: status,
		from:   from,
		to:     to,
		page:   page,
		size:   size,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrSearchOrdersQueryIsNotConstructed if validation fails.
func (q SearchOrdersQuery) Validate() error {
	return q.guard.Validate(ErrSearchOrdersQueryIsNotConstructed)
}

// Status returns the optional status filter.
func (q SearchOrdersQuery) Status() *order.Status {
	return q.status
}

// From returns the optional lower bound on createdAt (inclusive).
func (q SearchOrdersQuery) From() *time.Time {
	return q.from
}

// To returns the optional upper bound on createdAt (inclusive).
func (q SearchOrdersQuery) To() *time.Time {
	return q.to
}

// Page returns the zero-based page index.
func (q SearchOrdersQuery) Page() int {
	return q.page
}

// Size returns the page size.
func (q SearchOrdersQuery) Size() int {
	return q.size
}

// SearchOrdersQueryResponse is the page envelope returned by the search.
type SearchOrdersQueryResponse struct {
	Items         []OrderQueryResponse
	Page          int
	Size          int
	TotalElements int64
	TotalPages    int
}
