package queries_test

import (
	"testing"
	"time"

	"ordertracker/internal/core/application/usecases/queries"
	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSearchOrdersQuery(t *testing.T) {
	t.Run("should create query without filters", func(t *testing.T) {
		query, err := queries.NewSearchOrdersQuery(nil, nil, nil, 0, 20)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Nil(t, query.Status())
		assert.Nil(t, query.From())
		assert.Nil(t, query.To())
		assert.Equal(t, 0, query.Page())
		assert.Equal(t, 20, query.Size())
	})

	t.Run("should create query with all filters", func(t *testing.T) {
		status := order.Created
		from := time.Now().UTC().Add(-time.Hour)
		to := time.Now().UTC()

		query, err := queries.NewSearchOrdersQuery(&status, &from, &to, 2, 50)

		require.NoError(t, err)
		require.Equal(t, order.Created, *query.Status())
		assert.Equal(t, from, *query.From())
		assert.Equal(t, to, *query.To())
		assert.Equal(t, 2, query.Page())
		assert.Equal(t, 50, query.Size())
	})

	t.Run("should reject negative page", func(t *testing.T) {
		_, err := queries.NewSearchOrdersQuery(nil, nil, nil, -1, 20)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject out-of-range sizes", func(t *testing.T) {
		for _, size := range []int{0, -5, queries.MaxPageSize + 1} {
			_, err := queries.NewSearchOrdersQuery(nil, nil, nil, 0, size)

			require.Error(t, err, "size %d should be rejected", size)
			assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})

	t.Run("should reject invalid status filter", func(t *testing.T) {
		status := order.Unknown

		_, err := queries.NewSearchOrdersQuery(&status, nil, nil, 0, 20)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value query fails validation", func(t *testing.T) {
		var query queries.SearchOrdersQuery

		err := query.Validate()

		require.Error(t, err)
		assert.Equal(t, queries.ErrSearchOrdersQueryIsNotConstructed, err)
	})
}
