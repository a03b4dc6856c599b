package queries_test

import (
	"testing"

	"bookstore/internal/core/application/usecases/queries"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFindBookQuery(t *testing.T) {
	t.Run("valid parameters", func(t *testing.T) {
		query, err := queries.NewFindBookQuery("Dune", "Herbert")
		require.NoError(t, err)
		assert.Equal(t, "Dune", query.Title())
		assert.Equal(t, "Herbert", query.Author())
		assert.NoError(t, query.Validate())
	})

	t.Run("empty title", func(t *testing.T) {
		_, err := queries.NewFindBookQuery("", "Herbert")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("empty author", func(t *testing.T) {
		_, err := queries.NewFindBookQuery("Dune", "")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value query fails validation", func(t *testing.T) {
		var query queries.FindBookQuery
		assert.ErrorIs(t, query.Validate(), queries.ErrFindBookQueryIsNotConstructed)
	})
}

func TestNewFindCustomerQuery(t *testing.T) {
	t.Run("valid parameters", func(t *testing.T) {
		query, err := queries.NewFindCustomerQuery("Alice", "1 Main St")
		require.NoError(t, err)
		assert.Equal(t, "Alice", query.Name())
		assert.Equal(t, "1 Main St", query.Address())
		assert.NoError(t, query.Validate())
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := queries.NewFindCustomerQuery("", "1 Main St")
		require.Error(t, err)
	})

	t.Run("empty address", func(t *testing.T) {
		_, err := queries.NewFindCustomerQuery("Alice", "")
		require.Error(t, err)
	})

	t.Run("zero value query fails validation", func(t *testing.T) {
		var query queries.FindCustomerQuery
		assert.ErrorIs(t, query.Validate(), queries.ErrFindCustomerQueryIsNotConstructed)
	})
}

func TestNewGetBookPriceQuery(t *testing.T) {
	t.Run("valid parameters", func(t *testing.T) {
		query, err := queries.NewGetBookPriceQuery("Dune", "Herbert")
		require.NoError(t, err)
		assert.NoError(t, query.Validate())
	})

	t.Run("empty natural key parts", func(t *testing.T) {
		_, err := queries.NewGetBookPriceQuery("", "Herbert")
		require.Error(t, err)

		_, err = queries.NewGetBookPriceQuery("Dune", "")
		require.Error(t, err)
	})

	t.Run("zero value query fails validation", func(t *testing.T) {
		var query queries.GetBookPriceQuery
		assert.ErrorIs(t, query.Validate(), queries.ErrGetBookPriceQueryIsNotConstructed)
	})
}

func TestNewGetCustomerAddressQuery(t *testing.T) {
	t.Run("valid customer id", func(t *testing.T) {
		customerID := kernel.NewUUID()
		query, err := queries.NewGetCustomerAddressQuery(customerID)
		require.NoError(t, err)
		assert.True(t, query.CustomerID().IsEqual(customerID))
		assert.NoError(t, query.Validate())
	})

	t.Run("zero customer id", func(t *testing.T) {
		_, err := queries.NewGetCustomerAddressQuery(kernel.UUID{})
		require.Error(t, err)
	})
}

func TestNewGetCustomerBalanceQuery(t *testing.T) {
	t.Run("valid customer id", func(t *testing.T) {
		query, err := queries.NewGetCustomerBalanceQuery(kernel.NewUUID())
		require.NoError(t, err)
		assert.NoError(t, query.Validate())
	})

	t.Run("zero customer id", func(t *testing.T) {
		_, err := queries.NewGetCustomerBalanceQuery(kernel.UUID{})
		require.Error(t, err)
	})
}

func TestNewGetShipmentStatusQuery(t *testing.T) {
	t.Run("valid parameters", func(t *testing.T) {
		query, err := queries.NewGetShipmentStatusQuery("Dune", "Herbert", "Alice", "1 Main St")
		require.NoError(t, err)
		assert.Equal(t, "Dune", query.Title())
		assert.Equal(t, "Herbert", query.Author())
		assert.Equal(t, "Alice", query.Name())
		assert.Equal(t, "1 Main St", query.Address())
		assert.NoError(t, query.Validate())
	})

	t.Run("any empty part fails", func(t *testing.T) {
		cases := [][4]string{
			{"", "Herbert", "Alice", "1 Main St"},
			{"Dune", "", "Alice", "1 Main St"},
			{"Dune", "Herbert", "", "1 Main St"},
			{"Dune", "Herbert", "Alice", ""},
		}
		for _, c := range cases {
			_, err := queries.NewGetShipmentStatusQuery(c[0], c[1], c[2], c[3])
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		}
	})
}

func TestNewIsOrderShippedQuery(t *testing.T) {
	t.Run("valid order id", func(t *testing.T) {
		orderID := kernel.NewUUID()
		query, err := queries.NewIsOrderShippedQuery(orderID)
		require.NoError(t, err)
		assert.True(t, query.OrderID().IsEqual(orderID))
		assert.NoError(t, query.Validate())
	})

	t.Run("zero order id", func(t *testing.T) {
		_, err := queries.NewIsOrderShippedQuery(kernel.UUID{})
		require.Error(t, err)
	})
}

func TestNewGetOrderStatusReportQuery(t *testing.T) {
	t.Run("valid ids", func(t *testing.T) {
		customerID := kernel.NewUUID()
		bookID := kernel.NewUUID()
		query, err := queries.NewGetOrderStatusReportQuery(customerID, bookID)
		require.NoError(t, err)
		assert.True(t, query.CustomerID().IsEqual(customerID))
		assert.True(t, query.BookID().IsEqual(bookID))
		assert.NoError(t, query.Validate())
	})

	t.Run("zero ids", func(t *testing.T) {
		_, err := queries.NewGetOrderStatusReportQuery(kernel.UUID{}, kernel.NewUUID())
		require.Error(t, err)

		_, err = queries.NewGetOrderStatusReportQuery(kernel.NewUUID(), kernel.UUID{})
		require.Error(t, err)
	})
}

func TestNewGetUnshippedOrdersQuery(t *testing.T) {
	query := queries.NewGetUnshippedOrdersQuery()
	require.NoError(t, query.Validate())

	var zero queries.GetUnshippedOrdersQuery
	assert.ErrorIs(t, zero.Validate(), queries.ErrGetUnshippedOrdersQueryIsNotConstructed)
}
