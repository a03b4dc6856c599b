package commands_test

import (
	"testing"

	"bookstore/internal/core/application/usecases/commands"
	"bookstore/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("valid parameters", func(t *testing.T) {
		orderID := kernel.NewUUID()
		bookID := kernel.NewUUID()
		customerID := kernel.NewUUID()

		cmd, err := commands.NewCreateOrderCommand(orderID, bookID, customerID)
		require.NoError(t, err)
		assert.True(t, cmd.OrderID().IsEqual(orderID))
		assert.True(t, cmd.BookID().IsEqual(bookID))
		assert.True(t, cmd.CustomerID().IsEqual(customerID))
		assert.NoError(t, cmd.Validate())
	})

	t.Run("zero order id", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID())
		require.Error(t, err)
	})

	t.Run("zero book id", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.UUID{}, kernel.NewUUID())
		require.Error(t, err)
	})

	t.Run("zero customer id", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.UUID{})
		require.Error(t, err)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.CreateOrderCommand
		assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
