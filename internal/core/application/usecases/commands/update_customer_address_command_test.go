package commands_test

import (
	"testing"

	"bookstore/internal/core/application/usecases/commands"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateCustomerAddressCommand(t *testing.T) {
	t.Run("valid parameters", func(t *testing.T) {
		customerID := kernel.NewUUID()
		cmd, err := commands.NewUpdateCustomerAddressCommand(customerID, "9 Oak Ave")
		require.NoError(t, err)
		assert.True(t, cmd.CustomerID().IsEqual(customerID))
		assert.Equal(t, "9 Oak Ave", cmd.Address())
		assert.NoError(t, cmd.Validate())
	})

	t.Run("empty address", func(t *testing.T) {
		_, err := commands.NewUpdateCustomerAddressCommand(kernel.NewUUID(), "")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero customer id", func(t *testing.T) {
		_, err := commands.NewUpdateCustomerAddressCommand(kernel.UUID{}, "9 Oak Ave")
		require.Error(t, err)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.UpdateCustomerAddressCommand
		assert.ErrorIs(t, cmd.Validate(), commands.ErrUpdateCustomerAddressCommandIsNotConstructed)
	})
}
