package commands_test

import (
	"testing"

	"bookstore/internal/core/application/usecases/commands"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterBookCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		id := kernel.NewUUID()

		cmd, err := commands.NewRegisterBookCommand(id, "Dune", "Herbert", 15.50)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.BookID().IsEqual(id))
		assert.Equal(t, "Dune", cmd.Title())
		assert.Equal(t, "Herbert", cmd.Author())
		assert.InDelta(t, 15.50, cmd.Price(), 0.001)
	})

	t.Run("should reject empty title", func(t *testing.T) {
		_, err := commands.NewRegisterBookCommand(kernel.NewUUID(), "", "Herbert", 15.50)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject empty author", func(t *testing.T) {
		_, err := commands.NewRegisterBookCommand(kernel.NewUUID(), "Dune", "", 15.50)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject negative price", func(t *testing.T) {
		_, err := commands.NewRegisterBookCommand(kernel.NewUUID(), "Dune", "Herbert", -0.01)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject zero value id", func(t *testing.T) {
		var id kernel.UUID
		_, err := commands.NewRegisterBookCommand(id, "Dune", "Herbert", 15.50)

		require.Error(t, err)
	})

	t.Run("should reject unconstructed command", func(t *testing.T) {
		var cmd commands.RegisterBookCommand

		assert.Equal(t, commands.ErrRegisterBookCommandIsNotConstructed, cmd.Validate())
	})
}
