package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("valid command", func(t *testing.T) {
		details := testOrderDetails(t)

		cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), details)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, details.Customer, cmd.Details().Customer)
		assert.Equal(t, details.Items, cmd.Details().Items)
	})

	t.Run("rejects zero order id", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.UUID{}, testOrderDetails(t))
		require.Error(t, err)
	})

	t.Run("rejects blank customer", func(t *testing.T) {
		details := testOrderDetails(t)
		details.Customer = "  "

		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), details)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects empty items", func(t *testing.T) {
		details := testOrderDetails(t)
		details.Items = nil

		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), details)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestCreateOrderCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.CreateOrderCommand

	err := cmd.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}
