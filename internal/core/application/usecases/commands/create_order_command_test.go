package commands_test

import (
	"testing"

	"ordermanagement/internal/core/application/usecases/commands"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(1, 2)
	require.NoError(t, err)
	assert.Equal(t, kernel.ID(1), cmd.UserID())
	assert.Equal(t, kernel.ID(2), cmd.CarID())
	require.NoError(t, cmd.Validate())
}

func TestNewCreateOrderCommand_InvalidReferences(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(0, -1)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "userId")
	assert.Contains(t, err.Error(), "carId")
}

func TestCreateOrderCommand_ZeroValueIsNotConstructed(t *testing.T) {
	var cmd commands.CreateOrderCommand
	assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
