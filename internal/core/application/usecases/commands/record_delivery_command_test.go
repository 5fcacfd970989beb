package commands_test

import (
	"testing"

	"thalitrack/internal/core/application/usecases/commands"
	"thalitrack/internal/core/domain/model/kernel"
	"thalitrack/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecordDeliveryCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewRecordDeliveryCommand(id, 4, "Ravi", "morning batch")
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, 4, cmd.Quantity())
	assert.Equal(t, "Ravi", cmd.DeliveredBy())
	assert.Equal(t, "morning batch", cmd.Note())
}

func TestNewRecordDeliveryCommand_TrimsDelivererAndNote(t *testing.T) {
	cmd, err := commands.NewRecordDeliveryCommand(kernel.NewUUID(), 1, "  Ravi  ", "  note  ")
	require.NoError(t, err)
	assert.Equal(t, "Ravi", cmd.DeliveredBy())
	assert.Equal(t, "note", cmd.Note())
}

func TestNewRecordDeliveryCommand_EmptyNoteAllowed(t *testing.T) {
	cmd, err := commands.NewRecordDeliveryCommand(kernel.NewUUID(), 1, "Ravi", "")
	require.NoError(t, err)
	assert.Empty(t, cmd.Note())
}

func TestNewRecordDeliveryCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewRecordDeliveryCommand(kernel.UUID{}, 4, "Ravi", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewRecordDeliveryCommand_BlankDeliverer(t *testing.T) {
	_, err := commands.NewRecordDeliveryCommand(kernel.NewUUID(), 4, "   ", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrDelivererIsRequired)
}

func TestNewRecordDeliveryCommand_InvalidQuantity(t *testing.T) {
	for _, quantity := range []int{0, -3} {
		_, err := commands.NewRecordDeliveryCommand(kernel.NewUUID(), quantity, "Ravi", "")
		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrQuantityIsInvalid)
	}
}

func TestNewRecordDeliveryCommand_BlankDelivererReportedBeforeQuantity(t *testing.T) {
	_, err := commands.NewRecordDeliveryCommand(kernel.NewUUID(), 0, "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrDelivererIsRequired)
	assert.ErrorIs(t, err, order.ErrQuantityIsInvalid)
}

func TestRecordDeliveryCommand_NotConstructed(t *testing.T) {
	cmd := commands.RecordDeliveryCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrRecordDeliveryCommandIsNotConstructed)
}
