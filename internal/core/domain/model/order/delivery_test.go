package order_test

import (
	"testing"
	"time"

	"thalitrack/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDelivery(t *testing.T) {
	now := time.Now().UTC()

	t.Run("should create valid delivery", func(t *testing.T) {
		d, err := order.NewDelivery(4, "Ravi", "first batch", now)

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.Equal(t, 4, d.Quantity())
		assert.Equal(t, "Ravi", d.DeliveredBy())
		assert.Equal(t, "first batch", d.Note())
		assert.Equal(t, now, d.DeliveredAt())
	})

	t.Run("should trim deliverer and note", func(t *testing.T) {
		d, err := order.NewDelivery(2, "  Sunil  ", "  half now  ", now)

		require.NoError(t, err)
		assert.Equal(t, "Sunil", d.DeliveredBy())
		assert.Equal(t, "half now", d.Note())
	})

	t.Run("should allow empty note", func(t *testing.T) {
		d, err := order.NewDelivery(2, "Sunil", "", now)

		require.NoError(t, err)
		assert.Empty(t, d.Note())
	})

	t.Run("should fail with empty deliverer", func(t *testing.T) {
		_, err := order.NewDelivery(2, "", "", now)

		require.ErrorIs(t, err, order.ErrDelivererIsRequired)
	})

	t.Run("should fail with whitespace-only deliverer", func(t *testing.T) {
		_, err := order.NewDelivery(2, "   ", "", now)

		require.ErrorIs(t, err, order.ErrDelivererIsRequired)
	})

	t.Run("should fail with zero quantity", func(t *testing.T) {
		_, err := order.NewDelivery(0, "Ravi", "", now)

		require.ErrorIs(t, err, order.ErrQuantityIsInvalid)
	})

	t.Run("should fail with negative quantity", func(t *testing.T) {
		_, err := order.NewDelivery(-3, "Ravi", "", now)

		require.ErrorIs(t, err, order.ErrQuantityIsInvalid)
	})

	t.Run("should check deliverer before quantity", func(t *testing.T) {
		// Both preconditions violated: the deliverer check fails first.
		_, err := order.NewDelivery(0, " ", "", now)

		require.ErrorIs(t, err, order.ErrDelivererIsRequired)
	})

	t.Run("should fail with zero timestamp", func(t *testing.T) {
		_, err := order.NewDelivery(2, "Ravi", "", time.Time{})

		require.ErrorIs(t, err, order.ErrDeliveredAtIsRequired)
	})
}

func TestDelivery_Validate(t *testing.T) {
	t.Run("should fail for zero value", func(t *testing.T) {
		var d order.Delivery

		err := d.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrDeliveryIsNotConstructed, err)
	})
}
