package services_test

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"thalitrack/internal/core/domain/model/order"
	"thalitrack/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVExporter_Export(t *testing.T) {
	exporter := services.NewCSVExporter()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("empty collection yields header only", func(t *testing.T) {
		out, err := exporter.Export(nil)

		require.NoError(t, err)
		records := parseCSV(t, out)
		require.Len(t, records, 1)
		assert.Equal(t, "Order ID", records[0][0])
		assert.Equal(t, "Status", records[0][7])
	})

	t.Run("renders one row per order in input order", func(t *testing.T) {
		regular := delivered(t, regularOrder(t, "Sunita", 10, now), 4)
		event := eventOrder(t, "Wedding Reception", 100, now)

		out, err := exporter.Export([]*order.Order{regular, event})

		require.NoError(t, err)
		records := parseCSV(t, out)
		require.Len(t, records, 3)

		regularRow := records[1]
		assert.Equal(t, regular.ID().String(), regularRow[0])
		assert.Equal(t, "regular", regularRow[1])
		assert.Equal(t, "Sunita", regularRow[2])
		assert.Equal(t, "9876543210", regularRow[3])
		assert.Equal(t, "10", regularRow[4])
		assert.Equal(t, "4", regularRow[5])
		assert.Equal(t, "6", regularRow[6])
		assert.Equal(t, "partially_delivered", regularRow[7])
		assert.Equal(t, now.Format(time.RFC3339), regularRow[8])
		assert.Empty(t, regularRow[9])  // no booker for regular orders
		assert.Empty(t, regularRow[10]) // no event date for regular orders

		eventRow := records[2]
		assert.Equal(t, "event", eventRow[1])
		assert.Equal(t, "Wedding Reception", eventRow[2])
		assert.Equal(t, "Asha", eventRow[9])
		assert.NotEmpty(t, eventRow[10])
	})

	t.Run("escapes names containing commas", func(t *testing.T) {
		o := regularOrder(t, `Sharma, Sunita "Didi"`, 5, now)

		out, err := exporter.Export([]*order.Order{o})

		require.NoError(t, err)
		records := parseCSV(t, out)
		require.Len(t, records, 2)
		assert.Equal(t, `Sharma, Sunita "Didi"`, records[1][2])
	})
}

func parseCSV(t *testing.T, raw string) [][]string {
	t.Helper()
	records, err := csv.NewReader(strings.NewReader(raw)).ReadAll()
	require.NoError(t, err)
	return records
}
