package services

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"thalitrack/internal/core/domain/model/order"
)

// csvHeader is the fixed column set for order exports.
var csvHeader = []string{
	"Order ID",
	"Type",
	"Name",
	"Phone",
	"Total Quantity",
	"Delivered",
	"Remaining",
	"Status",
	"Created At",
	"Booker Name",
	"Event Date",
}

// CSVExporter is a domain service that formats a collection of orders as
// CSV for download. It is a pure formatting function over the order shape:
// no I/O, no mutation of the input.
type CSVExporter struct{}

// NewCSVExporter creates a new CSVExporter instance.
func NewCSVExporter() CSVExporter {
	return CSVExporter{}
}

// Export renders the orders, one row each in input order, preceded by the
// header row. Type-specific columns (booker name, event date) are empty
// for regular orders.
func (CSVExporter) Export(orders []*order.Order) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write(csvHeader); err != nil {
		return "", fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, o := range orders {
		eventDate := ""
		if o.Type() == order.TypeEvent {
			eventDate = o.EventAt().Format(time.RFC3339)
		}

		row := []string{
			o.ID().String(),
			o.Type().String(),
			o.DisplayName(),
			o.Phone().String(),
			strconv.Itoa(o.TotalQuantity()),
			strconv.Itoa(o.TotalDelivered()),
			strconv.Itoa(o.RemainingQuantity()),
			o.Status().String(),
			o.CreatedAt().Format(time.RFC3339),
			o.BookerName(),
			eventDate,
		}

		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("failed to write CSV row for order %s: %w", o.ID(), err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush CSV: %w", err)
	}

	return sb.String(), nil
}
