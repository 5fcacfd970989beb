package services

import (
	"fmt"
	"sort"
	"strings"

	"thalitrack/internal/core/domain/model/order"
	"thalitrack/internal/pkg/errs"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the attribute orders are sorted by.
type SortKey int

const (
	// SortByDate sorts by creation timestamp. This is the default.
	SortByDate SortKey = iota

	// SortByQuantity sorts by total quantity.
	SortByQuantity

	// SortByName sorts by display name using locale-aware comparison.
	SortByName
)

// SortKeyFromString parses a sort key from its request representation
// ("date", "quantity", "name"). The empty string maps to SortByDate.
func SortKeyFromString(s string) (SortKey, error) {
	switch s {
	case "", "date":
		return SortByDate, nil
	case "quantity":
		return SortByQuantity, nil
	case "name":
		return SortByName, nil
	default:
		return SortByDate, errs.NewValueIsInvalidErrorWithCause("sortBy",
			fmt.Errorf("%q is not a valid sort key", s))
	}
}

// SortDirection selects ascending or descending sort order.
type SortDirection int

const (
	// SortDescending is the default direction.
	SortDescending SortDirection = iota

	// SortAscending reverses the default direction.
	SortAscending
)

// SortDirectionFromString parses a direction from its request representation
// ("asc", "desc"). The empty string maps to SortDescending.
func SortDirectionFromString(s string) (SortDirection, error) {
	switch s {
	case "", "desc":
		return SortDescending, nil
	case "asc":
		return SortAscending, nil
	default:
		return SortDescending, errs.NewValueIsInvalidErrorWithCause("sortDir",
			fmt.Errorf("%q is not a valid sort direction", s))
	}
}

// BrowseCriteria describes how a collection of orders is narrowed and
// arranged for display. The zero value applies no filtering, matches
// everything, and sorts by creation date descending.
type BrowseCriteria struct {
	// Type narrows to one booking variant. TypeUnknown means all types.
	Type order.Type

	// Status narrows to one fulfillment status. StatusUnknown means all.
	Status order.Status

	// SearchTerm is matched case-insensitively as a substring of the
	// display name, or as a substring of the phone digits. Empty matches
	// everything.
	SearchTerm string

	// SortKey and SortDirection arrange the result.
	SortKey       SortKey
	SortDirection SortDirection
}

// OrderBrowser is a domain service that filters, searches, and sorts a
// collection of orders for display.
//
// Browsing is pure and non-mutating: it returns a new slice and never
// reorders or alters the input. Sorting is stable, so orders with equal
// keys keep their relative input order. Name comparison is locale-aware.
//
// Example usage:
//
//	browser := NewOrderBrowser()
//	visible := browser.Browse(orders, BrowseCriteria{
//	    Status:     order.StatusPending,
//	    SearchTerm: "sun",
//	})
type OrderBrowser struct {
	collator *collate.Collator
}

// NewOrderBrowser creates a browser with an English collator for
// locale-aware, case-insensitive name ordering.
func NewOrderBrowser() OrderBrowser {
	return OrderBrowser{
		collator: collate.New(language.English, collate.Loose),
	}
}

// Browse returns the orders matching the criteria, arranged by its sort
// key and direction. The input collection and its elements are left
// untouched.
func (b OrderBrowser) Browse(orders []*order.Order, criteria BrowseCriteria) []*order.Order {
	result := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if b.matches(o, criteria) {
			result = append(result, o)
		}
	}

	b.arrange(result, criteria)
	return result
}

func (b OrderBrowser) matches(o *order.Order, criteria BrowseCriteria) bool {
	if criteria.Type != order.TypeUnknown && o.Type() != criteria.Type {
		return false
	}

	if criteria.Status != order.StatusUnknown && o.Status() != criteria.Status {
		return false
	}

	term := strings.TrimSpace(criteria.SearchTerm)
	if term == "" {
		return true
	}

	name := strings.ToLower(o.DisplayName())
	if strings.Contains(name, strings.ToLower(term)) {
		return true
	}

	return strings.Contains(o.Phone().String(), term)
}

func (b OrderBrowser) arrange(orders []*order.Order, criteria BrowseCriteria) {
	multiplier := -1
	if criteria.SortDirection == SortAscending {
		multiplier = 1
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return b.compare(orders[i], orders[j], criteria.SortKey)*multiplier < 0
	})
}

func (b OrderBrowser) compare(left, right *order.Order, key SortKey) int {
	switch key {
	case SortByQuantity:
		return left.TotalQuantity() - right.TotalQuantity()
	case SortByName:
		return b.collator.CompareString(left.DisplayName(), right.DisplayName())
	case SortByDate:
		return left.CreatedAt().Compare(right.CreatedAt())
	default:
		return left.CreatedAt().Compare(right.CreatedAt())
	}
}
