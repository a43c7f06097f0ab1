// Package cart models the session-scoped shopping cart as last fetched from
// the ordering backend. The backend owns the cart: line totals arrive
// precomputed, and the only client-side derivation is summing them for the
// displayed grand total.
package cart

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is one product entry within a cart.
type LineItem struct {
	ID          int64
	UserSession string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Summary is the backend's aggregate view of a cart: the rounded total, the
// summed quantity across lines, and the number of distinct lines.
type Summary struct {
	Total     decimal.Decimal
	ItemCount int
	Lines     int
}

// Total sums the backend-computed line totals in order.
func Total(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.TotalPrice)
	}
	return total
}

// FormatTotal renders an amount with exactly two decimal digits.
func FormatTotal(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
