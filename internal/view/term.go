// Package view renders cart state and user feedback for the terminal: the
// cart display area, transient notices, confirmations, and the checkout form.
package view

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/saladworks/cartctl/internal/domain/cart"
)

// Term renders the cart display area to a writer.
type Term struct {
	w    io.Writer
	rows int
}

// NewTerm creates a terminal cart view writing to w.
func NewTerm(w io.Writer) *Term {
	return &Term{w: w}
}

// ShowCart renders one row per line item and the grand total with two
// decimal digits.
func (t *Term) ShowCart(items []cart.LineItem, total decimal.Decimal) {
	t.rows = len(items)
	fmt.Fprintln(t.w, "Your cart")
	for _, item := range items {
		fmt.Fprintf(t.w, "#%d  %s  %s x %d = %s\n",
			item.ID,
			item.ProductName,
			cart.FormatTotal(item.UnitPrice),
			item.Quantity,
			cart.FormatTotal(item.TotalPrice),
		)
	}
	fmt.Fprintf(t.w, "Total: %s\n", cart.FormatTotal(total))
}

// ShowEmpty renders the empty-cart placeholder with a zero total and a hint
// back to the menu.
func (t *Term) ShowEmpty() {
	t.rows = 0
	fmt.Fprintln(t.w, "Your cart is empty.")
	fmt.Fprintln(t.w, "Browse the menu with 'cartctl products'.")
	fmt.Fprintln(t.w, "Total: 0.00")
}

// ShowError replaces the cart display with a static error message.
func (t *Term) ShowError(message string) {
	t.rows = 0
	fmt.Fprintf(t.w, "! %s\n", message)
}

// Rows reports how many item rows the last render produced.
func (t *Term) Rows() int {
	return t.rows
}
