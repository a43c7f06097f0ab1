package view

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/saladworks/cartctl/internal/domain/cart"
)

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestTermShowCart(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerm(&buf)

	items := []cart.LineItem{
		{ID: 1, ProductName: "Ensalada Cesar", Quantity: 2, UnitPrice: dec("8.5"), TotalPrice: dec("17")},
		{ID: 2, ProductName: "Agua Mineral", Quantity: 1, UnitPrice: dec("1.25"), TotalPrice: dec("1.25")},
	}
	term.ShowCart(items, cart.Total(items))

	newGoldie(t).Assert(t, "cart_two_items", buf.Bytes())
	assert.Equal(t, 2, term.Rows())
}

func TestTermShowEmpty(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerm(&buf)

	term.ShowEmpty()

	newGoldie(t).Assert(t, "cart_empty", buf.Bytes())
	assert.Zero(t, term.Rows())
}

func TestTermShowError(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerm(&buf)

	term.ShowCart([]cart.LineItem{{ID: 1, ProductName: "Ensalada Cesar", Quantity: 1,
		UnitPrice: dec("8.5"), TotalPrice: dec("8.5")}}, dec("8.5"))
	buf.Reset()
	term.ShowError("We could not load your cart. Please try again.")

	newGoldie(t).Assert(t, "cart_error", buf.Bytes())
	// An error display leaves no actionable rows behind.
	assert.Zero(t, term.Rows())
}
