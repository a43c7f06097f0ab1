// Package product describes the menu catalog served by the ordering backend.
package product

import (
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a requested product does not exist in the menu.
var ErrNotFound = errors.New("product not found")

// Product represents a menu item available for purchase.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	Category    string
	Available   bool
}

// FindByName looks a product up by its display name. The cart endpoints
// identify products by name, so this is the lookup the add-to-cart path uses.
func FindByName(products []Product, name string) (Product, error) {
	for _, p := range products {
		if p.Name == name {
			return p, nil
		}
	}
	return Product{}, errors.Wrapf(ErrNotFound, "%q", name)
}
