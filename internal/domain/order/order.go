// Package order holds the checkout form, its validation rules, and the order
// record the backend returns once an order is placed.
package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the backend's record of a placed order. The backend is the source
// of truth for order identity and lifecycle; the client only displays it.
type Order struct {
	ID            int64
	UserSession   string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	TotalAmount   decimal.Decimal
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CreateRequest is the payload for placing an order.
//
// The card number collected by the checkout form is deliberately absent: the
// backend has no field to receive it, so the number is validated locally and
// then dropped. See DESIGN.md.
type CreateRequest struct {
	UserSession     string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	CustomerAddress string
}

// PlaceholderEmail is sent when no signed-in username is stored locally.
const PlaceholderEmail = "cliente@ensaladazo.com"

// NewCreateRequest builds the order payload from a normalized checkout form.
// The customer email falls back to PlaceholderEmail when the profile store
// holds no username.
func NewCreateRequest(session string, form Form, storedUsername string) CreateRequest {
	email := storedUsername
	if email == "" {
		email = PlaceholderEmail
	}
	return CreateRequest{
		UserSession:     session,
		CustomerName:    form.Name,
		CustomerEmail:   email,
		CustomerPhone:   form.Phone,
		CustomerAddress: form.Address,
	}
}
