package client

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddItemRequest is the payload for adding a product to the cart. Unit price
// travels with the request because the cart backend stores a denormalized
// copy of the menu price.
type AddItemRequest struct {
	UserSession string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// Account is a registered backend user.
type Account struct {
	ID        int64
	Username  string
	Email     string
	IsAdmin   bool
	CreatedAt time.Time
}

// Token is the result of a successful login.
type Token struct {
	AccessToken string
	TokenType   string
	Username    string
	IsAdmin     bool
}

// ContactRequest is a message for the restaurant's contact box.
type ContactRequest struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// ContactMessage is the stored contact message the backend returns.
type ContactMessage struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	Message   string
	IsRead    bool
	CreatedAt time.Time
}
