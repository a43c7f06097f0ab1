package client

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saladworks/cartctl/internal/domain/order"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(Config{BaseURL: srv.URL})
	require.NoError(t, err)
	return c
}

func TestNew_RequiresBaseURL(t *testing.T) {
	_, err := New(Config{})
	require.Error(t, err)
}

func TestCart(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/cart/sess_abc", r.URL.Path)
		io.WriteString(w, `[
			{"id": 1, "user_session": "sess_abc", "product_name": "Ensalada Cesar",
			 "quantity": 2, "unit_price": 8.50, "total_price": 17.00,
			 "created_at": "2026-08-30T12:00:00.123456", "updated_at": null},
			{"id": 2, "user_session": "sess_abc", "product_name": "Agua Mineral",
			 "quantity": 1, "unit_price": 1.25, "total_price": 1.25,
			 "created_at": "2026-08-30T12:05:00Z", "updated_at": "2026-08-30T12:06:00Z"}
		]`)
	})

	items, err := c.Cart(t.Context(), "sess_abc")
	require.NoError(t, err)
	require.Len(t, items, 2)

	first := items[0]
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, "Ensalada Cesar", first.ProductName)
	assert.Equal(t, 2, first.Quantity)
	assert.True(t, first.UnitPrice.Equal(decimal.RequireFromString("8.5")))
	assert.True(t, first.TotalPrice.Equal(decimal.RequireFromString("17")))
	assert.False(t, first.CreatedAt.IsZero())
	assert.True(t, first.UpdatedAt.IsZero())

	assert.False(t, items[1].UpdatedAt.IsZero())
}

func TestCart_Empty(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[]`)
	})

	items, err := c.Cart(t.Context(), "sess_abc")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCart_BackendError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"detail": "Cart not found"}`)
	})

	_, err := c.Cart(t.Context(), "sess_missing")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Cart not found", apiErr.Message)
}

func TestUpdateCartItem(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/cart/7", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"quantity": 3}`, string(body))

		io.WriteString(w, `{"id": 7, "user_session": "sess_abc",
			"product_name": "Ensalada Cesar", "quantity": 3,
			"unit_price": 8.50, "total_price": 25.50,
			"created_at": "2026-08-30T12:00:00Z", "updated_at": "2026-08-30T12:10:00Z"}`)
	})

	item, err := c.UpdateCartItem(t.Context(), 7, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, item.Quantity)
	assert.True(t, item.TotalPrice.Equal(decimal.RequireFromString("25.5")))
}

func TestRemoveCartItem(t *testing.T) {
	var called bool
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/cart/7", r.URL.Path)
		io.WriteString(w, `{"message": "Item removed"}`)
	})

	require.NoError(t, c.RemoveCartItem(t.Context(), 7))
	assert.True(t, called)
}

func TestClearCart(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/cart/clear/sess_abc", r.URL.Path)
		io.WriteString(w, `{"message": "Cart cleared"}`)
	})

	require.NoError(t, c.ClearCart(t.Context(), "sess_abc"))
}

func TestAddCartItem(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/cart/add", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"user_session": "sess_abc",
			"product_name": "Ensalada Cesar",
			"quantity": 1,
			"unit_price": 8.5
		}`, string(body))

		io.WriteString(w, `{"id": 9, "user_session": "sess_abc",
			"product_name": "Ensalada Cesar", "quantity": 1,
			"unit_price": 8.50, "total_price": 8.50,
			"created_at": "2026-08-30T12:00:00Z", "updated_at": null}`)
	})

	item, err := c.AddCartItem(t.Context(), AddItemRequest{
		UserSession: "sess_abc",
		ProductName: "Ensalada Cesar",
		Quantity:    1,
		UnitPrice:   decimal.RequireFromString("8.5"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(9), item.ID)
}

func TestCartSummary(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/cart/sess_abc/total", r.URL.Path)
		io.WriteString(w, `{"total": 18.25, "item_count": 3, "items": 2}`)
	})

	summary, err := c.CartSummary(t.Context(), "sess_abc")
	require.NoError(t, err)
	assert.True(t, summary.Total.Equal(decimal.RequireFromString("18.25")))
	assert.Equal(t, 3, summary.ItemCount)
	assert.Equal(t, 2, summary.Lines)
}

func TestCreateOrder(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/orders/create", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"user_session": "sess_abc",
			"customer_name": "Ada Lovelace",
			"customer_email": "ada@example.com",
			"customer_phone": "555-0175",
			"customer_address": "12 Analytical St"
		}`, string(body))
		assert.NotContains(t, string(body), "card")

		io.WriteString(w, `{"id": 42, "user_session": "sess_abc",
			"customer_name": "Ada Lovelace", "customer_email": "ada@example.com",
			"customer_phone": "555-0175", "total_amount": 18.25,
			"status": "pending", "created_at": "2026-08-30T12:00:00Z",
			"updated_at": null}`)
	})

	o, err := c.CreateOrder(t.Context(), order.CreateRequest{
		UserSession:     "sess_abc",
		CustomerName:    "Ada Lovelace",
		CustomerEmail:   "ada@example.com",
		CustomerPhone:   "555-0175",
		CustomerAddress: "12 Analytical St",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), o.ID)
	assert.Equal(t, "pending", o.Status)
	assert.True(t, o.TotalAmount.Equal(decimal.RequireFromString("18.25")))
}

func TestOrders(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/orders/sess_abc", r.URL.Path)
		io.WriteString(w, `[{"id": 42, "user_session": "sess_abc",
			"customer_name": "Ada", "customer_email": "ada@example.com",
			"customer_phone": null, "total_amount": 18.25, "status": "delivered",
			"created_at": "2026-08-30T12:00:00Z", "updated_at": null}]`)
	})

	orders, err := c.Orders(t.Context(), "sess_abc")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Empty(t, orders[0].CustomerPhone)
}

func TestProducts(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products", r.URL.Path)
		io.WriteString(w, `[{"id": 1, "name": "Ensalada Cesar",
			"description": "Lechuga, pollo, parmesano", "price": 8.50,
			"category": "ensaladas", "available": true}]`)
	})

	products, err := c.Products(t.Context())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Ensalada Cesar", products[0].Name)
	assert.True(t, products[0].Available)
}

func TestLogin(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "ada", r.PostForm.Get("username"))
		assert.Equal(t, "hunter2", r.PostForm.Get("password"))

		io.WriteString(w, `{"access_token": "tok-123", "token_type": "bearer",
			"username": "ada", "is_admin": false}`)
	})

	token, err := c.Login(t.Context(), "ada", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token.AccessToken)
	assert.Equal(t, "bearer", token.TokenType)
	assert.Equal(t, "ada", token.Username)
}

func TestMe(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/users/me", r.URL.Path)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		io.WriteString(w, `{"id": 5, "username": "ada", "email": "ada@example.com",
			"is_admin": false, "created_at": "2026-01-01T00:00:00Z"}`)
	})

	account, err := c.Me(t.Context(), "tok-123")
	require.NoError(t, err)
	assert.Equal(t, "ada", account.Username)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), account.CreatedAt)
}

func TestSubmitContact(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/contact", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		// Phone is optional and omitted when empty.
		assert.JSONEq(t, `{"name": "Ada", "email": "ada@example.com",
			"message": "Hola"}`, string(body))

		io.WriteString(w, `{"id": 3, "name": "Ada", "email": "ada@example.com",
			"phone": null, "message": "Hola", "is_read": false,
			"created_at": "2026-08-30T12:00:00Z"}`)
	})

	msg, err := c.SubmitContact(t.Context(), ContactRequest{
		Name: "Ada", Email: "ada@example.com", Message: "Hola",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), msg.ID)
	assert.False(t, msg.IsRead)
}

func TestHealth(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		io.WriteString(w, `{"status": "healthy"}`)
	})
	require.NoError(t, c.Health(t.Context()))
}

func TestAPIError_MalformedDetail(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, `<html>Internal Server Error</html>`)
	})

	err := c.Health(t.Context())
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
}
