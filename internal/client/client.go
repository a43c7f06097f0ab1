// Package client is a typed HTTP client for the restaurant ordering backend.
// Every call issues a single request; nothing is retried or cached, and the
// caller decides how failures surface to the user.
package client

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-faster/errors"

	"github.com/saladworks/cartctl/internal/domain/cart"
	"github.com/saladworks/cartctl/internal/domain/order"
	"github.com/saladworks/cartctl/internal/domain/product"
)

const (
	defaultTimeout = 10 * time.Second
	maxBodySize    = 1 << 20
)

// Config holds the connection settings for the backend.
type Config struct {
	// BaseURL is the backend address, e.g. http://127.0.0.1:3004.
	BaseURL string
	// Timeout bounds a whole request; zero means defaultTimeout.
	Timeout time.Duration
	// Transport optionally replaces the underlying RoundTripper. Wrap it with
	// the httpclient middleware chain before passing it in.
	Transport http.RoundTripper
}

// Client talks to the ordering backend.
type Client struct {
	base *url.URL
	http *http.Client
}

// New creates a Client from the given configuration.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("backend base URL is required")
	}
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "parse base URL")
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	transport := cfg.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}

	return &Client{
		base: base,
		http: &http.Client{Timeout: timeout, Transport: transport},
	}, nil
}

// --- Cart ---

// Cart fetches every line item of the given session's cart.
func (c *Client) Cart(ctx context.Context, session string) ([]cart.LineItem, error) {
	data, err := c.doJSON(ctx, http.MethodGet, nil, "api", "cart", session)
	if err != nil {
		return nil, errors.Wrap(err, "fetch cart")
	}
	return decodeLineItems(data)
}

// AddCartItem adds a product to the session's cart. Adding a product that is
// already in the cart increments its quantity server-side.
func (c *Client) AddCartItem(ctx context.Context, req AddItemRequest) (cart.LineItem, error) {
	data, err := c.doJSON(ctx, http.MethodPost, encodeAddItem(req), "api", "cart", "add")
	if err != nil {
		return cart.LineItem{}, errors.Wrap(err, "add cart item")
	}
	return decodeLineItemBytes(data)
}

// UpdateCartItem sets the quantity of a single cart line.
func (c *Client) UpdateCartItem(ctx context.Context, itemID int64, quantity int) (cart.LineItem, error) {
	data, err := c.doJSON(ctx, http.MethodPut, encodeQuantity(quantity), "api", "cart", formatID(itemID))
	if err != nil {
		return cart.LineItem{}, errors.Wrap(err, "update cart item")
	}
	return decodeLineItemBytes(data)
}

// RemoveCartItem deletes a single cart line.
func (c *Client) RemoveCartItem(ctx context.Context, itemID int64) error {
	_, err := c.doJSON(ctx, http.MethodDelete, nil, "api", "cart", formatID(itemID))
	if err != nil {
		return errors.Wrap(err, "remove cart item")
	}
	return nil
}

// ClearCart empties the session's cart.
func (c *Client) ClearCart(ctx context.Context, session string) error {
	_, err := c.doJSON(ctx, http.MethodDelete, nil, "api", "cart", "clear", session)
	if err != nil {
		return errors.Wrap(err, "clear cart")
	}
	return nil
}

// CartSummary fetches the backend's aggregate totals for the session's cart.
func (c *Client) CartSummary(ctx context.Context, session string) (cart.Summary, error) {
	data, err := c.doJSON(ctx, http.MethodGet, nil, "api", "cart", session, "total")
	if err != nil {
		return cart.Summary{}, errors.Wrap(err, "fetch cart summary")
	}
	return decodeSummary(data)
}

// --- Orders ---

// CreateOrder places an order from the session's current cart. The backend
// clears the cart as part of order creation.
func (c *Client) CreateOrder(ctx context.Context, req order.CreateRequest) (order.Order, error) {
	data, err := c.doJSON(ctx, http.MethodPost, encodeCreateOrder(req), "api", "orders", "create")
	if err != nil {
		return order.Order{}, errors.Wrap(err, "create order")
	}
	return decodeOrder(data)
}

// Orders fetches the session's order history, most recent first.
func (c *Client) Orders(ctx context.Context, session string) ([]order.Order, error) {
	data, err := c.doJSON(ctx, http.MethodGet, nil, "api", "orders", session)
	if err != nil {
		return nil, errors.Wrap(err, "fetch orders")
	}
	return decodeOrders(data)
}

// --- Catalog ---

// Products fetches the menu catalog.
func (c *Client) Products(ctx context.Context) ([]product.Product, error) {
	data, err := c.doJSON(ctx, http.MethodGet, nil, "api", "products")
	if err != nil {
		return nil, errors.Wrap(err, "fetch products")
	}
	return decodeProducts(data)
}

// --- Auth ---

// Register creates a backend account.
func (c *Client) Register(ctx context.Context, username, email, password string) (Account, error) {
	data, err := c.doJSON(ctx, http.MethodPost, encodeRegister(username, email, password), "api", "auth", "register")
	if err != nil {
		return Account{}, errors.Wrap(err, "register")
	}
	return decodeAccount(data)
}

// Login exchanges credentials for an access token. The backend implements the
// OAuth2 password flow, so this request is form-encoded rather than JSON.
func (c *Client) Login(ctx context.Context, username, password string) (Token, error) {
	form := url.Values{
		"username": {username},
		"password": {password},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.endpoint("api", "auth", "login"), strings.NewReader(form.Encode()))
	if err != nil {
		return Token{}, errors.Wrap(err, "build login request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	data, err := c.roundTrip(req)
	if err != nil {
		return Token{}, errors.Wrap(err, "login")
	}
	return decodeToken(data)
}

// Me fetches the account behind the given access token.
func (c *Client) Me(ctx context.Context, token string) (Account, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.endpoint("api", "auth", "users", "me"), nil)
	if err != nil {
		return Account{}, errors.Wrap(err, "build request")
	}
	req.Header.Set("Authorization", "Bearer "+token)

	data, err := c.roundTrip(req)
	if err != nil {
		return Account{}, errors.Wrap(err, "fetch account")
	}
	return decodeAccount(data)
}

// --- Misc ---

// SubmitContact sends a message to the restaurant's contact box.
func (c *Client) SubmitContact(ctx context.Context, req ContactRequest) (ContactMessage, error) {
	data, err := c.doJSON(ctx, http.MethodPost, encodeContact(req), "api", "contact")
	if err != nil {
		return ContactMessage{}, errors.Wrap(err, "submit contact message")
	}
	return decodeContactMessage(data)
}

// Health probes the backend's health endpoint.
func (c *Client) Health(ctx context.Context) error {
	_, err := c.doJSON(ctx, http.MethodGet, nil, "health")
	if err != nil {
		return errors.Wrap(err, "health check")
	}
	return nil
}

// --- Request plumbing ---

func (c *Client) endpoint(segments ...string) string {
	return c.base.JoinPath(segments...).String()
}

func (c *Client) doJSON(ctx context.Context, method string, body []byte, segments ...string) ([]byte, error) {
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(segments...), rd)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.roundTrip(req)
}

// roundTrip sends the request, reads a bounded body, and converts non-2xx
// statuses into APIError values carrying the backend's detail message.
func (c *Client) roundTrip(req *http.Request) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "send request")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, errors.Wrap(err, "read response")
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &APIError{Status: resp.StatusCode, Message: errorDetail(data)}
	}
	return data, nil
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
