// Package controller drives the cart page. It binds the resolved session, the
// backend client, and the view, and owns every user-triggered cart operation:
// load, quantity update, removal, and the two-phase checkout. The backend
// remains the only authority over cart contents; after every successful
// mutation the controller re-fetches and re-renders instead of patching the
// view in place.
package controller

import (
	"context"
	"fmt"
	"time"

	"github.com/go-faster/sdk/zctx"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/saladworks/cartctl/internal/domain/cart"
	"github.com/saladworks/cartctl/internal/domain/order"
)

// API is the backend surface the controller needs.
type API interface {
	Cart(ctx context.Context, session string) ([]cart.LineItem, error)
	UpdateCartItem(ctx context.Context, itemID int64, quantity int) (cart.LineItem, error)
	RemoveCartItem(ctx context.Context, itemID int64) error
	CreateOrder(ctx context.Context, req order.CreateRequest) (order.Order, error)
}

// View renders cart state. The hosting surface implements it; the controller
// never touches presentation directly.
type View interface {
	// ShowCart renders one row per item plus the grand total.
	ShowCart(items []cart.LineItem, total decimal.Decimal)
	// ShowEmpty renders the empty-cart placeholder with a zero total.
	ShowEmpty()
	// ShowError replaces the cart display with a static error message.
	ShowError(message string)
	// Rows reports how many item rows the last render produced.
	Rows() int
}

// Notifier surfaces transient success/error feedback (the page's toasts).
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Confirmer asks the user a yes/no question before destructive actions.
type Confirmer interface {
	Confirm(prompt string) bool
}

// CheckoutPrompt collects the checkout form (the page's payment modal).
type CheckoutPrompt interface {
	// Collect gathers the form. ok is false when the user abandons it.
	Collect() (form order.Form, ok bool)
	// SetSubmitting toggles the submit control between its normal and
	// "processing" state.
	SetSubmitting(submitting bool)
	// Close dismisses the form after a successful submission.
	Close()
}

// Navigator sends the user somewhere else, e.g. to the login surface.
type Navigator interface {
	OpenLogin()
}

// CredentialSource exposes the durable auth state checkout branches on.
type CredentialSource interface {
	Token(ctx context.Context) (string, error)
	Username(ctx context.Context) (string, error)
}

// Config holds the controller's injected session and timing knobs.
type Config struct {
	// Session is the resolved cart session identifier.
	Session string
	// ReloadDelay is how long to wait after a placed order before re-fetching
	// the cart, giving the backend time to clear it.
	ReloadDelay time.Duration
}

// Deps bundles the collaborators a Controller binds to.
type Deps struct {
	API         API
	View        View
	Notifier    Notifier
	Confirmer   Confirmer
	Prompt      CheckoutPrompt
	Navigator   Navigator
	Credentials CredentialSource
}

// Controller is the cart page controller.
type Controller struct {
	session     string
	reloadDelay time.Duration

	api         API
	view        View
	notify      Notifier
	confirm     Confirmer
	prompt      CheckoutPrompt
	nav         Navigator
	credentials CredentialSource

	// flights coalesces duplicate in-flight requests per action so rapid
	// repeated triggers issue at most one outstanding request each.
	flights singleflight.Group
	submit  submitGuard
}

// New constructs a Controller. Session and collaborators are fixed at
// construction; nothing is looked up ad hoc during handling.
func New(cfg Config, deps Deps) *Controller {
	return &Controller{
		session:     cfg.Session,
		reloadDelay: cfg.ReloadDelay,
		api:         deps.API,
		view:        deps.View,
		notify:      deps.Notifier,
		confirm:     deps.Confirmer,
		prompt:      deps.Prompt,
		nav:         deps.Navigator,
		credentials: deps.Credentials,
	}
}

// LoadCart fetches the session's cart and renders it. Failures surface as a
// notification plus a static error view; nothing is retried.
func (c *Controller) LoadCart(ctx context.Context) {
	items, err := c.fetchCart(ctx)
	if err != nil {
		zctx.From(ctx).Error("Load cart failed", zap.Error(err))
		c.notify.Error("could not load your cart")
		c.view.ShowError("We could not load your cart. Please try again.")
		return
	}
	c.render(items)
}

func (c *Controller) fetchCart(ctx context.Context) ([]cart.LineItem, error) {
	v, err, _ := c.flights.Do("load", func() (any, error) {
		return c.api.Cart(ctx, c.session)
	})
	if err != nil {
		return nil, err
	}
	return v.([]cart.LineItem), nil
}

func (c *Controller) render(items []cart.LineItem) {
	if len(items) == 0 {
		c.view.ShowEmpty()
		return
	}
	c.view.ShowCart(items, cart.Total(items))
}

// UpdateQuantity sets a line's quantity. Dropping below one item is a
// removal, not an update. On success the whole cart is reloaded; the view is
// never patched optimistically.
func (c *Controller) UpdateQuantity(ctx context.Context, itemID int64, quantity int) {
	if quantity < 1 {
		c.RemoveItem(ctx, itemID)
		return
	}

	_, err, _ := c.flights.Do(fmt.Sprintf("update:%d", itemID), func() (any, error) {
		_, err := c.api.UpdateCartItem(ctx, itemID, quantity)
		return nil, err
	})
	if err != nil {
		zctx.From(ctx).Error("Update quantity failed",
			zap.Int64("item_id", itemID),
			zap.Int("quantity", quantity),
			zap.Error(err),
		)
		c.notify.Error("could not update the quantity")
		return
	}

	c.notify.Success("quantity updated")
	c.LoadCart(ctx)
}

// RemoveItem deletes a line after interactive confirmation. Declining aborts
// silently.
func (c *Controller) RemoveItem(ctx context.Context, itemID int64) {
	if !c.confirm.Confirm("Remove this item from your cart?") {
		return
	}

	_, err, _ := c.flights.Do(fmt.Sprintf("remove:%d", itemID), func() (any, error) {
		return nil, c.api.RemoveCartItem(ctx, itemID)
	})
	if err != nil {
		zctx.From(ctx).Error("Remove item failed", zap.Int64("item_id", itemID), zap.Error(err))
		c.notify.Error("could not remove the item")
		return
	}

	c.notify.Success("item removed")
	c.LoadCart(ctx)
}
