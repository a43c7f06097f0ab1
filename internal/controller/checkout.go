package controller

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/saladworks/cartctl/internal/domain/order"
)

// submitting guards the checkout submit so a second trigger while a request
// is outstanding never issues a duplicate order.
type submitGuard struct {
	busy atomic.Bool
}

func (g *submitGuard) acquire() bool { return g.busy.CompareAndSwap(false, true) }
func (g *submitGuard) release()      { g.busy.Store(false) }

// Checkout runs phase one of the checkout flow: precondition checks, then the
// checkout form. Both preconditions mirror the page: the rendered cart must
// have at least one row, and an auth token must be stored locally.
func (c *Controller) Checkout(ctx context.Context) {
	if c.view.Rows() == 0 {
		c.notify.Error("your cart is empty")
		return
	}

	token, err := c.credentials.Token(ctx)
	if err != nil {
		zctx.From(ctx).Error("Read auth token failed", zap.Error(err))
		c.notify.Error("could not read your saved login")
		return
	}
	if token == "" {
		if c.confirm.Confirm("You need to sign in before checking out. Go to the login page?") {
			c.nav.OpenLogin()
		}
		return
	}

	form, ok := c.prompt.Collect()
	if !ok {
		return
	}
	c.SubmitOrder(ctx, form)
}

// SubmitOrder runs phase two: validation, the order-creation request, and the
// post-success reload. The submit control is disabled for the duration and
// restored on every path.
func (c *Controller) SubmitOrder(ctx context.Context, form order.Form) {
	if !c.submit.acquire() {
		c.notify.Error("your order is already being submitted")
		return
	}
	c.prompt.SetSubmitting(true)
	defer func() {
		c.prompt.SetSubmitting(false)
		c.submit.release()
	}()

	form = form.Normalize()
	if err := form.Validate(); err != nil {
		c.notify.Error(err.Error())
		return
	}

	username, err := c.credentials.Username(ctx)
	if err != nil {
		zctx.From(ctx).Warn("Read username failed", zap.Error(err))
		username = ""
	}

	placed, err := c.api.CreateOrder(ctx, order.NewCreateRequest(c.session, form, username))
	if err != nil {
		zctx.From(ctx).Error("Create order failed", zap.Error(err))
		c.notify.Error("could not place your order: " + err.Error())
		return
	}

	c.prompt.Close()
	c.notify.Success(fmt.Sprintf("order #%d placed, thank you!", placed.ID))
	c.reloadAfterDelay(ctx)
}

// reloadAfterDelay waits for the backend to clear the ordered cart, then
// reloads the view.
func (c *Controller) reloadAfterDelay(ctx context.Context) {
	if c.reloadDelay > 0 {
		t := time.NewTimer(c.reloadDelay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}
	}
	c.LoadCart(ctx)
}
