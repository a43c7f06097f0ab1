package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/saladworks/cartctl/internal/app"
	"github.com/saladworks/cartctl/internal/client"
	"github.com/saladworks/cartctl/internal/controller"
	"github.com/saladworks/cartctl/internal/profile"
	"github.com/saladworks/cartctl/internal/view"
	"github.com/saladworks/cartctl/pkg/httpclient"
)

// runtime bundles the shared dependencies every command needs: config,
// logger, profile store, resolved session, and the backend client.
type runtime struct {
	cfg     *app.Config
	lg      *zap.Logger
	store   *profile.Store
	api     *client.Client
	session string
}

func newRuntime(ctx context.Context, opts *Options) (*runtime, error) {
	cfg, err := app.LoadConfig()
	if err != nil {
		return nil, err
	}
	if opts.APIURL != "" {
		cfg.APIBaseURL = opts.APIURL
	}
	if opts.Profile != "" {
		cfg.ProfilePath = opts.Profile
	}
	if opts.Verbose {
		cfg.LogLevel = "debug"
	}

	lg, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	if dir := filepath.Dir(cfg.ProfilePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(err, "create profile directory")
		}
	}
	store, err := profile.Open(cfg.ProfilePath)
	if err != nil {
		return nil, err
	}

	api, err := client.New(client.Config{
		BaseURL: cfg.APIBaseURL,
		Timeout: cfg.RequestTimeout,
		Transport: httpclient.Wrap(nil,
			httpclient.Instrument(),
			httpclient.RequestID(),
			httpclient.LogRequests(),
		),
	})
	if err != nil {
		return nil, err
	}

	session, err := profile.NewResolver(store).Session(zctx.Base(ctx, lg))
	if err != nil {
		return nil, err
	}

	return &runtime{cfg: cfg, lg: lg, store: store, api: api, session: session}, nil
}

func (r *runtime) close() {
	if err := r.store.Close(); err != nil {
		r.lg.Warn("Close profile store failed", zap.Error(err))
	}
	_ = r.lg.Sync()
}

// ctx returns the command context with the runtime logger attached, so the
// client middleware and controller log through zctx.
func (r *runtime) ctx(cmd *cobra.Command) context.Context {
	return zctx.Base(cmd.Context(), r.lg)
}

// page holds the view-binding objects for one command invocation, built once
// and passed to the controller (never looked up ad hoc).
type page struct {
	view    *view.Term
	notices *view.Notices
	confirm *view.Confirm
	form    *view.CheckoutForm
	ctrl    *controller.Controller
}

func (r *runtime) newPage(cmd *cobra.Command) *page {
	out := cmd.OutOrStdout()
	p := &page{
		view:    view.NewTerm(out),
		notices: view.NewNotices(out),
		confirm: view.NewConfirm(cmd.InOrStdin(), out),
		form:    view.NewCheckoutForm(cmd.InOrStdin(), out),
	}
	p.ctrl = controller.New(
		controller.Config{
			Session:     r.session,
			ReloadDelay: r.cfg.ReloadDelay,
		},
		controller.Deps{
			API:         r.api,
			View:        p.view,
			Notifier:    p.notices,
			Confirmer:   p.confirm,
			Prompt:      p.form,
			Navigator:   view.NewLoginHint(out),
			Credentials: r.store,
		},
	)
	return p
}

// result maps emitted notices to an exit status.
func (p *page) result() error {
	if p.notices.Failed() {
		return ErrReported
	}
	return nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "parse log level %q", level)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}
