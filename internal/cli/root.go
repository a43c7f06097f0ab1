// Package cli wires the cart page controller into a cobra command tree. Each
// command plays the role of one user action on the cart page.
package cli

import (
	"github.com/go-faster/errors"
	"github.com/spf13/cobra"
)

// ErrReported signals a failure that was already shown to the user as an
// error notice; the caller should exit non-zero without printing it again.
var ErrReported = errors.New("operation failed")

// Options holds global flags shared by all commands.
type Options struct {
	APIURL  string
	Profile string
	Verbose bool
}

// NewRootCommand creates the root command for the cartctl CLI.
func NewRootCommand() *cobra.Command {
	opts := &Options{}

	cmd := &cobra.Command{
		Use:           "cartctl",
		Short:         "Cart and checkout client for the Ensaladazo ordering backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.APIURL, "api-url", "", "override the backend base URL")
	cmd.PersistentFlags().StringVar(&opts.Profile, "profile", "", "override the profile database path")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose (debug) logging")

	cmd.AddCommand(
		newShowCommand(opts),
		newAddCommand(opts),
		newUpdateCommand(opts),
		newRemoveCommand(opts),
		newClearCommand(opts),
		newCheckoutCommand(opts),
		newProductsCommand(opts),
		newOrdersCommand(opts),
		newLoginCommand(opts),
		newLogoutCommand(opts),
		newRegisterCommand(opts),
		newWhoamiCommand(opts),
		newStatusCommand(opts),
		newContactCommand(opts),
	)

	return cmd
}
