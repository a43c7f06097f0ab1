package cli

import (
	"github.com/spf13/cobra"

	"github.com/saladworks/cartctl/internal/domain/order"
)

func newCheckoutCommand(opts *Options) *cobra.Command {
	var (
		form        order.Form
		nonInteract bool
	)

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Place an order from your cart",
		Long: "Loads your cart, checks that it is not empty and that you are signed in,\n" +
			"then collects the checkout form and submits the order.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := newRuntime(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer rt.close()

			ctx := rt.ctx(cmd)
			p := rt.newPage(cmd)
			p.form.Preset = form
			p.form.Interactive = !nonInteract

			// The page loads the cart before checkout is possible; the
			// non-empty precondition is checked against the rendered rows.
			p.ctrl.LoadCart(ctx)
			p.ctrl.Checkout(ctx)
			return p.result()
		},
	}

	cmd.Flags().StringVar(&form.Name, "name", "", "customer name")
	cmd.Flags().StringVar(&form.Phone, "phone", "", "contact phone number")
	cmd.Flags().StringVar(&form.Address, "address", "", "delivery address")
	cmd.Flags().StringVar(&form.CardNumber, "card", "", "card number (at least 12 characters)")
	cmd.Flags().BoolVar(&nonInteract, "no-input", false, "fail instead of prompting for missing fields")
	return cmd
}
