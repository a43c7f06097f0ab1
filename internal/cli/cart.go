package cli

import (
	"strconv"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"

	"github.com/saladworks/cartctl/internal/client"
	"github.com/saladworks/cartctl/internal/domain/product"
)

func newShowCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Fetch and render your cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := newRuntime(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer rt.close()

			p := rt.newPage(cmd)
			p.ctrl.LoadCart(rt.ctx(cmd))
			return p.result()
		},
	}
}

func newAddCommand(opts *Options) *cobra.Command {
	var quantity int

	cmd := &cobra.Command{
		Use:   "add <product name>",
		Short: "Add a menu item to your cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer rt.close()

			ctx := rt.ctx(cmd)
			p := rt.newPage(cmd)

			products, err := rt.api.Products(ctx)
			if err != nil {
				p.notices.Error("could not load the menu")
				return ErrReported
			}
			item, err := product.FindByName(products, args[0])
			if err != nil {
				p.notices.Error("that item is not on the menu")
				return ErrReported
			}

			_, err = rt.api.AddCartItem(ctx, client.AddItemRequest{
				UserSession: rt.session,
				ProductName: item.Name,
				Quantity:    quantity,
				UnitPrice:   item.Price,
			})
			if err != nil {
				p.notices.Error("could not add the item to your cart")
				return ErrReported
			}

			p.notices.Success(item.Name + " added to your cart")
			p.ctrl.LoadCart(ctx)
			return p.result()
		},
	}

	cmd.Flags().IntVarP(&quantity, "quantity", "q", 1, "how many to add")
	return cmd
}

func newUpdateCommand(opts *Options) *cobra.Command {
	var assumeYes bool

	cmd := &cobra.Command{
		Use:   "update <item-id> <quantity>",
		Short: "Change the quantity of a cart line (zero removes it)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			itemID, err := parseItemID(args[0])
			if err != nil {
				return err
			}
			quantity, err := strconv.Atoi(args[1])
			if err != nil {
				return errors.Wrapf(err, "invalid quantity %q", args[1])
			}

			rt, err := newRuntime(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer rt.close()

			p := rt.newPage(cmd)
			if assumeYes {
				p.confirm.Assume = &assumeYes
			}
			p.ctrl.UpdateQuantity(rt.ctx(cmd), itemID, quantity)
			return p.result()
		},
	}

	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "skip the removal confirmation when quantity is zero")
	return cmd
}

func newRemoveCommand(opts *Options) *cobra.Command {
	var assumeYes bool

	cmd := &cobra.Command{
		Use:   "remove <item-id>",
		Short: "Remove a line from your cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			itemID, err := parseItemID(args[0])
			if err != nil {
				return err
			}

			rt, err := newRuntime(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer rt.close()

			p := rt.newPage(cmd)
			if assumeYes {
				p.confirm.Assume = &assumeYes
			}
			p.ctrl.RemoveItem(rt.ctx(cmd), itemID)
			return p.result()
		},
	}

	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func newClearCommand(opts *Options) *cobra.Command {
	var assumeYes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Empty your cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := newRuntime(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer rt.close()

			ctx := rt.ctx(cmd)
			p := rt.newPage(cmd)
			if assumeYes {
				p.confirm.Assume = &assumeYes
			}

			if !p.confirm.Confirm("Empty your whole cart?") {
				return nil
			}
			if err := rt.api.ClearCart(ctx, rt.session); err != nil {
				p.notices.Error("could not empty your cart")
				return ErrReported
			}
			p.notices.Success("cart emptied")
			p.ctrl.LoadCart(ctx)
			return p.result()
		},
	}

	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func parseItemID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid item id %q", arg)
	}
	return id, nil
}
