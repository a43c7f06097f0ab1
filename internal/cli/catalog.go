package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saladworks/cartctl/internal/domain/cart"
)

func newProductsCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "products",
		Short: "List the menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := newRuntime(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer rt.close()

			p := rt.newPage(cmd)
			products, err := rt.api.Products(rt.ctx(cmd))
			if err != nil {
				p.notices.Error("could not load the menu")
				return ErrReported
			}

			out := cmd.OutOrStdout()
			for _, item := range products {
				marker := " "
				if !item.Available {
					marker = "x"
				}
				fmt.Fprintf(out, "[%s] %s (%s) %s\n", marker, item.Name, item.Category, cart.FormatTotal(item.Price))
				if item.Description != "" {
					fmt.Fprintf(out, "    %s\n", item.Description)
				}
			}
			return nil
		},
	}
}

func newOrdersCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "orders",
		Short: "Show your order history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := newRuntime(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer rt.close()

			p := rt.newPage(cmd)
			orders, err := rt.api.Orders(rt.ctx(cmd), rt.session)
			if err != nil {
				p.notices.Error("could not load your orders")
				return ErrReported
			}

			out := cmd.OutOrStdout()
			if len(orders) == 0 {
				fmt.Fprintln(out, "No orders yet.")
				return nil
			}
			for _, o := range orders {
				fmt.Fprintf(out, "#%d  %s  %s  %s\n",
					o.ID,
					o.CreatedAt.Format("2006-01-02 15:04"),
					cart.FormatTotal(o.TotalAmount),
					o.Status,
				)
			}
			return nil
		},
	}
}
