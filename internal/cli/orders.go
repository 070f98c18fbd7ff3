package cli

import (
	"io"

	"github.com/spf13/cobra"
)

func NewOrdersCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "orders",
		Short: "Show your order history",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setup(rootOpts); err != nil {
				return err
			}
			f := rootOpts.formatter()
			if err := checkSession(rootOpts, f); err != nil {
				return err
			}

			orders, err := rootOpts.Backend.Orders(cmd.Context())
			if err != nil {
				return fail(err, f, "Failed to load orders")
			}

			return f.Emit(orders, func(w io.Writer) {
				renderOrders(w, orders)
			})
		},
	}
}
