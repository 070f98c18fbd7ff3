package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/q-allen/E-Commerce-Timepiece-WatchStore/internal/cart"
	"github.com/q-allen/E-Commerce-Timepiece-WatchStore/internal/checkout"
	"github.com/q-allen/E-Commerce-Timepiece-WatchStore/internal/domain"
)

// CheckoutOptions holds flags for the checkout command.
type CheckoutOptions struct {
	*RootOptions
	Contact       string
	Address       string
	PaymentMethod string
	Yes           bool
}

func NewCheckoutCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckoutOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Place an order from the current cart",
		Long: `Place an order from the current cart.

The cart is fetched once, its total fixed at that moment, and the order is
submitted from that snapshot. Cash on Delivery is the only payment method
accepted right now.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheckout(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Contact, "contact", "", "contact number")
	cmd.Flags().StringVar(&opts.Address, "address", "", "delivery address")
	cmd.Flags().StringVar(&opts.PaymentMethod, "payment-method", string(domain.DefaultPaymentMethod),
		`payment method ("COD" or "Bank Transfer")`)
	cmd.Flags().BoolVarP(&opts.Yes, "yes", "y", false, "confirm the order without showing the summary")

	return cmd
}

func runCheckout(cmd *cobra.Command, opts *CheckoutOptions) error {
	if err := setup(opts.RootOptions); err != nil {
		return err
	}
	f := opts.formatter()
	if err := checkSession(opts.RootOptions, f); err != nil {
		return err
	}

	mgr := cart.NewManager(opts.Backend)
	items, err := mgr.Load(cmd.Context())
	if err != nil {
		return fail(err, f, "Failed to load cart items")
	}

	snap := checkout.TakeSnapshot(items)
	if snap.Empty() {
		f.Notify("Your cart is empty. Add items before proceeding to checkout.")
		return NewExitError(ExitFailure, "cart is empty")
	}

	if !opts.Yes && opts.Format == "text" {
		renderCartWithTotal(opts.Out, snap.Items, snap.Total)
	}

	details := checkout.Details{
		Contact:       opts.Contact,
		Address:       opts.Address,
		PaymentMethod: domain.PaymentMethod(opts.PaymentMethod),
	}

	svc := checkout.NewService(opts.Backend)
	order, err := svc.Submit(cmd.Context(), details, snap)
	if err != nil {
		var pmErr *checkout.PaymentMethodError
		switch {
		case errors.As(err, &pmErr):
			f.Notify("%s is not available right now. Payment method reset to %s.", pmErr.Selected, pmErr.ResetTo)
			return NewExitError(ExitFailure, "payment method not available")
		case errors.Is(err, checkout.ErrMissingDetails):
			f.Notify("Please enter your contact number and address.")
			return NewExitError(ExitCommandError, "contact number and address are required")
		default:
			return fail(err, f, "Failed to place order")
		}
	}

	return f.Emit(order, func(w io.Writer) {
		fmt.Fprintf(w, "Order placed successfully! Order #%d, total %s, %s.\n",
			order.ID, money(order.TotalPrice), order.PaymentMethod)
	})
}
