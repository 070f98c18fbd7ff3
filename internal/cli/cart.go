package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/q-allen/E-Commerce-Timepiece-WatchStore/internal/cart"
	"github.com/q-allen/E-Commerce-Timepiece-WatchStore/internal/domain"
)

func NewCartCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Show and edit your cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCartShow(cmd, rootOpts)
		},
	}

	cmd.AddCommand(newCartAddCommand(rootOpts))
	cmd.AddCommand(newCartUpdateCommand(rootOpts))
	cmd.AddCommand(newCartRemoveCommand(rootOpts))

	return cmd
}

func runCartShow(cmd *cobra.Command, opts *RootOptions) error {
	if err := setup(opts); err != nil {
		return err
	}
	f := opts.formatter()
	if err := checkSession(opts, f); err != nil {
		return err
	}

	mgr := cart.NewManager(opts.Backend)
	items, err := mgr.Load(cmd.Context())
	if err != nil {
		return fail(err, f, "Failed to load cart items")
	}

	return f.Emit(items, func(w io.Writer) {
		renderCart(w, items)
	})
}

func newCartAddCommand(rootOpts *RootOptions) *cobra.Command {
	var quantity int

	cmd := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setup(rootOpts); err != nil {
				return err
			}
			f := rootOpts.formatter()
			if err := checkSession(rootOpts, f); err != nil {
				return err
			}

			productID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid product id %q", args[0]))
			}

			mgr := cart.NewManager(rootOpts.Backend)
			if err := mgr.Add(cmd.Context(), productID, quantity); err != nil {
				if errors.Is(err, cart.ErrQuantityOutOfRange) {
					f.Notify("Quantity must be between %d and %d.", domain.MinQuantity, domain.MaxQuantity)
					return NewExitError(ExitCommandError, "quantity out of range")
				}
				return fail(err, f, "Failed to add item to cart")
			}

			return f.Emit(map[string]int64{"product_id": productID}, func(w io.Writer) {
				fmt.Fprintln(w, "Item added to cart successfully!")
			})
		},
	}

	cmd.Flags().IntVarP(&quantity, "quantity", "q", 1, "quantity to add")
	return cmd
}

func newCartUpdateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "update <item-id> <quantity>",
		Short: "Change the quantity of a cart line item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setup(rootOpts); err != nil {
				return err
			}
			f := rootOpts.formatter()
			if err := checkSession(rootOpts, f); err != nil {
				return err
			}

			itemID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid item id %q", args[0]))
			}
			quantity, err := strconv.Atoi(args[1])
			if err != nil {
				// Non-integer quantities never reach the network.
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid quantity %q", args[1]))
			}

			mgr := cart.NewManager(rootOpts.Backend)
			updated, err := mgr.SetQuantity(cmd.Context(), itemID, quantity)
			if err != nil {
				if errors.Is(err, cart.ErrQuantityOutOfRange) {
					f.Notify("Quantity must be between %d and %d.", domain.MinQuantity, domain.MaxQuantity)
					return NewExitError(ExitCommandError, "quantity out of range")
				}
				return fail(err, f, "Failed to update quantity")
			}

			return f.Emit(updated, func(w io.Writer) {
				fmt.Fprintf(w, "%s is now x%d (%s)\n", updated.ProductName, updated.Quantity, money(updated.TotalPrice))
			})
		},
	}
}

func newCartRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <item-id>",
		Short: "Remove a line item from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setup(rootOpts); err != nil {
				return err
			}
			f := rootOpts.formatter()
			if err := checkSession(rootOpts, f); err != nil {
				return err
			}

			itemID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid item id %q", args[0]))
			}

			mgr := cart.NewManager(rootOpts.Backend)
			if err := mgr.Remove(cmd.Context(), itemID); err != nil {
				return fail(err, f, "Failed to remove item")
			}

			return f.Emit(map[string]int64{"removed": itemID}, func(w io.Writer) {
				fmt.Fprintln(w, "Item removed from cart!")
			})
		},
	}
}
