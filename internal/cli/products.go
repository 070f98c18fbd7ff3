package cli

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/q-allen/E-Commerce-Timepiece-WatchStore/internal/domain"
)

// ProductsOptions holds flags for the products command.
type ProductsOptions struct {
	*RootOptions
	Category string
	Search   string
	All      bool
}

func NewProductsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ProductsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "products",
		Short: "Browse the watch catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProducts(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Category, "category", "", "filter by category slug")
	cmd.Flags().StringVar(&opts.Search, "search", "", "filter by name substring")
	cmd.Flags().BoolVar(&opts.All, "all", false, "include inactive products")

	return cmd
}

func runProducts(cmd *cobra.Command, opts *ProductsOptions) error {
	if err := setup(opts.RootOptions); err != nil {
		return err
	}
	f := opts.formatter()

	products, err := opts.Backend.Products(cmd.Context())
	if err != nil {
		return fail(err, f, "Failed to load products")
	}

	products = filterProducts(products, opts)

	return f.Emit(products, func(w io.Writer) {
		renderProducts(w, products)
	})
}

// filterProducts narrows the catalog client-side, the way the shop screen
// does: category by slug, search by case-insensitive name substring, and
// inactive products hidden unless asked for.
func filterProducts(products []domain.Product, opts *ProductsOptions) []domain.Product {
	search := strings.ToLower(opts.Search)
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if !opts.All && !p.IsActive {
			continue
		}
		if opts.Category != "" && p.Category.Slug != opts.Category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		out = append(out, p)
	}
	return out
}
