// Package cli is the terminal storefront: one subcommand per screen of the
// shop, all talking to the remote Timepiece API.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/q-allen/E-Commerce-Timepiece-WatchStore/internal/api"
	"github.com/q-allen/E-Commerce-Timepiece-WatchStore/internal/config"
	"github.com/q-allen/E-Commerce-Timepiece-WatchStore/internal/domain"
	"github.com/q-allen/E-Commerce-Timepiece-WatchStore/internal/session"
)

// Backend is everything the screens need from the REST client.
// *api.Client satisfies it; tests substitute a fake.
type Backend interface {
	Products(ctx context.Context) ([]domain.Product, error)
	Login(ctx context.Context, email, password string) (string, error)
	SignupUser(ctx context.Context, signup domain.Signup) error
	Profile(ctx context.Context) (*domain.User, error)
	GetCart(ctx context.Context) ([]domain.CartItem, error)
	AddCartItem(ctx context.Context, productID int64, quantity int) (*domain.CartItem, error)
	UpdateCartItem(ctx context.Context, cartItemID int64, quantity int) (*domain.CartItem, error)
	RemoveCartItem(ctx context.Context, cartItemID int64) error
	Orders(ctx context.Context) ([]domain.Order, error)
	CreateOrder(ctx context.Context, order api.CreateOrderRequest) (*domain.Order, error)
}

// RootOptions holds global flags plus the wired dependencies. Backend,
// Session, and the writers are left nil in production and filled in by
// setup; tests preset them.
type RootOptions struct {
	Verbose    bool
	Format     string // "text" | "json"
	ConfigPath string

	Backend Backend
	Session session.Store
	Out     io.Writer
	In      io.Reader
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "storefront",
		Short: "Timepiece watch store",
		Long:  "Browse the Timepiece catalog, manage your cart, check out, and review orders.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			configureLogging(opts.Verbose)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to config file")

	cmd.AddCommand(NewLoginCommand(opts))
	cmd.AddCommand(NewSignupCommand(opts))
	cmd.AddCommand(NewLogoutCommand(opts))
	cmd.AddCommand(NewProfileCommand(opts))
	cmd.AddCommand(NewProductsCommand(opts))
	cmd.AddCommand(NewCartCommand(opts))
	cmd.AddCommand(NewCheckoutCommand(opts))
	cmd.AddCommand(NewOrdersCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

func configureLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

// setup fills in any dependency the caller did not preset.
func setup(opts *RootOptions) error {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Backend != nil && opts.Session != nil {
		return nil
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load config", err)
	}

	if opts.Session == nil {
		tokenPath := cfg.TokenFile
		if tokenPath == "" {
			tokenPath, err = session.DefaultPath()
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to resolve token path", err)
			}
		}
		opts.Session = session.NewFileStore(tokenPath)
	}
	if opts.Backend == nil {
		opts.Backend = api.New(cfg.APIBaseURL, cfg.RequestTimeout, opts.Session)
	}
	return nil
}

func (o *RootOptions) formatter() *OutputFormatter {
	return &OutputFormatter{Format: o.Format, Writer: o.Out}
}
