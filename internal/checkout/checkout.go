// Package checkout turns a cart snapshot into an order. The snapshot is
// captured once at checkout-screen load; server-side cart changes after that
// point are not detected before submission.
package checkout

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/q-allen/E-Commerce-Timepiece-WatchStore/internal/api"
	"github.com/q-allen/E-Commerce-Timepiece-WatchStore/internal/cart"
	"github.com/q-allen/E-Commerce-Timepiece-WatchStore/internal/domain"
)

// Snapshot is the cart contents and total captured at load time, used
// verbatim for order submission.
type Snapshot struct {
	Items []domain.CartItem
	Total decimal.Decimal
}

// TakeSnapshot fixes the given line items and their sum as the checkout
// basis.
func TakeSnapshot(items []domain.CartItem) Snapshot {
	return Snapshot{Items: items, Total: cart.Total(items)}
}

func (s Snapshot) Empty() bool {
	return len(s.Items) == 0
}

// Details are the required order fields collected from the user.
type Details struct {
	Contact       string
	Address       string
	PaymentMethod domain.PaymentMethod
}

// ValidateDetails applies every client-side precondition before any network
// call. A disallowed payment method is reported together with the forced
// reset to the default, so the caller can both notify and correct the
// selection.
func ValidateDetails(d Details) error {
	if strings.TrimSpace(d.Contact) == "" || strings.TrimSpace(d.Address) == "" {
		return ErrMissingDetails
	}
	if !d.PaymentMethod.Allowed() {
		return &PaymentMethodError{Selected: d.PaymentMethod, ResetTo: domain.DefaultPaymentMethod}
	}
	return nil
}

type OrderAPI interface {
	CreateOrder(ctx context.Context, order api.CreateOrderRequest) (*domain.Order, error)
}

type Service struct {
	api OrderAPI
}

func NewService(a OrderAPI) *Service {
	return &Service{api: a}
}

// Submit validates and places one order from the snapshot. Nothing is
// committed locally on failure; the user must re-invoke.
func (s *Service) Submit(ctx context.Context, details Details, snap Snapshot) (*domain.Order, error) {
	if snap.Empty() {
		return nil, ErrEmptyCart
	}
	if err := ValidateDetails(details); err != nil {
		return nil, err
	}

	order, err := s.api.CreateOrder(ctx, api.CreateOrderRequest{
		Contact:       details.Contact,
		Address:       details.Address,
		PaymentMethod: details.PaymentMethod,
		TotalPrice:    snap.Total,
		CartItems:     snap.Items,
	})
	if err != nil {
		slog.Error("order submission failed", "error", err)
		return nil, err
	}
	return order, nil
}
