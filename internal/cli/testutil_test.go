package cli

import (
	"bytes"
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/q-allen/E-Commerce-Timepiece-WatchStore/internal/api"
	"github.com/q-allen/E-Commerce-Timepiece-WatchStore/internal/domain"
	"github.com/q-allen/E-Commerce-Timepiece-WatchStore/internal/session"
)

type fakeBackend struct {
	products []domain.Product
	cart     []domain.CartItem
	updated  *domain.CartItem
	orders   []domain.Order
	user     *domain.User
	order    *domain.Order
	token    string
	err      error

	cartCalls    int
	createCalls  int
	createdOrder *api.CreateOrderRequest
}

func (b *fakeBackend) Products(context.Context) ([]domain.Product, error) {
	return b.products, b.err
}

func (b *fakeBackend) Login(context.Context, string, string) (string, error) {
	if b.err != nil {
		return "", b.err
	}
	return b.token, nil
}

func (b *fakeBackend) SignupUser(context.Context, domain.Signup) error {
	return b.err
}

func (b *fakeBackend) Profile(context.Context) (*domain.User, error) {
	return b.user, b.err
}

func (b *fakeBackend) GetCart(context.Context) ([]domain.CartItem, error) {
	b.cartCalls++
	return b.cart, b.err
}

func (b *fakeBackend) AddCartItem(_ context.Context, productID int64, quantity int) (*domain.CartItem, error) {
	b.cartCalls++
	if b.err != nil {
		return nil, b.err
	}
	return &domain.CartItem{ID: productID, Quantity: quantity}, nil
}

func (b *fakeBackend) UpdateCartItem(context.Context, int64, int) (*domain.CartItem, error) {
	b.cartCalls++
	if b.err != nil {
		return nil, b.err
	}
	return b.updated, nil
}

func (b *fakeBackend) RemoveCartItem(context.Context, int64) error {
	b.cartCalls++
	return b.err
}

func (b *fakeBackend) Orders(context.Context) ([]domain.Order, error) {
	return b.orders, b.err
}

func (b *fakeBackend) CreateOrder(_ context.Context, order api.CreateOrderRequest) (*domain.Order, error) {
	b.createCalls++
	b.createdOrder = &order
	if b.err != nil {
		return nil, b.err
	}
	return b.order, nil
}

// testOptions wires a fake backend and an in-memory session into preset
// RootOptions, capturing output.
func testOptions(backend *fakeBackend, token string) (*RootOptions, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &RootOptions{
		Format:  "text",
		Backend: backend,
		Session: session.NewMemStore(token),
		Out:     out,
		In:      strings.NewReader(""),
	}, out
}

func execute(cmd *cobra.Command, args ...string) error {
	cmd.SetArgs(args)
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	return cmd.Execute()
}

func sampleCart() []domain.CartItem {
	return []domain.CartItem{
		{ID: 5, ProductName: "Seiko 5", Quantity: 3, TotalPrice: decimal.RequireFromString("150.00")},
		{ID: 7, ProductName: "Casio Duro", Quantity: 1, TotalPrice: decimal.RequireFromString("200.00")},
	}
}

func sampleOrders() []domain.Order {
	return []domain.Order{
		{
			ID:            12,
			Status:        domain.OrderStatusShipped,
			TotalPrice:    decimal.RequireFromString("350.00"),
			PaymentMethod: domain.PaymentCashOnDelivery,
			CreatedAt:     time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
			Items: []domain.OrderItem{
				{ID: 1, ProductName: "Seiko 5", Quantity: 2, Price: decimal.RequireFromString("150.00")},
				{ID: 2, ProductName: "Casio Duro", Quantity: 1, Price: decimal.RequireFromString("200.00")},
			},
		},
		{
			ID:            9,
			Status:        domain.OrderStatusPending,
			TotalPrice:    decimal.RequireFromString("4500.00"),
			PaymentMethod: domain.PaymentCashOnDelivery,
			CreatedAt:     time.Date(2026, 1, 2, 18, 0, 0, 0, time.UTC),
			Items: []domain.OrderItem{
				{ID: 3, ProductName: "Orient Bambino", Quantity: 1, Price: decimal.RequireFromString("4500.00")},
			},
		},
	}
}
