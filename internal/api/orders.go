package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/q-allen/E-Commerce-Timepiece-WatchStore/internal/domain"
)

// CreateOrderRequest is the order-creation payload: contact details plus the
// client-held checkout snapshot. The server re-validates stock and pricing;
// the client does not reconcile against its recalculation.
type CreateOrderRequest struct {
	Contact       string               `json:"contact"`
	Address       string               `json:"address"`
	PaymentMethod domain.PaymentMethod `json:"payment_method"`
	TotalPrice    decimal.Decimal      `json:"total_price"`
	CartItems     []domain.CartItem    `json:"cart_items"`
}

// Orders returns the user's order history, most recent first as served.
func (c *Client) Orders(ctx context.Context) ([]domain.Order, error) {
	req, err := c.bearer(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := c.execute(req, http.MethodGet, "/api/orders/", "load orders")
	if err != nil {
		return nil, err
	}

	var orders []domain.Order
	if err := json.Unmarshal(resp.Body(), &orders); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return orders, nil
}

// CreateOrder submits one order from the checkout snapshot.
func (c *Client) CreateOrder(ctx context.Context, order CreateOrderRequest) (*domain.Order, error) {
	req, err := c.bearer(ctx)
	if err != nil {
		return nil, err
	}
	req.SetBody(order)
	resp, err := c.execute(req, http.MethodPost, "/api/orders/", "place order")
	if err != nil {
		return nil, err
	}

	var created domain.Order
	if err := json.Unmarshal(resp.Body(), &created); err != nil {
		return nil, fmt.Errorf("decode order: %w", err)
	}
	return &created, nil
}
