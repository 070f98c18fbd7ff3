package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/q-allen/E-Commerce-Timepiece-WatchStore/internal/domain"
)

type addCartItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type updateCartItemRequest struct {
	CartItemID int64 `json:"cart_item_id"`
	Quantity   int   `json:"quantity"`
}

type removeCartItemRequest struct {
	CartItemID int64 `json:"cart_item_id"`
}

// GetCart returns the full current line-item set in server order.
func (c *Client) GetCart(ctx context.Context) ([]domain.CartItem, error) {
	req, err := c.bearer(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := c.execute(req, http.MethodGet, "/api/cart/", "load cart")
	if err != nil {
		return nil, err
	}

	var items []domain.CartItem
	if err := json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	return items, nil
}

// AddCartItem creates a line item for the product or, if one already exists,
// increments its quantity server-side. Either way the server returns the
// resulting line item.
func (c *Client) AddCartItem(ctx context.Context, productID int64, quantity int) (*domain.CartItem, error) {
	req, err := c.bearer(ctx)
	if err != nil {
		return nil, err
	}
	req.SetBody(addCartItemRequest{ProductID: productID, Quantity: quantity})
	resp, err := c.execute(req, http.MethodPost, "/api/cart/", "add to cart")
	if err != nil {
		return nil, err
	}

	var item domain.CartItem
	if err := json.Unmarshal(resp.Body(), &item); err != nil {
		return nil, fmt.Errorf("decode cart item: %w", err)
	}
	return &item, nil
}

// UpdateCartItem sets the quantity of one line item. The response carries the
// server-recomputed total_price for that item.
func (c *Client) UpdateCartItem(ctx context.Context, cartItemID int64, quantity int) (*domain.CartItem, error) {
	req, err := c.bearer(ctx)
	if err != nil {
		return nil, err
	}
	req.SetBody(updateCartItemRequest{CartItemID: cartItemID, Quantity: quantity})
	resp, err := c.execute(req, http.MethodPut, "/api/cart/", "update quantity")
	if err != nil {
		return nil, err
	}

	var item domain.CartItem
	if err := json.Unmarshal(resp.Body(), &item); err != nil {
		return nil, fmt.Errorf("decode cart item: %w", err)
	}
	return &item, nil
}

// RemoveCartItem deletes one line item. The collaborator expects the id in
// the DELETE body, not the path.
func (c *Client) RemoveCartItem(ctx context.Context, cartItemID int64) error {
	req, err := c.bearer(ctx)
	if err != nil {
		return err
	}
	req.SetBody(removeCartItemRequest{CartItemID: cartItemID})
	_, err = c.execute(req, http.MethodDelete, "/api/cart/", "remove from cart")
	return err
}
