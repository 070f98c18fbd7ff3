package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/q-allen/E-Commerce-Timepiece-WatchStore/internal/domain"
)

// Products lists the catalog. No auth required.
func (c *Client) Products(ctx context.Context) ([]domain.Product, error) {
	resp, err := c.execute(c.anonymous(ctx), http.MethodGet, "/api/products/", "load products")
	if err != nil {
		return nil, err
	}

	var products []domain.Product
	if err := json.Unmarshal(resp.Body(), &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}
