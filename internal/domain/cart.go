package domain

import "github.com/shopspring/decimal"

// Quantity bounds enforced client-side before any network call.
const (
	MinQuantity = 1
	MaxQuantity = 10
)

// CartItem is one line of the authenticated user's cart. There is one per
// (user, product) pair; the server owns it. TotalPrice is server-computed,
// the client never multiplies unit price by quantity itself.
type CartItem struct {
	ID           int64           `json:"id"`
	ProductName  string          `json:"product_name"`
	ProductImage string          `json:"product_image"`
	Quantity     int             `json:"quantity"`
	TotalPrice   decimal.Decimal `json:"total_price"`
}

// QuantityInRange reports whether q is an acceptable cart quantity.
func QuantityInRange(q int) bool {
	return q >= MinQuantity && q <= MaxQuantity
}
