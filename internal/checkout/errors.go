package checkout

import (
	"errors"
	"fmt"

	"github.com/q-allen/E-Commerce-Timepiece-WatchStore/internal/domain"
)

var (
	ErrEmptyCart      = errors.New("cart is empty, nothing to checkout")
	ErrMissingDetails = errors.New("contact number and address are required")
)

// PaymentMethodError is a client-side rejection of a method outside the
// allowed set. It blocks submission and names the default the selection is
// reset to.
type PaymentMethodError struct {
	Selected domain.PaymentMethod
	ResetTo  domain.PaymentMethod
}

func (e *PaymentMethodError) Error() string {
	return fmt.Sprintf("%s is not available right now, payment method reset to %s", e.Selected, e.ResetTo)
}
