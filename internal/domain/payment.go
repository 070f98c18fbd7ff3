package domain

type PaymentMethod string

const (
	PaymentCashOnDelivery PaymentMethod = "COD"
	PaymentBankTransfer   PaymentMethod = "Bank Transfer"
)

// DefaultPaymentMethod is what the checkout screen falls back to when a
// disallowed method is selected.
const DefaultPaymentMethod = PaymentCashOnDelivery

// Allowed reports whether orders may be submitted with this method. Bank
// transfer exists in the collaborator's enum but is not accepted yet.
func (m PaymentMethod) Allowed() bool {
	return m == PaymentCashOnDelivery
}

func (m PaymentMethod) String() string {
	switch m {
	case PaymentCashOnDelivery:
		return "Cash on Delivery"
	default:
		return string(m)
	}
}
