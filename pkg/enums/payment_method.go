package enums

import "fmt"

// PaymentMethod describes how a customer intends to settle an order.
type PaymentMethod string

const (
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodPayPal PaymentMethod = "paypal"
	PaymentMethodCOD    PaymentMethod = "cod"
	PaymentMethodUPI    PaymentMethod = "upi"
)

var validPaymentMethods = []PaymentMethod{
	PaymentMethodCard,
	PaymentMethodPayPal,
	PaymentMethodCOD,
	PaymentMethodUPI,
}

var paymentMethodNames = map[PaymentMethod]string{
	PaymentMethodCard:   "Credit/Debit Card",
	PaymentMethodPayPal: "PayPal",
	PaymentMethodCOD:    "Cash on Delivery",
	PaymentMethodUPI:    "UPI",
}

// String implements fmt.Stringer.
func (p PaymentMethod) String() string {
	return string(p)
}

// DisplayName returns the customer-facing label for the method.
func (p PaymentMethod) DisplayName() string {
	if name, ok := paymentMethodNames[p]; ok {
		return name
	}
	return string(p)
}

// IsValid reports whether the value is a known PaymentMethod.
func (p PaymentMethod) IsValid() bool {
	for _, candidate := range validPaymentMethods {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePaymentMethod converts raw input into a PaymentMethod.
func ParsePaymentMethod(value string) (PaymentMethod, error) {
	for _, candidate := range validPaymentMethods {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid payment method %q", value)
}
