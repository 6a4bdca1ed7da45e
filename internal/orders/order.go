package orders

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stylecart/storefront/internal/cart"
	"github.com/stylecart/storefront/pkg/enums"
	"github.com/stylecart/storefront/pkg/types"
)

// Order is a confirmed purchase as persisted in the order log. Monetary
// fields are whole base currency units, already rounded.
type Order struct {
	ID            string              `json:"id"`
	CreatedAt     time.Time           `json:"createdAt"`
	Items         []cart.LineItem     `json:"items"`
	Subtotal      int64               `json:"subtotal"`
	Shipping      int64               `json:"shipping"`
	Tax           int64               `json:"tax"`
	Total         int64               `json:"total"`
	Customer      types.CustomerInfo  `json:"customer"`
	Status        enums.OrderStatus   `json:"status"`
	PaymentStatus enums.PaymentStatus `json:"paymentStatus"`
}

// NewID mints an order identifier in the "ORD" + opaque suffix form.
func NewID() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "ORD" + suffix[:13]
}
