package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/stylecart/storefront/internal/cart"
	"github.com/stylecart/storefront/pkg/config"
)

// Calculator derives order totals from cart contents. Amounts are held in
// base currency units; the tax line is kept exact and rounded once at the
// display or persistence boundary via Snapshot.Rounded.
type Calculator struct {
	freeShippingThreshold int64
	flatShippingFee       int64
	taxRate               decimal.Decimal
}

// Snapshot is a totals breakdown for one cart state. Subtotal and shipping
// are exact integers; tax and total carry the fractional tax amount.
type Snapshot struct {
	Subtotal int64
	Shipping int64
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// RoundedSnapshot is the integer view persisted on orders and shown to
// customers. Tax and total are rounded half up.
type RoundedSnapshot struct {
	Subtotal int64
	Shipping int64
	Tax      int64
	Total    int64
}

// NewCalculator validates the pricing knobs and parses the tax rate.
func NewCalculator(cfg config.PricingConfig) (*Calculator, error) {
	rate, err := decimal.NewFromString(cfg.TaxRate)
	if err != nil {
		return nil, fmt.Errorf("parsing tax rate %q: %w", cfg.TaxRate, err)
	}
	if rate.IsNegative() {
		return nil, fmt.Errorf("tax rate must be non-negative")
	}
	if cfg.FreeShippingThreshold < 0 {
		return nil, fmt.Errorf("free shipping threshold must be non-negative")
	}
	if cfg.FlatShippingFee < 0 {
		return nil, fmt.Errorf("flat shipping fee must be non-negative")
	}
	return &Calculator{
		freeShippingThreshold: cfg.FreeShippingThreshold,
		flatShippingFee:       cfg.FlatShippingFee,
		taxRate:               rate,
	}, nil
}

// Quote computes the totals for the given line items. An empty cart quotes
// to all zeros: no shipping fee applies when there is nothing to ship.
func (c *Calculator) Quote(items []cart.LineItem) Snapshot {
	var subtotal int64
	for _, item := range items {
		subtotal += item.Price * int64(item.Quantity)
	}

	var shipping int64
	if subtotal > 0 && subtotal <= c.freeShippingThreshold {
		shipping = c.flatShippingFee
	}

	tax := decimal.NewFromInt(subtotal).Mul(c.taxRate)
	total := decimal.NewFromInt(subtotal + shipping).Add(tax)

	return Snapshot{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    total,
	}
}

// Rounded collapses the snapshot to whole base units, rounding half up.
func (s Snapshot) Rounded() RoundedSnapshot {
	return RoundedSnapshot{
		Subtotal: s.Subtotal,
		Shipping: s.Shipping,
		Tax:      s.Tax.Round(0).IntPart(),
		Total:    s.Total.Round(0).IntPart(),
	}
}
