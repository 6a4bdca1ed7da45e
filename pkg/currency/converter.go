package currency

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/stylecart/storefront/pkg/enums"
	pkgerrors "github.com/stylecart/storefront/pkg/errors"
)

// Exchange rates relative to the base currency. Display-time only; all stored
// prices and totals stay in the base denomination.
var defaultRates = map[enums.Currency]decimal.Decimal{
	enums.CurrencyPKR: decimal.NewFromInt(1),
	enums.CurrencyUSD: decimal.RequireFromString("0.0036"),
	enums.CurrencyEUR: decimal.RequireFromString("0.0033"),
	enums.CurrencyGBP: decimal.RequireFromString("0.0028"),
	enums.CurrencyAED: decimal.RequireFromString("0.013"),
}

// Converter maps base-currency amounts to display strings in a selected
// currency.
type Converter struct {
	rates map[enums.Currency]decimal.Decimal
}

// NewConverter returns a converter loaded with the built-in rate table.
func NewConverter() *Converter {
	rates := make(map[enums.Currency]decimal.Decimal, len(defaultRates))
	for cur, rate := range defaultRates {
		rates[cur] = rate
	}
	return &Converter{rates: rates}
}

// Convert returns the exact converted amount.
func (c *Converter) Convert(baseAmount decimal.Decimal, cur enums.Currency) (decimal.Decimal, error) {
	rate, ok := c.rates[cur]
	if !ok {
		return decimal.Zero, pkgerrors.New(pkgerrors.CodeValidation, "unsupported currency").WithDetails(map[string]string{"currency": cur.String()})
	}
	return baseAmount.Mul(rate), nil
}

// Format converts a base-currency amount and renders it with the currency
// symbol. The base currency is shown as whole units with thousand separators;
// everything else carries two decimals.
func (c *Converter) Format(baseAmount decimal.Decimal, cur enums.Currency) (string, error) {
	converted, err := c.Convert(baseAmount, cur)
	if err != nil {
		return "", err
	}
	return FormatAmount(converted, cur), nil
}

// FormatPrice formats an integer base-currency price.
func (c *Converter) FormatPrice(basePrice int64, cur enums.Currency) (string, error) {
	return c.Format(decimal.NewFromInt(basePrice), cur)
}

// FormatAmount renders an already converted amount.
func FormatAmount(amount decimal.Decimal, cur enums.Currency) string {
	if cur == enums.BaseCurrency {
		whole := amount.Round(0).IntPart()
		return cur.Symbol() + groupThousands(whole)
	}
	return cur.Symbol() + amount.StringFixed(2)
}

func groupThousands(value int64) string {
	digits := decimal.NewFromInt(value).String()
	negative := strings.HasPrefix(digits, "-")
	if negative {
		digits = digits[1:]
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}

	out := b.String()
	if negative {
		out = "-" + out
	}
	return out
}
