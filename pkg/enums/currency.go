package enums

import "fmt"

// Currency represents supported display denominations. All stored prices are
// in the base currency; conversion happens at display time only.
type Currency string

const (
	CurrencyPKR Currency = "PKR"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyAED Currency = "AED"
)

// BaseCurrency is the denomination prices are stored and computed in.
const BaseCurrency = CurrencyPKR

var validCurrencies = []Currency{
	CurrencyPKR,
	CurrencyUSD,
	CurrencyEUR,
	CurrencyGBP,
	CurrencyAED,
}

var currencySymbols = map[Currency]string{
	CurrencyPKR: "₨",
	CurrencyUSD: "$",
	CurrencyEUR: "€",
	CurrencyGBP: "£",
	CurrencyAED: "د.إ",
}

// String implements fmt.Stringer.
func (c Currency) String() string {
	return string(c)
}

// Symbol returns the display prefix for the currency.
func (c Currency) Symbol() string {
	if symbol, ok := currencySymbols[c]; ok {
		return symbol
	}
	return string(c)
}

// IsValid reports whether the currency is recognized.
func (c Currency) IsValid() bool {
	for _, candidate := range validCurrencies {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCurrency converts a raw string into a Currency.
func ParseCurrency(value string) (Currency, error) {
	for _, candidate := range validCurrencies {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid currency %q", value)
}
