package currency

import (
	"context"
	"fmt"

	"github.com/stylecart/storefront/pkg/enums"
	pkgerrors "github.com/stylecart/storefront/pkg/errors"
	"github.com/stylecart/storefront/pkg/kvstore"
)

const preferredCurrencyKey = "preferred_currency"

// Preference persists the customer's display currency across sessions.
type Preference struct {
	kv       kvstore.Store
	fallback enums.Currency
}

// NewPreference wires the preference onto the session's key/value store.
func NewPreference(kv kvstore.Store, fallback enums.Currency) (*Preference, error) {
	if kv == nil {
		return nil, fmt.Errorf("kv store required")
	}
	if !fallback.IsValid() {
		fallback = enums.BaseCurrency
	}
	return &Preference{kv: kv, fallback: fallback}, nil
}

// Load returns the saved currency, or the fallback when nothing valid is
// stored. A corrupt value is treated the same as an absent one.
func (p *Preference) Load(ctx context.Context) enums.Currency {
	raw, err := p.kv.Get(ctx, preferredCurrencyKey)
	if err != nil {
		return p.fallback
	}
	cur, err := enums.ParseCurrency(string(raw))
	if err != nil {
		return p.fallback
	}
	return cur
}

// Save persists the selection for future sessions.
func (p *Preference) Save(ctx context.Context, cur enums.Currency) error {
	if !cur.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "unsupported currency").WithDetails(map[string]string{"currency": cur.String()})
	}
	if err := p.kv.Set(ctx, preferredCurrencyKey, []byte(cur.String())); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodePersistence, err, "save currency preference")
	}
	return nil
}
