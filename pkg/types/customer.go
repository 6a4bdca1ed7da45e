package types

import (
	"strings"

	"github.com/stylecart/storefront/pkg/enums"
)

// CustomerInfo is the per-checkout customer payload. It is transient except
// when explicitly saved for autofill.
type CustomerInfo struct {
	FirstName     string              `json:"firstName" validate:"required"`
	LastName      string              `json:"lastName" validate:"required"`
	Email         string              `json:"email" validate:"required"`
	Phone         string              `json:"phone" validate:"required"`
	Address       string              `json:"address" validate:"required"`
	City          string              `json:"city" validate:"required"`
	State         string              `json:"state" validate:"required"`
	Zip           string              `json:"zip" validate:"required"`
	Country       string              `json:"country" validate:"required"`
	PaymentMethod enums.PaymentMethod `json:"paymentMethod"`
	AgreeTerms    bool                `json:"agreeTerms"`
}

// Trimmed returns a copy with surrounding whitespace removed from every
// free-text field. Validation and persistence both operate on trimmed values.
func (c CustomerInfo) Trimmed() CustomerInfo {
	c.FirstName = strings.TrimSpace(c.FirstName)
	c.LastName = strings.TrimSpace(c.LastName)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Address = strings.TrimSpace(c.Address)
	c.City = strings.TrimSpace(c.City)
	c.State = strings.TrimSpace(c.State)
	c.Zip = strings.TrimSpace(c.Zip)
	c.Country = strings.TrimSpace(c.Country)
	return c
}
