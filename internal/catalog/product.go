package catalog

import (
	"github.com/stylecart/storefront/pkg/enums"
)

// Product is an immutable catalog record. Prices are whole base-currency
// units; display conversion happens elsewhere.
type Product struct {
	ID       int                   `json:"id"`
	Name     string                `json:"name"`
	Price    int64                 `json:"price"`
	Image    string                `json:"image,omitempty"`
	Category enums.ProductCategory `json:"category"`
	Sizes    []string              `json:"sizes,omitempty"`
	Colors   []string              `json:"colors,omitempty"`
	Tags     []string              `json:"tags,omitempty"`
	Rating   float64               `json:"rating"`
	Reviews  int                   `json:"reviews"`
	Badge    string                `json:"badge,omitempty"`
}
