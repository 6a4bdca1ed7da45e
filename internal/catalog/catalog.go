package catalog

import (
	"fmt"
	"strings"
)

// Catalog is a fixed, read-only product collection. The storefront core never
// mutates it; filtering and carts work on copies.
type Catalog struct {
	products []Product
	byID     map[int]Product
}

// New builds a catalog, rejecting duplicate or non-positive ids and negative
// prices.
func New(products []Product) (*Catalog, error) {
	byID := make(map[int]Product, len(products))
	for _, p := range products {
		if p.ID <= 0 {
			return nil, fmt.Errorf("product id must be positive, got %d", p.ID)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("product %d has negative price", p.ID)
		}
		if _, exists := byID[p.ID]; exists {
			return nil, fmt.Errorf("duplicate product id %d", p.ID)
		}
		byID[p.ID] = p
	}
	return &Catalog{
		products: append([]Product(nil), products...),
		byID:     byID,
	}, nil
}

// FindByID returns the product and whether it exists.
func (c *Catalog) FindByID(id int) (Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// List returns the products in catalog order.
func (c *Catalog) List() []Product {
	return append([]Product(nil), c.products...)
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Search returns products whose name, category or badge contains the term,
// case-insensitively. An empty term returns the full catalog.
func (c *Catalog) Search(term string) []Product {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return c.List()
	}

	var matched []Product
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(string(p.Category)), term) ||
			strings.Contains(strings.ToLower(p.Badge), term) {
			matched = append(matched, p)
		}
	}
	return matched
}
