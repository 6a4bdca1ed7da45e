package filters

import (
	"sort"

	"github.com/stylecart/storefront/internal/catalog"
	"github.com/stylecart/storefront/pkg/enums"
)

// Config describes one filtering session over a catalog snapshot.
type Config struct {
	Category  string
	PriceMin  int64
	PriceMax  int64
	Sizes     []string
	Colors    []string
	Brands    []string
	MinRating float64
	SortBy    enums.SortKey
}

// DefaultConfig matches everything and preserves catalog order.
func DefaultConfig() Config {
	return Config{
		Category: enums.CategoryAll,
		PriceMin: 0,
		PriceMax: 50000,
		SortBy:   enums.SortFeatured,
	}
}

// Apply filters and sorts a product snapshot. The input is never mutated and
// the result is fully recomputed on each call.
func Apply(products []catalog.Product, cfg Config) []catalog.Product {
	filtered := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if !matches(p, cfg) {
			continue
		}
		filtered = append(filtered, p)
	}
	sortProducts(filtered, cfg.SortBy)
	return filtered
}

func matches(p catalog.Product, cfg Config) bool {
	if cfg.Category != "" && cfg.Category != enums.CategoryAll && string(p.Category) != cfg.Category {
		return false
	}
	if p.Price < cfg.PriceMin || p.Price > cfg.PriceMax {
		return false
	}
	if len(cfg.Sizes) > 0 && !intersects(p.Sizes, cfg.Sizes) {
		return false
	}
	if len(cfg.Colors) > 0 && !intersects(p.Colors, cfg.Colors) {
		return false
	}
	if len(cfg.Brands) > 0 && !intersects(p.Tags, cfg.Brands) {
		return false
	}
	if cfg.MinRating > 0 && p.Rating < cfg.MinRating {
		return false
	}
	return true
}

// sortProducts orders in place. Sorting is stable so ties keep catalog order;
// featured leaves the slice untouched.
func sortProducts(products []catalog.Product, key enums.SortKey) {
	switch key {
	case enums.SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case enums.SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case enums.SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	case enums.SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].ID > products[j].ID
		})
	case enums.SortPopular:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Reviews > products[j].Reviews
		})
	}
}

func intersects(have, want []string) bool {
	for _, h := range have {
		for _, w := range want {
			if h == w {
				return true
			}
		}
	}
	return false
}
