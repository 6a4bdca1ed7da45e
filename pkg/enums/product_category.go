package enums

import "fmt"

// ProductCategory is the fixed set of catalog sections.
type ProductCategory string

const (
	CategoryMen         ProductCategory = "men"
	CategoryWomen       ProductCategory = "women"
	CategoryAccessories ProductCategory = "accessories"
)

// CategoryAll is the filter wildcard, not a real category.
const CategoryAll = "all"

var validProductCategories = []ProductCategory{
	CategoryMen,
	CategoryWomen,
	CategoryAccessories,
}

// String implements fmt.Stringer.
func (p ProductCategory) String() string {
	return string(p)
}

// IsValid reports whether the value is a known ProductCategory.
func (p ProductCategory) IsValid() bool {
	for _, candidate := range validProductCategories {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParseProductCategory converts raw input into a ProductCategory.
func ParseProductCategory(value string) (ProductCategory, error) {
	for _, candidate := range validProductCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product category %q", value)
}
