package catalog

import "github.com/stylecart/storefront/pkg/enums"

// Default returns the launch catalog.
func Default() *Catalog {
	c, err := New(defaultProducts)
	if err != nil {
		panic(err)
	}
	return c
}

var defaultProducts = []Product{
	{
		ID:       1,
		Name:     "Men's Casual Shirt",
		Price:    799,
		Image:    "https://images.unsplash.com/photo-1596755094514-f87e34085b2c?w=400",
		Category: enums.CategoryMen,
		Sizes:    []string{"S", "M", "L", "XL"},
		Colors:   []string{"Blue", "White"},
		Rating:   4.5,
		Reviews:  182,
		Badge:    "Popular",
	},
	{
		ID:       2,
		Name:     "Women's Summer Dress",
		Price:    1299,
		Image:    "https://images.unsplash.com/photo-1539008835657-9e8e9680c956?w=400",
		Category: enums.CategoryWomen,
		Sizes:    []string{"XS", "S", "M", "L"},
		Colors:   []string{"Red", "Pink"},
		Rating:   4.8,
		Reviews:  95,
		Badge:    "New",
	},
	{
		ID:       3,
		Name:     "Running Shoes",
		Price:    2499,
		Image:    "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=400",
		Category: enums.CategoryAccessories,
		Colors:   []string{"Black", "Red"},
		Rating:   4.3,
		Reviews:  310,
		Badge:    "Sale",
	},
	{
		ID:       4,
		Name:     "Leather Watch",
		Price:    3599,
		Image:    "https://images.unsplash.com/photo-1523170335258-f5ed11844a49?w=400",
		Category: enums.CategoryAccessories,
		Rating:   4.7,
		Reviews:  57,
		Badge:    "Premium",
	},
	{
		ID:       5,
		Name:     "Denim Jacket",
		Price:    1899,
		Image:    "https://images.unsplash.com/photo-1551028719-00167b16eac5?w=400",
		Category: enums.CategoryMen,
		Sizes:    []string{"M", "L", "XL"},
		Colors:   []string{"Blue"},
		Rating:   4.4,
		Reviews:  128,
		Badge:    "Trending",
	},
	{
		ID:       6,
		Name:     "Designer Handbag",
		Price:    2999,
		Image:    "https://images.unsplash.com/photo-1584917865442-de89df76afd3?w=400",
		Category: enums.CategoryWomen,
		Colors:   []string{"Black", "White"},
		Rating:   4.9,
		Reviews:  74,
		Badge:    "Luxury",
	},
	{
		ID:       7,
		Name:     "Wireless Headphones",
		Price:    1999,
		Image:    "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400",
		Category: enums.CategoryAccessories,
		Colors:   []string{"Black", "White"},
		Rating:   4.6,
		Reviews:  421,
		Badge:    "Best Seller",
	},
	{
		ID:       8,
		Name:     "Sports T-Shirt",
		Price:    599,
		Image:    "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=400",
		Category: enums.CategoryMen,
		Sizes:    []string{"S", "M", "L", "XL"},
		Colors:   []string{"Green", "Black"},
		Rating:   4.2,
		Reviews:  236,
		Badge:    "Sale",
	},
}
