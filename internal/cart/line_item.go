package cart

// LineItem is one product-quantity pairing in the cart. Display fields are
// denormalized from the catalog at add time so the cart renders without a
// catalog lookup.
type LineItem struct {
	ProductID int    `json:"id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Image     string `json:"image,omitempty"`
	Quantity  int    `json:"quantity"`
}
