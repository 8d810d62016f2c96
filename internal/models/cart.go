package models

// CartItem represents a line item in a session's cart
type CartItem struct {
	ID        string `json:"id"`
	SessionID string `json:"sessionId"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CartItemWithProduct is a cart item joined with its product at read time.
// The product is resolved on each read, not copied at add time.
type CartItemWithProduct struct {
	CartItem
	Product Product `json:"product"`
}

// WishlistItem represents a (session, product) wishlist entry
type WishlistItem struct {
	ID        string `json:"id"`
	SessionID string `json:"sessionId"`
	ProductID string `json:"productId"`
}

// WishlistItemWithProduct is a wishlist entry joined with its product
type WishlistItemWithProduct struct {
	WishlistItem
	Product Product `json:"product"`
}

// CartSummary holds the derived totals for a session's cart. All amounts
// are in Toman.
type CartSummary struct {
	Subtotal        float64 `json:"subtotal"`
	DiscountCode    *string `json:"discountCode"`
	DiscountPercent int     `json:"discountPercent"`
	DiscountAmount  float64 `json:"discountAmount"`
	Total           float64 `json:"total"`
	ShippingCost    float64 `json:"shippingCost"`
	Payable         float64 `json:"payable"`
}

// TotalPrice returns the line total for the joined cart item
func (ci *CartItemWithProduct) TotalPrice() float64 {
	return ci.Product.Price * float64(ci.Quantity)
}
