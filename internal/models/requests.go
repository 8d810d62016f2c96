package models

// AddToCartRequest is the body for POST /api/cart
type AddToCartRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// UpdateCartQuantityRequest is the body for PATCH /api/cart/:id.
// Quantity is a pointer so a zero quantity (remove) still binds.
type UpdateCartQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// AddToWishlistRequest is the body for POST /api/wishlist
type AddToWishlistRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
	ProductID string `json:"productId" binding:"required"`
}

// AddReviewRequest is the body for POST /api/reviews
type AddReviewRequest struct {
	ProductID string `json:"productId" binding:"required"`
	UserName  string `json:"userName" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment" binding:"required"`
}

// ValidateDiscountRequest is the body for POST /api/discount/validate
// and POST /api/cart/:sessionId/discount
type ValidateDiscountRequest struct {
	Code string `json:"code" binding:"required"`
}

// DiscountValidation is the result of validating a discount code
type DiscountValidation struct {
	Valid   bool `json:"valid"`
	Percent *int `json:"percent,omitempty"`
}
