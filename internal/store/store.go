package store

import "dermarokh-backend/internal/models"

// Store is the catalog repository. The storefront holds all state in one
// seeded in-memory structure; the interface exists so callers do not change
// if the backing storage ever does.
type Store interface {
	// Categories
	GetCategories() []models.Category
	GetCategory(id string) (models.Category, error)
	GetCategoryBySlug(slug string) (models.Category, error)

	// Brands
	GetBrands() []models.Brand
	GetBrand(id string) (models.Brand, error)
	GetBrandBySlug(slug string) (models.Brand, error)

	// Products. GetProducts returns the catalog in seed order, which the
	// query engine relies on for stable sorting.
	GetProducts() []models.Product
	GetProduct(id string) (models.Product, error)
	GetProductBySlug(slug string) (models.Product, error)

	// Cart. Adding an already-present (session, product) pair increments
	// the existing quantity instead of creating a second line item.
	GetCartItems(sessionID string) []models.CartItemWithProduct
	AddToCart(sessionID, productID string, quantity int) (models.CartItem, error)
	UpdateCartQuantity(id string, quantity int) (models.CartItem, error)
	RemoveFromCart(id string) error
	ClearCart(sessionID string)

	// Wishlist. Set semantics: adding an existing pair returns the
	// existing entry unchanged.
	GetWishlistItems(sessionID string) []models.WishlistItemWithProduct
	AddToWishlist(sessionID, productID string) (models.WishlistItem, error)
	RemoveFromWishlist(id string) error
	RemoveFromWishlistByProduct(sessionID, productID string) error
	IsInWishlist(sessionID, productID string) bool

	// Reviews (append-only)
	GetProductReviews(productID string) []models.Review
	AddReview(review models.Review) models.Review

	// Discount codes, keyed by uppercase code
	GetDiscountCode(code string) (models.DiscountCode, error)
}
