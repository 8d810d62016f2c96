package store

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"dermarokh-backend/internal/models"
)

// MemoryStore is a thread-safe in-memory implementation of Store. The catalog
// is seeded once at construction and is read-mostly afterwards; reviews are
// the only catalog append path. Cart and wishlist mutations for a session are
// applied atomically under the store mutex.
type MemoryStore struct {
	mu sync.RWMutex

	categories    []models.Category
	brands        []models.Brand
	products      []models.Product
	cartItems     []models.CartItem
	wishlistItems []models.WishlistItem
	reviews       []models.Review
	discountCodes map[string]models.DiscountCode
}

// compile-time assertion that MemoryStore implements Store
var _ Store = (*MemoryStore)(nil)

// NewMemoryStore constructs a MemoryStore seeded with the storefront fixture
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		categories:    seedCategories(),
		brands:        seedBrands(),
		products:      seedProducts(),
		reviews:       seedReviews(),
		discountCodes: make(map[string]models.DiscountCode),
	}
	for _, dc := range seedDiscountCodes() {
		s.discountCodes[strings.ToUpper(dc.Code)] = dc
	}
	return s
}

// Category methods

func (s *MemoryStore) GetCategories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

func (s *MemoryStore) GetCategory(id string) (models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Category{}, NewNotFoundError("category", id)
}

func (s *MemoryStore) GetCategoryBySlug(slug string) (models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.categories {
		if c.Slug == slug {
			return c, nil
		}
	}
	return models.Category{}, NewNotFoundError("category", slug)
}

// Brand methods

func (s *MemoryStore) GetBrands() []models.Brand {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Brand, len(s.brands))
	copy(out, s.brands)
	return out
}

func (s *MemoryStore) GetBrand(id string) (models.Brand, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.brands {
		if b.ID == id {
			return b, nil
		}
	}
	return models.Brand{}, NewNotFoundError("brand", id)
}

func (s *MemoryStore) GetBrandBySlug(slug string) (models.Brand, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.brands {
		if b.Slug == slug {
			return b, nil
		}
	}
	return models.Brand{}, NewNotFoundError("brand", slug)
}

// Product methods

func (s *MemoryStore) GetProducts() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *MemoryStore) GetProduct(id string) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.findProduct(id)
	if !ok {
		return models.Product{}, NewNotFoundError("product", id)
	}
	return p, nil
}

func (s *MemoryStore) GetProductBySlug(slug string) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.Slug == slug {
			return p, nil
		}
	}
	return models.Product{}, NewNotFoundError("product", slug)
}

// findProduct looks up a product by id. Callers must hold the mutex.
func (s *MemoryStore) findProduct(id string) (models.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Cart methods

func (s *MemoryStore) GetCartItems(sessionID string) []models.CartItemWithProduct {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := []models.CartItemWithProduct{}
	for _, item := range s.cartItems {
		if item.SessionID != sessionID {
			continue
		}
		// Skip entries whose product no longer resolves
		product, ok := s.findProduct(item.ProductID)
		if !ok {
			continue
		}
		items = append(items, models.CartItemWithProduct{CartItem: item, Product: product})
	}
	return items
}

func (s *MemoryStore) AddToCart(sessionID, productID string, quantity int) (models.CartItem, error) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cartItems {
		if s.cartItems[i].SessionID == sessionID && s.cartItems[i].ProductID == productID {
			s.cartItems[i].Quantity += quantity
			return s.cartItems[i], nil
		}
	}

	item := models.CartItem{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		ProductID: productID,
		Quantity:  quantity,
	}
	s.cartItems = append(s.cartItems, item)
	return item, nil
}

func (s *MemoryStore) UpdateCartQuantity(id string, quantity int) (models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cartItems {
		if s.cartItems[i].ID == id {
			s.cartItems[i].Quantity = quantity
			return s.cartItems[i], nil
		}
	}
	return models.CartItem{}, NewNotFoundError("cart item", id)
}

func (s *MemoryStore) RemoveFromCart(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cartItems {
		if s.cartItems[i].ID == id {
			s.cartItems = append(s.cartItems[:i], s.cartItems[i+1:]...)
			return nil
		}
	}
	return NewNotFoundError("cart item", id)
}

func (s *MemoryStore) ClearCart(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.cartItems[:0]
	for _, item := range s.cartItems {
		if item.SessionID != sessionID {
			kept = append(kept, item)
		}
	}
	s.cartItems = kept
}

// Wishlist methods

func (s *MemoryStore) GetWishlistItems(sessionID string) []models.WishlistItemWithProduct {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := []models.WishlistItemWithProduct{}
	for _, item := range s.wishlistItems {
		if item.SessionID != sessionID {
			continue
		}
		product, ok := s.findProduct(item.ProductID)
		if !ok {
			continue
		}
		items = append(items, models.WishlistItemWithProduct{WishlistItem: item, Product: product})
	}
	return items
}

func (s *MemoryStore) AddToWishlist(sessionID, productID string) (models.WishlistItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.wishlistItems {
		if item.SessionID == sessionID && item.ProductID == productID {
			return item, nil
		}
	}

	item := models.WishlistItem{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		ProductID: productID,
	}
	s.wishlistItems = append(s.wishlistItems, item)
	return item, nil
}

func (s *MemoryStore) RemoveFromWishlist(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.wishlistItems {
		if s.wishlistItems[i].ID == id {
			s.wishlistItems = append(s.wishlistItems[:i], s.wishlistItems[i+1:]...)
			return nil
		}
	}
	return NewNotFoundError("wishlist item", id)
}

func (s *MemoryStore) RemoveFromWishlistByProduct(sessionID, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.wishlistItems {
		if s.wishlistItems[i].SessionID == sessionID && s.wishlistItems[i].ProductID == productID {
			s.wishlistItems = append(s.wishlistItems[:i], s.wishlistItems[i+1:]...)
			return nil
		}
	}
	return NewNotFoundError("wishlist item", productID)
}

func (s *MemoryStore) IsInWishlist(sessionID, productID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.wishlistItems {
		if item.SessionID == sessionID && item.ProductID == productID {
			return true
		}
	}
	return false
}

// Review methods

func (s *MemoryStore) GetProductReviews(productID string) []models.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reviews := []models.Review{}
	for _, r := range s.reviews {
		if r.ProductID == productID {
			reviews = append(reviews, r)
		}
	}
	return reviews
}

func (s *MemoryStore) AddReview(review models.Review) models.Review {
	s.mu.Lock()
	defer s.mu.Unlock()

	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	s.reviews = append(s.reviews, review)
	return review
}

// Discount code methods

func (s *MemoryStore) GetDiscountCode(code string) (models.DiscountCode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dc, ok := s.discountCodes[strings.ToUpper(code)]
	if !ok {
		return models.DiscountCode{}, NewNotFoundError("discount code", code)
	}
	return dc, nil
}
