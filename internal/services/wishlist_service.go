package services

import (
	"dermarokh-backend/internal/models"
	"dermarokh-backend/internal/store"
)

// WishlistService maintains per-session wishlists with set semantics:
// at most one entry per (session, product) pair and no quantities.
type WishlistService struct {
	store store.Store
}

// NewWishlistService creates a new wishlist service instance
func NewWishlistService(s store.Store) *WishlistService {
	return &WishlistService{store: s}
}

// GetItems returns the session's wishlist entries joined with their products
func (s *WishlistService) GetItems(sessionID string) []models.WishlistItemWithProduct {
	return s.store.GetWishlistItems(sessionID)
}

// AddItem adds a product to the wishlist. Adding an already-present product
// is a no-op and returns the existing entry.
func (s *WishlistService) AddItem(sessionID, productID string) (models.WishlistItem, error) {
	return s.store.AddToWishlist(sessionID, productID)
}

// RemoveItem deletes a wishlist entry by id
func (s *WishlistService) RemoveItem(id string) error {
	return s.store.RemoveFromWishlist(id)
}

// IsInWishlist reports whether the session's wishlist contains the product
func (s *WishlistService) IsInWishlist(sessionID, productID string) bool {
	return s.store.IsInWishlist(sessionID, productID)
}

// ToggleItem adds the product if absent and removes it if present. It
// returns true when the product ended up in the wishlist.
func (s *WishlistService) ToggleItem(sessionID, productID string) (bool, error) {
	if s.store.IsInWishlist(sessionID, productID) {
		if err := s.store.RemoveFromWishlistByProduct(sessionID, productID); err != nil {
			return false, err
		}
		return false, nil
	}
	if _, err := s.store.AddToWishlist(sessionID, productID); err != nil {
		return false, err
	}
	return true, nil
}
