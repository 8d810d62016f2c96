package services

import (
	"fmt"
	"sync"

	"dermarokh-backend/internal/models"
	"dermarokh-backend/internal/store"
)

// Shipping business rule, in Toman. Any caller computing a final payable
// amount must reproduce these values exactly.
const (
	FreeShippingThreshold = 500000
	ShippingFee           = 50000
)

// ShippingCost returns the shipping fee for a cart total
func ShippingCost(total float64) float64 {
	if total >= FreeShippingThreshold {
		return 0
	}
	return ShippingFee
}

// sessionDiscount is the single active discount for a session
type sessionDiscount struct {
	Code    string
	Percent int
}

// CartService maintains per-session line items and computes derived totals.
// It does not validate quantities against stock; overselling is unguarded
// and stock display is advisory only.
type CartService struct {
	store     store.Store
	discounts *DiscountService

	mu      sync.Mutex
	applied map[string]sessionDiscount
}

// NewCartService creates a new cart service instance
func NewCartService(s store.Store, discounts *DiscountService) *CartService {
	return &CartService{
		store:     s,
		discounts: discounts,
		applied:   make(map[string]sessionDiscount),
	}
}

// GetItems returns the session's line items joined with their products
func (s *CartService) GetItems(sessionID string) []models.CartItemWithProduct {
	return s.store.GetCartItems(sessionID)
}

// AddItem adds a product to the session's cart. An existing line item for
// the same product has its quantity incremented instead of duplicating.
func (s *CartService) AddItem(sessionID, productID string, quantity int) (models.CartItem, error) {
	return s.store.AddToCart(sessionID, productID, quantity)
}

// UpdateQuantity sets a line item's quantity. A quantity of zero or less
// removes the line item entirely.
func (s *CartService) UpdateQuantity(id string, quantity int) (models.CartItem, error) {
	item, err := s.store.UpdateCartQuantity(id, quantity)
	if err != nil {
		return models.CartItem{}, err
	}
	if quantity <= 0 {
		if err := s.store.RemoveFromCart(id); err != nil {
			return models.CartItem{}, err
		}
	}
	return item, nil
}

// RemoveItem deletes one line item
func (s *CartService) RemoveItem(id string) error {
	return s.store.RemoveFromCart(id)
}

// Clear deletes all line items for a session and drops its discount
func (s *CartService) Clear(sessionID string) {
	s.store.ClearCart(sessionID)

	s.mu.Lock()
	delete(s.applied, sessionID)
	s.mu.Unlock()
}

// ApplyDiscount validates a code and makes it the session's active discount.
// Only one code may be active at a time; applying a new one replaces the
// previous.
func (s *CartService) ApplyDiscount(sessionID, code string) (models.DiscountValidation, error) {
	result := s.discounts.Validate(code)
	if !result.Valid {
		return result, fmt.Errorf("discount code is not valid")
	}

	dc, err := s.store.GetDiscountCode(code)
	if err != nil {
		return models.DiscountValidation{Valid: false}, err
	}

	s.mu.Lock()
	s.applied[sessionID] = sessionDiscount{Code: dc.Code, Percent: dc.DiscountPercent}
	s.mu.Unlock()

	return result, nil
}

// RemoveDiscount clears the session's active discount
func (s *CartService) RemoveDiscount(sessionID string) {
	s.mu.Lock()
	delete(s.applied, sessionID)
	s.mu.Unlock()
}

// GetSubtotal sums price * quantity over the session's line items
func (s *CartService) GetSubtotal(sessionID string) float64 {
	subtotal := 0.0
	for _, item := range s.store.GetCartItems(sessionID) {
		subtotal += item.TotalPrice()
	}
	return subtotal
}

// GetSummary computes the session's derived totals: subtotal, the active
// discount as a percentage of subtotal, total, shipping and payable.
func (s *CartService) GetSummary(sessionID string) models.CartSummary {
	subtotal := s.GetSubtotal(sessionID)

	s.mu.Lock()
	discount, hasDiscount := s.applied[sessionID]
	s.mu.Unlock()

	summary := models.CartSummary{Subtotal: subtotal}
	if hasDiscount {
		code := discount.Code
		summary.DiscountCode = &code
		summary.DiscountPercent = discount.Percent
		summary.DiscountAmount = subtotal * float64(discount.Percent) / 100
	}
	summary.Total = summary.Subtotal - summary.DiscountAmount
	summary.ShippingCost = ShippingCost(summary.Total)
	summary.Payable = summary.Total + summary.ShippingCost
	return summary
}
