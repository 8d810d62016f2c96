package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"dermarokh-backend/internal/models"
	"dermarokh-backend/internal/services"
	"dermarokh-backend/internal/store"
)

// CartHandlers handles cart-related HTTP requests
type CartHandlers struct {
	cartService *services.CartService
}

// NewCartHandlers creates a new cart handlers instance
func NewCartHandlers(cartService *services.CartService) *CartHandlers {
	return &CartHandlers{cartService: cartService}
}

// GetCart returns the session's line items joined with their products
func (h *CartHandlers) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.cartService.GetItems(c.Param("sessionId")))
}

// AddToCart adds a product to the session's cart, merging duplicates
func (h *CartHandlers) AddToCart(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sessionId and productId are required"})
		return
	}

	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	item, err := h.cartService.AddItem(req.SessionID, req.ProductID, quantity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to cart"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// UpdateCartQuantity sets a line item's quantity; zero removes the item
func (h *CartHandlers) UpdateCartQuantity(c *gin.Context) {
	var req models.UpdateCartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity is required"})
		return
	}

	item, err := h.cartService.UpdateQuantity(c.Param("id"), *req.Quantity)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// RemoveFromCart deletes one line item
func (h *CartHandlers) RemoveFromCart(c *gin.Context) {
	if err := h.cartService.RemoveItem(c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove from cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ClearCart deletes all line items for a session
func (h *CartHandlers) ClearCart(c *gin.Context) {
	h.cartService.Clear(c.Param("sessionId"))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetCartSummary returns the session's derived totals
func (h *CartHandlers) GetCartSummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.cartService.GetSummary(c.Param("sessionId")))
}

// ApplyDiscount validates a code and makes it the session's active discount
func (h *CartHandlers) ApplyDiscount(c *gin.Context) {
	var req models.ValidateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "code is required"})
		return
	}

	result, err := h.cartService.ApplyDiscount(c.Param("sessionId"), req.Code)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Discount code is not valid"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// RemoveDiscount clears the session's active discount
func (h *CartHandlers) RemoveDiscount(c *gin.Context) {
	h.cartService.RemoveDiscount(c.Param("sessionId"))
	c.JSON(http.StatusOK, gin.H{"success": true})
}
