package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"dermarokh-backend/internal/models"
	"dermarokh-backend/internal/services"
	"dermarokh-backend/internal/store"
)

// WishlistHandlers handles wishlist-related HTTP requests
type WishlistHandlers struct {
	wishlistService *services.WishlistService
}

// NewWishlistHandlers creates a new wishlist handlers instance
func NewWishlistHandlers(wishlistService *services.WishlistService) *WishlistHandlers {
	return &WishlistHandlers{wishlistService: wishlistService}
}

// GetWishlist returns the session's wishlist entries with products
func (h *WishlistHandlers) GetWishlist(c *gin.Context) {
	c.JSON(http.StatusOK, h.wishlistService.GetItems(c.Param("sessionId")))
}

// AddToWishlist adds a product to the wishlist; duplicates are no-ops
func (h *WishlistHandlers) AddToWishlist(c *gin.Context) {
	var req models.AddToWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sessionId and productId are required"})
		return
	}

	item, err := h.wishlistService.AddItem(req.SessionID, req.ProductID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to wishlist"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// ToggleWishlist adds the product if absent and removes it if present
func (h *WishlistHandlers) ToggleWishlist(c *gin.Context) {
	var req models.AddToWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sessionId and productId are required"})
		return
	}

	inWishlist, err := h.wishlistService.ToggleItem(req.SessionID, req.ProductID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle wishlist"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"inWishlist": inWishlist})
}

// RemoveFromWishlist deletes a wishlist entry by id
func (h *WishlistHandlers) RemoveFromWishlist(c *gin.Context) {
	if err := h.wishlistService.RemoveItem(c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Wishlist item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove from wishlist"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// CheckWishlist reports whether the session's wishlist contains the product
func (h *WishlistHandlers) CheckWishlist(c *gin.Context) {
	inWishlist := h.wishlistService.IsInWishlist(c.Param("sessionId"), c.Param("productId"))
	c.JSON(http.StatusOK, gin.H{"inWishlist": inWishlist})
}
