package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dermarokh-backend/internal/models"
	"dermarokh-backend/internal/services"
)

// DiscountHandlers handles discount code HTTP requests
type DiscountHandlers struct {
	discountService *services.DiscountService
}

// NewDiscountHandlers creates a new discount handlers instance
func NewDiscountHandlers(discountService *services.DiscountService) *DiscountHandlers {
	return &DiscountHandlers{discountService: discountService}
}

// ValidateDiscount checks a code and returns {valid, percent?}. Validation
// never consumes a use.
func (h *DiscountHandlers) ValidateDiscount(c *gin.Context) {
	var req models.ValidateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "code is required"})
		return
	}
	c.JSON(http.StatusOK, h.discountService.Validate(req.Code))
}
