package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dermarokh-backend/internal/models"
	"dermarokh-backend/internal/services"
)

// ReviewHandlers handles product review HTTP requests
type ReviewHandlers struct {
	reviewService *services.ReviewService
}

// NewReviewHandlers creates a new review handlers instance
func NewReviewHandlers(reviewService *services.ReviewService) *ReviewHandlers {
	return &ReviewHandlers{reviewService: reviewService}
}

// GetProductReviews returns all reviews for a product
func (h *ReviewHandlers) GetProductReviews(c *gin.Context) {
	c.JSON(http.StatusOK, h.reviewService.GetProductReviews(c.Param("productId")))
}

// AddReview appends a review with a server-stamped date
func (h *ReviewHandlers) AddReview(c *gin.Context) {
	var req models.AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	review, err := h.reviewService.AddReview(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, review)
}
