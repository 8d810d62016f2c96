package services

import (
	"fmt"
	"time"

	"dermarokh-backend/internal/models"
	"dermarokh-backend/internal/store"
)

// ReviewService lists and appends product reviews. Reviews are immutable
// once created.
type ReviewService struct {
	store store.Store
}

// NewReviewService creates a new review service instance
func NewReviewService(s store.Store) *ReviewService {
	return &ReviewService{store: s}
}

// GetProductReviews returns all reviews for a product
func (s *ReviewService) GetProductReviews(productID string) []models.Review {
	return s.store.GetProductReviews(productID)
}

// AddReview appends a review, stamping it with the server-local date
func (s *ReviewService) AddReview(req *models.AddReviewRequest) (models.Review, error) {
	review := models.Review{
		ProductID: req.ProductID,
		UserName:  req.UserName,
		Rating:    req.Rating,
		Comment:   req.Comment,
		Date:      time.Now().Format("2006-01-02"),
	}
	if !review.IsValidRating() {
		return models.Review{}, fmt.Errorf("rating must be between 1 and 5")
	}
	return s.store.AddReview(review), nil
}
