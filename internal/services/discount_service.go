package services

import (
	"dermarokh-backend/internal/models"
	"dermarokh-backend/internal/store"
)

// DiscountService validates promotional codes. Validation is side-effect
// free: usedCount is never incremented here, only a future order-commit
// path would consume a use.
type DiscountService struct {
	store store.Store
}

// NewDiscountService creates a new discount service instance
func NewDiscountService(s store.Store) *DiscountService {
	return &DiscountService{store: s}
}

// Validate checks a code against the active, usage-capped discount records.
// Lookup is case-insensitive; the store keys codes uppercase.
func (s *DiscountService) Validate(code string) models.DiscountValidation {
	dc, err := s.store.GetDiscountCode(code)
	if err != nil || !dc.IsValid() {
		return models.DiscountValidation{Valid: false}
	}
	percent := dc.DiscountPercent
	return models.DiscountValidation{Valid: true, Percent: &percent}
}
