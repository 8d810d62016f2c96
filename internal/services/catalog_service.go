package services

import (
	"sort"
	"strings"

	"dermarokh-backend/internal/models"
	"dermarokh-backend/internal/store"
)

// Sort orders accepted by the product query engine
const (
	SortPopular   = "popular"
	SortNewest    = "newest"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
)

// ProductFilter describes a listing request. All predicates are optional and
// combined with AND semantics; nil pointers mean "not specified".
type ProductFilter struct {
	Category     string
	Brands       []string
	MinPrice     *float64
	MaxPrice     *float64
	MinRating    *float64
	IsNew        *bool
	IsBestSeller *bool
	IsFeatured   *bool
	Sort         string
	Limit        int
}

// CatalogService answers catalog listing, lookup and search requests
type CatalogService struct {
	store store.Store
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(s store.Store) *CatalogService {
	return &CatalogService{store: s}
}

// GetCategories returns all categories
func (s *CatalogService) GetCategories() []models.Category {
	return s.store.GetCategories()
}

// GetCategoryBySlug returns the category with the given slug
func (s *CatalogService) GetCategoryBySlug(slug string) (models.Category, error) {
	return s.store.GetCategoryBySlug(slug)
}

// GetBrands returns all brands
func (s *CatalogService) GetBrands() []models.Brand {
	return s.store.GetBrands()
}

// GetBrandBySlug returns the brand with the given slug
func (s *CatalogService) GetBrandBySlug(slug string) (models.Brand, error) {
	return s.store.GetBrandBySlug(slug)
}

// GetProductBySlug returns the product with the given slug
func (s *CatalogService) GetProductBySlug(slug string) (models.Product, error) {
	return s.store.GetProductBySlug(slug)
}

// GetProducts applies the filter's predicates over the catalog, sorts the
// matches and truncates to the limit. Unknown sort keys fall back to popular.
func (s *CatalogService) GetProducts(filter ProductFilter) []models.Product {
	products := s.store.GetProducts()

	matched := make([]models.Product, 0, len(products))
	for _, p := range products {
		if filter.Category != "" && p.CategoryID != filter.Category {
			continue
		}
		if len(filter.Brands) > 0 && !containsString(filter.Brands, p.BrandID) {
			continue
		}
		if filter.MinPrice != nil && p.Price < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && p.Price > *filter.MaxPrice {
			continue
		}
		if filter.MinRating != nil && p.Rating < *filter.MinRating {
			continue
		}
		if filter.IsNew != nil && p.IsNew != *filter.IsNew {
			continue
		}
		if filter.IsBestSeller != nil && p.IsBestSeller != *filter.IsBestSeller {
			continue
		}
		if filter.IsFeatured != nil && p.IsFeatured != *filter.IsFeatured {
			continue
		}
		matched = append(matched, p)
	}

	sortProducts(matched, filter.Sort)

	if filter.Limit > 0 && len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}
	return matched
}

// SearchProducts returns products whose name, English name, description or
// brand reference contains the query substring, case-insensitively. An empty
// query returns an empty result.
func (s *CatalogService) SearchProducts(query string) []models.Product {
	results := []models.Product{}
	if query == "" {
		return results
	}

	q := strings.ToLower(query)
	for _, p := range s.store.GetProducts() {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.NameEn), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.BrandID), q) {
			results = append(results, p)
		}
	}
	return results
}

// sortProducts orders products in place. All orders are stable so that ties
// keep their catalog order and results stay deterministic.
func sortProducts(products []models.Product, sortBy string) {
	switch sortBy {
	case SortNewest:
		// Stable partition on the IsNew flag, not a timestamp sort: new
		// items first, original relative order preserved within each group.
		partitioned := make([]models.Product, 0, len(products))
		for _, p := range products {
			if p.IsNew {
				partitioned = append(partitioned, p)
			}
		}
		for _, p := range products {
			if !p.IsNew {
				partitioned = append(partitioned, p)
			}
		}
		copy(products, partitioned)
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	default:
		// popular
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].ReviewCount > products[j].ReviewCount
		})
	}
}

func containsString(list []string, value string) bool {
	for _, s := range list {
		if s == value {
			return true
		}
	}
	return false
}
