package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"dermarokh-backend/internal/services"
)

// CatalogHandlers handles category, brand and product HTTP requests
type CatalogHandlers struct {
	catalogService *services.CatalogService
}

// NewCatalogHandlers creates a new catalog handlers instance
func NewCatalogHandlers(catalogService *services.CatalogService) *CatalogHandlers {
	return &CatalogHandlers{catalogService: catalogService}
}

// GetCategories returns all categories
func (h *CatalogHandlers) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalogService.GetCategories())
}

// GetCategoryBySlug returns one category or 404
func (h *CatalogHandlers) GetCategoryBySlug(c *gin.Context) {
	category, err := h.catalogService.GetCategoryBySlug(c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	c.JSON(http.StatusOK, category)
}

// GetBrands returns all brands
func (h *CatalogHandlers) GetBrands(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalogService.GetBrands())
}

// GetBrandBySlug returns one brand or 404
func (h *CatalogHandlers) GetBrandBySlug(c *gin.Context) {
	brand, err := h.catalogService.GetBrandBySlug(c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Brand not found"})
		return
	}
	c.JSON(http.StatusOK, brand)
}

// GetProducts lists products matching the query string filters. Unknown or
// absent parameters are ignored rather than rejected.
func (h *CatalogHandlers) GetProducts(c *gin.Context) {
	var filter services.ProductFilter

	filter.Category = c.Query("category")
	if brands := c.Query("brands"); brands != "" {
		filter.Brands = strings.Split(brands, ",")
	}
	if v, err := strconv.ParseFloat(c.Query("minPrice"), 64); err == nil {
		filter.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(c.Query("maxPrice"), 64); err == nil {
		filter.MaxPrice = &v
	}
	if v, err := strconv.ParseFloat(c.Query("minRating"), 64); err == nil {
		filter.MinRating = &v
	}
	if c.Query("new") == "true" {
		isNew := true
		filter.IsNew = &isNew
	}
	if c.Query("bestseller") == "true" {
		isBestSeller := true
		filter.IsBestSeller = &isBestSeller
	}
	if c.Query("featured") == "true" {
		isFeatured := true
		filter.IsFeatured = &isFeatured
	}
	filter.Sort = c.Query("sort")
	if v, err := strconv.Atoi(c.Query("limit")); err == nil {
		filter.Limit = v
	}

	c.JSON(http.StatusOK, h.catalogService.GetProducts(filter))
}

// SearchProducts returns products matching the q substring. A missing query
// yields an empty array, not the full catalog.
func (h *CatalogHandlers) SearchProducts(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalogService.SearchProducts(c.Query("q")))
}

// GetProductBySlug returns one product or 404
func (h *CatalogHandlers) GetProductBySlug(c *gin.Context) {
	product, err := h.catalogService.GetProductBySlug(c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}
