package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"dermarokh-backend/config"
	"dermarokh-backend/internal/models"
	"dermarokh-backend/internal/store"
)

type APITestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (suite *APITestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

func (suite *APITestSuite) SetupTest() {
	cfg := &config.Config{
		Environment:       "test",
		Port:              "8080",
		RateLimitRequests: 10000,
		RateLimitWindow:   60,
		AllowAllOrigins:   true,
	}
	suite.router = SetupRouter(cfg, store.NewMemoryStore())
}

func (suite *APITestSuite) request(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		err := json.NewEncoder(&buf).Encode(body)
		assert.NoError(suite.T(), err)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *APITestSuite) TestHealthCheck() {
	w := suite.request("GET", "/health", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var resp map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(suite.T(), "healthy", resp["status"])
}

func (suite *APITestSuite) TestGetCategories() {
	w := suite.request("GET", "/api/categories", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var categories []models.Category
	json.Unmarshal(w.Body.Bytes(), &categories)
	assert.Len(suite.T(), categories, 8)
}

func (suite *APITestSuite) TestGetCategoryBySlug() {
	w := suite.request("GET", "/api/categories/makeup", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var category models.Category
	json.Unmarshal(w.Body.Bytes(), &category)
	assert.Equal(suite.T(), "cat-1", category.ID)

	w = suite.request("GET", "/api/categories/missing", nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *APITestSuite) TestGetBrands() {
	w := suite.request("GET", "/api/brands", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var brands []models.Brand
	json.Unmarshal(w.Body.Bytes(), &brands)
	assert.Len(suite.T(), brands, 10)
}

func (suite *APITestSuite) TestGetProducts() {
	tests := []struct {
		name      string
		query     string
		wantCount int
	}{
		{"all products", "", 15},
		{"by category", "?category=skincare", 4},
		{"by brand", "?brands=Luxe+Couture", 2},
		{"price range", "?minPrice=100000&maxPrice=200000", 4},
		{"new only", "?new=true", 6},
		{"with limit", "?limit=5", 5},
		{"combined", "?category=skincare&minPrice=200000", 2},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			w := suite.request("GET", "/api/products"+tt.query, nil)
			assert.Equal(suite.T(), http.StatusOK, w.Code)

			var products []models.Product
			json.Unmarshal(w.Body.Bytes(), &products)
			assert.Len(suite.T(), products, tt.wantCount)
		})
	}
}

func (suite *APITestSuite) TestGetProductsSorted() {
	w := suite.request("GET", "/api/products?sort=price-high&limit=1", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var products []models.Product
	json.Unmarshal(w.Body.Bytes(), &products)
	assert.Len(suite.T(), products, 1)
	assert.Equal(suite.T(), "prod-7", products[0].ID)
}

func (suite *APITestSuite) TestSearchProducts() {
	w := suite.request("GET", "/api/products/search?q=serum", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var products []models.Product
	json.Unmarshal(w.Body.Bytes(), &products)
	assert.Len(suite.T(), products, 2)

	w = suite.request("GET", "/api/products/search", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), "[]", w.Body.String())
}

func (suite *APITestSuite) TestGetProductBySlug() {
	w := suite.request("GET", "/api/products/vitamin-c-brightening-serum", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var product models.Product
	json.Unmarshal(w.Body.Bytes(), &product)
	assert.Equal(suite.T(), "prod-6", product.ID)

	w = suite.request("GET", "/api/products/missing", nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)

	var resp map[string]string
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(suite.T(), "Product not found", resp["error"])
}

func (suite *APITestSuite) TestAddToCart() {
	w := suite.request("POST", "/api/cart", gin.H{
		"sessionId": "session-1",
		"productId": "prod-1",
		"quantity":  2,
	})
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var item models.CartItem
	json.Unmarshal(w.Body.Bytes(), &item)
	assert.Equal(suite.T(), 2, item.Quantity)
	assert.NotEmpty(suite.T(), item.ID)
}

func (suite *APITestSuite) TestAddToCartMissingFields() {
	w := suite.request("POST", "/api/cart", gin.H{"quantity": 2})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	var resp map[string]string
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(suite.T(), "sessionId and productId are required", resp["error"])
}

func (suite *APITestSuite) TestAddToCartDefaultsQuantity() {
	w := suite.request("POST", "/api/cart", gin.H{
		"sessionId": "session-1",
		"productId": "prod-1",
	})
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var item models.CartItem
	json.Unmarshal(w.Body.Bytes(), &item)
	assert.Equal(suite.T(), 1, item.Quantity)
}

func (suite *APITestSuite) TestGetCart() {
	suite.request("POST", "/api/cart", gin.H{"sessionId": "session-1", "productId": "prod-1", "quantity": 2})
	suite.request("POST", "/api/cart", gin.H{"sessionId": "session-1", "productId": "prod-1", "quantity": 3})

	w := suite.request("GET", "/api/cart/session-1", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var items []models.CartItemWithProduct
	json.Unmarshal(w.Body.Bytes(), &items)
	assert.Len(suite.T(), items, 1)
	assert.Equal(suite.T(), 5, items[0].Quantity)
	assert.Equal(suite.T(), "prod-1", items[0].Product.ID)
}

func (suite *APITestSuite) TestUpdateCartQuantity() {
	w := suite.request("POST", "/api/cart", gin.H{"sessionId": "session-1", "productId": "prod-1", "quantity": 1})
	var item models.CartItem
	json.Unmarshal(w.Body.Bytes(), &item)

	w = suite.request("PATCH", "/api/cart/"+item.ID, gin.H{"quantity": 4})
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var updated models.CartItem
	json.Unmarshal(w.Body.Bytes(), &updated)
	assert.Equal(suite.T(), 4, updated.Quantity)
}

func (suite *APITestSuite) TestUpdateCartQuantityZeroRemoves() {
	w := suite.request("POST", "/api/cart", gin.H{"sessionId": "session-1", "productId": "prod-1", "quantity": 2})
	var item models.CartItem
	json.Unmarshal(w.Body.Bytes(), &item)

	w = suite.request("PATCH", "/api/cart/"+item.ID, gin.H{"quantity": 0})
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	w = suite.request("GET", "/api/cart/session-1", nil)
	assert.Equal(suite.T(), "[]", w.Body.String())
}

func (suite *APITestSuite) TestUpdateCartQuantityMissingBody() {
	w := suite.request("PATCH", "/api/cart/some-id", gin.H{})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	var resp map[string]string
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(suite.T(), "quantity is required", resp["error"])
}

func (suite *APITestSuite) TestUpdateCartQuantityNotFound() {
	w := suite.request("PATCH", "/api/cart/no-such-item", gin.H{"quantity": 2})
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *APITestSuite) TestRemoveFromCart() {
	w := suite.request("POST", "/api/cart", gin.H{"sessionId": "session-1", "productId": "prod-1"})
	var item models.CartItem
	json.Unmarshal(w.Body.Bytes(), &item)

	w = suite.request("DELETE", "/api/cart/"+item.ID, nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var resp map[string]bool
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.True(suite.T(), resp["success"])

	w = suite.request("DELETE", "/api/cart/"+item.ID, nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *APITestSuite) TestClearCart() {
	suite.request("POST", "/api/cart", gin.H{"sessionId": "session-1", "productId": "prod-1"})
	suite.request("POST", "/api/cart", gin.H{"sessionId": "session-1", "productId": "prod-2"})

	w := suite.request("DELETE", "/api/cart/session/session-1", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	w = suite.request("GET", "/api/cart/session-1", nil)
	assert.Equal(suite.T(), "[]", w.Body.String())
}

func (suite *APITestSuite) TestCartSummaryWithDiscount() {
	suite.request("POST", "/api/cart", gin.H{"sessionId": "session-1", "productId": "prod-6", "quantity": 2})

	w := suite.request("POST", "/api/cart/session-1/discount", gin.H{"code": "WELCOME"})
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	w = suite.request("GET", "/api/cart/session-1/summary", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var summary models.CartSummary
	json.Unmarshal(w.Body.Bytes(), &summary)
	assert.Equal(suite.T(), float64(1040000), summary.Subtotal)
	assert.Equal(suite.T(), float64(156000), summary.DiscountAmount)
	assert.Equal(suite.T(), float64(884000), summary.Total)
	assert.Equal(suite.T(), float64(0), summary.ShippingCost)
	assert.Equal(suite.T(), float64(884000), summary.Payable)
}

func (suite *APITestSuite) TestApplyInvalidDiscount() {
	w := suite.request("POST", "/api/cart/session-1/discount", gin.H{"code": "NOPE"})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	var resp map[string]string
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(suite.T(), "Discount code is not valid", resp["error"])
}

func (suite *APITestSuite) TestRemoveCartDiscount() {
	suite.request("POST", "/api/cart", gin.H{"sessionId": "session-1", "productId": "prod-6"})
	suite.request("POST", "/api/cart/session-1/discount", gin.H{"code": "WELCOME"})

	w := suite.request("DELETE", "/api/cart/session/session-1/discount", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	w = suite.request("GET", "/api/cart/session-1/summary", nil)
	var summary models.CartSummary
	json.Unmarshal(w.Body.Bytes(), &summary)
	assert.Nil(suite.T(), summary.DiscountCode)
	assert.Equal(suite.T(), float64(0), summary.DiscountAmount)
}

func (suite *APITestSuite) TestWishlistFlow() {
	w := suite.request("POST", "/api/wishlist", gin.H{"sessionId": "session-1", "productId": "prod-1"})
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	w = suite.request("GET", "/api/wishlist/session-1", nil)
	var items []models.WishlistItemWithProduct
	json.Unmarshal(w.Body.Bytes(), &items)
	assert.Len(suite.T(), items, 1)

	w = suite.request("GET", "/api/wishlist/session-1/prod-1", nil)
	var check map[string]bool
	json.Unmarshal(w.Body.Bytes(), &check)
	assert.True(suite.T(), check["inWishlist"])

	w = suite.request("DELETE", "/api/wishlist/"+items[0].ID, nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	w = suite.request("GET", "/api/wishlist/session-1/prod-1", nil)
	json.Unmarshal(w.Body.Bytes(), &check)
	assert.False(suite.T(), check["inWishlist"])
}

func (suite *APITestSuite) TestWishlistToggle() {
	w := suite.request("POST", "/api/wishlist/toggle", gin.H{"sessionId": "session-1", "productId": "prod-2"})
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var resp map[string]bool
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.True(suite.T(), resp["inWishlist"])

	w = suite.request("POST", "/api/wishlist/toggle", gin.H{"sessionId": "session-1", "productId": "prod-2"})
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.False(suite.T(), resp["inWishlist"])
}

func (suite *APITestSuite) TestGetProductReviews() {
	w := suite.request("GET", "/api/reviews/prod-1", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var reviews []models.Review
	json.Unmarshal(w.Body.Bytes(), &reviews)
	assert.Len(suite.T(), reviews, 2)
}

func (suite *APITestSuite) TestAddReview() {
	w := suite.request("POST", "/api/reviews", gin.H{
		"productId": "prod-1",
		"userName":  "Test User",
		"rating":    4,
		"comment":   "good product",
	})
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var review models.Review
	json.Unmarshal(w.Body.Bytes(), &review)
	assert.NotEmpty(suite.T(), review.ID)
	assert.NotEmpty(suite.T(), review.Date)

	w = suite.request("GET", "/api/reviews/prod-1", nil)
	var reviews []models.Review
	json.Unmarshal(w.Body.Bytes(), &reviews)
	assert.Len(suite.T(), reviews, 3)
}

func (suite *APITestSuite) TestAddReviewMissingFields() {
	w := suite.request("POST", "/api/reviews", gin.H{"productId": "prod-1"})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	var resp map[string]string
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(suite.T(), "All fields are required", resp["error"])
}

func (suite *APITestSuite) TestAddReviewInvalidRating() {
	w := suite.request("POST", "/api/reviews", gin.H{
		"productId": "prod-1",
		"userName":  "Test User",
		"rating":    9,
		"comment":   "x",
	})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *APITestSuite) TestValidateDiscount() {
	tests := []struct {
		name        string
		code        string
		wantValid   bool
		wantPercent float64
	}{
		{"valid code", "DERMA10", true, 10},
		{"lowercase code", "welcome", true, 15},
		{"unknown code", "NOPE", false, 0},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			w := suite.request("POST", "/api/discount/validate", gin.H{"code": tt.code})
			assert.Equal(suite.T(), http.StatusOK, w.Code)

			var resp map[string]interface{}
			json.Unmarshal(w.Body.Bytes(), &resp)
			assert.Equal(suite.T(), tt.wantValid, resp["valid"])
			if tt.wantValid {
				assert.Equal(suite.T(), tt.wantPercent, resp["percent"])
			} else {
				_, present := resp["percent"]
				assert.False(suite.T(), present)
			}
		})
	}
}

func (suite *APITestSuite) TestValidateDiscountMissingCode() {
	w := suite.request("POST", "/api/discount/validate", gin.H{})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	var resp map[string]string
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(suite.T(), "code is required", resp["error"])
}

func TestAPITestSuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}
