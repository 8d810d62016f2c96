package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"dermarokh-backend/config"
	"dermarokh-backend/internal/middleware"
	"dermarokh-backend/internal/services"
	"dermarokh-backend/internal/store"
)

// SetupRouter builds the Gin engine with all middleware and API routes wired
// against the given store.
func SetupRouter(cfg *config.Config, st store.Store) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogMiddleware())

	// CORS configuration
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if cfg.AllowAllOrigins {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	} else {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	}
	router.Use(cors.New(corsConfig))

	securityConfig := middleware.DefaultSecurityConfig()
	securityConfig.RateLimitRequests = cfg.RateLimitRequests
	securityConfig.RateLimitWindow = time.Duration(cfg.RateLimitWindow) * time.Second
	router.Use(middleware.SecurityMiddleware(securityConfig))

	// Services
	catalogService := services.NewCatalogService(st)
	discountService := services.NewDiscountService(st)
	cartService := services.NewCartService(st, discountService)
	wishlistService := services.NewWishlistService(st)
	reviewService := services.NewReviewService(st)

	// Handlers
	catalogHandlers := NewCatalogHandlers(catalogService)
	cartHandlers := NewCartHandlers(cartService)
	wishlistHandlers := NewWishlistHandlers(wishlistService)
	reviewHandlers := NewReviewHandlers(reviewService)
	discountHandlers := NewDiscountHandlers(discountService)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
		})
	})

	apiGroup := router.Group("/api")
	{
		// Catalog routes
		apiGroup.GET("/categories", catalogHandlers.GetCategories)
		apiGroup.GET("/categories/:slug", catalogHandlers.GetCategoryBySlug)
		apiGroup.GET("/brands", catalogHandlers.GetBrands)
		apiGroup.GET("/brands/:slug", catalogHandlers.GetBrandBySlug)

		products := apiGroup.Group("/products")
		{
			products.GET("", catalogHandlers.GetProducts)
			products.GET("/search", catalogHandlers.SearchProducts)
			products.GET("/:slug", catalogHandlers.GetProductBySlug)
		}

		// Cart routes
		cart := apiGroup.Group("/cart")
		{
			cart.GET("/:sessionId", cartHandlers.GetCart)
			cart.GET("/:sessionId/summary", cartHandlers.GetCartSummary)
			cart.POST("", cartHandlers.AddToCart)
			cart.POST("/:sessionId/discount", cartHandlers.ApplyDiscount)
			cart.PATCH("/:id", cartHandlers.UpdateCartQuantity)
			cart.DELETE("/:id", cartHandlers.RemoveFromCart)
			cart.DELETE("/session/:sessionId", cartHandlers.ClearCart)
			cart.DELETE("/session/:sessionId/discount", cartHandlers.RemoveDiscount)
		}

		// Wishlist routes
		wishlist := apiGroup.Group("/wishlist")
		{
			wishlist.GET("/:sessionId", wishlistHandlers.GetWishlist)
			wishlist.GET("/:sessionId/:productId", wishlistHandlers.CheckWishlist)
			wishlist.POST("", wishlistHandlers.AddToWishlist)
			wishlist.POST("/toggle", wishlistHandlers.ToggleWishlist)
			wishlist.DELETE("/:id", wishlistHandlers.RemoveFromWishlist)
		}

		// Reviews
		apiGroup.GET("/reviews/:productId", reviewHandlers.GetProductReviews)
		apiGroup.POST("/reviews", reviewHandlers.AddReview)

		// Discount validation
		apiGroup.POST("/discount/validate", discountHandlers.ValidateDiscount)
	}

	return router
}
