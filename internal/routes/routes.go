package routes

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/pawmart/storefront-golang/internal/handlers"
	"github.com/pawmart/storefront-golang/internal/middleware"
)

// CORSMiddleware lets the storefront web app (a separate origin during
// development) talk to this API, including the Authorization header the
// cart routes need.
func CORSMiddleware() gin.HandlerFunc {
	allowedOrigin := os.Getenv("CORS_ORIGIN")
	if allowedOrigin == "" {
		allowedOrigin = "http://localhost:5173"
	}

	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		// Preflight requests get an empty 204.
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.Default()
	router.Use(CORSMiddleware())

	v1 := router.Group("/v1")
	{
		v1.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong!"})
		})

		// --- Session (Public) ---
		v1.POST("/session/guest", h.GuestSession)

		// --- Storefront Listing Routes (Public) ---
		// :pet is the listing page key: dogs, cats, small-pets, outlet,
		// pet-parent. Filter selections arrive as repeated query params.
		store := v1.Group("/store")
		{
			store.GET("/:pet/products", h.GetStorefrontProducts)
			store.GET("/:pet/filters", h.GetStorefrontFilters)
		}

		// --- Cart & Wishlist (Token Required) ---
		authed := v1.Group("/")
		authed.Use(middleware.AuthMiddleware())
		{
			authed.GET("/cart", h.GetCart)
			authed.POST("/cart/items", h.AddToCart)
			authed.PUT("/cart/items/:product_id", h.UpdateCartItem)
			authed.DELETE("/cart/items/:product_id", h.DeleteCartItem)

			authed.GET("/wishlist", h.GetWishlist)
			authed.POST("/wishlist", h.AddToWishlist)
			authed.DELETE("/wishlist/:product_id", h.RemoveFromWishlist)
		}
	}

	return router
}
