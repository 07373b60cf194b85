package router

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nibashhq/marketplace-api/internal/auth"
	"github.com/nibashhq/marketplace-api/internal/config"
	"github.com/nibashhq/marketplace-api/internal/handler"
	middlewarepkg "github.com/nibashhq/marketplace-api/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	CustomerAuth *handler.CustomerAuthHandler
	VendorAuth   *handler.VendorAuthHandler
	Customer     *handler.CustomerHandler
	Vendor       *handler.VendorHandler
	Products     *handler.ProductHandler
	Services     *handler.ServiceHandler
	Discovery    *handler.DiscoveryHandler
	Ratings      *handler.RatingHandler
	Lookups      *handler.LookupHandler
	Chat         *handler.ChatHandler
}

// Register wires all HTTP routes for the API.
func Register(e *echo.Echo, cfg *config.Config, jwtManager *auth.JWTManager, handlers Handlers) {
	api := e.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"ok":        true,
			"message":   "Server is working",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})
	api.GET("/vendors-ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{"ok": true, "where": "server"})
	})

	api.POST("/auth/register", handlers.CustomerAuth.Register)
	api.POST("/auth/login", handlers.CustomerAuth.Login)
	api.POST("/vendor/register", handlers.VendorAuth.Register)
	api.POST("/vendor/login", handlers.VendorAuth.Login)

	api.GET("/lookups/categories", handlers.Lookups.Categories)

	api.GET("/nearby/vendors", handlers.Discovery.NearbyVendors)
	api.GET("/nearby/products", handlers.Discovery.NearbyProducts)
	api.GET("/nearby/services", handlers.Discovery.NearbyServices)
	api.GET("/recommendations/vendors", handlers.Discovery.RecommendVendors)
	api.GET("/recommendations/products", handlers.Discovery.RecommendProducts)

	api.POST("/chat", handlers.Chat.Chat, middlewarepkg.ChatRateLimiter(cfg.RateLimitChat))

	customer := api.Group("", middlewarepkg.RequireCustomerJWT(jwtManager))
	customer.GET("/customer/me", handlers.Customer.Me)
	customer.POST("/ratings/vendors/:id", handlers.Ratings.RateVendor)
	customer.POST("/ratings/products/:id", handlers.Ratings.RateProduct)
	customer.GET("/ratings/vendors/:id", handlers.Ratings.VendorRatings)

	vendor := api.Group("", middlewarepkg.RequireVendorJWT(jwtManager))
	vendor.GET("/vendors/me", handlers.Vendor.Profile)
	vendor.PATCH("/vendors/me", handlers.Vendor.UpdateProfile)
	vendor.PATCH("/vendors/me/type", handlers.Vendor.UpdateType)
	vendor.GET("/vendors/me/type", handlers.Vendor.GetType)
	vendor.POST("/vendors/me/verify", handlers.Vendor.Verify)
	vendor.PATCH("/vendors/me/location", handlers.Vendor.UpdateLocation)

	vendor.GET("/products", handlers.Products.List)
	vendor.POST("/products", handlers.Products.Create)
	vendor.PATCH("/products/:id", handlers.Products.Update)
	vendor.DELETE("/products/:id", handlers.Products.Delete)

	vendor.GET("/services", handlers.Services.List)
	vendor.POST("/services", handlers.Services.Create)
	vendor.PATCH("/services/:id", handlers.Services.Update)
	vendor.DELETE("/services/:id", handlers.Services.Delete)
}
