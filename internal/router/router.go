// internal/router/router.go
package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/listing-discovery/internal/catalog"
	"github.com/javajoker/listing-discovery/internal/config"
	"github.com/javajoker/listing-discovery/internal/handlers"
	"github.com/javajoker/listing-discovery/internal/metrics"
	"github.com/javajoker/listing-discovery/internal/middleware"
	"github.com/javajoker/listing-discovery/internal/services"
)

// Initialize builds the HTTP surface over store. Background work started
// here (rate limiter cleanup) stops when ctx is cancelled.
func Initialize(ctx context.Context, store *catalog.Store, cfg *config.Config) *gin.Engine {
	// Initialize services
	discoveryService := services.NewDiscoveryService(store, cfg)

	// Initialize handlers
	listingHandler := handlers.NewListingHandler(discoveryService)
	suggestionHandler := handlers.NewSuggestionHandler(discoveryService)
	liveHandler := handlers.NewLiveSuggestionHandler(discoveryService, cfg.CORS.AllowedOrigins)

	limiter := middleware.NewRateLimiterFromConfig(cfg.RateLimit)
	go limiter.Cleanup(ctx)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(metrics.Middleware())
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.I18nMiddleware(cfg.I18n.DefaultLocale))
	r.Use(middleware.Session())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"version":  "1.0.0",
			"listings": len(store.AllListings()),
		})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Listing routes
		listings := v1.Group("/listings")
		{
			listings.GET("", listingHandler.GetListings)
			listings.POST("/search", listingHandler.SearchListings)
			listings.POST("/clear", listingHandler.ClearFilters)
			listings.GET("/featured", listingHandler.GetFeaturedListings)
			listings.GET("/:id", listingHandler.GetListing)
		}

		v1.GET("/categories", listingHandler.GetCategories)
		v1.GET("/locations", listingHandler.GetLocations)
		v1.GET("/filters/initial", listingHandler.GetInitialFilters)
		v1.POST("/search/submit", listingHandler.SubmitSearch)

		// Suggestion routes run on every keystroke, so they are rate limited
		suggestions := v1.Group("/suggestions")
		suggestions.Use(limiter.Middleware())
		{
			suggestions.GET("", suggestionHandler.GetSuggestions)
			suggestions.GET("/live", liveHandler.ServeLive)
		}

		v1.GET("/session", handlers.GetSession)
	}

	return r
}
