// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopease/shopease-backend/internal/blobstore"
	"github.com/shopease/shopease-backend/internal/cart"
	"github.com/shopease/shopease-backend/internal/catalog"
	"github.com/shopease/shopease-backend/internal/config"
	"github.com/shopease/shopease-backend/internal/handlers"
	"github.com/shopease/shopease-backend/internal/middleware"
	"github.com/shopease/shopease-backend/internal/services"
	"github.com/shopease/shopease-backend/internal/utils"
)

func Initialize(store blobstore.Store, cfg *config.Config) *gin.Engine {
	// Initialize services
	catalogStore := catalog.NewStore(catalog.SeedProducts())
	cartService := cart.NewService(store)
	authService := services.NewAuthService(store, cfg)
	orderService := services.NewOrderService(catalogStore, cartService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(catalogStore)
	cartHandler := handlers.NewCartHandler(cartService, catalogStore)
	orderHandler := handlers.NewOrderHandler(orderService)
	adminHandler := handlers.NewAdminHandler(catalogStore)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", middleware.AuthRequired(), authHandler.Logout)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.GET("/me", middleware.AuthRequired(), authHandler.GetProfile)
			auth.PUT("/profile", middleware.AuthRequired(), authHandler.UpdateProfile)
		}

		// Product routes
		products := v1.Group("/products")
		{
			products.GET("", middleware.OptionalAuth(), productHandler.GetProducts)
			products.GET("/featured", productHandler.GetFeaturedProducts)
			products.GET("/:id", middleware.OptionalAuth(), productHandler.GetProduct)
		}

		// Facet routes
		v1.GET("/categories", productHandler.GetCategories)
		v1.GET("/brands", productHandler.GetBrands)

		// Cart routes
		cartRoutes := v1.Group("/cart")
		cartRoutes.Use(middleware.AuthRequired())
		{
			cartRoutes.GET("", cartHandler.GetCart)
			cartRoutes.DELETE("", cartHandler.ClearCart)
			cartRoutes.POST("/items", cartHandler.AddItem)
			cartRoutes.PUT("/items/:id", cartHandler.UpdateItem)
			cartRoutes.POST("/items/:id/increase", cartHandler.IncreaseItem)
			cartRoutes.POST("/items/:id/decrease", cartHandler.DecreaseItem)
			cartRoutes.DELETE("/items/:id", cartHandler.RemoveItem)
		}

		// Order routes
		orders := v1.Group("/orders")
		orders.Use(middleware.AuthRequired())
		{
			orders.GET("", orderHandler.GetOrders)
			orders.POST("/checkout", orderHandler.Checkout)
			orders.GET("/:id", orderHandler.GetOrder)
		}

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
		{
			adminProducts := admin.Group("/products")
			{
				adminProducts.POST("", adminHandler.CreateProduct)
				adminProducts.PUT("/:id", adminHandler.UpdateProduct)
				adminProducts.DELETE("/:id", adminHandler.DeleteProduct)
			}
		}
	}

	return r
}
