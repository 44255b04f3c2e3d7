// internal/handlers/handlers_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"

	"github.com/shopease/shopease-backend/internal/blobstore"
	"github.com/shopease/shopease-backend/internal/cart"
	"github.com/shopease/shopease-backend/internal/catalog"
	"github.com/shopease/shopease-backend/internal/config"
	"github.com/shopease/shopease-backend/internal/middleware"
	"github.com/shopease/shopease-backend/internal/services"
	"github.com/shopease/shopease-backend/internal/utils"
)

// testEnv wires real services over an in-memory blob store and mounts the
// handlers on a bare engine, without the rate limiters the production router
// adds.
type testEnv struct {
	router  *gin.Engine
	catalog *catalog.Store
	carts   *cart.Service
	auth    *services.AuthService
}

func newTestEnv() *testEnv {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Environment: "test",
		JWT: config.JWTConfig{
			SecretKey:       "test-secret",
			AccessTokenTTL:  24,
			RefreshTokenTTL: 168,
		},
		Admin: config.AdminConfig{
			Emails: []string{"admin@shopease.com"},
		},
	}
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	store := blobstore.NewMemoryStore()
	catalogStore := catalog.NewStore(catalog.SeedProducts())
	cartService := cart.NewService(store)
	authService := services.NewAuthService(store, cfg)
	orderService := services.NewOrderService(catalogStore, cartService)

	authHandler := NewAuthHandler(authService)
	productHandler := NewProductHandler(catalogStore)
	cartHandler := NewCartHandler(cartService, catalogStore)
	orderHandler := NewOrderHandler(orderService)
	adminHandler := NewAdminHandler(catalogStore)

	r := gin.New()
	v1 := r.Group("/v1")

	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", middleware.AuthRequired(), authHandler.Logout)
	auth.POST("/refresh", authHandler.RefreshToken)
	auth.GET("/me", middleware.AuthRequired(), authHandler.GetProfile)
	auth.PUT("/profile", middleware.AuthRequired(), authHandler.UpdateProfile)

	products := v1.Group("/products")
	products.GET("", middleware.OptionalAuth(), productHandler.GetProducts)
	products.GET("/featured", productHandler.GetFeaturedProducts)
	products.GET("/:id", middleware.OptionalAuth(), productHandler.GetProduct)
	v1.GET("/categories", productHandler.GetCategories)
	v1.GET("/brands", productHandler.GetBrands)

	cartRoutes := v1.Group("/cart")
	cartRoutes.Use(middleware.AuthRequired())
	cartRoutes.GET("", cartHandler.GetCart)
	cartRoutes.DELETE("", cartHandler.ClearCart)
	cartRoutes.POST("/items", cartHandler.AddItem)
	cartRoutes.PUT("/items/:id", cartHandler.UpdateItem)
	cartRoutes.POST("/items/:id/increase", cartHandler.IncreaseItem)
	cartRoutes.POST("/items/:id/decrease", cartHandler.DecreaseItem)
	cartRoutes.DELETE("/items/:id", cartHandler.RemoveItem)

	orders := v1.Group("/orders")
	orders.Use(middleware.AuthRequired())
	orders.GET("", orderHandler.GetOrders)
	orders.POST("/checkout", orderHandler.Checkout)
	orders.GET("/:id", orderHandler.GetOrder)

	admin := v1.Group("/admin")
	admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
	admin.POST("/products", adminHandler.CreateProduct)
	admin.PUT("/products/:id", adminHandler.UpdateProduct)
	admin.DELETE("/products/:id", adminHandler.DeleteProduct)

	return &testEnv{
		router:  r,
		catalog: catalogStore,
		carts:   cartService,
		auth:    authService,
	}
}

func (e *testEnv) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewBuffer(data)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// registerUser creates an account through the API and returns its token.
func (e *testEnv) registerUser(email string) string {
	w := e.do("POST", "/v1/auth/register", "", map[string]interface{}{
		"name":     "Test User",
		"email":    email,
		"password": "secret123",
	})
	if w.Code != http.StatusCreated {
		panic("test user registration failed: " + w.Body.String())
	}

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return resp.Data.Token
}

func decodeBody(w *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return body
}

func dataOf(w *httptest.ResponseRecorder) map[string]interface{} {
	body := decodeBody(w)
	data, _ := body["data"].(map[string]interface{})
	return data
}
