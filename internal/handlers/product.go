// internal/handlers/product.go
package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shopease/shopease-backend/internal/catalog"
	"github.com/shopease/shopease-backend/internal/models"
	"github.com/shopease/shopease-backend/internal/utils"
)

type ProductHandler struct {
	store *catalog.Store
}

func NewProductHandler(store *catalog.Store) *ProductHandler {
	return &ProductHandler{
		store: store,
	}
}

// GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	query := c.Query("search")
	cfg := parseFilterConfig(c)

	products := catalog.Search(h.store.List(), query, cfg)

	utils.SuccessResponse(c, gin.H{
		"products": products,
		"total":    len(products),
	})
}

// GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product id", nil)
		return
	}

	product, err := h.store.GetByID(id)
	if err != nil {
		utils.NotFoundResponse(c, "product")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product": product,
	})
}

// GET /products/featured
func (h *ProductHandler) GetFeaturedProducts(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"products": h.store.Featured(),
	})
}

// GET /categories
func (h *ProductHandler) GetCategories(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"categories": h.store.Categories(),
	})
}

// GET /brands
func (h *ProductHandler) GetBrands(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"brands": h.store.Brands(),
	})
}

// parseFilterConfig maps query parameters onto a FilterConfig. Unparseable
// values fall back to the unfiltered default rather than erroring.
func parseFilterConfig(c *gin.Context) models.FilterConfig {
	cfg := models.FilterConfig{
		Category: c.DefaultQuery("category", models.CategoryAll),
		SortBy:   models.SortKey(c.DefaultQuery("sort", string(models.SortNewest))),
	}

	var bracket models.PriceBracket
	hasBracket := false
	if priceMinStr := c.Query("price_min"); priceMinStr != "" {
		if priceMin, err := strconv.ParseFloat(priceMinStr, 64); err == nil {
			bracket.Min = priceMin
			hasBracket = true
		}
	}
	if priceMaxStr := c.Query("price_max"); priceMaxStr != "" {
		if priceMax, err := strconv.ParseFloat(priceMaxStr, 64); err == nil {
			bracket.Max = &priceMax
			hasBracket = true
		}
	}
	if hasBracket {
		cfg.PriceRange = &bracket
	}

	if brands := c.Query("brands"); brands != "" {
		cfg.Brands = strings.Split(brands, ",")
	}

	if inStockStr := c.Query("in_stock"); inStockStr != "" {
		if inStock, err := strconv.ParseBool(inStockStr); err == nil {
			cfg.InStockOnly = inStock
		}
	}

	if onSaleStr := c.Query("on_sale"); onSaleStr != "" {
		if onSale, err := strconv.ParseBool(onSaleStr); err == nil {
			cfg.OnSaleOnly = onSale
		}
	}

	return cfg
}
