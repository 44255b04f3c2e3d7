// internal/handlers/cart.go
package handlers

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shopease/shopease-backend/internal/cart"
	"github.com/shopease/shopease-backend/internal/catalog"
	"github.com/shopease/shopease-backend/internal/i18n"
	"github.com/shopease/shopease-backend/internal/utils"
)

type CartHandler struct {
	carts *cart.Service
	store *catalog.Store
}

type addToCartRequest struct {
	ProductID int `json:"product_id" validate:"required,min=1"`
	Quantity  int `json:"quantity" validate:"omitempty,min=1"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

func NewCartHandler(carts *cart.Service, store *catalog.Store) *CartHandler {
	return &CartHandler{
		carts: carts,
		store: store,
	}
}

// GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"cart": h.carts.Get(c.Request.Context(), userID),
	})
}

// POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	// Validate request
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product, err := h.store.GetByID(req.ProductID)
	if err != nil {
		utils.NotFoundResponse(c, "product")
		return
	}

	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}
	ledger := h.carts.Add(c.Request.Context(), userID, *product, quantity)

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyCartUpdated),
		"cart":    ledger,
	})
}

// PUT /cart/items/:id
func (h *CartHandler) UpdateItem(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product id", nil)
		return
	}

	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	// Validate request
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	ledger := h.carts.UpdateQuantity(c.Request.Context(), userID, productID, req.Quantity)

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyCartUpdated),
		"cart":    ledger,
	})
}

// POST /cart/items/:id/increase
func (h *CartHandler) IncreaseItem(c *gin.Context) {
	h.adjustItem(c, h.carts.Increase)
}

// POST /cart/items/:id/decrease
func (h *CartHandler) DecreaseItem(c *gin.Context) {
	h.adjustItem(c, h.carts.Decrease)
}

// DELETE /cart/items/:id
func (h *CartHandler) RemoveItem(c *gin.Context) {
	h.adjustItem(c, h.carts.Remove)
}

// DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	ledger := h.carts.Clear(c.Request.Context(), userID)

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyCartCleared),
		"cart":    ledger,
	})
}

func (h *CartHandler) adjustItem(c *gin.Context, op func(ctx context.Context, userID string, productID int) cart.Ledger) {
	lang := utils.GetLangFromContext(c)
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product id", nil)
		return
	}

	ledger := op(c.Request.Context(), userID, productID)

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyCartUpdated),
		"cart":    ledger,
	})
}
