// internal/handlers/admin.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shopease/shopease-backend/internal/catalog"
	"github.com/shopease/shopease-backend/internal/i18n"
	"github.com/shopease/shopease-backend/internal/models"
	"github.com/shopease/shopease-backend/internal/utils"
)

// AdminHandler exposes the catalog mutations reserved for admin users. The
// mutations touch the in-memory catalog only and are lost on restart.
type AdminHandler struct {
	store *catalog.Store
}

type productRequest struct {
	Name        string   `json:"name" validate:"required,min=3,max=255"`
	Price       float64  `json:"price" validate:"required,min=0.01"`
	Description string   `json:"description" validate:"required,min=10"`
	Image       string   `json:"image" validate:"omitempty,url"`
	Category    string   `json:"category" validate:"required"`
	Brand       string   `json:"brand" validate:"required"`
	Rating      float64  `json:"rating" validate:"min=0,max=5"`
	Stock       int      `json:"stock" validate:"min=0"`
	Featured    bool     `json:"featured"`
	Colors      []string `json:"colors,omitempty"`
	Discount    int      `json:"discount" validate:"min=0,max=100"`
	Tags        []string `json:"tags,omitempty"`
}

func NewAdminHandler(store *catalog.Store) *AdminHandler {
	return &AdminHandler{
		store: store,
	}
}

func (r *productRequest) toProduct() models.Product {
	return models.Product{
		Name:        r.Name,
		Price:       r.Price,
		Description: r.Description,
		Image:       r.Image,
		Category:    r.Category,
		Brand:       r.Brand,
		Rating:      r.Rating,
		Stock:       r.Stock,
		Featured:    r.Featured,
		Colors:      r.Colors,
		Discount:    r.Discount,
		Tags:        r.Tags,
	}
}

// POST /admin/products
func (h *AdminHandler) CreateProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	// Validate request
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product := h.store.Add(req.toProduct())

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductCreated),
		"product": product,
	})
}

// PUT /admin/products/:id
func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product id", nil)
		return
	}

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	// Validate request
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product := req.toProduct()
	product.ID = id

	updated, err := h.store.Update(product)
	if err != nil {
		utils.NotFoundResponse(c, "product")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductUpdated),
		"product": updated,
	})
}

// DELETE /admin/products/:id
func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product id", nil)
		return
	}

	if err := h.store.Delete(id); err != nil {
		utils.NotFoundResponse(c, "product")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductDeleted),
	})
}
