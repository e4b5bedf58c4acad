package admin

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"brewbatter_back_end/internal/handlers"
	"brewbatter_back_end/internal/models"
	"brewbatter_back_end/internal/validation"
)

type ingredientForm struct {
	Name          string   `form:"name" json:"name"`
	Stock         float64  `form:"stock" json:"stock"`
	Unit          string   `form:"unit" json:"unit"`
	ReorderLevel  *float64 `form:"reorder_level" json:"reorder_level"`
	AddonQuantity *float64 `form:"addon_quantity" json:"addon_quantity"`
	AddonPrice    *float64 `form:"addon_price" json:"addon_price"`
	ImageURL      string   `form:"image_url" json:"image_url"`
}

func (h *Handler) bindIngredient(c *gin.Context, creating bool) (models.IngredientInput, bool) {
	var form ingredientForm
	if err := c.ShouldBind(&form); err != nil {
		handlers.BadRequest(c, "Invalid ingredient data")
		return models.IngredientInput{}, false
	}
	input := models.IngredientInput{
		Name:          strings.TrimSpace(form.Name),
		Stock:         form.Stock,
		Unit:          models.Unit(strings.ToUpper(strings.TrimSpace(form.Unit))),
		ReorderLevel:  form.ReorderLevel,
		AddonQuantity: form.AddonQuantity,
		AddonPrice:    form.AddonPrice,
		ImageURL:      form.ImageURL,
	}
	if err := validation.Ingredient(input, creating); err != nil {
		handlers.Error(c, err, "Invalid ingredient data")
		return input, false
	}

	url, err := h.formImage(c, "ingredients")
	if imageError(c, err) {
		return input, false
	}
	if url != "" {
		input.ImageURL = url
	}
	return input, true
}

// 🔵 GET /api/admin/ingredients
func (h *Handler) ListIngredients(c *gin.Context) {
	list, err := h.Inventory.ListIngredients(c.Request.Context())
	if err != nil {
		handlers.Error(c, err, "Failed to load ingredients")
		return
	}
	c.JSON(http.StatusOK, list)
}

// ⚠️ GET /api/admin/ingredients/low-stock : stock <= niveau de réapprovisionnement
func (h *Handler) LowStock(c *gin.Context) {
	list, err := h.Inventory.ListIngredients(c.Request.Context())
	if err != nil {
		handlers.Error(c, err, "Failed to load ingredients")
		return
	}
	low := []models.Ingredient{}
	for _, ing := range list {
		if ing.IsLowStock() {
			low = append(low, ing)
		}
	}
	c.JSON(http.StatusOK, low)
}

// 🟢 POST /api/admin/ingredients
func (h *Handler) CreateIngredient(c *gin.Context) {
	input, ok := h.bindIngredient(c, true)
	if !ok {
		return
	}
	ing, err := h.Inventory.CreateIngredient(c.Request.Context(), input)
	if err != nil {
		handlers.Error(c, err, "Failed to create ingredient")
		return
	}
	auditID(c, ing.ID)
	h.invalidate(c)
	c.JSON(http.StatusCreated, ing)
}

// 🟠 PUT /api/admin/ingredients/:id
func (h *Handler) UpdateIngredient(c *gin.Context) {
	input, ok := h.bindIngredient(c, false)
	if !ok {
		return
	}
	ing, err := h.Inventory.UpdateIngredient(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		handlers.Error(c, err, "Failed to update ingredient")
		return
	}
	h.invalidate(c)
	c.JSON(http.StatusOK, ing)
}

// 🔴 DELETE /api/admin/ingredients/:id
func (h *Handler) DeleteIngredient(c *gin.Context) {
	if err := h.Inventory.DeleteIngredient(c.Request.Context(), c.Param("id")); err != nil {
		handlers.Error(c, err, "Failed to delete ingredient")
		return
	}
	h.invalidate(c)
	c.JSON(http.StatusOK, gin.H{"message": "Ingredient deleted"})
}
