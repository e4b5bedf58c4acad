package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"brewbatter_back_end/internal/handlers"
	"brewbatter_back_end/internal/models"
	"brewbatter_back_end/internal/validation"
)

// 🔵 GET /api/admin/recipes/:itemTypeId
func (h *Handler) GetRecipe(c *gin.Context) {
	lines, err := h.Inventory.GetRecipe(c.Request.Context(), c.Param("itemTypeId"))
	if err != nil {
		handlers.Error(c, err, "Failed to load recipe")
		return
	}
	if lines == nil {
		lines = []models.RecipeIngredient{}
	}
	c.JSON(http.StatusOK, gin.H{"ingredients": lines})
}

// 🟢 POST /api/admin/recipes/:itemTypeId
func (h *Handler) SaveRecipe(c *gin.Context) {
	var in struct {
		Ingredients []models.RecipeLineInput `json:"ingredients"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		handlers.BadRequest(c, "Invalid recipe data")
		return
	}
	if err := validation.Recipe(in.Ingredients); err != nil {
		handlers.Error(c, err, "Invalid recipe data")
		return
	}

	if err := h.Inventory.CreateRecipe(c.Request.Context(), c.Param("itemTypeId"), in.Ingredients); err != nil {
		handlers.Error(c, err, "Failed to save recipe")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Recipe saved"})
}

// 🔴 DELETE /api/admin/recipes/:itemTypeId
func (h *Handler) DeleteRecipe(c *gin.Context) {
	if err := h.Inventory.DeleteRecipe(c.Request.Context(), c.Param("itemTypeId")); err != nil {
		handlers.Error(c, err, "Failed to delete recipe")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Recipe deleted"})
}
