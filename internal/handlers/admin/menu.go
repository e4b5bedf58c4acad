package admin

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"brewbatter_back_end/internal/handlers"
	"brewbatter_back_end/internal/models"
	"brewbatter_back_end/internal/validation"
)

// 🟢 POST /api/admin/categories (multipart: name, image)
func (h *Handler) CreateCategory(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	imageURL := strings.TrimSpace(c.PostForm("image_url"))
	_, fileErr := c.FormFile("image")

	if err := validation.Category(name, fileErr == nil || imageURL != ""); err != nil {
		handlers.Error(c, err, "Failed to create category")
		return
	}

	if fileErr == nil {
		url, err := h.formImage(c, "categories")
		if imageError(c, err) {
			return
		}
		imageURL = url
	}

	cat, err := h.Menu.CreateCategory(c.Request.Context(), models.CategoryInput{Name: name, ImageURL: imageURL})
	if err != nil {
		handlers.Error(c, err, "Failed to create category")
		return
	}
	auditID(c, cat.ID)
	h.invalidate(c)

	log.Printf("✅ Catégorie créée: %s (%s)", cat.Name, cat.ID)
	c.JSON(http.StatusCreated, cat)
}

type itemForm struct {
	Name        string  `form:"name" json:"name"`
	Price       float64 `form:"price" json:"price"`
	Description string  `form:"description" json:"description"`
	ImageURL    string  `form:"image_url" json:"imageUrl"`
}

func (h *Handler) bindItem(c *gin.Context) (models.ItemTypeInput, bool) {
	var form itemForm
	if err := c.ShouldBind(&form); err != nil {
		handlers.BadRequest(c, "Invalid item data")
		return models.ItemTypeInput{}, false
	}
	input := models.ItemTypeInput{
		Name:        strings.TrimSpace(form.Name),
		Price:       form.Price,
		Description: strings.TrimSpace(form.Description),
		ImageURL:    form.ImageURL,
	}
	if err := validation.ItemType(input); err != nil {
		handlers.Error(c, err, "Invalid item data")
		return input, false
	}

	url, err := h.formImage(c, "items")
	if imageError(c, err) {
		return input, false
	}
	if url != "" {
		input.ImageURL = url
	}
	return input, true
}

// index garde l'index de recherche aligné sur le backend
func (h *Handler) index(c *gin.Context, item *models.ItemType, categoryID string) {
	if h.Index == nil || !h.Index.Enabled() {
		return
	}
	if item.MenuItemID != "" {
		categoryID = item.MenuItemID
	}
	hit := models.MenuHit{
		ID:          item.ID,
		Name:        item.Name,
		Price:       item.Price,
		Description: item.Description,
		ImageURL:    item.ImageURL,
		CategoryID:  categoryID,
	}
	if err := h.Index.IndexItemType(c.Request.Context(), hit); err != nil {
		log.Printf("⚠️ Indexation de %s échouée: %v", item.ID, err)
	}
}

// 🟢 POST /api/admin/categories/:id/items
func (h *Handler) CreateItem(c *gin.Context) {
	input, ok := h.bindItem(c)
	if !ok {
		return
	}

	categoryID := c.Param("id")
	item, err := h.Menu.CreateCategoryItem(c.Request.Context(), categoryID, input)
	if err != nil {
		handlers.Error(c, err, "Failed to create item")
		return
	}
	auditID(c, item.ID)
	h.index(c, item, categoryID)
	h.invalidate(c)

	c.JSON(http.StatusCreated, item)
}

// 🟠 PUT /api/admin/items/:id
func (h *Handler) UpdateItem(c *gin.Context) {
	input, ok := h.bindItem(c)
	if !ok {
		return
	}

	item, err := h.Menu.UpdateCategoryItem(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		handlers.Error(c, err, "Failed to update item")
		return
	}
	h.index(c, item, c.Query("category_id"))
	h.invalidate(c)

	c.JSON(http.StatusOK, item)
}

// 🔴 DELETE /api/admin/items/:id
func (h *Handler) DeleteItem(c *gin.Context) {
	id := c.Param("id")
	if err := h.Menu.DeleteCategoryItem(c.Request.Context(), id); err != nil {
		handlers.Error(c, err, "Failed to delete item")
		return
	}
	if h.Index != nil && h.Index.Enabled() {
		if err := h.Index.DeleteItemType(c.Request.Context(), id); err != nil {
			log.Printf("⚠️ Désindexation de %s échouée: %v", id, err)
		}
	}
	h.invalidate(c)

	c.JSON(http.StatusOK, gin.H{"message": "Item deleted"})
}
