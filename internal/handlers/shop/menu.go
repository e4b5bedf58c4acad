package shop

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"brewbatter_back_end/internal/handlers"
	"brewbatter_back_end/internal/services"
)

// 🔵 GET /api/menu/categories
func (h *Handler) GetCategories(c *gin.Context) {
	cats, err := h.Menu.Categories(c.Request.Context())
	if err != nil {
		handlers.Error(c, err, "Failed to load categories")
		return
	}
	c.JSON(http.StatusOK, cats)
}

// 🔵 GET /api/menu/categories/:id/items
func (h *Handler) GetCategoryItems(c *gin.Context) {
	items, err := h.Menu.CategoryItems(c.Request.Context(), c.Param("id"))
	if err != nil {
		handlers.Error(c, err, "Failed to load items")
		return
	}
	c.JSON(http.StatusOK, items)
}

// 🔵 GET /api/menu/addons
func (h *Handler) GetAddons(c *gin.Context) {
	addons, err := h.Menu.Addons(c.Request.Context())
	if err != nil {
		handlers.Error(c, err, "Failed to load add-ons")
		return
	}
	c.JSON(http.StatusOK, addons)
}

// 🔍 GET /api/menu/search?q=
func (h *Handler) SearchMenu(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		handlers.BadRequest(c, "Query parameter q is required")
		return
	}
	ctx := c.Request.Context()

	if h.Search != nil && h.Search.Enabled() {
		hits, err := h.Search.SearchMenu(ctx, q, 20)
		if err == nil {
			c.JSON(http.StatusOK, gin.H{"results": hits, "source": "elastic"})
			return
		}
		if !errors.Is(err, services.ErrSearchUnavailable) {
			log.Printf("⚠️ Recherche Elastic en échec, repli local: %v", err)
		}
	}

	all, err := h.Menu.AllItems(ctx)
	if err != nil {
		handlers.Error(c, err, "Search failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": services.FilterMenu(all, q), "source": "local"})
}
