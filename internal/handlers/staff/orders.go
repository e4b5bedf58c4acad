package staff

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"brewbatter_back_end/internal/handlers"
	"brewbatter_back_end/internal/models"
)

// 🔵 GET /api/orders?page=
func (h *Handler) ListOrders(c *gin.Context) {
	page := 1
	if p := c.Query("page"); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil || n < 1 {
			handlers.BadRequest(c, "page must be a positive integer")
			return
		}
		page = n
	}

	result, err := h.Orders.ListOrders(c.Request.Context(), page)
	if err != nil {
		handlers.Error(c, err, "Failed to load orders")
		return
	}
	c.JSON(http.StatusOK, result)
}

// 🔵 GET /api/orders/:id
func (h *Handler) GetOrder(c *gin.Context) {
	order, err := h.Orders.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		handlers.Error(c, err, "Failed to load order")
		return
	}
	c.JSON(http.StatusOK, order)
}

// 📊 GET /api/sales/daily
func (h *Handler) DailySales(c *gin.Context) {
	days, err := h.Orders.DailySales(c.Request.Context())
	if err != nil {
		handlers.Error(c, err, "Failed to load sales")
		return
	}
	if days == nil {
		days = []models.DailySale{}
	}
	c.JSON(http.StatusOK, gin.H{
		"days":    days,
		"summary": models.SummarizeSales(days),
	})
}
