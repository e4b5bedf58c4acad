package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"brewbatter_back_end/internal/cache"
	"brewbatter_back_end/internal/handlers/admin"
	"brewbatter_back_end/internal/handlers/shop"
	"brewbatter_back_end/internal/handlers/staff"
	"brewbatter_back_end/internal/middleware"
	"brewbatter_back_end/internal/utils"
)

// Deps regroupe ce dont les routes ont besoin
type Deps struct {
	Shop      *shop.Handler
	Staff     *staff.Handler
	Admin     *admin.Handler
	Sessions  sessions.Store
	Redis     cache.RedisClient
	JWTSecret string
	// Health rapporte l'état des dépendances (nil: toujours "ok")
	Health func() gin.H
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/health", func(c *gin.Context) {
		status := gin.H{"status": "ok"}
		if d.Health != nil {
			for k, v := range d.Health() {
				status[k] = v
			}
		}
		c.JSON(http.StatusOK, status)
	})

	api := r.Group("/api")
	api.Use(middleware.APIRateLimit(d.Redis))

	// ========================================
	// 🍽️ MENU (public, lecture seule)
	// ========================================
	menu := api.Group("/menu")
	{
		menu.GET("/categories", d.Shop.GetCategories)
		menu.GET("/categories/:id/items", d.Shop.GetCategoryItems)
		menu.GET("/addons", d.Shop.GetAddons)
		menu.GET("/search", middleware.SearchRateLimit(d.Redis), d.Shop.SearchMenu)
	}

	// ========================================
	// 🛒 PANIER (session anonyme)
	// ========================================
	cart := api.Group("/cart", middleware.CartSession(d.Sessions))
	{
		cart.GET("", d.Shop.GetCart)
		cart.GET("/ws", d.Shop.CartWebSocket)

		limited := cart.Group("", middleware.CartRateLimit(d.Redis))
		limited.POST("/items", d.Shop.AddItem)
		limited.PUT("/items/:id", d.Shop.UpdateItem)
		limited.DELETE("/items/:id", d.Shop.RemoveItem)
		limited.DELETE("", d.Shop.ClearCart)
		limited.POST("/checkout", d.Shop.Checkout)
	}

	// ========================================
	// 🧾 PERSONNEL (JWT staff ou admin)
	// ========================================
	staffGroup := api.Group("", middleware.AuthRequired(d.JWTSecret), middleware.RequireStaff)
	{
		staffGroup.GET("/orders", d.Staff.ListOrders)
		staffGroup.GET("/orders/:id", d.Staff.GetOrder)
		staffGroup.GET("/orders/:id/bill", d.Staff.GetBill)
		staffGroup.GET("/orders/:id/bill/qr", d.Staff.GetBillQR)
		staffGroup.POST("/orders/:id/bill/email",
			middleware.AuditCriticalActions(utils.ActionBillEmail, utils.ResourceOrder),
			d.Staff.EmailBill)
		staffGroup.GET("/orders/:id/kot", d.Staff.GetKOT)
		staffGroup.GET("/sales/daily", d.Staff.DailySales)
		staffGroup.GET("/kitchen/ws", d.Staff.KitchenWebSocket)
	}

	// ========================================
	// 🔐 ADMIN (JWT admin, actions auditées)
	// ========================================
	adminGroup := api.Group("/admin", middleware.AuthRequired(d.JWTSecret), middleware.RequireAdmin)
	{
		adminGroup.POST("/categories",
			middleware.AuditCriticalActions(utils.ActionCategoryCreate, utils.ResourceCategory),
			d.Admin.CreateCategory)
		adminGroup.POST("/categories/:id/items",
			middleware.AuditCriticalActions(utils.ActionItemCreate, utils.ResourceItem),
			d.Admin.CreateItem)
		adminGroup.PUT("/items/:id",
			middleware.AuditCriticalActions(utils.ActionItemUpdate, utils.ResourceItem),
			d.Admin.UpdateItem)
		adminGroup.DELETE("/items/:id",
			middleware.AuditCriticalActions(utils.ActionItemDelete, utils.ResourceItem),
			d.Admin.DeleteItem)

		adminGroup.GET("/ingredients", d.Admin.ListIngredients)
		adminGroup.GET("/ingredients/low-stock", d.Admin.LowStock)
		adminGroup.POST("/ingredients",
			middleware.AuditCriticalActions(utils.ActionIngredientCreate, utils.ResourceIngredient),
			d.Admin.CreateIngredient)
		adminGroup.PUT("/ingredients/:id",
			middleware.AuditCriticalActions(utils.ActionIngredientUpdate, utils.ResourceIngredient),
			d.Admin.UpdateIngredient)
		adminGroup.DELETE("/ingredients/:id",
			middleware.AuditCriticalActions(utils.ActionIngredientDelete, utils.ResourceIngredient),
			d.Admin.DeleteIngredient)

		adminGroup.GET("/recipes/:itemTypeId", d.Admin.GetRecipe)
		adminGroup.POST("/recipes/:itemTypeId",
			middleware.AuditCriticalActions(utils.ActionRecipeSave, utils.ResourceRecipe),
			d.Admin.SaveRecipe)
		adminGroup.DELETE("/recipes/:itemTypeId",
			middleware.AuditCriticalActions(utils.ActionRecipeDelete, utils.ResourceRecipe),
			d.Admin.DeleteRecipe)

		adminGroup.GET("/audit-logs", d.Admin.GetAuditLogs)
	}
}
