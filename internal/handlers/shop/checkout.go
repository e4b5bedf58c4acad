package shop

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"brewbatter_back_end/internal/cache"
	"brewbatter_back_end/internal/cart"
	"brewbatter_back_end/internal/handlers"
	"brewbatter_back_end/internal/middleware"
	"brewbatter_back_end/internal/models"
	"brewbatter_back_end/internal/receipt"
	"brewbatter_back_end/internal/validation"
)

// CheckoutFailed est le message montré quand le backend refuse la commande
const CheckoutFailed = "Failed to place order. Please try again."

type checkoutInput struct {
	models.CustomerInfo
	Email string `json:"email" binding:"omitempty,email"`
	Note  string `json:"note" binding:"max=200"`
}

// 🟢 POST /api/cart/checkout
func (h *Handler) Checkout(c *gin.Context) {
	var in checkoutInput
	if err := c.ShouldBindJSON(&in); err != nil {
		handlers.BadRequest(c, "Invalid checkout data")
		return
	}
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	in.Phone = strings.TrimSpace(in.Phone)
	if err := validation.Checkout(in.CustomerInfo); err != nil {
		handlers.Error(c, err, CheckoutFailed)
		return
	}

	ctx := c.Request.Context()
	sessionID := middleware.CartID(c)

	ct, err := h.Carts.Load(ctx, sessionID)
	if err != nil {
		handlers.Error(c, err, "Failed to load cart")
		return
	}
	if ct.IsEmpty() {
		handlers.BadRequest(c, "Cart is empty")
		return
	}

	order, err := h.Orders.CreateOrder(ctx, models.CreateOrderRequest{
		CustomerName: in.CustomerName,
		Phone:        in.Phone,
		Items:        ct.OrderItems(),
	})
	if err != nil {
		// le panier reste intact: le client peut réessayer
		log.Printf("❌ Commande refusée pour la session %s: %v", sessionID, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": CheckoutFailed})
		return
	}

	if err := h.Carts.Delete(ctx, sessionID); err != nil {
		log.Printf("⚠️ Panier %s non vidé après commande %s: %v", sessionID, order.ID, err)
	}

	doc := documentOrder(order, ct, in.Note)
	bill := receipt.FormatBill(doc, h.Docs.Bill)
	kot := receipt.FormatKOT(doc, h.Docs.KOT)

	if h.Kitchen != nil {
		ticket := cache.KitchenTicket{OrderID: order.ID, Customer: order.CustomerName, Lines: kot}
		if err := h.Kitchen.Publish(ctx, ticket); err != nil {
			log.Printf("⚠️ KOT %s non publié: %v", order.ID, err)
		}
	}

	if in.Email != "" && h.Mailer != nil {
		text := receipt.Text(receipt.FormatBill(doc, h.Docs.EmailBill))
		go func(to string) {
			if err := h.Mailer.SendBill(to, "Your bill #"+receipt.ShortID(order.ID), text, nil); err != nil {
				log.Printf("⚠️ Note non envoyée à %s: %v", to, err)
			}
		}(in.Email)
	}

	log.Printf("✅ Commande %s passée (%d articles)", order.ID, ct.TotalItems())
	c.JSON(http.StatusCreated, gin.H{
		"order":          order,
		"bill":           bill,
		"kot":            kot,
		"print_delay_ms": h.Docs.PrintDelay.Milliseconds(),
	})
}

// documentOrder prépare la commande pour les tickets. Si le backend ne
// renvoie pas les lignes, on reprend celles du panier.
func documentOrder(order *models.OrderDetails, ct *cart.Cart, note string) receipt.Order {
	doc := receipt.FromOrderDetails(*order)
	doc.Note = note
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now()
	}
	if len(doc.Items) == 0 {
		for _, l := range ct.Lines() {
			doc.Items = append(doc.Items, receipt.Item{
				ID:        l.ID,
				Name:      l.Name,
				Quantity:  l.Quantity,
				UnitPrice: l.UnitPrice,
			})
		}
	}
	if doc.Status == "" {
		doc.Status = models.OrderStatusPlaced
	}
	return doc
}
