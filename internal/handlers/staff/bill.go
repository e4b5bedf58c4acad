package staff

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"brewbatter_back_end/internal/handlers"
	"brewbatter_back_end/internal/receipt"
	"brewbatter_back_end/internal/utils"
)

const qrSize = 256

// document charge la commande :id et la prépare pour les tickets
func (h *Handler) document(c *gin.Context) (receipt.Order, bool) {
	order, err := h.Orders.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		handlers.Error(c, err, "Failed to load order")
		return receipt.Order{}, false
	}
	return receipt.FromOrderDetails(*order), true
}

// respondLines écrit le ticket en texte brut ou en JSON
func respondLines(c *gin.Context, lines []string) {
	switch c.DefaultQuery("format", "json") {
	case "text":
		c.String(http.StatusOK, receipt.Text(lines))
	case "json":
		c.JSON(http.StatusOK, gin.H{"lines": lines, "text": receipt.Text(lines)})
	default:
		handlers.BadRequest(c, "format must be text or json")
	}
}

// 🧾 GET /api/orders/:id/bill?format=text|json&decimals=0|2
func (h *Handler) GetBill(c *gin.Context) {
	layout := h.Bill
	switch c.DefaultQuery("decimals", "0") {
	case "0":
	case "2":
		layout = h.BillDecimals
	default:
		handlers.BadRequest(c, "decimals must be 0 or 2")
		return
	}

	doc, ok := h.document(c)
	if !ok {
		return
	}
	respondLines(c, receipt.FormatBill(doc, layout))
}

// 🍳 GET /api/orders/:id/kot
func (h *Handler) GetKOT(c *gin.Context) {
	doc, ok := h.document(c)
	if !ok {
		return
	}
	respondLines(c, receipt.FormatKOT(doc, h.KOT))
}

// 📱 GET /api/orders/:id/bill/qr : QR UPI du montant total
func (h *Handler) GetBillQR(c *gin.Context) {
	doc, ok := h.document(c)
	if !ok {
		return
	}

	png, err := utils.GenerateUPIQR(h.Payment.VPA, h.Payment.Payee, receipt.ShortID(doc.ID), doc.GrandTotal(), qrSize)
	if errors.Is(err, utils.ErrNoVPA) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "UPI payments are not configured"})
		return
	}
	if err != nil {
		handlers.Error(c, err, "Failed to generate QR code")
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// 📧 POST /api/orders/:id/bill/email
func (h *Handler) EmailBill(c *gin.Context) {
	var in struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		handlers.BadRequest(c, "A valid email is required")
		return
	}
	if h.Mailer == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Email is not configured"})
		return
	}

	doc, ok := h.document(c)
	if !ok {
		return
	}
	text := receipt.Text(receipt.FormatBill(doc, h.BillDecimals))

	// le QR est un bonus: sans VPA la note part sans
	qr, err := utils.GenerateUPIQR(h.Payment.VPA, h.Payment.Payee, receipt.ShortID(doc.ID), doc.GrandTotal(), qrSize)
	if err != nil && !errors.Is(err, utils.ErrNoVPA) {
		log.Printf("⚠️ QR UPI non généré pour %s: %v", doc.ID, err)
	}

	if err := h.Mailer.SendBill(in.Email, "Your bill #"+receipt.ShortID(doc.ID), text, qr); err != nil {
		if errors.Is(err, utils.ErrMailerDisabled) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Email is not configured"})
			_ = c.Error(err)
			return
		}
		handlers.Error(c, err, "Failed to send bill")
		return
	}

	log.Printf("✅ Note %s envoyée à %s", doc.ID, in.Email)
	c.JSON(http.StatusOK, gin.H{"message": "Bill sent"})
}
