// Package staff sert les commandes, les tickets et les ventes au personnel.
package staff

import (
	"context"

	"github.com/redis/go-redis/v9"

	"brewbatter_back_end/internal/models"
	"brewbatter_back_end/internal/receipt"
)

type OrderReader interface {
	ListOrders(ctx context.Context, page int) (*models.OrderPage, error)
	GetOrder(ctx context.Context, id string) (*models.OrderDetails, error)
	DailySales(ctx context.Context) ([]models.DailySale, error)
}

type BillMailer interface {
	SendBill(to, subject, text string, qrPNG []byte) error
}

type Subscriber interface {
	Subscribe(ctx context.Context, channels ...string) *redis.PubSub
}

// Payment décrit le compte UPI affiché sur le QR
type Payment struct {
	VPA   string
	Payee string
}

type Handler struct {
	Orders  OrderReader
	Mailer  BillMailer
	PubSub  Subscriber
	Payment Payment

	// Bill en roupies entières, BillDecimals avec les paises
	Bill         receipt.Layout
	BillDecimals receipt.Layout
	KOT          receipt.Layout
}
