// Package shop sert le menu public, le panier et le checkout.
package shop

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"brewbatter_back_end/internal/cache"
	"brewbatter_back_end/internal/cart"
	"brewbatter_back_end/internal/models"
	"brewbatter_back_end/internal/receipt"
)

type CartRepository interface {
	Load(ctx context.Context, sessionID string) (*cart.Cart, error)
	Save(ctx context.Context, sessionID string, c *cart.Cart) error
	Delete(ctx context.Context, sessionID string) error
}

type MenuReader interface {
	Categories(ctx context.Context) ([]models.Category, error)
	CategoryItems(ctx context.Context, categoryID string) ([]models.ItemType, error)
	Addons(ctx context.Context) ([]models.Ingredient, error)
	AllItems(ctx context.Context) ([]models.MenuHit, error)
	FindItem(ctx context.Context, categoryID, itemID string) (*models.ItemType, error)
	FindAddon(ctx context.Context, ingredientID string) (*models.Ingredient, error)
}

type MenuSearcher interface {
	Enabled() bool
	SearchMenu(ctx context.Context, query string, size int) ([]models.MenuHit, error)
}

type OrderPlacer interface {
	CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.OrderDetails, error)
}

type TicketPublisher interface {
	Publish(ctx context.Context, ticket cache.KitchenTicket) error
}

type BillMailer interface {
	SendBill(to, subject, text string, qrPNG []byte) error
}

// Subscriber ouvre un abonnement Redis pub/sub (*redis.Client)
type Subscriber interface {
	Subscribe(ctx context.Context, channels ...string) *redis.PubSub
}

// Documents fournit les mises en page des tickets
type Documents struct {
	Bill       receipt.Layout
	EmailBill  receipt.Layout
	KOT        receipt.Layout
	PrintDelay time.Duration
}

type Handler struct {
	Carts   CartRepository
	Menu    MenuReader
	Search  MenuSearcher
	Orders  OrderPlacer
	Kitchen TicketPublisher
	Mailer  BillMailer
	PubSub  Subscriber
	Docs    Documents
}
