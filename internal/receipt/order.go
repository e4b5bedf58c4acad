package receipt

import (
	"time"

	"github.com/shopspring/decimal"

	"brewbatter_back_end/internal/models"
)

// Item est une ligne de commande à imprimer
type Item struct {
	ID        string
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
}

func (i Item) Total() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order est l'entrée des formateurs. DeclaredTotal et Discount sont optionnels.
type Order struct {
	ID            string
	CustomerName  string
	Phone         string
	Items         []Item
	DeclaredTotal *decimal.Decimal
	Discount      *decimal.Decimal
	Status        string
	CreatedAt     time.Time
	Note          string
}

// Subtotal = somme des quantité × prix
func (o Order) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range o.Items {
		sum = sum.Add(it.Total())
	}
	return sum
}

// GrandTotal : total déclaré s'il existe, sinon le sous-total recalculé
func (o Order) GrandTotal() decimal.Decimal {
	if o.DeclaredTotal != nil {
		return *o.DeclaredTotal
	}
	return o.Subtotal()
}

func (o Order) discount() decimal.Decimal {
	if o.Discount == nil {
		return decimal.Zero
	}
	return *o.Discount
}

// FromOrderDetails adapte une commande du backend
func FromOrderDetails(d models.OrderDetails) Order {
	o := Order{
		ID:           d.ID,
		CustomerName: d.CustomerName,
		Phone:        d.Phone,
		Status:       d.Status,
		CreatedAt:    d.CreatedAt,
	}
	if d.TotalAmount != nil {
		total := decimal.NewFromFloat(*d.TotalAmount)
		o.DeclaredTotal = &total
	}
	if d.Discount != nil {
		disc := decimal.NewFromFloat(*d.Discount)
		o.Discount = &disc
	}
	for _, it := range d.OrderItems {
		o.Items = append(o.Items, Item{
			ID:        it.ID,
			Name:      it.ItemName,
			Quantity:  it.Quantity,
			UnitPrice: decimal.NewFromFloat(it.UnitPrice),
		})
	}
	return o
}
