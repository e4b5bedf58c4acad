package cart

import (
	"github.com/shopspring/decimal"

	"brewbatter_back_end/internal/models"
)

// MinorUnits est le nombre de décimales affichées pour la devise
const MinorUnits = 2

type Op string

const (
	OpAdd    Op = "add"
	OpUpdate Op = "update"
	OpRemove Op = "remove"
	OpClear  Op = "clear"
)

// Event est envoyé aux abonnés après chaque modification
type Event struct {
	Op         Op
	LineID     string
	TotalItems int
	TotalPrice decimal.Decimal
}

// Cart est le panier d'une session. Il n'est pas protégé pour un usage
// concurrent: il a un seul propriétaire.
type Cart struct {
	lines   []*Line
	subs    map[int]func(Event)
	nextSub int
}

func New() *Cart {
	return &Cart{subs: make(map[int]func(Event))}
}

// Add incrémente la ligne existante de entry.Quantity (1 par défaut),
// sinon ajoute une nouvelle ligne avec une quantité de 1.
func (c *Cart) Add(entry Entry) {
	qty := entry.Quantity
	if qty <= 0 {
		qty = 1
	}

	if line := c.find(entry.ID); line != nil {
		line.Quantity += qty
	} else {
		c.lines = append(c.lines, &Line{
			Ref:       entry.Ref,
			Name:      entry.Name,
			UnitPrice: entry.UnitPrice,
			Quantity:  1,
			ImageRef:  entry.ImageRef,
		})
	}
	c.notify(OpAdd, entry.ID)
}

// UpdateQuantity fixe la quantité; 0 ou moins supprime la ligne
func (c *Cart) UpdateQuantity(id string, quantity int) {
	if quantity <= 0 {
		c.Remove(id)
		return
	}
	line := c.find(id)
	if line == nil {
		return
	}
	line.Quantity = quantity
	c.notify(OpUpdate, id)
}

func (c *Cart) Remove(id string) {
	for i, line := range c.lines {
		if line.ID == id {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			c.notify(OpRemove, id)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.lines = nil
	c.notify(OpClear, "")
}

// TotalPrice arrondi aux centimes
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.lines {
		total = total.Add(line.Total())
	}
	return total.Round(MinorUnits)
}

func (c *Cart) TotalItems() int {
	n := 0
	for _, line := range c.lines {
		n += line.Quantity
	}
	return n
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Lines retourne une copie des lignes dans l'ordre d'ajout
func (c *Cart) Lines() []Line {
	out := make([]Line, 0, len(c.lines))
	for _, line := range c.lines {
		out = append(out, *line)
	}
	return out
}

// Line retourne la ligne d'identifiant id
func (c *Cart) Line(id string) (Line, bool) {
	if line := c.find(id); line != nil {
		return *line, true
	}
	return Line{}, false
}

// OrderItems construit les lignes de commande du backend
func (c *Cart) OrderItems() []models.OrderItemInput {
	items := make([]models.OrderItemInput, 0, len(c.lines))
	for _, line := range c.lines {
		item := models.OrderItemInput{
			Name:     line.Name,
			Quantity: line.Quantity,
			Price:    line.UnitPrice.InexactFloat64(),
		}
		switch line.Kind {
		case KindAddon:
			item.AddonID = line.ID
		default:
			item.ItemID = line.ID
		}
		items = append(items, item)
	}
	return items
}

// Subscribe enregistre fn; la fonction retournée désabonne
func (c *Cart) Subscribe(fn func(Event)) func() {
	if c.subs == nil {
		c.subs = make(map[int]func(Event))
	}
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	return func() { delete(c.subs, id) }
}

func (c *Cart) find(id string) *Line {
	for _, line := range c.lines {
		if line.ID == id {
			return line
		}
	}
	return nil
}

func (c *Cart) notify(op Op, id string) {
	if len(c.subs) == 0 {
		return
	}
	ev := Event{Op: op, LineID: id, TotalItems: c.TotalItems(), TotalPrice: c.TotalPrice()}
	for _, fn := range c.subs {
		fn(ev)
	}
}
