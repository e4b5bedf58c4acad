package cart

import "github.com/shopspring/decimal"

// Kind distingue un article du menu d'un supplément (ingrédient vendu)
type Kind string

const (
	KindItem  Kind = "item"
	KindAddon Kind = "addon"
)

// Ref identifie ce qui est vendu. Le type est fixé à la création de
// l'entrée et n'est plus jamais recalculé.
type Ref struct {
	Kind Kind   `json:"kind"`
	ID   string `json:"id"`
}

func ItemRef(id string) Ref  { return Ref{Kind: KindItem, ID: id} }
func AddonRef(id string) Ref { return Ref{Kind: KindAddon, ID: id} }

// Entry est ce que l'appelant ajoute au panier
type Entry struct {
	Ref
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
	ImageRef  string
}

// Line est une ligne du panier, unique par ID
type Line struct {
	Ref
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	ImageRef  string          `json:"image_url,omitempty"`
}

// Total = quantité × prix unitaire
func (l Line) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
