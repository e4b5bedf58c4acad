package models

import "time"

type Unit string

const (
	UnitGram       Unit = "G"
	UnitMilliliter Unit = "ML"
)

// Ingredient est une ligne de stock. Un ingrédient avec addons_quantity et
// addon_price renseignés est aussi vendu comme supplément.
type Ingredient struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Stock          float64    `json:"stock"`
	Unit           Unit       `json:"unit"`
	ReorderLevel   float64    `json:"reorder_level"`
	ImageURL       string     `json:"image_url,omitempty"`
	AddonsQuantity *float64   `json:"addons_quantity,omitempty"`
	AddonPrice     *float64   `json:"addon_price,omitempty"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

// IsAddon indique si l'ingrédient peut être ajouté au panier
func (i Ingredient) IsAddon() bool {
	return i.AddonsQuantity != nil && *i.AddonsQuantity > 0 &&
		i.AddonPrice != nil && *i.AddonPrice > 0
}

// IsLowStock: stock au niveau de réapprovisionnement ou en dessous
func (i Ingredient) IsLowStock() bool {
	return i.Stock <= i.ReorderLevel
}

type IngredientInput struct {
	Name          string   `json:"name" validate:"notblank,max=100"`
	Stock         float64  `json:"stock" validate:"gte=0"`
	Unit          Unit     `json:"unit" validate:"oneof=G ML"`
	ReorderLevel  *float64 `json:"reorder_level,omitempty" validate:"omitempty,gte=0"`
	ImageURL      string   `json:"image_url,omitempty"`
	AddonQuantity *float64 `json:"addon_quantity,omitempty" validate:"omitempty,gte=0"`
	AddonPrice    *float64 `json:"addon_price,omitempty" validate:"omitempty,gte=0"`
}

// RecipeIngredient associe un type d'article aux ingrédients qu'il consomme
type RecipeIngredient struct {
	IngredientID string      `json:"ingredientId"`
	Quantity     float64     `json:"quantity"`
	Unit         Unit        `json:"unit"`
	Ingredient   *Ingredient `json:"ingredient,omitempty"`
}

type RecipeLineInput struct {
	IngredientID string  `json:"ingredientId" validate:"notblank"`
	Quantity     float64 `json:"quantity" validate:"gt=0"`
	Unit         Unit    `json:"unit" validate:"oneof=G ML"`
}
