package models

import "time"

// Category est une rubrique du menu (boissons chaudes, snacks...)
type Category struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url,omitempty"`
}

// ItemType est un produit vendable rattaché à une catégorie
type ItemType struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Price       float64    `json:"price"`
	Description string     `json:"description,omitempty"`
	ImageURL    string     `json:"imageUrl,omitempty"`
	MenuItemID  string     `json:"menuItemId"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

type ItemTypeInput struct {
	Name        string  `json:"name" validate:"notblank,max=100"`
	Price       float64 `json:"price" validate:"gt=0"`
	Description string  `json:"description,omitempty"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}

type CategoryInput struct {
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

// MenuHit est un résultat de recherche dans le menu
type MenuHit struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	CategoryID  string  `json:"category_id"`
}
