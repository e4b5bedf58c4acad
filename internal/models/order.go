package models

import "time"

const (
	OrderStatusPlaced    = "PLACED"
	OrderStatusPreparing = "PREPARING"
	OrderStatusReady     = "READY"
	OrderStatusCompleted = "COMPLETED"
	OrderStatusCancelled = "CANCELLED"
)

// Order est le résumé renvoyé par la liste paginée
type Order struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	CustomerName string    `json:"customerName"`
	Phone        string    `json:"phone"`
	TotalAmount  float64   `json:"total_amount"`
	Status       string    `json:"status"`
}

type OrderItemDetail struct {
	ID             string    `json:"id"`
	OrderID        string    `json:"orderId"`
	MenuItemTypeID *string   `json:"menuItemTypeId"`
	IngredientID   *string   `json:"ingredientId"`
	ItemName       string    `json:"itemName"`
	Quantity       int       `json:"quantity"`
	UnitPrice      float64   `json:"unit_price"`
	CreatedAt      time.Time `json:"created_at"`
}

// OrderDetails est une commande complète avec ses lignes.
// TotalAmount et Discount sont optionnels côté backend.
type OrderDetails struct {
	ID           string            `json:"id"`
	CreatedAt    time.Time         `json:"created_at"`
	CustomerName string            `json:"customerName"`
	Phone        string            `json:"phone"`
	TotalAmount  *float64          `json:"total_amount,omitempty"`
	Discount     *float64          `json:"discount,omitempty"`
	Status       string            `json:"status"`
	OrderItems   []OrderItemDetail `json:"orderItems"`
}

// OrderItemInput est une ligne de commande envoyée au backend:
// exactement un de ItemID / AddonID est renseigné.
type OrderItemInput struct {
	ItemID   string  `json:"itemId,omitempty"`
	AddonID  string  `json:"addonId,omitempty"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// CustomerInfo est la partie client du formulaire de commande
type CustomerInfo struct {
	CustomerName string `json:"customer_name" validate:"notblank,max=100"`
	Phone        string `json:"phone" validate:"notblank,phone"`
}

type CreateOrderRequest struct {
	CustomerName string           `json:"customerName"`
	Phone        string           `json:"phone"`
	Items        []OrderItemInput `json:"items"`
}

// OrderPage est une page de la liste des commandes
type OrderPage struct {
	Orders  []Order `json:"orders"`
	Page    int     `json:"page"`
	HasMore bool    `json:"has_more"`
}
