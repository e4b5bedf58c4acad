package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"brewbatter_back_end/internal/models"
)

// OrdersPageSize est la taille de page du backend
const OrdersPageSize = 10

func (c *Client) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.OrderDetails, error) {
	const op = "create order"
	var raw json.RawMessage
	if err := c.do(ctx, op, http.MethodPost, "/controller/order", req, &raw); err != nil {
		return nil, err
	}

	// réponse {"order": {...}} ou la commande seule
	var envelope struct {
		Order *models.OrderDetails `json:"order"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, &Error{Op: op, Err: err}
	}
	if envelope.Order != nil {
		return envelope.Order, nil
	}
	var order models.OrderDetails
	if err := json.Unmarshal(raw, &order); err != nil {
		return nil, &Error{Op: op, Err: err}
	}
	return &order, nil
}

func (c *Client) ListOrders(ctx context.Context, page int) (*models.OrderPage, error) {
	const op = "list orders"
	if page < 1 {
		page = 1
	}
	raw, err := c.getRaw(ctx, op, "/controller/orders?page="+strconv.Itoa(page))
	if err != nil {
		return nil, err
	}
	orders, err := decodeList[models.Order](raw, "orders")
	if err != nil {
		return nil, &Error{Op: op, Err: err}
	}
	return &models.OrderPage{
		Orders:  orders,
		Page:    page,
		HasMore: len(orders) >= OrdersPageSize,
	}, nil
}

func (c *Client) GetOrder(ctx context.Context, id string) (*models.OrderDetails, error) {
	const op = "get order"
	var raw json.RawMessage
	if err := c.do(ctx, op, http.MethodGet, "/controller/orders/"+url.PathEscape(id), nil, &raw); err != nil {
		return nil, err
	}

	var envelope struct {
		Order *models.OrderDetails `json:"order"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Order != nil {
		return envelope.Order, nil
	}
	var order models.OrderDetails
	if err := json.Unmarshal(raw, &order); err != nil {
		return nil, &Error{Op: op, Err: err}
	}
	return &order, nil
}

func (c *Client) DailySales(ctx context.Context) ([]models.DailySale, error) {
	const op = "daily sales"
	raw, err := c.getRaw(ctx, op, "/controller/daily-sales")
	if err != nil {
		return nil, err
	}
	days, err := decodeList[models.DailySale](raw, "sales", "dailySales")
	if err != nil {
		return nil, &Error{Op: op, Err: err}
	}
	return days, nil
}
