package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brewbatter_back_end/internal/models"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", WithToken("secret"))
}

func TestListCategoriesBareArray(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/controller", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `[{"id":"c1","name":"Coffee","image_url":"http://img/c1.png"}]`)
	})

	cats, err := c.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "Coffee", cats[0].Name)
	assert.Equal(t, "http://img/c1.png", cats[0].ImageURL)
}

func TestListIngredientsEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"ingredients":[{"id":"i1","name":"Milk","stock":500,"unit":"ML","reorder_level":100,"addons_quantity":50,"addon_price":20}]}`)
	})

	list, err := c.ListIngredients(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].IsAddon())
	assert.Equal(t, models.UnitMilliliter, list[0].Unit)
}

func TestNon2xxIsBackendError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, "boom")
	})

	_, err := c.ListCategories(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBackend))

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Equal(t, "boom", apiErr.Body)
}

func TestNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := c.GetOrder(context.Background(), "missing")
	assert.True(t, IsNotFound(err))
}

func TestTransportFailureIsBackendError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	c := NewClient(srv.URL)

	err := c.DeleteIngredient(context.Background(), "i1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBackend))
}

func TestCreateOrderSendsTaggedItems(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/controller/order", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		items := body["items"].([]any)
		first := items[0].(map[string]any)
		second := items[1].(map[string]any)
		assert.Equal(t, "it-1", first["itemId"])
		assert.NotContains(t, first, "addonId")
		assert.Equal(t, "ing-1", second["addonId"])
		assert.NotContains(t, second, "itemId")

		_, _ = io.WriteString(w, `{"order":{"id":"o1","customerName":"Asha","phone":"98","total_amount":270,"status":"PLACED","orderItems":[]}}`)
	})

	order, err := c.CreateOrder(context.Background(), models.CreateOrderRequest{
		CustomerName: "Asha",
		Phone:        "98",
		Items: []models.OrderItemInput{
			{ItemID: "it-1", Name: "Cold Coffee", Quantity: 2, Price: 120},
			{AddonID: "ing-1", Name: "Extra Shot", Quantity: 1, Price: 30},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "o1", order.ID)
	require.NotNil(t, order.TotalAmount)
	assert.Equal(t, 270.0, *order.TotalAmount)
}

func TestListOrdersPaging(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		orders := make([]models.Order, OrdersPageSize)
		for i := range orders {
			orders[i].ID = string(rune('a' + i))
		}
		_ = json.NewEncoder(w).Encode(orders)
	})

	page, err := c.ListOrders(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, page.Orders, OrdersPageSize)
	assert.True(t, page.HasMore)
	assert.Equal(t, 2, page.Page)
}

func TestCreateRecipePath(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/controller/recepie/t1", r.URL.Path)
		var lines []models.RecipeLineInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&lines))
		assert.Len(t, lines, 1)
		w.WriteHeader(http.StatusCreated)
	})

	err := c.CreateRecipe(context.Background(), "t1", []models.RecipeLineInput{
		{IngredientID: "i1", Quantity: 200, Unit: models.UnitMilliliter},
	})
	assert.NoError(t, err)
}
