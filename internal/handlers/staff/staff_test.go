package staff

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brewbatter_back_end/internal/api"
	"brewbatter_back_end/internal/models"
	"brewbatter_back_end/internal/receipt"
	"brewbatter_back_end/internal/utils"
)

type fakeOrders struct {
	pages []int
	sales []models.DailySale
	err   error
}

func (f *fakeOrders) ListOrders(ctx context.Context, page int) (*models.OrderPage, error) {
	f.pages = append(f.pages, page)
	return &models.OrderPage{Orders: []models.Order{{ID: "o-1"}}, Page: page}, nil
}

func (f *fakeOrders) GetOrder(ctx context.Context, id string) (*models.OrderDetails, error) {
	if id != "a1b2c3d4-0000" {
		return nil, &api.Error{Op: "get order", Status: http.StatusNotFound}
	}
	return &models.OrderDetails{
		ID:           id,
		CreatedAt:    time.Date(2026, 10, 19, 9, 5, 0, 0, time.UTC),
		CustomerName: "Asha",
		Phone:        "9876543210",
		Status:       models.OrderStatusPlaced,
		OrderItems: []models.OrderItemDetail{
			{ItemName: "Cold Coffee", Quantity: 2, UnitPrice: 120},
			{ItemName: "Extra Shot", Quantity: 1, UnitPrice: 30.5},
		},
	}, nil
}

func (f *fakeOrders) DailySales(ctx context.Context) ([]models.DailySale, error) {
	return f.sales, f.err
}

type sentMail struct {
	to, subject, text string
	qr                []byte
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (f *fakeMailer) SendBill(to, subject, text string, qrPNG []byte) error {
	f.sent = append(f.sent, sentMail{to, subject, text, qrPNG})
	return f.err
}

func newRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/orders", h.ListOrders)
	r.GET("/api/orders/:id", h.GetOrder)
	r.GET("/api/orders/:id/bill", h.GetBill)
	r.GET("/api/orders/:id/kot", h.GetKOT)
	r.GET("/api/orders/:id/bill/qr", h.GetBillQR)
	r.POST("/api/orders/:id/bill/email", h.EmailBill)
	r.GET("/api/sales/daily", h.DailySales)
	return r
}

func newHandler() (*Handler, *fakeOrders, *fakeMailer) {
	orders := &fakeOrders{}
	mailer := &fakeMailer{}
	decimals := receipt.DefaultBillLayout()
	decimals.Numbers = receipt.TwoDecimals
	decimals.RateWidth, decimals.TotalWidth, decimals.AmountWidth, decimals.RuleWidth = 9, 10, 10, 31
	return &Handler{
		Orders:       orders,
		Mailer:       mailer,
		Payment:      Payment{VPA: "brewbatter@upi", Payee: "BrewBatter"},
		Bill:         receipt.DefaultBillLayout(),
		BillDecimals: decimals,
		KOT:          receipt.DefaultKOTLayout(),
	}, orders, mailer
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestListOrdersPage(t *testing.T) {
	h, orders, _ := newHandler()
	r := newRouter(h)

	assert.Equal(t, http.StatusOK, get(r, "/api/orders").Code)
	assert.Equal(t, http.StatusOK, get(r, "/api/orders?page=3").Code)
	assert.Equal(t, []int{1, 3}, orders.pages)

	assert.Equal(t, http.StatusBadRequest, get(r, "/api/orders?page=0").Code)
	assert.Equal(t, http.StatusBadRequest, get(r, "/api/orders?page=abc").Code)
}

func TestGetOrderNotFound(t *testing.T) {
	h, _, _ := newHandler()
	assert.Equal(t, http.StatusNotFound, get(newRouter(h), "/api/orders/missing").Code)
}

func TestGetBillText(t *testing.T) {
	h, _, _ := newHandler()
	r := newRouter(h)

	w := get(r, "/api/orders/a1b2c3d4-0000/bill?format=text")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Bill No: A1B2C3D4")
	assert.Contains(t, body, "₹270")
	assert.NotContains(t, body, "270.50")

	w = get(r, "/api/orders/a1b2c3d4-0000/bill?format=text&decimals=2")
	assert.Contains(t, w.Body.String(), "₹270.50")

	assert.Equal(t, http.StatusBadRequest, get(r, "/api/orders/a1b2c3d4-0000/bill?decimals=1").Code)
	assert.Equal(t, http.StatusBadRequest, get(r, "/api/orders/a1b2c3d4-0000/bill?format=pdf").Code)
}

func TestGetKOTJSON(t *testing.T) {
	h, _, _ := newHandler()
	w := get(newRouter(h), "/api/orders/a1b2c3d4-0000/kot")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Lines []string `json:"lines"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, receipt.Text(resp.Lines), "KITCHEN ORDER TICKET")
	assert.Contains(t, resp.Lines, "1. Cold Coffee x2")
	assert.Contains(t, resp.Lines, "Special Instructions: None")
}

func TestGetBillQR(t *testing.T) {
	h, _, _ := newHandler()
	w := get(newRouter(h), "/api/orders/a1b2c3d4-0000/bill/qr")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("\x89PNG")))

	h.Payment.VPA = ""
	assert.Equal(t, http.StatusServiceUnavailable, get(newRouter(h), "/api/orders/a1b2c3d4-0000/bill/qr").Code)
}

func postEmail(r *gin.Engine, id, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders/"+id+"/bill/email", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestEmailBill(t *testing.T) {
	h, _, mailer := newHandler()
	r := newRouter(h)

	w := postEmail(r, "a1b2c3d4-0000", `{"email":"asha@example.com"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "asha@example.com", mailer.sent[0].to)
	assert.Equal(t, "Your bill #A1B2C3D4", mailer.sent[0].subject)
	assert.Contains(t, mailer.sent[0].text, "₹270.50")
	assert.NotEmpty(t, mailer.sent[0].qr)

	assert.Equal(t, http.StatusBadRequest, postEmail(r, "a1b2c3d4-0000", `{"email":"nope"}`).Code)
	assert.Equal(t, http.StatusNotFound, postEmail(r, "missing", `{"email":"asha@example.com"}`).Code)

	mailer.err = utils.ErrMailerDisabled
	assert.Equal(t, http.StatusServiceUnavailable, postEmail(r, "a1b2c3d4-0000", `{"email":"asha@example.com"}`).Code)
}

func TestDailySalesSummary(t *testing.T) {
	h, orders, _ := newHandler()
	orders.sales = []models.DailySale{
		{Date: "2026-10-18", TotalSales: 1200.5, OrderCount: 10},
		{Date: "2026-10-19", TotalSales: 800, OrderCount: 6},
	}
	w := get(newRouter(h), "/api/sales/daily")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Days    []models.DailySale  `json:"days"`
		Summary models.SalesSummary `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Days, 2)
	assert.Equal(t, models.SalesSummary{Days: 2, TotalSales: 2000.5, TotalOrders: 16}, resp.Summary)

	orders.err = &api.Error{Op: "daily sales", Err: errors.New("connection refused")}
	assert.Equal(t, http.StatusBadGateway, get(newRouter(h), "/api/sales/daily").Code)
}
