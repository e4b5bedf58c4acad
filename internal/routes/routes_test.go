package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brewbatter_back_end/internal/cache"
	"brewbatter_back_end/internal/cache/cachetest"
	"brewbatter_back_end/internal/handlers/admin"
	"brewbatter_back_end/internal/handlers/shop"
	"brewbatter_back_end/internal/handlers/staff"
	"brewbatter_back_end/internal/middleware"
)

const secret = "routes-secret"

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	rdb := cachetest.NewFakeRedis()
	r := gin.New()
	RegisterRoutes(r, Deps{
		Shop:      &shop.Handler{Carts: cache.NewCartStore(rdb, time.Hour)},
		Staff:     &staff.Handler{},
		Admin:     &admin.Handler{},
		Sessions:  middleware.NewSessionStore("session-secret", false),
		Redis:     rdb,
		JWTSecret: secret,
		Health:    func() gin.H { return gin.H{"redis": "ok"} },
	})
	return r
}

func token(t *testing.T, role string) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, middleware.Claims{
		UserID: "u-1",
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	s, err := tok.SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func serve(r *gin.Engine, method, path, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	w := serve(newEngine(), http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","redis":"ok"}`, w.Body.String())
}

func TestCartIsAnonymous(t *testing.T) {
	w := serve(newEngine(), http.MethodGet, "/api/cart", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.CartIDHeader))
	assert.NotEmpty(t, w.Header().Get("Set-Cookie"))
}

func TestStaffRoutesNeedToken(t *testing.T) {
	r := newEngine()
	assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodGet, "/api/orders", "").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodGet, "/api/sales/daily", "").Code)
	assert.Equal(t, http.StatusForbidden, serve(r, http.MethodGet, "/api/orders", token(t, "customer")).Code)
}

func TestAdminRoutesNeedAdmin(t *testing.T) {
	r := newEngine()
	assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodPost, "/api/admin/categories", "").Code)
	assert.Equal(t, http.StatusForbidden, serve(r, http.MethodPost, "/api/admin/categories", token(t, "staff")).Code)
	assert.Equal(t, http.StatusForbidden, serve(r, http.MethodGet, "/api/admin/ingredients/low-stock", token(t, "staff")).Code)
}
