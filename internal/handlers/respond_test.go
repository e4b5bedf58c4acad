package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"brewbatter_back_end/internal/api"
	"brewbatter_back_end/internal/cache"
	"brewbatter_back_end/internal/validation"
)

func TestErrorStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		err  error
		code int
	}{
		{"validation", validation.FieldErrors{"price": "Price must be a positive number"}, http.StatusBadRequest},
		{"backend 404", &api.Error{Op: "get order", Status: 404}, http.StatusNotFound},
		{"not on menu", cache.ErrNotOnMenu, http.StatusNotFound},
		{"backend 500", &api.Error{Op: "list", Status: 500}, http.StatusBadGateway},
		{"other", errors.New("redis down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			Error(c, tt.err, "Something went wrong")
			assert.Equal(t, tt.code, w.Code)
			assert.Len(t, c.Errors, 1)
		})
	}
}
