// Package handlers regroupe les réponses d'erreur communes aux handlers HTTP.
package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"brewbatter_back_end/internal/api"
	"brewbatter_back_end/internal/cache"
	"brewbatter_back_end/internal/validation"
)

// Error traduit err en réponse JSON. fallback est le message montré
// quand le backend ou l'infrastructure échoue.
func Error(c *gin.Context, err error, fallback string) {
	var fields validation.FieldErrors
	switch {
	case errors.As(err, &fields):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please correct the highlighted fields", "fields": fields})
	case api.IsNotFound(err), errors.Is(err, cache.ErrNotOnMenu):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, api.ErrBackend):
		log.Printf("❌ Backend: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": fallback})
	default:
		log.Printf("❌ %s: %v", fallback, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
	_ = c.Error(err)
}

func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}
