package middleware

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"brewbatter_back_end/internal/cache"
)

const (
	APIMaxRequests    = 100 // par minute et par IP
	CartMaxMutations  = 20  // par minute et par session panier
	SearchMaxRequests = 30  // par minute et par IP
	rateWindow        = time.Minute
)

// rateLimit compte les requêtes par clé sur une fenêtre d'une minute.
// Si Redis ne répond pas, la requête passe.
func rateLimit(rdb cache.RedisClient, max int64, keyFn func(*gin.Context) string, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := keyFn(c)
		if key == "" {
			c.Next()
			return
		}

		count, err := cache.IncrementRateLimit(c.Request.Context(), rdb, key, rateWindow)
		if err != nil {
			log.Printf("⚠️ Rate limit indisponible (%s): %v", key, err)
			c.Next()
			return
		}

		remaining := max - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", max))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))

		if count > max {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       message,
				"retry_after": int(rateWindow.Seconds()),
			})
			return
		}
		c.Next()
	}
}

// APIRateLimit limite le nombre de requêtes par IP (général)
func APIRateLimit(rdb cache.RedisClient) gin.HandlerFunc {
	return rateLimit(rdb, APIMaxRequests, func(c *gin.Context) string {
		return "api_requests:" + c.ClientIP()
	}, "Too many requests. Try again in a minute")
}

// CartRateLimit limite les modifications du panier (anti-spam).
// À placer après CartSession.
func CartRateLimit(rdb cache.RedisClient) gin.HandlerFunc {
	return rateLimit(rdb, CartMaxMutations, func(c *gin.Context) string {
		if id := CartID(c); id != "" {
			return "cart_ops:" + id
		}
		return ""
	}, "Too many cart updates. Slow down a little")
}

// SearchRateLimit limite les recherches dans le menu
func SearchRateLimit(rdb cache.RedisClient) gin.HandlerFunc {
	return rateLimit(rdb, SearchMaxRequests, func(c *gin.Context) string {
		return "search_requests:" + c.ClientIP()
	}, "Too many searches. Try again in a minute")
}
