package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const (
	sessionName   = "brewbatter_session"
	cartIDKey     = "cart_id"
	CartIDHeader  = "X-Cart-ID"
	cartIDCtxKey  = "cart_id"
	sessionMaxAge = 12 * 60 * 60
)

// NewSessionStore crée le store de cookies signés
func NewSessionStore(secret string, secure bool) *sessions.CookieStore {
	if secret == "" {
		secret = uuid.NewString() + uuid.NewString()
	}
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// CartSession garantit un identifiant de panier pour la session anonyme.
// Un client sans cookie (kiosque natif) peut envoyer X-Cart-ID.
func CartSession(store sessions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id := c.GetHeader(CartIDHeader); id != "" {
			if _, err := uuid.Parse(id); err == nil {
				c.Set(cartIDCtxKey, id)
				c.Next()
				return
			}
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid cart id"})
			return
		}

		sess, err := store.Get(c.Request, sessionName)
		if err != nil {
			// cookie illisible (secret changé): on repart d'une session neuve
			log.Printf("⚠️ Session illisible, nouvelle session: %v", err)
		}

		id, _ := sess.Values[cartIDKey].(string)
		if id == "" {
			id = uuid.NewString()
			sess.Values[cartIDKey] = id
			if err := sess.Save(c.Request, c.Writer); err != nil {
				log.Printf("❌ Erreur sauvegarde session: %v", err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Session unavailable"})
				return
			}
		}

		c.Set(cartIDCtxKey, id)
		c.Header(CartIDHeader, id)
		c.Next()
	}
}

// CartID retourne l'identifiant de panier posé par CartSession
func CartID(c *gin.Context) string {
	return c.GetString(cartIDCtxKey)
}
