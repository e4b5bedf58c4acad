package middleware

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/websocket"

	"brewbatter_back_end/internal/models"
)

// Claims émises par le fournisseur d'identité
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

var errMissingToken = errors.New("missing token")

func parseBearer(c *gin.Context, secret []byte) (*Claims, string, error) {
	authHeader := c.GetHeader("Authorization")
	// un navigateur ne peut pas poser d'en-tête sur un websocket
	if authHeader == "" && websocket.IsWebSocketUpgrade(c.Request) {
		if t := c.Query("access_token"); t != "" {
			authHeader = "Bearer " + t
		}
	}
	if authHeader == "" {
		return nil, "", errMissingToken
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, "", fmt.Errorf("format Authorization invalide")
	}
	if len(secret) == 0 {
		return nil, "", fmt.Errorf("JWT_SECRET non configuré")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(strings.TrimSpace(parts[1]), claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("méthode de signature inattendue: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, "", err
	}
	if !token.Valid {
		return nil, "", fmt.Errorf("token invalide")
	}
	if claims.UserID == "" {
		claims.UserID = claims.Subject
	}
	if claims.UserID == "" {
		return nil, "", fmt.Errorf("user_id manquant")
	}
	return claims, strings.TrimSpace(parts[1]), nil
}

func setStaff(c *gin.Context, claims *Claims, raw string) {
	c.Set("user_id", claims.UserID)
	c.Set("email", claims.Email)
	c.Set("role", claims.Role)
	c.Set("token", raw)
}

// AuthRequired exige un bearer JWT valide
func AuthRequired(secret string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		claims, raw, err := parseBearer(c, key)
		if err != nil {
			if !errors.Is(err, errMissingToken) {
				log.Printf("❌ JWT refusé: %v", err)
			}
			msg := "Invalid token"
			if errors.Is(err, errMissingToken) {
				msg = "Missing token"
			} else if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		setStaff(c, claims, raw)
		c.Next()
	}
}

// OptionalAuth renseigne l'utilisateur si un token valide est présent,
// sinon laisse passer en lecture seule
func OptionalAuth(secret string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		if claims, raw, err := parseBearer(c, key); err == nil {
			setStaff(c, claims, raw)
		}
		c.Next()
	}
}

// CurrentStaff retourne l'utilisateur authentifié, s'il y en a un
func CurrentStaff(c *gin.Context) (models.Staff, bool) {
	id := c.GetString("user_id")
	if id == "" {
		return models.Staff{}, false
	}
	return models.Staff{ID: id, Email: c.GetString("email"), Role: c.GetString("role")}, true
}
