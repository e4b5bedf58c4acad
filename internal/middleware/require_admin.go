package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAdmin vérifie que l'utilisateur a le rôle "admin"
func RequireAdmin(c *gin.Context) {
	staff, ok := CurrentStaff(c)
	if !ok || !staff.IsAdmin() {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		return
	}
	c.Next()
}

// RequireStaff accepte les rôles "staff" et "admin"
func RequireStaff(c *gin.Context) {
	staff, ok := CurrentStaff(c)
	if !ok || !staff.IsStaff() {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Staff access required"})
		return
	}
	c.Next()
}
