package middleware

import (
	"github.com/gin-gonic/gin"

	"brewbatter_back_end/internal/utils"
)

// AuditCriticalActions audite l'action après traitement, réussie ou non
func AuditCriticalActions(action, resource string) gin.HandlerFunc {
	return func(c *gin.Context) {
		resourceID := c.Param("id")
		if resourceID == "" {
			resourceID = c.Param("itemTypeId")
		}

		c.Next()

		// un handler peut fixer l'id créé (POST)
		if created := c.GetString("audit_resource_id"); created != "" {
			resourceID = created
		}

		status := c.Writer.Status()
		if status >= 200 && status < 300 {
			utils.LogAction(c, action, resource, resourceID)
		} else {
			msg := "action failed"
			if len(c.Errors) > 0 {
				msg = c.Errors.Last().Error()
			}
			utils.LogFailedAction(c, action, resource, resourceID, msg)
		}
	}
}
