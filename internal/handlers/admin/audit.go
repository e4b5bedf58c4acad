package admin

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"brewbatter_back_end/internal/handlers"
)

const maxAuditLimit = 500

// 📜 GET /api/admin/audit-logs?day=AAAA-MM-JJ&limit=
func (h *Handler) GetAuditLogs(c *gin.Context) {
	day := c.DefaultQuery("day", time.Now().UTC().Format("2006-01-02"))
	if _, err := time.Parse("2006-01-02", day); err != nil {
		handlers.BadRequest(c, "day must be YYYY-MM-DD")
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit < 1 {
		handlers.BadRequest(c, "limit must be a positive integer")
		return
	}
	if limit > maxAuditLimit {
		limit = maxAuditLimit
	}

	if h.AuditLogs == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Audit log is not configured"})
		return
	}
	logs, err := h.AuditLogs(c.Request.Context(), day, limit)
	if err != nil {
		handlers.Error(c, err, "Failed to load audit logs")
		return
	}
	c.JSON(http.StatusOK, gin.H{"day": day, "logs": logs, "count": len(logs)})
}
