package utils

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"brewbatter_back_end/internal/database"
	"brewbatter_back_end/internal/models"
)

// Actions d'audit
const (
	ActionCategoryCreate   = "category.create"
	ActionItemCreate       = "item.create"
	ActionItemUpdate       = "item.update"
	ActionItemDelete       = "item.delete"
	ActionIngredientCreate = "ingredient.create"
	ActionIngredientUpdate = "ingredient.update"
	ActionIngredientDelete = "ingredient.delete"
	ActionRecipeSave       = "recipe.save"
	ActionRecipeDelete     = "recipe.delete"
	ActionBillEmail        = "order.bill_email"
)

// Ressources d'audit
const (
	ResourceCategory   = "category"
	ResourceItem       = "item"
	ResourceIngredient = "ingredient"
	ResourceRecipe     = "recipe"
	ResourceOrder      = "order"
)

const auditDayFormat = "2006-01-02"

// NewAuditEntry lit l'utilisateur et la requête depuis le contexte gin.
// À appeler dans le handler: le contexte gin est recyclé après la réponse.
func NewAuditEntry(c *gin.Context, action, resource, resourceID string, success bool, errorMsg string) models.AuditLog {
	return models.AuditLog{
		ID:         gocql.TimeUUID(),
		UserID:     c.GetString("user_id"),
		UserEmail:  c.GetString("email"),
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		IPAddress:  c.ClientIP(),
		UserAgent:  c.GetHeader("User-Agent"),
		Success:    success,
		ErrorMsg:   errorMsg,
		Timestamp:  time.Now().UTC(),
	}
}

// LogAction enregistre une action réussie dans les logs d'audit
func LogAction(c *gin.Context, action, resource, resourceID string) {
	writeAsync(NewAuditEntry(c, action, resource, resourceID, true, ""))
}

// LogFailedAction enregistre une action échouée dans les logs d'audit
func LogFailedAction(c *gin.Context, action, resource, resourceID, errorMsg string) {
	writeAsync(NewAuditEntry(c, action, resource, resourceID, false, errorMsg))
}

func writeAsync(entry models.AuditLog) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := WriteAuditLog(ctx, entry); err != nil {
			log.Printf("⚠️ Audit non enregistré (%s %s): %v", entry.Action, entry.ResourceID, err)
		}
	}()
}

// WriteAuditLog écrit une entrée dans Scylla
func WriteAuditLog(ctx context.Context, entry models.AuditLog) error {
	session, err := database.GetAuditSession()
	if err != nil {
		return err
	}
	return session.Query(database.InsertAuditLog,
		entry.Timestamp.Format(auditDayFormat), entry.ID, entry.UserID, entry.UserEmail,
		entry.Action, entry.Resource, entry.ResourceID, entry.IPAddress, entry.UserAgent,
		entry.Success, entry.ErrorMsg, entry.Timestamp,
	).WithContext(ctx).Exec()
}

// ListAuditLogs retourne les entrées d'un jour (AAAA-MM-JJ), les plus récentes d'abord
func ListAuditLogs(ctx context.Context, day string, limit int) ([]models.AuditLog, error) {
	if _, err := time.Parse(auditDayFormat, day); err != nil {
		return nil, fmt.Errorf("jour invalide %q: %w", day, err)
	}
	session, err := database.GetAuditSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(database.SelectAuditLogsByDay, day, limit).WithContext(ctx).Iter()
	logs := make([]models.AuditLog, 0, limit)
	var entry models.AuditLog
	for iter.Scan(&entry.ID, &entry.UserID, &entry.UserEmail, &entry.Action, &entry.Resource,
		&entry.ResourceID, &entry.IPAddress, &entry.UserAgent, &entry.Success, &entry.ErrorMsg, &entry.Timestamp) {
		logs = append(logs, entry)
		entry = models.AuditLog{}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return logs, nil
}
