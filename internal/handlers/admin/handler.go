// Package admin gère le menu, le stock et les recettes (rôle admin, actions auditées).
package admin

import (
	"context"
	"errors"
	"log"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"brewbatter_back_end/internal/handlers"
	"brewbatter_back_end/internal/models"
	"brewbatter_back_end/internal/services"
)

type MenuWriter interface {
	CreateCategory(ctx context.Context, input models.CategoryInput) (*models.Category, error)
	CreateCategoryItem(ctx context.Context, categoryID string, input models.ItemTypeInput) (*models.ItemType, error)
	UpdateCategoryItem(ctx context.Context, itemTypeID string, input models.ItemTypeInput) (*models.ItemType, error)
	DeleteCategoryItem(ctx context.Context, itemTypeID string) error
}

type Inventory interface {
	ListIngredients(ctx context.Context) ([]models.Ingredient, error)
	CreateIngredient(ctx context.Context, input models.IngredientInput) (*models.Ingredient, error)
	UpdateIngredient(ctx context.Context, id string, input models.IngredientInput) (*models.Ingredient, error)
	DeleteIngredient(ctx context.Context, id string) error
	GetRecipe(ctx context.Context, itemTypeID string) ([]models.RecipeIngredient, error)
	CreateRecipe(ctx context.Context, itemTypeID string, lines []models.RecipeLineInput) error
	DeleteRecipe(ctx context.Context, itemTypeID string) error
}

type ImageStore interface {
	Enabled() bool
	UploadImage(ctx context.Context, prefix string, file *multipart.FileHeader) (string, error)
}

type MenuIndexer interface {
	Enabled() bool
	IndexItemType(ctx context.Context, hit models.MenuHit) error
	DeleteItemType(ctx context.Context, id string) error
}

type MenuInvalidator interface {
	Invalidate(ctx context.Context) error
}

// AuditReader lit les logs d'audit d'un jour (utils.ListAuditLogs)
type AuditReader func(ctx context.Context, day string, limit int) ([]models.AuditLog, error)

type Handler struct {
	Menu      MenuWriter
	Inventory Inventory
	Images    ImageStore
	Index     MenuIndexer
	Cache     MenuInvalidator
	AuditLogs AuditReader
}

// auditID transmet l'id créé au middleware d'audit
func auditID(c *gin.Context, id string) {
	c.Set("audit_resource_id", id)
}

// invalidate rend le menu en cache obsolète après une écriture
func (h *Handler) invalidate(c *gin.Context) {
	if h.Cache == nil {
		return
	}
	if err := h.Cache.Invalidate(c.Request.Context()); err != nil {
		log.Printf("⚠️ Cache menu non invalidé: %v", err)
	}
}

// formImage dépose le fichier "image" s'il est présent. Retourne "" sans fichier.
func (h *Handler) formImage(c *gin.Context, prefix string) (string, error) {
	file, err := c.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return "", nil
	}
	if err != nil {
		return "", services.ErrInvalidImage
	}
	if h.Images == nil {
		return "", services.ErrStorageUnavailable
	}
	return h.Images.UploadImage(c.Request.Context(), prefix, file)
}

// imageError répond pour une erreur d'upload. Retourne false si err est nil.
func imageError(c *gin.Context, err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, services.ErrInvalidImage):
		handlers.BadRequest(c, "Image must be a JPEG, PNG or WebP file under 5 MB")
	case errors.Is(err, services.ErrStorageUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Image uploads are not configured"})
	default:
		handlers.Error(c, err, "Failed to upload image")
		return true
	}
	_ = c.Error(err)
	return true
}
