package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strconv"
	"time"

	"brewbatter_back_end/internal/models"
)

const (
	MenuCacheTTL   = 10 * time.Minute
	menuVersionKey = "menu:version"
)

// ErrNotOnMenu : l'article ou le supplément demandé n'existe pas
var ErrNotOnMenu = errors.New("introuvable dans le menu")

// MenuSource fournit le menu (le client du backend)
type MenuSource interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListCategoryItems(ctx context.Context, categoryID string) ([]models.ItemType, error)
	ListIngredients(ctx context.Context) ([]models.Ingredient, error)
}

// MenuCache met le menu en cache dans Redis. Les clés portent un numéro de
// version: Invalidate l'incrémente et les anciennes clés expirent seules.
type MenuCache struct {
	rdb    RedisClient
	source MenuSource
	ttl    time.Duration
}

func NewMenuCache(rdb RedisClient, source MenuSource) *MenuCache {
	return &MenuCache{rdb: rdb, source: source, ttl: MenuCacheTTL}
}

func (m *MenuCache) key(ctx context.Context, name string) string {
	version := "0"
	if v, found, err := GetCache(ctx, m.rdb, menuVersionKey); err == nil && found {
		version = v
	}
	return "menu:v" + version + ":" + name
}

// cached lit key dans Redis, sinon appelle load et stocke le résultat.
// Une panne Redis ne bloque pas la lecture du menu.
func cached[T any](ctx context.Context, m *MenuCache, name string, load func() (T, error)) (T, error) {
	key := m.key(ctx, name)

	if data, found, err := GetCache(ctx, m.rdb, key); err == nil && found {
		var v T
		if json.Unmarshal([]byte(data), &v) == nil {
			return v, nil
		}
	} else if err != nil {
		log.Printf("⚠️ Cache menu indisponible (%s): %v", key, err)
	}

	v, err := load()
	if err != nil {
		return v, err
	}
	if data, err := json.Marshal(v); err == nil {
		if err := m.rdb.Set(ctx, key, data, m.ttl).Err(); err != nil {
			log.Printf("⚠️ Erreur mise en cache %s: %v", key, err)
		}
	}
	return v, nil
}

func (m *MenuCache) Categories(ctx context.Context) ([]models.Category, error) {
	return cached(ctx, m, "categories", func() ([]models.Category, error) {
		return m.source.ListCategories(ctx)
	})
}

func (m *MenuCache) CategoryItems(ctx context.Context, categoryID string) ([]models.ItemType, error) {
	return cached(ctx, m, "items:"+categoryID, func() ([]models.ItemType, error) {
		return m.source.ListCategoryItems(ctx, categoryID)
	})
}

func (m *MenuCache) Ingredients(ctx context.Context) ([]models.Ingredient, error) {
	return cached(ctx, m, "ingredients", func() ([]models.Ingredient, error) {
		return m.source.ListIngredients(ctx)
	})
}

// Addons : ingrédients vendus en supplément
func (m *MenuCache) Addons(ctx context.Context) ([]models.Ingredient, error) {
	all, err := m.Ingredients(ctx)
	if err != nil {
		return nil, err
	}
	addons := make([]models.Ingredient, 0, len(all))
	for _, ing := range all {
		if ing.IsAddon() {
			addons = append(addons, ing)
		}
	}
	return addons, nil
}

// AllItems retourne tous les articles de toutes les catégories
func (m *MenuCache) AllItems(ctx context.Context) ([]models.MenuHit, error) {
	cats, err := m.Categories(ctx)
	if err != nil {
		return nil, err
	}
	var hits []models.MenuHit
	for _, cat := range cats {
		items, err := m.CategoryItems(ctx, cat.ID)
		if err != nil {
			return nil, err
		}
		for _, it := range items {
			hits = append(hits, models.MenuHit{
				ID:          it.ID,
				Name:        it.Name,
				Price:       it.Price,
				Description: it.Description,
				ImageURL:    it.ImageURL,
				CategoryID:  cat.ID,
			})
		}
	}
	return hits, nil
}

// FindItem cherche un article. Sans categoryID, toutes les catégories sont parcourues.
func (m *MenuCache) FindItem(ctx context.Context, categoryID, itemID string) (*models.ItemType, error) {
	if categoryID != "" {
		items, err := m.CategoryItems(ctx, categoryID)
		if err != nil {
			return nil, err
		}
		for _, it := range items {
			if it.ID == itemID {
				return &it, nil
			}
		}
		return nil, ErrNotOnMenu
	}

	hits, err := m.AllItems(ctx)
	if err != nil {
		return nil, err
	}
	for _, h := range hits {
		if h.ID == itemID {
			return &models.ItemType{
				ID:          h.ID,
				Name:        h.Name,
				Price:       h.Price,
				Description: h.Description,
				ImageURL:    h.ImageURL,
				MenuItemID:  h.CategoryID,
			}, nil
		}
	}
	return nil, ErrNotOnMenu
}

// FindAddon cherche un ingrédient vendu en supplément
func (m *MenuCache) FindAddon(ctx context.Context, ingredientID string) (*models.Ingredient, error) {
	addons, err := m.Addons(ctx)
	if err != nil {
		return nil, err
	}
	for _, ing := range addons {
		if ing.ID == ingredientID {
			return &ing, nil
		}
	}
	return nil, ErrNotOnMenu
}

// Invalidate rend obsolètes toutes les entrées du menu
func (m *MenuCache) Invalidate(ctx context.Context) error {
	return m.rdb.Incr(ctx, menuVersionKey).Err()
}

// Version retourne la version courante du menu (0 si jamais invalidé)
func (m *MenuCache) Version(ctx context.Context) int64 {
	v, found, err := GetCache(ctx, m.rdb, menuVersionKey)
	if err != nil || !found {
		return 0
	}
	n, _ := strconv.ParseInt(v, 10, 64)
	return n
}
