package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brewbatter_back_end/internal/cache/cachetest"
	"brewbatter_back_end/internal/cart"
	"brewbatter_back_end/internal/models"
)

func TestCartStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	rdb := cachetest.NewFakeRedis()
	store := NewCartStore(rdb, 2*time.Hour)

	empty, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())

	c := cart.New()
	c.Add(cart.Entry{Ref: cart.ItemRef("it-1"), Name: "Cold Coffee", UnitPrice: decimal.NewFromInt(120)})
	c.Add(cart.Entry{Ref: cart.AddonRef("ing-1"), Name: "Extra Shot", UnitPrice: decimal.RequireFromString("30.50")})
	c.UpdateQuantity("it-1", 2)
	require.NoError(t, store.Save(ctx, "s1", c))

	assert.Equal(t, 2*time.Hour, rdb.TTL("cart:s1"))
	assert.Equal(t, []cachetest.Message{{Channel: "cart:s1", Payload: CartUpdated}}, rdb.Messages())

	loaded, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 3, loaded.TotalItems())
	assert.True(t, decimal.RequireFromString("270.50").Equal(loaded.TotalPrice()))

	line, ok := loaded.Line("ing-1")
	require.True(t, ok)
	assert.Equal(t, cart.KindAddon, line.Kind)
}

func TestCartStoreSaveEmptyDeletes(t *testing.T) {
	ctx := context.Background()
	rdb := cachetest.NewFakeRedis()
	store := NewCartStore(rdb, 0)

	c := cart.New()
	c.Add(cart.Entry{Ref: cart.ItemRef("it-1"), Name: "Tea", UnitPrice: decimal.NewFromInt(20)})
	require.NoError(t, store.Save(ctx, "s1", c))
	assert.Equal(t, DefaultCartTTL, rdb.TTL("cart:s1"))

	c.Clear()
	require.NoError(t, store.Save(ctx, "s1", c))
	_, ok := rdb.Value("cart:s1")
	assert.False(t, ok)

	msgs := rdb.Messages()
	assert.Equal(t, CartCleared, msgs[len(msgs)-1].Payload)
}

func TestCartStoreRedisDown(t *testing.T) {
	rdb := cachetest.NewFakeRedis()
	rdb.Err = errors.New("connection refused")
	store := NewCartStore(rdb, time.Hour)

	_, err := store.Load(context.Background(), "s1")
	assert.Error(t, err)
}

type fakeSource struct {
	categoryCalls int
	items         map[string][]models.ItemType
	ingredients   []models.Ingredient
}

func (f *fakeSource) ListCategories(ctx context.Context) ([]models.Category, error) {
	f.categoryCalls++
	return []models.Category{{ID: "c1", Name: "Coffee"}, {ID: "c2", Name: "Snacks"}}, nil
}

func (f *fakeSource) ListCategoryItems(ctx context.Context, categoryID string) ([]models.ItemType, error) {
	return f.items[categoryID], nil
}

func (f *fakeSource) ListIngredients(ctx context.Context) ([]models.Ingredient, error) {
	return f.ingredients, nil
}

func ptr(v float64) *float64 { return &v }

func newFakeSource() *fakeSource {
	return &fakeSource{
		items: map[string][]models.ItemType{
			"c1": {{ID: "it-1", Name: "Cold Coffee", Price: 120, MenuItemID: "c1"}},
			"c2": {{ID: "it-2", Name: "Fries", Price: 80, MenuItemID: "c2"}},
		},
		ingredients: []models.Ingredient{
			{ID: "ing-1", Name: "Extra Shot", AddonsQuantity: ptr(30), AddonPrice: ptr(30)},
			{ID: "ing-2", Name: "Milk", Stock: 500},
		},
	}
}

func TestMenuCacheServesFromRedis(t *testing.T) {
	ctx := context.Background()
	rdb := cachetest.NewFakeRedis()
	src := newFakeSource()
	menu := NewMenuCache(rdb, src)

	_, err := menu.Categories(ctx)
	require.NoError(t, err)
	cats, err := menu.Categories(ctx)
	require.NoError(t, err)

	assert.Len(t, cats, 2)
	assert.Equal(t, 1, src.categoryCalls)

	raw, ok := rdb.Value("menu:v0:categories")
	require.True(t, ok)
	var stored []models.Category
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.Equal(t, cats, stored)
	assert.Equal(t, MenuCacheTTL, rdb.TTL("menu:v0:categories"))
}

func TestMenuCacheInvalidate(t *testing.T) {
	ctx := context.Background()
	rdb := cachetest.NewFakeRedis()
	src := newFakeSource()
	menu := NewMenuCache(rdb, src)

	_, _ = menu.Categories(ctx)
	require.NoError(t, menu.Invalidate(ctx))
	assert.Equal(t, int64(1), menu.Version(ctx))

	_, _ = menu.Categories(ctx)
	assert.Equal(t, 2, src.categoryCalls)
	_, ok := rdb.Value("menu:v1:categories")
	assert.True(t, ok)
}

func TestMenuCacheFallsBackWhenRedisDown(t *testing.T) {
	rdb := cachetest.NewFakeRedis()
	rdb.Err = errors.New("down")
	menu := NewMenuCache(rdb, newFakeSource())

	cats, err := menu.Categories(context.Background())
	require.NoError(t, err)
	assert.Len(t, cats, 2)
}

func TestFindItemAndAddon(t *testing.T) {
	ctx := context.Background()
	menu := NewMenuCache(cachetest.NewFakeRedis(), newFakeSource())

	item, err := menu.FindItem(ctx, "", "it-2")
	require.NoError(t, err)
	assert.Equal(t, "Fries", item.Name)
	assert.Equal(t, "c2", item.MenuItemID)

	item, err = menu.FindItem(ctx, "c1", "it-1")
	require.NoError(t, err)
	assert.Equal(t, 120.0, item.Price)

	_, err = menu.FindItem(ctx, "c1", "it-2")
	assert.ErrorIs(t, err, ErrNotOnMenu)

	addon, err := menu.FindAddon(ctx, "ing-1")
	require.NoError(t, err)
	assert.Equal(t, "Extra Shot", addon.Name)

	_, err = menu.FindAddon(ctx, "ing-2")
	assert.ErrorIs(t, err, ErrNotOnMenu)
}

func TestIncrementRateLimit(t *testing.T) {
	ctx := context.Background()
	rdb := cachetest.NewFakeRedis()

	n, err := IncrementRateLimit(ctx, rdb, "rate:x", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Equal(t, time.Minute, rdb.TTL("rate:x"))

	n, _ = IncrementRateLimit(ctx, rdb, "rate:x", time.Minute)
	assert.Equal(t, int64(2), n)
}

func TestKitchenFeedPublish(t *testing.T) {
	rdb := cachetest.NewFakeRedis()
	feed := NewKitchenFeed(rdb)

	require.NoError(t, feed.Publish(context.Background(), KitchenTicket{OrderID: "o1", Lines: []string{"1. Tea x1"}}))

	msgs := rdb.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, KitchenChannel, msgs[0].Channel)

	var ticket KitchenTicket
	require.NoError(t, json.Unmarshal([]byte(msgs[0].Payload), &ticket))
	assert.Equal(t, "o1", ticket.OrderID)
	assert.False(t, ticket.SentAt.IsZero())
}
