package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"brewbatter_back_end/internal/cart"
)

const (
	DefaultCartTTL = 12 * time.Hour

	CartUpdated = "updated"
	CartCleared = "cleared"
)

// CartKey est à la fois la clé du panier et son canal pub/sub
func CartKey(sessionID string) string {
	return "cart:" + sessionID
}

// CartStore persiste le panier d'une session dans Redis
type CartStore struct {
	rdb RedisClient
	ttl time.Duration
}

func NewCartStore(rdb RedisClient, ttl time.Duration) *CartStore {
	if ttl <= 0 {
		ttl = DefaultCartTTL
	}
	return &CartStore{rdb: rdb, ttl: ttl}
}

// Load retourne le panier de la session, vide s'il n'existe pas
func (s *CartStore) Load(ctx context.Context, sessionID string) (*cart.Cart, error) {
	data, found, err := GetCache(ctx, s.rdb, CartKey(sessionID))
	if err != nil {
		return nil, fmt.Errorf("lecture panier: %w", err)
	}
	if !found || data == "" {
		return cart.New(), nil
	}

	var snap cart.Snapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		return nil, fmt.Errorf("décodage panier: %w", err)
	}
	return cart.FromSnapshot(snap), nil
}

// Save enregistre le panier et prévient les abonnés
func (s *CartStore) Save(ctx context.Context, sessionID string, c *cart.Cart) error {
	if c.IsEmpty() {
		return s.Delete(ctx, sessionID)
	}

	data, err := json.Marshal(c.Snapshot())
	if err != nil {
		return fmt.Errorf("encodage panier: %w", err)
	}

	key := CartKey(sessionID)
	if err := s.rdb.Set(ctx, key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("sauvegarde panier: %w", err)
	}
	return s.rdb.Publish(ctx, key, CartUpdated).Err()
}

// Delete vide le panier de la session
func (s *CartStore) Delete(ctx context.Context, sessionID string) error {
	key := CartKey(sessionID)
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("suppression panier: %w", err)
	}
	return s.rdb.Publish(ctx, key, CartCleared).Err()
}
