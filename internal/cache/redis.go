package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient est le sous-ensemble de go-redis utilisé par le cache.
// *redis.Client le satisfait; les tests utilisent un faux en mémoire.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

var _ RedisClient = (*redis.Client)(nil)

// --- Rate Limiting ---

// IncrementRateLimit incrémente le compteur et pose la fenêtre au premier appel
func IncrementRateLimit(ctx context.Context, rdb RedisClient, key string, window time.Duration) (int64, error) {
	count, err := rdb.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		if err := rdb.Expire(ctx, key, window).Err(); err != nil {
			return count, err
		}
	}
	return count, nil
}

// --- Cache générique ---

// GetCache récupère une valeur; found est faux si la clé n'existe pas
func GetCache(ctx context.Context, rdb RedisClient, key string) (value string, found bool, err error) {
	value, err = rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}
