// Package cachetest fournit un faux client Redis en mémoire pour les tests.
package cachetest

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Message est une publication capturée
type Message struct {
	Channel string
	Payload string
}

// FakeRedis implémente cache.RedisClient en mémoire
type FakeRedis struct {
	mu        sync.Mutex
	data      map[string]string
	ttls      map[string]time.Duration
	Published []Message
	// Err, si non nil, est retournée par toutes les commandes
	Err error
}

func NewFakeRedis() *FakeRedis {
	return &FakeRedis{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func toString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	default:
		return fmt.Sprint(t)
	}
}

func (f *FakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	cmd := redis.NewStringCmd(ctx, "get", key)
	if f.Err != nil {
		cmd.SetErr(f.Err)
		return cmd
	}
	if v, ok := f.data[key]; ok {
		cmd.SetVal(v)
	} else {
		cmd.SetErr(redis.Nil)
	}
	return cmd
}

func (f *FakeRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	cmd := redis.NewStatusCmd(ctx, "set", key, value)
	if f.Err != nil {
		cmd.SetErr(f.Err)
		return cmd
	}
	f.data[key] = toString(value)
	f.ttls[key] = expiration
	cmd.SetVal("OK")
	return cmd
}

func (f *FakeRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	cmd := redis.NewIntCmd(ctx, "del", keys)
	if f.Err != nil {
		cmd.SetErr(f.Err)
		return cmd
	}
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			delete(f.ttls, k)
			n++
		}
	}
	cmd.SetVal(n)
	return cmd
}

func (f *FakeRedis) Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	cmd := redis.NewIntCmd(ctx, "publish", channel, message)
	if f.Err != nil {
		cmd.SetErr(f.Err)
		return cmd
	}
	f.Published = append(f.Published, Message{Channel: channel, Payload: toString(message)})
	cmd.SetVal(0)
	return cmd
}

func (f *FakeRedis) Incr(ctx context.Context, key string) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	cmd := redis.NewIntCmd(ctx, "incr", key)
	if f.Err != nil {
		cmd.SetErr(f.Err)
		return cmd
	}
	n, _ := strconv.ParseInt(f.data[key], 10, 64)
	n++
	f.data[key] = strconv.FormatInt(n, 10)
	cmd.SetVal(n)
	return cmd
}

func (f *FakeRedis) Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	cmd := redis.NewBoolCmd(ctx, "expire", key, expiration)
	if f.Err != nil {
		cmd.SetErr(f.Err)
		return cmd
	}
	_, ok := f.data[key]
	if ok {
		f.ttls[key] = expiration
	}
	cmd.SetVal(ok)
	return cmd
}

// Value retourne la valeur brute stockée sous key
func (f *FakeRedis) Value(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.data[key]
	return v, ok
}

// TTL retourne l'expiration posée sur key
func (f *FakeRedis) TTL(key string) time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ttls[key]
}

// Messages retourne une copie des publications
func (f *FakeRedis) Messages() []Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Message(nil), f.Published...)
}
