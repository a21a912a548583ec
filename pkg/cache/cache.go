// Package cache provides a Redis-backed JSON cache.
//
// Every helper degrades to a no-op when Redis is unreachable, so a missing
// cache never takes the catalog down with it.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shashiranjanraj/plantnet/config"
)

// Backend is the key-value surface behind the JSON helpers. Redis serves it
// in production; tests swap in a map-backed double via Use.
type Backend interface {
	Get(key string) (string, bool)
	Set(key, value string, ttl time.Duration) error
	Del(keys ...string) error
}

var RDB *redis.Client
var Ctx = context.Background()

var backend Backend

// Connect initialises the Redis client and verifies the connection with a
// ping. Returns an error so the caller can react (log warning, fall back,
// or abort).
func Connect() error {
	RDB = redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr(),
		Password: config.RedisPassword(),
		DB:       0,
	})

	if err := RDB.Ping(Ctx).Err(); err != nil {
		RDB = nil // mark as unavailable so Get/Set/Del no-op safely
		backend = nil
		return fmt.Errorf("cache: redis ping: %w", err)
	}

	backend = redisBackend{rdb: RDB}
	return nil
}

// Use replaces the active backend. Passing nil disables the cache.
func Use(b Backend) {
	backend = b
}

type redisBackend struct {
	rdb *redis.Client
}

func (b redisBackend) Get(key string) (string, bool) {
	val, err := b.rdb.Get(Ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (b redisBackend) Set(key, value string, ttl time.Duration) error {
	return b.rdb.Set(Ctx, key, value, ttl).Err()
}

func (b redisBackend) Del(keys ...string) error {
	return b.rdb.Del(Ctx, keys...).Err()
}

// Get retrieves a cached value by key and unmarshals into dest.
// Returns true on a cache hit, false on miss or error.
func Get(key string, dest interface{}) bool {
	if backend == nil {
		return false
	}

	val, ok := backend.Get(key)
	if !ok {
		return false
	}

	return json.Unmarshal([]byte(val), dest) == nil
}

// Set stores value under key for the given TTL.
func Set(key string, value interface{}, ttl time.Duration) error {
	if backend == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return backend.Set(key, string(data), ttl)
}

// Del removes one or more keys.
func Del(keys ...string) error {
	if backend == nil {
		return nil
	}
	return backend.Del(keys...)
}
