package utils

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient backs both the listings response cache and the session
// slots. Initialized once at startup.
var RedisClient *redis.Client

func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
}

// GetCached loads a cached JSON value into dest. The first return value
// reports whether the key was present.
func GetCached(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := RedisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal([]byte(data), dest)
}

func SetCached(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return RedisClient.Set(ctx, key, data, ttl).Err()
}

// GenerateQueryCacheKey derives a deterministic key for one filter
// combination: the query parameters sorted, joined and hashed under a
// prefix, so equivalent requests share a cache entry.
func GenerateQueryCacheKey(prefix string, queryParams map[string]string) string {
	pairs := make([]string, 0, len(queryParams))
	for k, v := range queryParams {
		pairs = append(pairs, fmt.Sprintf("%s=%s", k, v))
	}
	sort.Strings(pairs)

	sum := md5.Sum([]byte(strings.Join(pairs, ":")))
	return prefix + ":" + hex.EncodeToString(sum[:])
}
