package cache

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// ProductCache is a read-through cache for catalog reads. It is optional:
// when REDIS_ADDR is unset every method is a no-op and reads go straight
// to the database.
type ProductCache struct {
	client *redis.Client
	ttl    time.Duration
}

// Connect dials Redis when REDIS_ADDR is set and returns a disabled cache
// otherwise. A failed ping disables the cache rather than aborting boot.
func Connect() *ProductCache {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return &ProductCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Printf("❌ Redis unavailable, product cache disabled: %v", err)
		return &ProductCache{}
	}

	log.Println("✅ Redis connected, product cache enabled")
	return &ProductCache{client: client, ttl: 5 * time.Minute}
}

// Get returns the cached JSON payload for the key, or nil on a miss.
func (pc *ProductCache) Get(ctx context.Context, key string) []byte {
	if pc.client == nil {
		return nil
	}
	data, err := pc.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil
	}
	return data
}

// Set stores a JSON payload under the key with the cache TTL.
func (pc *ProductCache) Set(ctx context.Context, key string, data []byte) {
	if pc.client == nil {
		return
	}
	if err := pc.client.Set(ctx, key, data, pc.ttl).Err(); err != nil {
		log.Printf("❌ Failed to cache %s: %v", key, err)
	}
}

// InvalidateProducts drops every cached catalog read. Called after any
// back-office product write.
func (pc *ProductCache) InvalidateProducts(ctx context.Context) {
	if pc.client == nil {
		return
	}
	iter := pc.client.Scan(ctx, 0, "products:*", 0).Iterator()
	for iter.Next(ctx) {
		pc.client.Del(ctx, iter.Val())
	}
	if err := iter.Err(); err != nil {
		log.Printf("❌ Failed to invalidate product cache: %v", err)
	}
}
