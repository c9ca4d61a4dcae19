package database

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

// OpenRedis connects the listing cache. REDIS_URL unset is not an error:
// the storefront runs fine without the cache, it just re-fetches the
// upstream product API on every listing request.
func OpenRedis() *redis.Client {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		log.Println("REDIS_URL not set, listing cache disabled")
		return nil
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("Invalid REDIS_URL, listing cache disabled: %v", err)
		return nil
	}

	client := redis.NewClient(opt)
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("Redis unreachable, listing cache disabled: %v", err)
		return nil
	}

	log.Println("Connected to Redis")
	return client
}
