package cache

import (
	"context"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// Master data cache keys. Invoice creation reads the company profile
// and product list on every form load, so both are cached briefly.
const (
	CompanyProfileKey = "master:company_profile"
	ProductListKey    = "master:products"
	CustomerListKey   = "master:customers"
)

var client *redis.Client

// Init initializes the Redis connection. The cache is optional: when
// Redis is unreachable every Get returns a miss and Sets are dropped.
func Init() error {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}

	client = redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		client = nil
		return err
	}
	return nil
}

// Get returns cached JSON bytes for a key, or a miss.
func Get(ctx context.Context, key string) ([]byte, bool) {
	if client == nil {
		return nil, false
	}
	data, err := client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// Set caches JSON bytes for 5 minutes.
func Set(ctx context.Context, key string, data []byte) {
	if client == nil {
		return
	}
	client.Set(ctx, key, data, 5*time.Minute)
}

// Invalidate drops cached keys after a master-data write.
func Invalidate(ctx context.Context, keys ...string) {
	if client == nil {
		return
	}
	client.Del(ctx, keys...)
}
