package question

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultCacheTTL = 5 * time.Minute
	bankCacheKey    = "kbquiz:questionbank:v1"
)

// Cache stores a JSON snapshot of the whole bank in Redis.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ BankCache = (*Cache)(nil)

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &Cache{client: client, ttl: ttl}
}

// Get returns the cached bank, or nil without error on a miss.
func (c *Cache) Get(ctx context.Context) ([]Question, error) {
	data, err := c.client.Get(ctx, bankCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var bank []Question
	if err := json.Unmarshal(data, &bank); err != nil {
		return nil, err
	}
	return bank, nil
}

func (c *Cache) Set(ctx context.Context, bank []Question) error {
	data, err := json.Marshal(bank)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, bankCacheKey, data, c.ttl).Err()
}
