package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Guyuepp/food-reels/domain"
	"github.com/Guyuepp/food-reels/internal/repository/cache"
)

const (
	KeyFoodFeed = "food:feed:home"
)

type foodCache struct {
	client *redis.Client
}

var _ domain.FoodCache = (*foodCache)(nil)

func NewFoodCache(client *redis.Client) *foodCache {
	return &foodCache{
		client,
	}
}

// GetFeedWithLogicalExpire returns the cached first page and whether it is stale.
// A missing key is reported as domain.ErrCacheMiss.
func (c *foodCache) GetFeedWithLogicalExpire(ctx context.Context) ([]domain.Food, bool, error) {
	data, err := c.client.Get(ctx, KeyFoodFeed).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, domain.ErrCacheMiss
	} else if err != nil {
		return nil, false, err
	}

	var wrapped cache.DataWithLogicalExpire[[]domain.Food]
	if err = json.Unmarshal(data, &wrapped); err != nil {
		return nil, false, err
	}
	return wrapped.Data, wrapped.IsLogicalExpired(), nil
}

func (c *foodCache) SetFeedWithLogicalExpire(ctx context.Context, foods []domain.Food, ttl time.Duration) error {
	data, err := json.Marshal(cache.NewDataWithLogicalExpire(foods, ttl))
	if err != nil {
		return err
	}
	// the physical TTL only bounds memory; freshness is decided by ExpireAt
	return c.client.Set(ctx, KeyFoodFeed, data, 10*ttl).Err()
}

func (c *foodCache) DeleteFeed(ctx context.Context) error {
	return c.client.Del(ctx, KeyFoodFeed).Err()
}
