package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/neexbeast/goa-trips/internal/travel"
)

// DefaultTTL is used when NewCache is given a non-positive TTL.
const DefaultTTL = time.Hour

// Cache is a read-through store for destination records in Redis.
// Destinations are never updated once created, so entries only age out.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache constructs a Cache whose entries expire after ttl.
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{client: client, ttl: ttl}
}

func key(id travel.ID) string {
	return "destination:" + id.String()
}

// Get retrieves a destination from cache.
// Returns nil, nil on a cache miss (not an error).
func (c *Cache) Get(ctx context.Context, id travel.ID) (*travel.Destination, error) {
	val, err := c.client.Get(ctx, key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get for destination %s: %w", id, err)
	}

	var d travel.Destination
	if err := json.Unmarshal(val, &d); err != nil {
		return nil, fmt.Errorf("unmarshaling cached destination %s: %w", id, err)
	}

	return &d, nil
}

// Set stores a destination with the configured TTL.
func (c *Cache) Set(ctx context.Context, d *travel.Destination) error {
	if d == nil {
		return nil
	}

	b, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("marshaling destination %s: %w", d.ID, err)
	}

	if err := c.client.Set(ctx, key(d.ID), b, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set for destination %s: %w", d.ID, err)
	}

	return nil
}
