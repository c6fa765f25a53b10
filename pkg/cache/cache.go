// Package cache provides the Redis-backed read cache for product lookups.
// Caching is best-effort: a miss or a Redis failure falls through to the
// database and never fails the request.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shoplite/storeapi/internal/model"
	"github.com/shoplite/storeapi/pkg/config"
)

const (
	productIDKeyPrefix  = "product:id:"
	productSKUKeyPrefix = "product:sku:"
)

// NewClient connects to Redis using the given configuration.
func NewClient(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

// ProductCache stores per-product JSON entries keyed by id and SKU.
type ProductCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewProductCache creates the product cache with the configured TTL.
func NewProductCache(client *redis.Client, ttl time.Duration) *ProductCache {
	return &ProductCache{client: client, ttl: ttl}
}

// GetByID returns the cached product or nil on a miss.
func (c *ProductCache) GetByID(ctx context.Context, id uint) (*model.Product, error) {
	return c.get(ctx, fmt.Sprintf("%s%d", productIDKeyPrefix, id))
}

// GetBySKU returns the cached product or nil on a miss.
func (c *ProductCache) GetBySKU(ctx context.Context, sku string) (*model.Product, error) {
	return c.get(ctx, productSKUKeyPrefix+sku)
}

func (c *ProductCache) get(ctx context.Context, key string) (*model.Product, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var product model.Product
	if err := json.Unmarshal(data, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Set stores the product under both its id and SKU keys.
func (c *ProductCache) Set(ctx context.Context, product *model.Product) error {
	data, err := json.Marshal(product)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, fmt.Sprintf("%s%d", productIDKeyPrefix, product.ID), data, c.ttl).Err(); err != nil {
		return err
	}
	return c.client.Set(ctx, productSKUKeyPrefix+product.SKU, data, c.ttl).Err()
}

// Invalidate drops both keys for the product.
func (c *ProductCache) Invalidate(ctx context.Context, product *model.Product) error {
	return c.client.Del(ctx,
		fmt.Sprintf("%s%d", productIDKeyPrefix, product.ID),
		productSKUKeyPrefix+product.SKU,
	).Err()
}
