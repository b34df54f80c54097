package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/onlineshop/shop-system/internal/api/metrics"
	"github.com/onlineshop/shop-system/internal/core/ports"
)

const productCacheTTL = 5 * time.Minute

// ProductCache is a read-through cache of product projections.
// Key format: product:<id>
type ProductCache struct {
	client *redis.Client
	log    zerolog.Logger
}

func NewProductCache(client *redis.Client, log zerolog.Logger) *ProductCache {
	return &ProductCache{client: client, log: log}
}

// cachedProduct is the JSON shape stored in Redis. Price travels as a string
// so no decimal precision is lost in transit.
type cachedProduct struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Supplier string `json:"supplier"`
	Price    string `json:"price"`
	HasImage bool   `json:"has_image"`
}

// Get returns the cached projection and whether it was present. Cache errors
// are logged and reported as misses so reads fall through to the database.
func (c *ProductCache) Get(ctx context.Context, id uint) (*ports.ProductProjection, bool) {
	raw, err := c.client.Get(ctx, c.key(id)).Result()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Uint("product_id", id).Msg("product cache read failed")
		}
		metrics.ProductCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	var cached cachedProduct
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		metrics.ProductCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}
	price, err := decimal.NewFromString(cached.Price)
	if err != nil {
		metrics.ProductCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	metrics.ProductCacheTotal.WithLabelValues("hit").Inc()
	return &ports.ProductProjection{
		ID:       cached.ID,
		Name:     cached.Name,
		Supplier: cached.Supplier,
		Price:    price,
		HasImage: cached.HasImage,
	}, true
}

// Set stores the projection with a TTL. Failures are logged and ignored.
func (c *ProductCache) Set(ctx context.Context, id uint, p *ports.ProductProjection) {
	data, err := json.Marshal(cachedProduct{
		ID:       p.ID,
		Name:     p.Name,
		Supplier: p.Supplier,
		Price:    p.Price.StringFixed(2),
		HasImage: p.HasImage,
	})
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, c.key(id), data, productCacheTTL).Err(); err != nil {
		c.log.Warn().Err(err).Uint("product_id", id).Msg("product cache write failed")
	}
}

// Invalidate drops the cached projection after a mutation.
func (c *ProductCache) Invalidate(ctx context.Context, id uint) {
	if err := c.client.Del(ctx, c.key(id)).Err(); err != nil {
		c.log.Warn().Err(err).Uint("product_id", id).Msg("product cache invalidation failed")
	}
}

func (c *ProductCache) key(id uint) string {
	return fmt.Sprintf("product:%d", id)
}
