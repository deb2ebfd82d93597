package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/casellese/catalog-backend/internal/domain/entities"
	"github.com/casellese/catalog-backend/internal/domain/ports"
)

const (
	productKeyPrefix = "catalog:product:"
	// generationTTL limita a vida do contador de invalidações de cada produto
	generationTTL = 24 * time.Hour
)

var errStaleGeneration = errors.New("product cache generation changed")

// RedisProductCache implementa ports.ProductCache sobre Redis.
// Erros são registrados e tratados como cache miss.
type RedisProductCache struct {
	client redis.UniversalClient
	ttl    time.Duration
	logger ports.Logger
}

// NewRedisProductCache cria um novo RedisProductCache
func NewRedisProductCache(client redis.UniversalClient, ttl time.Duration, logger ports.Logger) *RedisProductCache {
	return &RedisProductCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

type cachedProduct struct {
	ID              uint      `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	Price           float64   `json:"price"`
	ImageURL        string    `json:"imageUrl"`
	ImageURLDetails string    `json:"imageUrlDetails"`
	Ingredients     string    `json:"ingredients"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// productKey e generationKey compartilham a hash tag para caber no mesmo slot do cluster
func productKey(id uint) string {
	return fmt.Sprintf("%s{%d}", productKeyPrefix, id)
}

func generationKey(id uint) string {
	return productKey(id) + ":gen"
}

func (c *RedisProductCache) Get(ctx context.Context, id uint) (*entities.Product, int64, bool) {
	values, err := c.client.MGet(ctx, productKey(id), generationKey(id)).Result()
	if err != nil {
		c.logger.Warn("product cache read failed", "product_id", id, "error", err)
		return nil, -1, false
	}

	generation, err := parseGeneration(values[1])
	if err != nil {
		c.logger.Warn("product cache generation is corrupt", "product_id", id, "error", err)
		return nil, -1, false
	}

	data, ok := values[0].(string)
	if !ok {
		return nil, generation, false
	}

	var cached cachedProduct
	if err := json.Unmarshal([]byte(data), &cached); err != nil {
		c.logger.Warn("product cache entry is corrupt", "product_id", id, "error", err)
		if err := c.client.Del(ctx, productKey(id)).Err(); err != nil {
			c.logger.Warn("product cache cleanup failed", "product_id", id, "error", err)
		}
		return nil, generation, false
	}

	return &entities.Product{
		ID:              cached.ID,
		Title:           cached.Title,
		Description:     cached.Description,
		Category:        entities.Category(cached.Category),
		Price:           cached.Price,
		ImageURL:        cached.ImageURL,
		ImageURLDetails: cached.ImageURLDetails,
		Ingredients:     cached.Ingredients,
		CreatedAt:       cached.CreatedAt,
		UpdatedAt:       cached.UpdatedAt,
	}, generation, true
}

func parseGeneration(value any) (int64, error) {
	if value == nil {
		return 0, nil
	}
	raw, ok := value.(string)
	if !ok {
		return 0, fmt.Errorf("unexpected generation type %T", value)
	}
	return strconv.ParseInt(raw, 10, 64)
}

// Set grava o produto sob WATCH da geração; uma invalidação concorrente descarta a escrita
func (c *RedisProductCache) Set(ctx context.Context, product *entities.Product, generation int64) {
	if generation < 0 {
		return
	}

	data, err := json.Marshal(cachedProduct{
		ID:              product.ID,
		Title:           product.Title,
		Description:     product.Description,
		Category:        string(product.Category),
		Price:           product.Price,
		ImageURL:        product.ImageURL,
		ImageURLDetails: product.ImageURLDetails,
		Ingredients:     product.Ingredients,
		CreatedAt:       product.CreatedAt,
		UpdatedAt:       product.UpdatedAt,
	})
	if err != nil {
		return
	}

	genKey := generationKey(product.ID)
	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, genKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != generation {
			return errStaleGeneration
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, productKey(product.ID), data, c.ttl)
			return nil
		})
		return err
	}, genKey)

	switch {
	case err == nil:
	case errors.Is(err, errStaleGeneration), errors.Is(err, redis.TxFailedErr):
		c.logger.Debug("product cache write skipped after invalidation", "product_id", product.ID)
	default:
		c.logger.Warn("product cache write failed", "product_id", product.ID, "error", err)
	}
}

// Invalidate remove a entrada e avança a geração do produto
func (c *RedisProductCache) Invalidate(ctx context.Context, id uint) {
	genKey := generationKey(id)
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, genKey)
		pipe.Expire(ctx, genKey, generationTTL)
		pipe.Del(ctx, productKey(id))
		return nil
	})
	if err != nil {
		c.logger.Warn("product cache invalidation failed", "product_id", id, "error", err)
	}
}

// NoopProductCache é usado quando REDIS_URL não está configurado
type NoopProductCache struct{}

func (NoopProductCache) Get(context.Context, uint) (*entities.Product, int64, bool) { return nil, -1, false }
func (NoopProductCache) Set(context.Context, *entities.Product, int64)              {}
func (NoopProductCache) Invalidate(context.Context, uint)                           {}

var (
	_ ports.ProductCache = (*RedisProductCache)(nil)
	_ ports.ProductCache = NoopProductCache{}
)
