// Package cache implementa la caché de nombres de categoría sobre Redis.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/magicshop/admin-api/internal/domain/repository"
)

const categoryNamesKey = "magicshop:category_names"

// NewRedis crea el cliente Redis a partir de una URL. URL vacía devuelve nil
// (la aplicación opera sin caché).
func NewRedis(url string) (*redis.Client, error) {
	if url == "" {
		return nil, nil
	}
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opt)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// CategoryCache caché read-through del mapa id→nombre de categorías.
// Si client es nil o Redis falla, las lecturas van directo al repositorio.
type CategoryCache struct {
	client *redis.Client
	repo   repository.CategoryRepository
	ttl    time.Duration
}

func NewCategoryCache(client *redis.Client, repo repository.CategoryRepository, ttl time.Duration) *CategoryCache {
	return &CategoryCache{client: client, repo: repo, ttl: ttl}
}

// Names devuelve el mapa id→nombre, sirviéndolo de Redis cuando está poblado.
func (c *CategoryCache) Names(ctx context.Context) (map[int64]string, error) {
	if c.client != nil {
		raw, err := c.client.Get(ctx, categoryNamesKey).Result()
		if err == nil {
			names, err := decodeNames(raw)
			if err == nil {
				return names, nil
			}
		}
	}

	categories, err := c.repo.List()
	if err != nil {
		return nil, fmt.Errorf("load category names: %w", err)
	}
	names := make(map[int64]string, len(categories))
	for _, cat := range categories {
		names[cat.ID] = cat.Name
	}

	if c.client != nil {
		if raw, err := encodeNames(names); err == nil {
			// error de escritura en caché no es fatal
			_ = c.client.Set(ctx, categoryNamesKey, raw, c.ttl).Err()
		}
	}
	return names, nil
}

// Invalidate descarta la caché; la próxima lectura la repobla desde la BD.
func (c *CategoryCache) Invalidate(ctx context.Context) error {
	if c.client == nil {
		return nil
	}
	if err := c.client.Del(ctx, categoryNamesKey).Err(); err != nil {
		return fmt.Errorf("invalidate category cache: %w", err)
	}
	return nil
}

// JSON no admite claves int64, se serializan como string.
func encodeNames(names map[int64]string) (string, error) {
	m := make(map[string]string, len(names))
	for id, name := range names {
		m[strconv.FormatInt(id, 10)] = name
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func decodeNames(raw string) (map[int64]string, error) {
	var m map[string]string
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(m))
	for k, name := range m {
		id, err := strconv.ParseInt(k, 10, 64)
		if err != nil {
			return nil, err
		}
		names[id] = name
	}
	return names, nil
}
