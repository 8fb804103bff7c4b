package cache

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/avassart/reels-ms-go/internal/db"
	"github.com/avassart/reels-ms-go/internal/port"
	"github.com/redis/go-redis/v9"
)

type Cache struct {
	client *redis.Client
}

// compile-time check: *Cache must satisfy port.Cache
var _ port.Cache = (*Cache)(nil)

func NewCache(addr, password string) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	return &Cache{client: rdb}
}

func (c *Cache) GetVideoDetails(ctx context.Context, id db.UUID) ([]byte, error) {
	val, err := c.client.Get(ctx, detailsKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // cache miss
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

func (c *Cache) GetEtagVideoDetails(ctx context.Context, id db.UUID) (string, error) {
	val, err := c.client.Get(ctx, etagKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (c *Cache) SetVideoDetails(ctx context.Context, id db.UUID, data []byte, validUntil time.Time) {
	if err := c.client.Set(ctx, detailsKey(id), data, time.Until(validUntil)).Err(); err != nil {
		log.Printf("warning: could not cache details for video #%s: %v", id, err)
	}
}

func (c *Cache) SetEtagVideoDetails(ctx context.Context, id db.UUID, etag string, validUntil time.Time) {
	if err := c.client.Set(ctx, etagKey(id), etag, time.Until(validUntil)).Err(); err != nil {
		log.Printf("warning: could not cache etag for video #%s: %v", id, err)
	}
}

func (c *Cache) DeleteVideoDetails(ctx context.Context, id db.UUID) error {
	return c.client.Del(ctx, detailsKey(id)).Err()
}

func (c *Cache) DeleteEtagVideoDetails(ctx context.Context, id db.UUID) error {
	return c.client.Del(ctx, etagKey(id)).Err()
}

func detailsKey(id db.UUID) string {
	return "video:" + id.String()
}

func etagKey(id db.UUID) string {
	return "video_etag:" + id.String()
}
