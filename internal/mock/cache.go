package mock

import (
	"context"
	"time"

	"github.com/avassart/reels-ms-go/internal/db"
)

// Cache implements cache behaviour for tests.
type Cache struct {
	// stored values
	VideoOut []byte

	// etag values
	EtagVideo string

	// errors
	GetVideoErr     error
	GetEtagVideoErr error
	DelVideoErr     error
	DelEtagVideoErr error

	// call flags
	GetVideoCalled     bool
	GetEtagVideoCalled bool
	SetVideoCalled     bool
	SetEtagVideoCalled bool
	DelVideoCalled     bool
	DelEtagVideoCalled bool
}

func (c *Cache) GetVideoDetails(ctx context.Context, id db.UUID) ([]byte, error) {
	c.GetVideoCalled = true
	if c.GetVideoErr != nil {
		return nil, c.GetVideoErr
	}
	return c.VideoOut, nil
}

func (c *Cache) GetEtagVideoDetails(ctx context.Context, id db.UUID) (string, error) {
	c.GetEtagVideoCalled = true
	if c.GetEtagVideoErr != nil {
		return "", c.GetEtagVideoErr
	}
	return c.EtagVideo, nil
}

func (c *Cache) SetVideoDetails(ctx context.Context, id db.UUID, data []byte, validUntil time.Time) {
	c.SetVideoCalled = true
	c.VideoOut = data
}

func (c *Cache) SetEtagVideoDetails(ctx context.Context, id db.UUID, etag string, validUntil time.Time) {
	c.SetEtagVideoCalled = true
	c.EtagVideo = etag
}

func (c *Cache) DeleteVideoDetails(ctx context.Context, id db.UUID) error {
	c.DelVideoCalled = true
	return c.DelVideoErr
}

func (c *Cache) DeleteEtagVideoDetails(ctx context.Context, id db.UUID) error {
	c.DelEtagVideoCalled = true
	return c.DelEtagVideoErr
}
