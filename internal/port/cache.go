package port

import (
	"context"
	"time"

	"github.com/avassart/reels-ms-go/internal/db"
)

// Cache provides caching capabilities for video detail retrieval.
type Cache interface {
	GetVideoDetails(ctx context.Context, id db.UUID) ([]byte, error)
	GetEtagVideoDetails(ctx context.Context, id db.UUID) (string, error)
	SetVideoDetails(ctx context.Context, id db.UUID, data []byte, validUntil time.Time)
	SetEtagVideoDetails(ctx context.Context, id db.UUID, etag string, validUntil time.Time)
	DeleteVideoDetails(ctx context.Context, id db.UUID) error
	DeleteEtagVideoDetails(ctx context.Context, id db.UUID) error
}
