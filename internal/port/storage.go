package port

import (
	"context"
	"time"
)

// Storage defines artifact storage operations for rendered video files.
type Storage interface {
	InitBucket(bucket string) error
	// UploadFile stores the local file under fileKey.
	UploadFile(ctx context.Context, bucket, fileKey, localPath, contentType string) error
	// GeneratePresignedDownloadURL returns a publicly fetchable URL for the
	// stored artifact, valid for the given expiry.
	GeneratePresignedDownloadURL(ctx context.Context, bucket, fileKey string, expiry time.Duration) (string, error)
	FileExists(ctx context.Context, bucket, fileKey string) (bool, error)
}
