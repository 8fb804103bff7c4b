package mock

import (
	"context"
	"time"
)

// Storage implements the storage interface for tests.
type Storage struct {
	// stored values
	DownloadURLOut string
	ExistsOut      bool

	// captured inputs
	ObjectKey string
	LocalPath string
	TTL       time.Duration

	// errors
	InitBucketErr           error
	UploadErr               error
	GenerateDownloadLinkErr error
	FileExistsErr           error

	// call flags
	InitBucketCalled           bool
	UploadCalled               bool
	GenerateDownloadLinkCalled bool
	FileExistsCalled           bool
}

func (m *Storage) InitBucket(bucket string) error {
	m.InitBucketCalled = true
	return m.InitBucketErr
}

func (m *Storage) UploadFile(ctx context.Context, bucket, fileKey, localPath, contentType string) error {
	m.UploadCalled = true
	m.ObjectKey = fileKey
	m.LocalPath = localPath
	return m.UploadErr
}

func (m *Storage) GeneratePresignedDownloadURL(ctx context.Context, bucket, fileKey string, expiry time.Duration) (string, error) {
	m.GenerateDownloadLinkCalled = true
	m.ObjectKey = fileKey
	m.TTL = expiry
	if m.GenerateDownloadLinkErr != nil {
		return "", m.GenerateDownloadLinkErr
	}
	if m.DownloadURLOut != "" {
		return m.DownloadURLOut, nil
	}
	return "https://example.com/download", nil
}

func (m *Storage) FileExists(ctx context.Context, bucket, fileKey string) (bool, error) {
	m.FileExistsCalled = true
	if m.FileExistsErr != nil {
		return false, m.FileExistsErr
	}
	return m.ExistsOut, nil
}
