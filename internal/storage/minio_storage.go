package storage

import (
	"context"
	"log"
	"net/url"
	"time"

	"github.com/avassart/reels-ms-go/internal/port"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type MinioStorage struct {
	client minioClient
}

// compile-time check: *MinioStorage must satisfy port.Storage
var _ port.Storage = (*MinioStorage)(nil)

func NewStorage(endpoint, accessKey, secretKey string, useSSL bool) (*MinioStorage, error) {
	log.Println("initialising minio client...")
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, mapMinioErr(err)
	}
	return &MinioStorage{client: client}, nil
}

func (s *MinioStorage) InitBucket(bucket string) error {
	ctx := context.Background()
	ok, err := s.client.BucketExists(ctx, bucket)
	if err != nil {
		return mapMinioErr(err)
	}
	if !ok {
		log.Printf("bucket %q does not exist, creating it...", bucket)
		if err := s.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return mapMinioErr(err)
		}
	}
	return nil
}

func (s *MinioStorage) UploadFile(ctx context.Context, bucket, fileKey, localPath, contentType string) error {
	log.Printf("uploading file %q to bucket %q as %q...", localPath, bucket, fileKey)

	_, err := s.client.FPutObject(ctx, bucket, fileKey, localPath, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return mapMinioErr(err)
	}
	return nil
}

func (s *MinioStorage) GeneratePresignedDownloadURL(ctx context.Context, bucket, fileKey string, expiry time.Duration) (string, error) {
	log.Printf("generating a presigned download link for file %q in bucket %q...", fileKey, bucket)

	presignedURL, err := s.client.PresignedGetObject(ctx, bucket, fileKey, expiry, url.Values{})
	if err != nil {
		return "", mapMinioErr(err)
	}

	return presignedURL.String(), nil
}

func (s *MinioStorage) FileExists(ctx context.Context, bucket, fileKey string) (bool, error) {
	_, err := s.client.StatObject(ctx, bucket, fileKey, minio.StatObjectOptions{})
	if err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" {
			return false, nil
		}
		return false, mapMinioErr(err)
	}
	return true, nil
}
