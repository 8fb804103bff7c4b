package video

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/avassart/reels-ms-go/internal/db"
	"github.com/avassart/reels-ms-go/internal/logger"
	"github.com/avassart/reels-ms-go/internal/model"
	"github.com/avassart/reels-ms-go/internal/port"
)

// downloadURLExpiry must outlast the platform's container processing window.
const downloadURLExpiry = time.Hour

type videoUploaderSrv struct {
	repo         port.VideoRepository
	settings     port.SettingsGetter
	strg         port.Storage
	publisherFor port.PublisherFactory
	cache        port.Cache
	bucket       string
	now          port.NowFunc
}

var _ port.VideoUploader = (*videoUploaderSrv)(nil)

// NewVideoUploader constructs a VideoUploader implementation.
func NewVideoUploader(repo port.VideoRepository, settings port.SettingsGetter, strg port.Storage, publisherFor port.PublisherFactory, cache port.Cache, bucket string, now port.NowFunc) port.VideoUploader {
	return &videoUploaderSrv{repo, settings, strg, publisherFor, cache, bucket, now}
}

// UploadVideo publishes one scheduled video to the platform. A video in any
// other status is rejected without mutation; a missing artifact or missing
// credentials mark the video failed.
func (s *videoUploaderSrv) UploadVideo(ctx context.Context, id db.UUID) error {
	video, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrVideoNotFound
		}
		return fmt.Errorf("failed getting video #%s: %w", id, err)
	}

	if video.Status != model.VideoStatusScheduled {
		return fmt.Errorf("%w: video #%s is %q", ErrNotReadyForUpload, id, video.Status)
	}

	if video.ObjectKey == nil {
		return s.fail(ctx, video, fmt.Errorf("%w: video #%s has no artifact key", ErrFileMissing, id))
	}
	exists, err := s.strg.FileExists(ctx, s.bucket, *video.ObjectKey)
	if err != nil {
		return fmt.Errorf("failed checking artifact for video #%s: %w", id, err)
	}
	if !exists {
		return s.fail(ctx, video, fmt.Errorf("%w: %s/%s", ErrFileMissing, s.bucket, *video.ObjectKey))
	}

	settings, err := s.settings.GetSettings(ctx)
	if err != nil {
		return fmt.Errorf("failed getting settings: %w", err)
	}
	if !settings.HasCredentials() {
		return s.fail(ctx, video, fmt.Errorf("%w: video #%s", ErrCredentialsMissing, id))
	}

	if err := video.TransitionTo(model.VideoStatusPosting); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, video); err != nil {
		return fmt.Errorf("failed updating video #%s: %w", id, err)
	}

	videoURL, err := s.strg.GeneratePresignedDownloadURL(ctx, s.bucket, *video.ObjectKey, downloadURLExpiry)
	if err != nil {
		return s.fail(ctx, video, fmt.Errorf("failed generating download URL for video #%s: %w", id, err))
	}

	publisher := s.publisherFor(settings.InstagramAccessToken, settings.InstagramAccountID)
	mediaID, err := publisher.PublishVideo(ctx, videoURL, video.FullCaption())
	if err != nil {
		return s.fail(ctx, video, fmt.Errorf("publish failed for video #%s: %w", id, err))
	}

	postedAt := s.now()
	video.PostedAt = &postedAt
	video.InstagramMediaID = &mediaID
	video.FailureMessage = nil
	if err := video.TransitionTo(model.VideoStatusPosted); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, video); err != nil {
		return fmt.Errorf("failed updating video #%s: %w", id, err)
	}

	s.invalidateCache(ctx, video)

	logger.Infof(ctx, "posted video #%s as media %s", id, mediaID)
	return nil
}

func (s *videoUploaderSrv) fail(ctx context.Context, video *model.Video, cause error) error {
	if err := video.MarkFailed(cause.Error()); err != nil {
		logger.Errorf(ctx, "could not mark video #%s failed: %v", video.ID, err)
		return cause
	}
	if err := s.repo.Update(ctx, video); err != nil {
		logger.Errorf(ctx, "failed persisting failure on video #%s: %v", video.ID, err)
	}
	s.invalidateCache(ctx, video)
	return cause
}

func (s *videoUploaderSrv) invalidateCache(ctx context.Context, video *model.Video) {
	if err := s.cache.DeleteVideoDetails(ctx, video.ID); err != nil {
		logger.Warnf(ctx, "failed deleting video #%s details from cache: %v", video.ID, err)
	}
	if err := s.cache.DeleteEtagVideoDetails(ctx, video.ID); err != nil {
		logger.Warnf(ctx, "failed deleting video #%s etag from cache: %v", video.ID, err)
	}
}
