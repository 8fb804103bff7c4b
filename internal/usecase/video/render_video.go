package video

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/avassart/reels-ms-go/internal/db"
	"github.com/avassart/reels-ms-go/internal/logger"
	"github.com/avassart/reels-ms-go/internal/model"
	"github.com/avassart/reels-ms-go/internal/port"
)

type videoRendererSrv struct {
	repo   port.VideoRepository
	engine port.RenderEngine
	strg   port.Storage
	cache  port.Cache
	bucket string
}

var _ port.VideoRenderer = (*videoRendererSrv)(nil)

// NewVideoRenderer constructs a VideoRenderer implementation.
func NewVideoRenderer(repo port.VideoRepository, engine port.RenderEngine, strg port.Storage, cache port.Cache, bucket string) port.VideoRenderer {
	return &videoRendererSrv{repo, engine, strg, cache, bucket}
}

// RenderVideo runs one render attempt end to end: mark the video rendering,
// produce the file, upload it to the artifact bucket, mark it rendered. Any
// error past the rendering transition marks the video failed before being
// returned, so the queue can decide whether to retry.
func (s *videoRendererSrv) RenderVideo(ctx context.Context, id db.UUID) error {
	video, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrVideoNotFound
		}
		return fmt.Errorf("failed getting video #%s: %w", id, err)
	}

	// A job delivered more than once must not redo finished work.
	if video.Status == model.VideoStatusRendered {
		logger.Infof(ctx, "video #%s already rendered, skipping", id)
		return nil
	}

	if err := video.TransitionTo(model.VideoStatusRendering); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, video); err != nil {
		return fmt.Errorf("failed updating video #%s: %w", id, err)
	}

	localPath, err := s.engine.Render(ctx, video.ID.String(), video.CompositionID, video.Props)
	if err != nil {
		return s.fail(ctx, video, fmt.Errorf("render failed for video #%s: %w", id, err))
	}
	defer func() {
		if rmErr := os.Remove(localPath); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			logger.Warnf(ctx, "failed removing local render output %q: %v", localPath, rmErr)
		}
	}()

	fileKey := video.ID.String() + ".mp4"
	if err := s.strg.UploadFile(ctx, s.bucket, fileKey, localPath, "video/mp4"); err != nil {
		return s.fail(ctx, video, fmt.Errorf("failed uploading render output for video #%s: %w", id, err))
	}

	// The scratch file is gone once this returns, so the stored path points
	// at the artifact's bucket location, not the local render output.
	storedPath := s.bucket + "/" + fileKey
	video.FilePath = &storedPath
	video.ObjectKey = &fileKey
	video.FailureMessage = nil
	if err := video.TransitionTo(model.VideoStatusRendered); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, video); err != nil {
		return fmt.Errorf("failed updating video #%s: %w", id, err)
	}

	s.invalidateCache(ctx, video)

	logger.Infof(ctx, "rendered video #%s into %s/%s", id, s.bucket, fileKey)
	return nil
}

// fail records the failure on the entity, then propagates the cause.
func (s *videoRendererSrv) fail(ctx context.Context, video *model.Video, cause error) error {
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

func (s *videoRendererSrv) invalidateCache(ctx context.Context, video *model.Video) {
	if err := s.cache.DeleteVideoDetails(ctx, video.ID); err != nil {
		logger.Warnf(ctx, "failed deleting video #%s details from cache: %v", video.ID, err)
	}
	if err := s.cache.DeleteEtagVideoDetails(ctx, video.ID); err != nil {
		logger.Warnf(ctx, "failed deleting video #%s etag from cache: %v", video.ID, err)
	}
}
