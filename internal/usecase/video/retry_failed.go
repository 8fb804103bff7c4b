package video

import (
	"context"
	"fmt"

	"github.com/avassart/reels-ms-go/internal/logger"
	"github.com/avassart/reels-ms-go/internal/model"
	"github.com/avassart/reels-ms-go/internal/port"
)

// retryBatchSize caps how many failed videos one retry pass re-attempts.
const retryBatchSize = 10

type failedRetrierSrv struct {
	repo     port.VideoRepository
	uploader port.VideoUploader
	now      port.NowFunc
}

var _ port.FailedRetrier = (*failedRetrierSrv)(nil)

// NewFailedRetrier constructs a FailedRetrier implementation.
func NewFailedRetrier(repo port.VideoRepository, uploader port.VideoUploader, now port.NowFunc) port.FailedRetrier {
	return &failedRetrierSrv{repo, uploader, now}
}

// RetryFailed moves the most recent failed videos back to scheduled and
// re-runs the upload flow for each immediately. One video failing again does
// not stop the rest of the pass.
func (s *failedRetrierSrv) RetryFailed(ctx context.Context) error {
	failed, err := s.repo.ListFailed(ctx, retryBatchSize)
	if err != nil {
		return fmt.Errorf("failed listing failed videos: %w", err)
	}

	for _, video := range failed {
		if err := video.TransitionTo(model.VideoStatusScheduled); err != nil {
			logger.Warnf(ctx, "skipping video #%s: %v", video.ID, err)
			continue
		}
		if video.ScheduledFor == nil {
			at := s.now()
			video.ScheduledFor = &at
		}
		video.FailureMessage = nil
		if err := s.repo.Update(ctx, video); err != nil {
			logger.Errorf(ctx, "failed rescheduling video #%s: %v", video.ID, err)
			continue
		}

		if err := s.uploader.UploadVideo(ctx, video.ID); err != nil {
			logger.Errorf(ctx, "retry upload failed for video #%s: %v", video.ID, err)
		}
	}

	return nil
}
