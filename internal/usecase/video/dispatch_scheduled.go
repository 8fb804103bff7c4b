package video

import (
	"context"
	"fmt"

	"github.com/avassart/reels-ms-go/internal/logger"
	"github.com/avassart/reels-ms-go/internal/port"
)

type dueDispatcherSrv struct {
	repo     port.VideoRepository
	uploader port.VideoUploader
	now      port.NowFunc
}

var _ port.DueDispatcher = (*dueDispatcherSrv)(nil)

// NewDueDispatcher constructs a DueDispatcher implementation.
func NewDueDispatcher(repo port.VideoRepository, uploader port.VideoUploader, now port.NowFunc) port.DueDispatcher {
	return &dueDispatcherSrv{repo, uploader, now}
}

// DispatchDue publishes the earliest-due scheduled video, at most one per
// call. Remaining due videos wait for the next tick, which throttles posting
// to one video a minute.
func (s *dueDispatcherSrv) DispatchDue(ctx context.Context) error {
	due, err := s.repo.ListScheduledDue(ctx, s.now(), 1)
	if err != nil {
		return fmt.Errorf("failed listing due videos: %w", err)
	}
	if len(due) == 0 {
		return nil
	}

	video := due[0]
	if err := s.uploader.UploadVideo(ctx, video.ID); err != nil {
		// The upload flow already recorded the failure on the entity; the
		// dispatcher only surfaces it.
		logger.Errorf(ctx, "dispatch failed for video #%s: %v", video.ID, err)
		return err
	}
	return nil
}
