package video

import (
	"context"
	"fmt"

	"github.com/avassart/reels-ms-go/internal/logger"
	"github.com/avassart/reels-ms-go/internal/model"
	"github.com/avassart/reels-ms-go/internal/port"
)

type videoCreatorSrv struct {
	repo    port.VideoRepository
	tasks   port.TaskDispatcher
	genUUID port.UUIDGen
}

// compile-time check: *videoCreatorSrv must satisfy port.VideoCreator
var _ port.VideoCreator = (*videoCreatorSrv)(nil)

// NewVideoCreator constructs a VideoCreator implementation.
func NewVideoCreator(repo port.VideoRepository, tasks port.TaskDispatcher, genUUID port.UUIDGen) port.VideoCreator {
	return &videoCreatorSrv{repo, tasks, genUUID}
}

// CreateVideo persists a new pending video and enqueues its render job.
func (s *videoCreatorSrv) CreateVideo(ctx context.Context, in port.CreateVideoInput) (*model.Video, error) {
	props := in.Props
	if props == nil {
		props = model.Props{}
	}

	video := &model.Video{
		ID:            s.genUUID(),
		CompositionID: in.CompositionID,
		Title:         in.Title,
		Caption:       in.Caption,
		Hashtags:      in.Hashtags,
		Props:         props,
		Status:        model.VideoStatusPending,
	}

	if err := s.repo.Create(ctx, video); err != nil {
		return nil, fmt.Errorf("failed creating video: %w", err)
	}

	jobID, err := s.tasks.EnqueueRenderVideo(ctx, video.ID, video.CompositionID, video.Props)
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue render job for video #%s: %w", video.ID, err)
	}

	logger.Infof(ctx, "created video #%s and queued render job %s", video.ID, jobID)
	return video, nil
}
