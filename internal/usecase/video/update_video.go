package video

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avassart/reels-ms-go/internal/logger"
	"github.com/avassart/reels-ms-go/internal/model"
	"github.com/avassart/reels-ms-go/internal/port"
)

type videoUpdaterSrv struct {
	repo  port.VideoRepository
	cache port.Cache
}

var _ port.VideoUpdater = (*videoUpdaterSrv)(nil)

// NewVideoUpdater constructs a VideoUpdater implementation.
func NewVideoUpdater(repo port.VideoRepository, cache port.Cache) port.VideoUpdater {
	return &videoUpdaterSrv{repo, cache}
}

// UpdateVideo applies the non-nil fields of the input to the stored record.
func (s *videoUpdaterSrv) UpdateVideo(ctx context.Context, in port.UpdateVideoInput) (*model.Video, error) {
	video, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVideoNotFound
		}
		return nil, fmt.Errorf("failed getting video #%s: %w", in.ID, err)
	}

	if in.Title != nil {
		video.Title = *in.Title
	}
	if in.Caption != nil {
		video.Caption = *in.Caption
	}
	if in.Hashtags != nil {
		video.Hashtags = *in.Hashtags
	}

	if err := s.repo.Update(ctx, video); err != nil {
		return nil, fmt.Errorf("failed updating video #%s: %w", in.ID, err)
	}

	s.invalidateCache(ctx, video)

	logger.Infof(ctx, "updated video #%s", video.ID)
	return video, nil
}

func (s *videoUpdaterSrv) invalidateCache(ctx context.Context, video *model.Video) {
	if err := s.cache.DeleteVideoDetails(ctx, video.ID); err != nil {
		logger.Warnf(ctx, "failed deleting video #%s details from cache: %v", video.ID, err)
	}
	if err := s.cache.DeleteEtagVideoDetails(ctx, video.ID); err != nil {
		logger.Warnf(ctx, "failed deleting video #%s etag from cache: %v", video.ID, err)
	}
}
