package video

import (
	"context"
	"fmt"

	"github.com/avassart/reels-ms-go/internal/model"
	"github.com/avassart/reels-ms-go/internal/port"
)

const defaultListLimit = 50

type videoListerSrv struct {
	repo port.VideoRepository
}

var _ port.VideoLister = (*videoListerSrv)(nil)

// NewVideoLister constructs a VideoLister implementation.
func NewVideoLister(repo port.VideoRepository) port.VideoLister {
	return &videoListerSrv{repo}
}

func (s *videoListerSrv) ListVideos(ctx context.Context, in port.ListVideosInput) ([]*model.Video, error) {
	limit := in.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	videos, err := s.repo.List(ctx, port.ListVideosFilter{Status: in.Status, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("failed listing videos: %w", err)
	}
	return videos, nil
}
