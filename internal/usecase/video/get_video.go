package video

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avassart/reels-ms-go/internal/db"
	"github.com/avassart/reels-ms-go/internal/model"
	"github.com/avassart/reels-ms-go/internal/port"
)

type videoGetterSrv struct {
	repo port.VideoRepository
}

var _ port.VideoGetter = (*videoGetterSrv)(nil)

// NewVideoGetter constructs a VideoGetter implementation.
func NewVideoGetter(repo port.VideoRepository) port.VideoGetter {
	return &videoGetterSrv{repo}
}

func (s *videoGetterSrv) GetVideo(ctx context.Context, id db.UUID) (*model.Video, error) {
	video, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVideoNotFound
		}
		return nil, fmt.Errorf("failed getting video #%s: %w", id, err)
	}
	return video, nil
}
