package port

import (
	"context"
	"time"

	"github.com/avassart/reels-ms-go/internal/db"
	"github.com/avassart/reels-ms-go/internal/model"
)

// ListVideosFilter narrows the List query. A nil Status means any status.
type ListVideosFilter struct {
	Status *model.VideoStatus
	Limit  int
}

// VideoRepository defines persistence operations for videos.
type VideoRepository interface {
	Create(ctx context.Context, video *model.Video) error
	Update(ctx context.Context, video *model.Video) error
	GetByID(ctx context.Context, ID db.UUID) (*model.Video, error)
	// List returns videos newest first.
	List(ctx context.Context, filter ListVideosFilter) ([]*model.Video, error)
	// ListRenderedUnscheduled returns rendered videos with no posting slot yet,
	// oldest first.
	ListRenderedUnscheduled(ctx context.Context, limit int) ([]*model.Video, error)
	// ListScheduledDue returns scheduled videos whose slot has passed,
	// earliest slot first.
	ListScheduledDue(ctx context.Context, now time.Time, limit int) ([]*model.Video, error)
	// ListFailed returns failed videos, newest first.
	ListFailed(ctx context.Context, limit int) ([]*model.Video, error)
}
