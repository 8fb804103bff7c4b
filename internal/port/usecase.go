package port

import (
	"context"
	"time"

	"github.com/avassart/reels-ms-go/internal/db"
	"github.com/avassart/reels-ms-go/internal/model"
)

type UUIDGen func() db.UUID

// NowFunc supplies the current time; injected so schedulers are testable.
type NowFunc func() time.Time

// VideoCreator persists a new pending video and enqueues its render job.
type VideoCreator interface {
	CreateVideo(ctx context.Context, in CreateVideoInput) (*model.Video, error)
}
type CreateVideoInput struct {
	CompositionID string
	Title         string
	Caption       string
	Hashtags      string
	Props         model.Props
}

// VideoGetter retrieves one video record.
type VideoGetter interface {
	GetVideo(ctx context.Context, id db.UUID) (*model.Video, error)
}

// VideoLister retrieves video records, newest first.
type VideoLister interface {
	ListVideos(ctx context.Context, in ListVideosInput) ([]*model.Video, error)
}
type ListVideosInput struct {
	Status *model.VideoStatus
	Limit  int
}

// VideoUpdater applies a partial operator-facing update to a video.
type VideoUpdater interface {
	UpdateVideo(ctx context.Context, in UpdateVideoInput) (*model.Video, error)
}
type UpdateVideoInput struct {
	ID       db.UUID
	Title    *string
	Caption  *string
	Hashtags *string
}

// VideoRenderer runs one render job end to end: status transitions, the
// engine call and artifact upload.
type VideoRenderer interface {
	RenderVideo(ctx context.Context, id db.UUID) error
}

// BatchScheduler assigns posting slots to rendered, unscheduled videos.
// It returns how many videos were scheduled.
type BatchScheduler interface {
	ScheduleBatch(ctx context.Context) (int, error)
}

// DueDispatcher publishes the earliest-due scheduled video, at most one per
// invocation.
type DueDispatcher interface {
	DispatchDue(ctx context.Context) error
}

// VideoUploader drives a single video through the platform publish protocol.
type VideoUploader interface {
	UploadVideo(ctx context.Context, id db.UUID) error
}

// FailedRetrier re-runs the upload flow for recently failed videos.
type FailedRetrier interface {
	RetryFailed(ctx context.Context) error
}

// SettingsGetter reads the settings singleton, creating it with defaults when
// absent.
type SettingsGetter interface {
	GetSettings(ctx context.Context) (*model.Settings, error)
}

// SettingsUpdater replaces the settings singleton wholesale.
type SettingsUpdater interface {
	UpdateSettings(ctx context.Context, in UpdateSettingsInput) (*model.Settings, error)
}
type UpdateSettingsInput struct {
	InstagramAccessToken string
	InstagramAccountID   string
	PostingTimes         string
	Enabled              bool
}
