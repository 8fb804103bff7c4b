package port

import (
	"context"

	"github.com/avassart/reels-ms-go/internal/db"
	"github.com/avassart/reels-ms-go/internal/model"
)

// TaskDispatcher enqueues asynchronous render jobs.
type TaskDispatcher interface {
	// EnqueueRenderVideo records a durable render job keyed by the video id and
	// returns the job id. Re-enqueueing a video whose job is still outstanding
	// is a no-op returning the existing job id.
	EnqueueRenderVideo(ctx context.Context, id db.UUID, compositionID string, props model.Props) (string, error)
}

// QueueStats is a point-in-time snapshot of the render queue counters.
type QueueStats struct {
	Waiting   int `json:"waiting"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
	Failed    int `json:"failed"`
}

// QueueStatsProvider reads aggregate render queue counters. The counts are
// eventually consistent with worker activity.
type QueueStatsProvider interface {
	QueueStats(ctx context.Context) (QueueStats, error)
}
