package task

import (
	"context"
	"errors"
	"time"

	"github.com/avassart/reels-ms-go/internal/db"
	"github.com/avassart/reels-ms-go/internal/logger"
	"github.com/avassart/reels-ms-go/internal/model"
	"github.com/avassart/reels-ms-go/internal/port"
	"github.com/hibiken/asynq"
)

type Dispatcher struct {
	client *asynq.Client
}

// compile-time check
var _ port.TaskDispatcher = (*Dispatcher)(nil)

func NewDispatcher(addr, password string) *Dispatcher {
	c := asynq.NewClient(asynq.RedisClientOpt{Addr: addr, Password: password})
	return &Dispatcher{client: c}
}

func (d *Dispatcher) EnqueueRenderVideo(ctx context.Context, id db.UUID, compositionID string, props model.Props) (string, error) {
	t, err := NewRenderVideoTask(id.String(), compositionID, props)
	if err != nil {
		return "", err
	}

	info, err := d.client.EnqueueContext(ctx, t,
		asynq.Queue(QueueRender),
		asynq.TaskID(id.String()),
		asynq.MaxRetry(RenderMaxRetry),
		asynq.Retention(24*time.Hour),
	)
	if err != nil {
		// A job for this video is already outstanding: coalesce instead of
		// duplicating, and hand back the existing job id.
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			logger.Infof(ctx, "render job for video #%s already queued, coalescing", id)
			return id.String(), nil
		}
		return "", err
	}

	logger.Infof(ctx, "added video #%s to render queue (job: %s)", id, info.ID)
	return info.ID, nil
}

// RenderRetryDelay implements the render queue backoff: 10s, 20s, 40s…
func RenderRetryDelay(n int, _ error, t *asynq.Task) time.Duration {
	if t.Type() != TypeRenderVideo {
		return asynq.DefaultRetryDelayFunc(n, nil, t)
	}
	return time.Duration(1<<n) * RenderBackoffStart * time.Second
}
