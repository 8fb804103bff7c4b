package task

import (
	"context"

	"github.com/avassart/reels-ms-go/internal/port"
	"github.com/hibiken/asynq"
)

// StatsReader exposes aggregate render queue counters through the asynq
// inspector. Counts are eventually consistent with worker activity.
type StatsReader struct {
	inspector *asynq.Inspector
}

// compile-time check
var _ port.QueueStatsProvider = (*StatsReader)(nil)

func NewStatsReader(addr, password string) *StatsReader {
	return &StatsReader{
		inspector: asynq.NewInspector(asynq.RedisClientOpt{Addr: addr, Password: password}),
	}
}

func (s *StatsReader) QueueStats(ctx context.Context) (port.QueueStats, error) {
	info, err := s.inspector.GetQueueInfo(QueueRender)
	if err != nil {
		return port.QueueStats{}, err
	}

	// Jobs sitting in retry or scheduled state are still waiting for a worker.
	return port.QueueStats{
		Waiting:   info.Pending + info.Scheduled + info.Retry,
		Active:    info.Active,
		Completed: info.Completed,
		Failed:    info.Archived,
	}, nil
}
