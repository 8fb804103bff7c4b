package mock

import (
	"context"

	"github.com/avassart/reels-ms-go/internal/db"
	"github.com/avassart/reels-ms-go/internal/model"
	"github.com/avassart/reels-ms-go/internal/port"
)

// MockDispatcher implements task dispatching for tests.
type MockDispatcher struct {
	RenderCalled bool
	RenderIDs    []db.UUID
	RenderJobID  string
	RenderErr    error
}

func (m *MockDispatcher) EnqueueRenderVideo(ctx context.Context, id db.UUID, compositionID string, props model.Props) (string, error) {
	m.RenderCalled = true
	m.RenderIDs = append(m.RenderIDs, id)
	if m.RenderErr != nil {
		return "", m.RenderErr
	}
	if m.RenderJobID != "" {
		return m.RenderJobID, nil
	}
	return id.String(), nil
}

// MockStatsProvider implements queue stats reading for tests.
type MockStatsProvider struct {
	StatsOut port.QueueStats
	StatsErr error

	StatsCalled bool
}

func (m *MockStatsProvider) QueueStats(ctx context.Context) (port.QueueStats, error) {
	m.StatsCalled = true
	if m.StatsErr != nil {
		return port.QueueStats{}, m.StatsErr
	}
	return m.StatsOut, nil
}
