package mock

import (
	"context"
	"time"

	"github.com/avassart/reels-ms-go/internal/model"
	"github.com/avassart/reels-ms-go/internal/port"

	"github.com/avassart/reels-ms-go/internal/db"
)

// MockVideoRepo implements repository operations for tests.
type MockVideoRepo struct {
	VideoRecord *model.Video

	GetErr    error
	CreateErr error
	UpdateErr error
	// UpdateErrOnce fails only the first Update call, then clears itself.
	UpdateErrOnce error
	ListErr   error
	ListOut   []*model.Video

	ListRenderedErr error
	ListRenderedOut []*model.Video

	ListDueErr error
	ListDueOut []*model.Video
	ListDueNow time.Time

	ListFailedErr error
	ListFailedOut []*model.Video

	GetCalled          bool
	GetID              db.UUID
	Created            *model.Video
	Updated            []*model.Video
	ListCalled         bool
	ListFilter         port.ListVideosFilter
	ListRenderedCalled bool
	ListRenderedLimit  int
	ListDueCalled      bool
	ListFailedCalled   bool
	ListFailedLimit    int
}

func (m *MockVideoRepo) GetByID(ctx context.Context, id db.UUID) (*model.Video, error) {
	m.GetCalled = true
	m.GetID = id
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.VideoRecord, nil
}

func (m *MockVideoRepo) Create(ctx context.Context, video *model.Video) error {
	m.Created = video
	return m.CreateErr
}

func (m *MockVideoRepo) Update(ctx context.Context, video *model.Video) error {
	m.Updated = append(m.Updated, video)
	if m.UpdateErrOnce != nil {
		err := m.UpdateErrOnce
		m.UpdateErrOnce = nil
		return err
	}
	return m.UpdateErr
}

func (m *MockVideoRepo) List(ctx context.Context, filter port.ListVideosFilter) ([]*model.Video, error) {
	m.ListCalled = true
	m.ListFilter = filter
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.ListOut, nil
}

func (m *MockVideoRepo) ListRenderedUnscheduled(ctx context.Context, limit int) ([]*model.Video, error) {
	m.ListRenderedCalled = true
	m.ListRenderedLimit = limit
	if m.ListRenderedErr != nil {
		return nil, m.ListRenderedErr
	}
	return m.ListRenderedOut, nil
}

func (m *MockVideoRepo) ListScheduledDue(ctx context.Context, now time.Time, limit int) ([]*model.Video, error) {
	m.ListDueCalled = true
	m.ListDueNow = now
	if m.ListDueErr != nil {
		return nil, m.ListDueErr
	}
	return m.ListDueOut, nil
}

func (m *MockVideoRepo) ListFailed(ctx context.Context, limit int) ([]*model.Video, error) {
	m.ListFailedCalled = true
	m.ListFailedLimit = limit
	if m.ListFailedErr != nil {
		return nil, m.ListFailedErr
	}
	return m.ListFailedOut, nil
}
