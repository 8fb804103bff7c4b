package mock

import (
	"context"

	"github.com/avassart/reels-ms-go/internal/port"
)

// PlatformAPI implements the raw platform protocol calls for tests.
type PlatformAPI struct {
	ContainerIDOut string
	StatusOut      port.ContainerStatus
	// StatusSeq overrides StatusOut when non-empty; one entry per check call.
	StatusSeq   []port.ContainerStatus
	MediaIDOut  string
	InsightsOut []port.MediaInsight

	CreateErr   error
	CheckErr    error
	PublishErr  error
	ValidateErr error
	InsightsErr error

	CreateCalled   bool
	CheckCalls     int
	PublishCalled  bool
	ValidateCalled bool
	InsightsCalled bool

	VideoURL    string
	Caption     string
	ContainerID string
}

func (m *PlatformAPI) CreateMediaContainer(ctx context.Context, videoURL, caption string) (string, error) {
	m.CreateCalled = true
	m.VideoURL = videoURL
	m.Caption = caption
	if m.CreateErr != nil {
		return "", m.CreateErr
	}
	if m.ContainerIDOut != "" {
		return m.ContainerIDOut, nil
	}
	return "container-1", nil
}

func (m *PlatformAPI) CheckContainerStatus(ctx context.Context, containerID string) (port.ContainerStatus, error) {
	m.ContainerID = containerID
	m.CheckCalls++
	if m.CheckErr != nil {
		return "", m.CheckErr
	}
	if len(m.StatusSeq) > 0 {
		idx := m.CheckCalls - 1
		if idx >= len(m.StatusSeq) {
			idx = len(m.StatusSeq) - 1
		}
		return m.StatusSeq[idx], nil
	}
	return m.StatusOut, nil
}

func (m *PlatformAPI) PublishMedia(ctx context.Context, containerID string) (string, error) {
	m.PublishCalled = true
	m.ContainerID = containerID
	if m.PublishErr != nil {
		return "", m.PublishErr
	}
	if m.MediaIDOut != "" {
		return m.MediaIDOut, nil
	}
	return "media-1", nil
}

func (m *PlatformAPI) ValidateToken(ctx context.Context) error {
	m.ValidateCalled = true
	return m.ValidateErr
}

func (m *PlatformAPI) GetMediaInsights(ctx context.Context, mediaID string) ([]port.MediaInsight, error) {
	m.InsightsCalled = true
	if m.InsightsErr != nil {
		return nil, m.InsightsErr
	}
	return m.InsightsOut, nil
}

// Publisher implements the publish protocol driver for tests.
type Publisher struct {
	MediaIDOut string
	Err        error

	Called   bool
	VideoURL string
	Caption  string
}

func (m *Publisher) PublishVideo(ctx context.Context, videoURL, caption string) (string, error) {
	m.Called = true
	m.VideoURL = videoURL
	m.Caption = caption
	if m.Err != nil {
		return "", m.Err
	}
	if m.MediaIDOut != "" {
		return m.MediaIDOut, nil
	}
	return "media-1", nil
}
