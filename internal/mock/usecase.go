package mock

import (
	"context"

	"github.com/avassart/reels-ms-go/internal/db"
	"github.com/avassart/reels-ms-go/internal/model"
	"github.com/avassart/reels-ms-go/internal/port"
)

// MockVideoGetter implements port.VideoGetter for tests.
type MockVideoGetter struct {
	Out    *model.Video
	Err    error
	Called bool
}

func (m *MockVideoGetter) GetVideo(ctx context.Context, id db.UUID) (*model.Video, error) {
	m.Called = true
	return m.Out, m.Err
}

// MockVideoUploader implements port.VideoUploader for tests.
type MockVideoUploader struct {
	Errs   map[string]error
	Called bool
	IDs    []db.UUID
}

func (m *MockVideoUploader) UploadVideo(ctx context.Context, id db.UUID) error {
	m.Called = true
	m.IDs = append(m.IDs, id)
	if m.Errs != nil {
		return m.Errs[id.String()]
	}
	return nil
}

// MockSettingsGetter implements port.SettingsGetter for tests.
type MockSettingsGetter struct {
	Out    *model.Settings
	Err    error
	Called bool
}

func (m *MockSettingsGetter) GetSettings(ctx context.Context) (*model.Settings, error) {
	m.Called = true
	return m.Out, m.Err
}

// MockRenderEngine implements port.RenderEngine for tests.
type MockRenderEngine struct {
	PathOut string
	Err     error

	Called        bool
	VideoID       string
	CompositionID string
	Props         model.Props
}

func (m *MockRenderEngine) Render(ctx context.Context, videoID, compositionID string, props model.Props) (string, error) {
	m.Called = true
	m.VideoID = videoID
	m.CompositionID = compositionID
	m.Props = props
	if m.Err != nil {
		return "", m.Err
	}
	return m.PathOut, nil
}

// MockHTTPRenderer implements port.HTTPRenderer for tests.
type MockHTTPRenderer struct {
	RawOut  []byte
	EtagOut string
	Err     error
	Called  bool
}

func (m *MockHTTPRenderer) RenderGetVideo(ctx context.Context, getter port.VideoGetter, id db.UUID) ([]byte, string, error) {
	m.Called = true
	if m.Err != nil {
		return nil, "", m.Err
	}
	return m.RawOut, m.EtagOut, nil
}
