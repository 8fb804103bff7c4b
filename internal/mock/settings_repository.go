package mock

import (
	"context"

	"github.com/avassart/reels-ms-go/internal/model"
)

// MockSettingsRepo implements the settings repository for tests.
type MockSettingsRepo struct {
	SettingsRecord *model.Settings

	GetErr    error
	CreateErr error
	UpdateErr error

	GetCalled bool
	Created   *model.Settings
	Updated   *model.Settings
}

func (m *MockSettingsRepo) Get(ctx context.Context) (*model.Settings, error) {
	m.GetCalled = true
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.SettingsRecord, nil
}

func (m *MockSettingsRepo) Create(ctx context.Context, settings *model.Settings) error {
	m.Created = settings
	return m.CreateErr
}

func (m *MockSettingsRepo) Update(ctx context.Context, settings *model.Settings) error {
	m.Updated = settings
	return m.UpdateErr
}
