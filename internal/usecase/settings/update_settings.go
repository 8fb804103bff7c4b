package settings

import (
	"context"
	"fmt"

	"github.com/avassart/reels-ms-go/internal/logger"
	"github.com/avassart/reels-ms-go/internal/model"
	"github.com/avassart/reels-ms-go/internal/port"
)

type settingsUpdaterSrv struct {
	getter port.SettingsGetter
	repo   port.SettingsRepository
}

var _ port.SettingsUpdater = (*settingsUpdaterSrv)(nil)

// NewSettingsUpdater constructs a SettingsUpdater implementation.
func NewSettingsUpdater(getter port.SettingsGetter, repo port.SettingsRepository) port.SettingsUpdater {
	return &settingsUpdaterSrv{getter, repo}
}

// UpdateSettings replaces the singleton wholesale. The posting times list is
// validated before anything is written.
func (s *settingsUpdaterSrv) UpdateSettings(ctx context.Context, in port.UpdateSettingsInput) (*model.Settings, error) {
	if _, err := model.ParsePostingTimes(in.PostingTimes); err != nil {
		return nil, err
	}

	settings, err := s.getter.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	settings.InstagramAccessToken = in.InstagramAccessToken
	settings.InstagramAccountID = in.InstagramAccountID
	settings.PostingTimes = in.PostingTimes
	settings.Enabled = in.Enabled

	if err := s.repo.Update(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed updating settings: %w", err)
	}

	logger.Info(ctx, "updated settings")
	return settings, nil
}
