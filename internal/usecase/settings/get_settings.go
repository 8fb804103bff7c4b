package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avassart/reels-ms-go/internal/logger"
	"github.com/avassart/reels-ms-go/internal/model"
	"github.com/avassart/reels-ms-go/internal/port"
)

type settingsGetterSrv struct {
	repo port.SettingsRepository
}

var _ port.SettingsGetter = (*settingsGetterSrv)(nil)

// NewSettingsGetter constructs a SettingsGetter implementation.
func NewSettingsGetter(repo port.SettingsRepository) port.SettingsGetter {
	return &settingsGetterSrv{repo}
}

// GetSettings returns the singleton, lazily creating it with defaults the
// first time it is asked for.
func (s *settingsGetterSrv) GetSettings(ctx context.Context) (*model.Settings, error) {
	settings, err := s.repo.Get(ctx)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed getting settings: %w", err)
	}

	settings = &model.Settings{
		ID:           model.SettingsID,
		PostingTimes: model.DefaultPostingTimes,
		Enabled:      false,
	}
	if err := s.repo.Create(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed creating default settings: %w", err)
	}
	logger.Info(ctx, "created default settings")
	return settings, nil
}
