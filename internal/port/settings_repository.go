package port

import (
	"context"

	"github.com/avassart/reels-ms-go/internal/model"
)

// SettingsRepository persists the singleton settings record.
type SettingsRepository interface {
	// Get returns the settings row, or sql.ErrNoRows when it was never created.
	Get(ctx context.Context) (*model.Settings, error)
	Create(ctx context.Context, settings *model.Settings) error
	Update(ctx context.Context, settings *model.Settings) error
}
