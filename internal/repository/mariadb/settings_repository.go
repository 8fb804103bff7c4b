package mariadb

import (
	"context"
	"database/sql"
	"log"

	"github.com/avassart/reels-ms-go/internal/model"
	"github.com/avassart/reels-ms-go/internal/port"
)

type SettingsRepository struct {
	db *sql.DB
}

// compile-time check: *SettingsRepository must satisfy port.SettingsRepository
var _ port.SettingsRepository = (*SettingsRepository)(nil)

func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

func (r *SettingsRepository) Get(ctx context.Context) (*model.Settings, error) {
	const query = `
      SELECT id, instagram_access_token, instagram_account_id, posting_times, enabled, created_at, updated_at
      FROM settings
      WHERE id = ?
    `
	row := r.db.QueryRowContext(ctx, query, model.SettingsID)
	var settings model.Settings
	if err := row.Scan(
		&settings.ID, &settings.InstagramAccessToken,
		&settings.InstagramAccountID, &settings.PostingTimes,
		&settings.Enabled, &settings.CreatedAt, &settings.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &settings, nil
}

func (r *SettingsRepository) Create(ctx context.Context, settings *model.Settings) error {
	log.Printf("creating settings record %q...", settings.ID)

	const query = `
      INSERT INTO settings
        (id, instagram_access_token, instagram_account_id, posting_times, enabled)
      VALUES (?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		settings.ID, settings.InstagramAccessToken,
		settings.InstagramAccountID, settings.PostingTimes,
		settings.Enabled,
	)
	if err != nil {
		return err
	}

	return nil
}

func (r *SettingsRepository) Update(ctx context.Context, settings *model.Settings) error {
	log.Printf("updating settings record %q...", settings.ID)

	const query = `
      UPDATE settings
      SET
        instagram_access_token = ?,
        instagram_account_id   = ?,
        posting_times          = ?,
        enabled                = ?
      WHERE id = ?
    `
	_, err := r.db.ExecContext(ctx, query,
		settings.InstagramAccessToken,
		settings.InstagramAccountID,
		settings.PostingTimes,
		settings.Enabled,
		settings.ID,
	)
	if err != nil {
		return err
	}

	return nil
}
