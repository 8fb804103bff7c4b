package mariadb

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/avassart/reels-ms-go/internal/model"
)

func TestSettingsRepository_Get_Success(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewSettingsRepository(sqlDB)

	rows := sqlmock.NewRows([]string{
		"id", "instagram_access_token", "instagram_account_id", "posting_times", "enabled", "created_at", "updated_at",
	}).AddRow(model.SettingsID, "tok", "acct", "09:00,19:00", true, time.Now(), time.Now())

	mock.ExpectQuery(`(?s)SELECT .+ FROM settings.+WHERE id = \?`).
		WithArgs(model.SettingsID).
		WillReturnRows(rows)

	settings, err := repo.Get(context.Background())
	if err != nil {
		t.Fatalf("Get() returned unexpected error: %v", err)
	}
	if settings.PostingTimes != "09:00,19:00" || !settings.Enabled {
		t.Errorf("unexpected settings %+v", settings)
	}
}

func TestSettingsRepository_Get_NoRows(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewSettingsRepository(sqlDB)

	mock.ExpectQuery(`(?s)SELECT .+ FROM settings.+WHERE id = \?`).
		WithArgs(model.SettingsID).
		WillReturnError(sql.ErrNoRows)

	if _, err := repo.Get(context.Background()); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("expected sql.ErrNoRows, got %v", err)
	}
}

func TestSettingsRepository_Create_Success(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewSettingsRepository(sqlDB)

	s := &model.Settings{ID: model.SettingsID, PostingTimes: model.DefaultPostingTimes}

	mock.ExpectExec("INSERT INTO settings").
		WithArgs(s.ID, s.InstagramAccessToken, s.InstagramAccountID, s.PostingTimes, s.Enabled).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), s); err != nil {
		t.Errorf("Create() returned unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestSettingsRepository_Update_Success(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewSettingsRepository(sqlDB)

	s := &model.Settings{ID: model.SettingsID, InstagramAccessToken: "tok", InstagramAccountID: "acct", PostingTimes: "08:00", Enabled: true}

	mock.ExpectExec("UPDATE settings").
		WithArgs(s.InstagramAccessToken, s.InstagramAccountID, s.PostingTimes, s.Enabled, s.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Update(context.Background(), s); err != nil {
		t.Errorf("Update() returned unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}
