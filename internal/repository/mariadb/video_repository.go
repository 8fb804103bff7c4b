package mariadb

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/avassart/reels-ms-go/internal/db"
	"github.com/avassart/reels-ms-go/internal/model"
	"github.com/avassart/reels-ms-go/internal/port"
)

type VideoRepository struct {
	db *sql.DB
}

// compile-time check: *VideoRepository must satisfy port.VideoRepository
var _ port.VideoRepository = (*VideoRepository)(nil)

func NewVideoRepository(db *sql.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

const videoColumns = `id, composition_id, title, caption, hashtags, props, status, file_path, object_key, failure_message, scheduled_for, posted_at, instagram_media_id, created_at, updated_at`

func (r *VideoRepository) Create(ctx context.Context, video *model.Video) error {
	log.Printf("creating database record for video #%s, at status %q...", video.ID, video.Status)

	const query = `
      INSERT INTO videos
        (id, composition_id, title, caption, hashtags, props, status, file_path, object_key, failure_message, scheduled_for, posted_at, instagram_media_id)
      VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		video.ID, video.CompositionID, video.Title,
		video.Caption, video.Hashtags, video.Props,
		video.Status, video.FilePath, video.ObjectKey,
		video.FailureMessage, video.ScheduledFor,
		video.PostedAt, video.InstagramMediaID,
	)
	if err != nil {
		return err
	}

	return nil
}

func (r *VideoRepository) Update(ctx context.Context, video *model.Video) error {
	log.Printf("updating database record for video #%s, with status %q...", video.ID, video.Status)

	const query = `
      UPDATE videos
      SET
        composition_id     = ?,
        title              = ?,
        caption            = ?,
        hashtags           = ?,
        props              = ?,
        status             = ?,
        file_path          = ?,
        object_key         = ?,
        failure_message    = ?,
        scheduled_for      = ?,
        posted_at          = ?,
        instagram_media_id = ?
      WHERE id = ?
    `
	_, err := r.db.ExecContext(ctx, query,
		video.CompositionID,
		video.Title,
		video.Caption,
		video.Hashtags,
		video.Props,
		video.Status,
		video.FilePath,
		video.ObjectKey,
		video.FailureMessage,
		video.ScheduledFor,
		video.PostedAt,
		video.InstagramMediaID,
		video.ID, // WHERE clause
	)
	if err != nil {
		return err
	}

	return nil
}

func (r *VideoRepository) GetByID(ctx context.Context, ID db.UUID) (*model.Video, error) {
	log.Printf("fetching video #%s from the database...", ID)

	const query = `
      SELECT ` + videoColumns + `
      FROM videos
      WHERE id = ?
    `
	return scanVideo(r.db.QueryRowContext(ctx, query, ID))
}

func (r *VideoRepository) List(ctx context.Context, filter port.ListVideosFilter) ([]*model.Video, error) {
	query := `
      SELECT ` + videoColumns + `
      FROM videos
    `
	args := []any{}
	if filter.Status != nil {
		query += ` WHERE status = ?`
		args = append(args, *filter.Status)
	}
	query += ` ORDER BY created_at DESC LIMIT ?`
	args = append(args, filter.Limit)

	return r.queryVideos(ctx, query, args...)
}

func (r *VideoRepository) ListRenderedUnscheduled(ctx context.Context, limit int) ([]*model.Video, error) {
	const query = `
      SELECT ` + videoColumns + `
      FROM videos
      WHERE status = ? AND scheduled_for IS NULL
      ORDER BY created_at ASC
      LIMIT ?
    `
	return r.queryVideos(ctx, query, model.VideoStatusRendered, limit)
}

func (r *VideoRepository) ListScheduledDue(ctx context.Context, now time.Time, limit int) ([]*model.Video, error) {
	const query = `
      SELECT ` + videoColumns + `
      FROM videos
      WHERE status = ? AND scheduled_for <= ?
      ORDER BY scheduled_for ASC
      LIMIT ?
    `
	return r.queryVideos(ctx, query, model.VideoStatusScheduled, now, limit)
}

func (r *VideoRepository) ListFailed(ctx context.Context, limit int) ([]*model.Video, error) {
	const query = `
      SELECT ` + videoColumns + `
      FROM videos
      WHERE status = ?
      ORDER BY created_at DESC
      LIMIT ?
    `
	return r.queryVideos(ctx, query, model.VideoStatusFailed, limit)
}

func (r *VideoRepository) queryVideos(ctx context.Context, query string, args ...any) ([]*model.Video, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var videos []*model.Video
	for rows.Next() {
		video, err := scanVideo(rows)
		if err != nil {
			return nil, err
		}
		videos = append(videos, video)
	}
	return videos, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVideo(row rowScanner) (*model.Video, error) {
	var video model.Video
	if err := row.Scan(
		&video.ID, &video.CompositionID, &video.Title,
		&video.Caption, &video.Hashtags, &video.Props,
		&video.Status, &video.FilePath, &video.ObjectKey,
		&video.FailureMessage, &video.ScheduledFor,
		&video.PostedAt, &video.InstagramMediaID,
		&video.CreatedAt, &video.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &video, nil
}
