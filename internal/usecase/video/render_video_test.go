package video

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/avassart/reels-ms-go/internal/db"
	"github.com/avassart/reels-ms-go/internal/mock"
	"github.com/avassart/reels-ms-go/internal/model"
)

func tmpRenderOutput(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "out.mp4")
	if err := os.WriteFile(path, []byte("fake mp4"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRenderVideo_Success(t *testing.T) {
	rec := &model.Video{ID: db.NewUUID(), CompositionID: "POV", Status: model.VideoStatusPending}
	repo := &mock.MockVideoRepo{VideoRecord: rec}
	engine := &mock.MockRenderEngine{PathOut: tmpRenderOutput(t)}
	strg := &mock.Storage{}
	ca := &mock.Cache{}
	svc := NewVideoRenderer(repo, engine, strg, ca, "videos")

	if err := svc.RenderVideo(context.Background(), rec.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Status != model.VideoStatusRendered {
		t.Errorf("expected rendered, got %q", rec.Status)
	}
	if !engine.Called || engine.CompositionID != "POV" {
		t.Error("engine should be called with the composition id")
	}
	if !strg.UploadCalled {
		t.Fatal("artifact should be uploaded")
	}
	wantKey := rec.ID.String() + ".mp4"
	if strg.ObjectKey != wantKey {
		t.Errorf("expected object key %q, got %q", wantKey, strg.ObjectKey)
	}
	if rec.ObjectKey == nil || *rec.ObjectKey != wantKey {
		t.Errorf("object key not recorded on the video: %v", rec.ObjectKey)
	}
	// the scratch file is deleted after upload, so the stored path must
	// point at the bucket, never the local render output
	wantPath := "videos/" + wantKey
	if rec.FilePath == nil || *rec.FilePath != wantPath {
		t.Errorf("expected file path %q, got %v", wantPath, rec.FilePath)
	}
	if rec.FilePath != nil && *rec.FilePath == engine.PathOut {
		t.Error("file path must not reference the deleted scratch file")
	}
	// two persisted transitions: rendering, then rendered
	if len(repo.Updated) != 2 {
		t.Errorf("expected 2 updates, got %d", len(repo.Updated))
	}
}

func TestRenderVideo_AlreadyRendered(t *testing.T) {
	rec := &model.Video{ID: db.NewUUID(), Status: model.VideoStatusRendered}
	repo := &mock.MockVideoRepo{VideoRecord: rec}
	engine := &mock.MockRenderEngine{}
	svc := NewVideoRenderer(repo, engine, &mock.Storage{}, &mock.Cache{}, "videos")

	if err := svc.RenderVideo(context.Background(), rec.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if engine.Called {
		t.Error("a second delivery must not re-render")
	}
	if len(repo.Updated) != 0 {
		t.Error("no update should be persisted")
	}
}

func TestRenderVideo_RetriesAfterFailure(t *testing.T) {
	rec := &model.Video{ID: db.NewUUID(), Status: model.VideoStatusFailed}
	repo := &mock.MockVideoRepo{VideoRecord: rec}
	engine := &mock.MockRenderEngine{PathOut: tmpRenderOutput(t)}
	svc := NewVideoRenderer(repo, engine, &mock.Storage{}, &mock.Cache{}, "videos")

	if err := svc.RenderVideo(context.Background(), rec.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Status != model.VideoStatusRendered {
		t.Errorf("a failed video should be renderable again, got %q", rec.Status)
	}
}

func TestRenderVideo_EngineError(t *testing.T) {
	rec := &model.Video{ID: db.NewUUID(), Status: model.VideoStatusPending}
	repo := &mock.MockVideoRepo{VideoRecord: rec}
	engine := &mock.MockRenderEngine{Err: errors.New("remotion crashed")}
	svc := NewVideoRenderer(repo, engine, &mock.Storage{}, &mock.Cache{}, "videos")

	err := svc.RenderVideo(context.Background(), rec.ID)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if rec.Status != model.VideoStatusFailed {
		t.Errorf("expected failed, got %q", rec.Status)
	}
	if rec.FailureMessage == nil {
		t.Error("failure message should be recorded")
	}
}

func TestRenderVideo_UploadError(t *testing.T) {
	rec := &model.Video{ID: db.NewUUID(), Status: model.VideoStatusPending}
	repo := &mock.MockVideoRepo{VideoRecord: rec}
	engine := &mock.MockRenderEngine{PathOut: tmpRenderOutput(t)}
	strg := &mock.Storage{UploadErr: errors.New("minio down")}
	svc := NewVideoRenderer(repo, engine, strg, &mock.Cache{}, "videos")

	err := svc.RenderVideo(context.Background(), rec.ID)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if rec.Status != model.VideoStatusFailed {
		t.Errorf("expected failed, got %q", rec.Status)
	}
}

func TestRenderVideo_NotFound(t *testing.T) {
	repo := &mock.MockVideoRepo{GetErr: sql.ErrNoRows}
	svc := NewVideoRenderer(repo, &mock.MockRenderEngine{}, &mock.Storage{}, &mock.Cache{}, "videos")

	err := svc.RenderVideo(context.Background(), db.NewUUID())
	if !errors.Is(err, ErrVideoNotFound) {
		t.Fatalf("expected ErrVideoNotFound, got %v", err)
	}
}
