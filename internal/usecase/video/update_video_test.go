package video

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/avassart/reels-ms-go/internal/db"
	"github.com/avassart/reels-ms-go/internal/mock"
	"github.com/avassart/reels-ms-go/internal/model"
	"github.com/avassart/reels-ms-go/internal/port"
)

func strPtr(s string) *string { return &s }

func TestUpdateVideo_PartialFields(t *testing.T) {
	rec := &model.Video{ID: db.NewUUID(), Title: "old", Caption: "keep me", Hashtags: "#old"}
	repo := &mock.MockVideoRepo{VideoRecord: rec}
	ca := &mock.Cache{}
	svc := NewVideoUpdater(repo, ca)

	out, err := svc.UpdateVideo(context.Background(), port.UpdateVideoInput{
		ID:       rec.ID,
		Title:    strPtr("new title"),
		Hashtags: strPtr("#new"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Title != "new title" || out.Hashtags != "#new" {
		t.Errorf("fields not applied: %+v", out)
	}
	if out.Caption != "keep me" {
		t.Errorf("nil field should be untouched, got %q", out.Caption)
	}
	if len(repo.Updated) != 1 {
		t.Fatalf("expected one update, got %d", len(repo.Updated))
	}
	if !ca.DelVideoCalled || !ca.DelEtagVideoCalled {
		t.Error("cache should be invalidated after an update")
	}
}

func TestUpdateVideo_NotFound(t *testing.T) {
	repo := &mock.MockVideoRepo{GetErr: sql.ErrNoRows}
	svc := NewVideoUpdater(repo, &mock.Cache{})

	_, err := svc.UpdateVideo(context.Background(), port.UpdateVideoInput{ID: db.NewUUID()})
	if !errors.Is(err, ErrVideoNotFound) {
		t.Fatalf("expected ErrVideoNotFound, got %v", err)
	}
}

func TestUpdateVideo_UpdateError(t *testing.T) {
	rec := &model.Video{ID: db.NewUUID()}
	repo := &mock.MockVideoRepo{VideoRecord: rec, UpdateErr: errors.New("db fail")}
	ca := &mock.Cache{}
	svc := NewVideoUpdater(repo, ca)

	_, err := svc.UpdateVideo(context.Background(), port.UpdateVideoInput{ID: rec.ID})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if ca.DelVideoCalled {
		t.Error("cache should not be touched when the update fails")
	}
}
