package video

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avassart/reels-ms-go/internal/db"
	"github.com/avassart/reels-ms-go/internal/mock"
	"github.com/avassart/reels-ms-go/internal/model"
)

func TestDispatchDue_UploadsEarliest(t *testing.T) {
	earliest := &model.Video{ID: db.NewUUID(), Status: model.VideoStatusScheduled}
	repo := &mock.MockVideoRepo{ListDueOut: []*model.Video{earliest}}
	uploader := &mock.MockVideoUploader{}
	now := time.Date(2025, 6, 15, 14, 0, 30, 0, time.UTC)
	svc := NewDueDispatcher(repo, uploader, fixedNow(now))

	if err := svc.DispatchDue(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !repo.ListDueCalled || !repo.ListDueNow.Equal(now) {
		t.Error("due query should use the injected clock")
	}
	if len(uploader.IDs) != 1 || uploader.IDs[0] != earliest.ID {
		t.Errorf("expected one upload of %s, got %v", earliest.ID, uploader.IDs)
	}
}

func TestDispatchDue_NothingDue(t *testing.T) {
	repo := &mock.MockVideoRepo{}
	uploader := &mock.MockVideoUploader{}
	svc := NewDueDispatcher(repo, uploader, time.Now)

	if err := svc.DispatchDue(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if uploader.Called {
		t.Error("nothing should be uploaded")
	}
}

func TestDispatchDue_SurfacesUploadError(t *testing.T) {
	rec := &model.Video{ID: db.NewUUID(), Status: model.VideoStatusScheduled}
	repo := &mock.MockVideoRepo{ListDueOut: []*model.Video{rec}}
	uploader := &mock.MockVideoUploader{Errs: map[string]error{rec.ID.String(): errors.New("publish failed")}}
	svc := NewDueDispatcher(repo, uploader, time.Now)

	if err := svc.DispatchDue(context.Background()); err == nil {
		t.Fatal("expected error, got nil")
	}
}
