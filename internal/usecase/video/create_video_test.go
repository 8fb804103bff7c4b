package video

import (
	"context"
	"errors"
	"testing"

	"github.com/avassart/reels-ms-go/internal/db"
	"github.com/avassart/reels-ms-go/internal/mock"
	"github.com/avassart/reels-ms-go/internal/model"
	"github.com/avassart/reels-ms-go/internal/port"
)

func TestCreateVideo_Success(t *testing.T) {
	id := db.NewUUID()
	repo := &mock.MockVideoRepo{}
	dispatcher := &mock.MockDispatcher{}
	svc := NewVideoCreator(repo, dispatcher, func() db.UUID { return id })

	out, err := svc.CreateVideo(context.Background(), port.CreateVideoInput{
		CompositionID: "DidYouKnow",
		Title:         "my reel",
		Caption:       "watch this",
		Hashtags:      "#go",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ID != id {
		t.Errorf("expected id %s, got %s", id, out.ID)
	}
	if out.Status != model.VideoStatusPending {
		t.Errorf("expected pending, got %q", out.Status)
	}
	if repo.Created == nil {
		t.Fatal("expected Create to be called")
	}
	if !dispatcher.RenderCalled {
		t.Fatal("expected render job to be enqueued")
	}
	if dispatcher.RenderIDs[0] != id {
		t.Errorf("enqueued wrong id %s", dispatcher.RenderIDs[0])
	}
	if out.Props == nil {
		t.Error("props should default to an empty map")
	}
}

func TestCreateVideo_RepoError(t *testing.T) {
	repo := &mock.MockVideoRepo{CreateErr: errors.New("db fail")}
	dispatcher := &mock.MockDispatcher{}
	svc := NewVideoCreator(repo, dispatcher, db.NewUUID)

	_, err := svc.CreateVideo(context.Background(), port.CreateVideoInput{CompositionID: "POV", Title: "t"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if dispatcher.RenderCalled {
		t.Error("no job should be enqueued when persistence fails")
	}
}

func TestCreateVideo_EnqueueError(t *testing.T) {
	repo := &mock.MockVideoRepo{}
	dispatcher := &mock.MockDispatcher{RenderErr: errors.New("redis down")}
	svc := NewVideoCreator(repo, dispatcher, db.NewUUID)

	_, err := svc.CreateVideo(context.Background(), port.CreateVideoInput{CompositionID: "POV", Title: "t"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}
