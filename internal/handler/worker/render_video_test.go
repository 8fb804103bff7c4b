package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/avassart/reels-ms-go/internal/db"
	"github.com/avassart/reels-ms-go/internal/task"
	"github.com/google/uuid"
)

type mockRenderer struct {
	Err    error
	Called bool
	ID     db.UUID
}

func (m *mockRenderer) RenderVideo(ctx context.Context, id db.UUID) error {
	m.Called = true
	m.ID = id
	return m.Err
}

func TestRenderVideoHandler_Success(t *testing.T) {
	id := uuid.New()
	svc := &mockRenderer{}

	err := RenderVideoHandler(context.Background(), task.RenderVideoPayload{VideoID: id.String()}, svc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !svc.Called {
		t.Fatal("expected renderer to be called")
	}
	if svc.ID != db.UUID(id) {
		t.Errorf("expected id %s, got %s", id, svc.ID)
	}
}

func TestRenderVideoHandler_InvalidID(t *testing.T) {
	svc := &mockRenderer{}

	err := RenderVideoHandler(context.Background(), task.RenderVideoPayload{VideoID: "not-a-uuid"}, svc)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if svc.Called {
		t.Fatal("renderer should not run for a malformed id")
	}
}

func TestRenderVideoHandler_ServiceError(t *testing.T) {
	svc := &mockRenderer{Err: errors.New("render engine exploded")}

	err := RenderVideoHandler(context.Background(), task.RenderVideoPayload{VideoID: uuid.NewString()}, svc)
	if err == nil || err.Error() != "render engine exploded" {
		t.Fatalf("expected service error to surface, got %v", err)
	}
}
