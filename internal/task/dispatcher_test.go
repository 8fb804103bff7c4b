package task

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/avassart/reels-ms-go/internal/db"
	"github.com/avassart/reels-ms-go/internal/model"
	"github.com/hibiken/asynq"
)

func TestEnqueueRenderVideo_CoalescesDuplicates(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis.Run: %v", err)
	}
	defer mr.Close()

	d := NewDispatcher(mr.Addr(), "")
	id := db.NewUUID()

	first, err := d.EnqueueRenderVideo(context.Background(), id, "POV", model.Props{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != id.String() {
		t.Errorf("job id should be the video id, got %q", first)
	}

	// a second enqueue for the same video must coalesce onto the
	// outstanding job instead of duplicating it
	second, err := d.EnqueueRenderVideo(context.Background(), id, "POV", model.Props{})
	if err != nil {
		t.Fatalf("duplicate enqueue must not error: %v", err)
	}
	if second != first {
		t.Errorf("expected job id %q, got %q", first, second)
	}
}

func TestRenderRetryDelay_ExponentialFromTenSeconds(t *testing.T) {
	task, err := NewRenderVideoTask("vid-1", "POV", model.Props{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		n    int
		want time.Duration
	}{
		{0, 10 * time.Second},
		{1, 20 * time.Second},
		{2, 40 * time.Second},
	}
	for _, c := range cases {
		if got := RenderRetryDelay(c.n, nil, task); got != c.want {
			t.Errorf("attempt %d: got %v, want %v", c.n, got, c.want)
		}
	}
}

func TestRenderRetryDelay_OtherTaskTypesUseDefault(t *testing.T) {
	other := asynq.NewTask("video:cleanup", nil)
	if got := RenderRetryDelay(0, nil, other); got == 10*time.Second {
		t.Errorf("non-render tasks should not use the render backoff, got %v", got)
	}
}

func TestParseRenderVideoPayload_Roundtrip(t *testing.T) {
	task, err := NewRenderVideoTask("vid-1", "DidYouKnow", model.Props{"stat": "80%"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.Type() != TypeRenderVideo {
		t.Errorf("unexpected task type %q", task.Type())
	}

	p, err := ParseRenderVideoPayload(task)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.VideoID != "vid-1" || p.CompositionID != "DidYouKnow" {
		t.Errorf("payload lost fields: %+v", p)
	}
	if p.Props["stat"] != "80%" {
		t.Errorf("props lost: %+v", p.Props)
	}
}

func TestParseRenderVideoPayload_Garbage(t *testing.T) {
	if _, err := ParseRenderVideoPayload(asynq.NewTask(TypeRenderVideo, []byte("{nope"))); err == nil {
		t.Fatal("expected error, got nil")
	}
}
