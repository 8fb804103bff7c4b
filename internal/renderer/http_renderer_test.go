package renderer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/avassart/reels-ms-go/internal/db"
	"github.com/avassart/reels-ms-go/internal/mock"
	"github.com/avassart/reels-ms-go/internal/model"
)

func TestRenderGetVideo_CacheHit(t *testing.T) {
	id := db.NewUUID()
	ca := &mock.Cache{VideoOut: []byte(`{"cached":true}`), EtagVideo: `"abcd1234"`}
	getter := &mock.MockVideoGetter{}
	r := NewHTTPRenderer(ca)

	raw, etag, err := r.RenderGetVideo(context.Background(), getter, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw) != `{"cached":true}` || etag != `"abcd1234"` {
		t.Errorf("unexpected output %s / %s", raw, etag)
	}
	if getter.Called {
		t.Error("use case should not run on a cache hit")
	}
}

func TestRenderGetVideo_CacheMissRunsUseCase(t *testing.T) {
	rec := &model.Video{ID: db.NewUUID(), Status: model.VideoStatusRendered}
	ca := &mock.Cache{}
	getter := &mock.MockVideoGetter{Out: rec}
	r := NewHTTPRenderer(ca)

	raw, etag, err := r.RenderGetVideo(context.Background(), getter, rec.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !getter.Called {
		t.Fatal("use case should run on a cache miss")
	}

	var decoded model.Video
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.ID != rec.ID {
		t.Errorf("expected id %s, got %s", rec.ID, decoded.ID)
	}
	if len(etag) < 2 || etag[0] != '"' || etag[len(etag)-1] != '"' {
		t.Errorf("etag should be quoted, got %q", etag)
	}
	if !ca.SetVideoCalled || !ca.SetEtagVideoCalled {
		t.Error("result should be cached")
	}
}

func TestRenderGetVideo_UseCaseError(t *testing.T) {
	ca := &mock.Cache{}
	getter := &mock.MockVideoGetter{Err: errors.New("not found")}
	r := NewHTTPRenderer(ca)

	if _, _, err := r.RenderGetVideo(context.Background(), getter, db.NewUUID()); err == nil {
		t.Fatal("expected error, got nil")
	}
	if ca.SetVideoCalled {
		t.Error("nothing should be cached on error")
	}
}
