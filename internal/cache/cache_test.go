package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/avassart/reels-ms-go/internal/db"
	"github.com/redis/go-redis/v9"
)

func makeTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	// spin up in-memory Redis
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis.Run: %v", err)
	}
	t.Cleanup(mr.Close)
	// point the real client at it
	rdb := redis.NewClient(&redis.Options{
		Addr:     mr.Addr(),
		Password: "",
		DB:       0,
	})
	return &Cache{client: rdb}, mr
}

func TestGetSetDeleteVideoDetails(t *testing.T) {
	c, mr := makeTestCache(t)
	ctx := context.Background()

	id := db.NewUUID()
	payload := []byte(`{"id":"` + id.String() + `","status":"rendered"}`)
	etag := `"cafef00d"`
	validUntil := time.Now().Add(time.Minute)

	// 1) Cache miss
	got, err := c.GetVideoDetails(ctx, id)
	if err != nil {
		t.Fatalf("GetVideoDetails miss: %v", err)
	}
	if got != nil {
		t.Errorf("GetVideoDetails miss: got %v; want nil", got)
	}
	gotEtag, err := c.GetEtagVideoDetails(ctx, id)
	if err != nil {
		t.Fatalf("GetEtagVideoDetails miss: %v", err)
	}
	if gotEtag != "" {
		t.Errorf("GetEtagVideoDetails miss: got %q; want empty", gotEtag)
	}

	// 2) Set + Get
	c.SetVideoDetails(ctx, id, payload, validUntil)
	c.SetEtagVideoDetails(ctx, id, etag, validUntil)

	if ttl := mr.TTL(detailsKey(id)); ttl <= 0 || ttl > time.Minute+time.Second {
		t.Errorf("redis TTL = %v; want ~1m", ttl)
	}
	if ttl := mr.TTL(etagKey(id)); ttl <= 0 || ttl > time.Minute+time.Second {
		t.Errorf("etag TTL = %v; want ~1m", ttl)
	}

	got, err = c.GetVideoDetails(ctx, id)
	if err != nil {
		t.Fatalf("GetVideoDetails hit: %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("GetVideoDetails hit: got %s; want %s", got, payload)
	}
	gotEtag, err = c.GetEtagVideoDetails(ctx, id)
	if err != nil {
		t.Fatalf("GetEtagVideoDetails hit: %v", err)
	}
	if gotEtag != etag {
		t.Errorf("GetEtagVideoDetails hit: got %q; want %q", gotEtag, etag)
	}

	// 3) Delete
	if err := c.DeleteVideoDetails(ctx, id); err != nil {
		t.Fatalf("DeleteVideoDetails: %v", err)
	}
	if err := c.DeleteEtagVideoDetails(ctx, id); err != nil {
		t.Fatalf("DeleteEtagVideoDetails: %v", err)
	}
	if mr.Exists(detailsKey(id)) || mr.Exists(etagKey(id)) {
		t.Error("keys should be gone after delete")
	}
}
