package renderer

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/crc32"
	"time"

	"github.com/avassart/reels-ms-go/internal/db"
	"github.com/avassart/reels-ms-go/internal/port"
)

// cacheTTL bounds staleness for video details; statuses move through the
// pipeline, so entries are additionally invalidated by the mutating use cases.
const cacheTTL = time.Minute

type httpRenderer struct {
	cache port.Cache
}

// compile-time check: *httpRenderer must satisfy port.HTTPRenderer
var _ port.HTTPRenderer = (*httpRenderer)(nil)

// NewHTTPRenderer creates a new HTTPRenderer implementation.
func NewHTTPRenderer(cache port.Cache) port.HTTPRenderer {
	return &httpRenderer{cache: cache}
}

// RenderGetVideo fetches video details either from cache or from the wrapped
// use case. It returns the JSON encoded output and a quoted ETag string.
func (r *httpRenderer) RenderGetVideo(ctx context.Context, getter port.VideoGetter, id db.UUID) ([]byte, string, error) {
	raw, err := r.cache.GetVideoDetails(ctx, id)
	etag, errEtag := r.cache.GetEtagVideoDetails(ctx, id)
	if err == nil && errEtag == nil && raw != nil && etag != "" {
		return raw, etag, nil
	}

	video, err := getter.GetVideo(ctx, id)
	if err != nil {
		return nil, "", err
	}

	raw, err = json.Marshal(video)
	if err != nil {
		return nil, "", fmt.Errorf("json marshal: %w", err)
	}

	etag = fmt.Sprintf("\"%08x\"", crc32.ChecksumIEEE(raw))
	validUntil := time.Now().Add(cacheTTL)
	r.cache.SetVideoDetails(ctx, id, raw, validUntil)
	r.cache.SetEtagVideoDetails(ctx, id, etag, validUntil)

	return raw, etag, nil
}
