package api_context

import (
	"context"

	"github.com/avassart/reels-ms-go/internal/db"
)

type ctxKey string

const (
	VideoIDKey    ctxKey = "videoID"
	AuthUserIDKey ctxKey = "authUserID"
)

func VideoIDFromContext(ctx context.Context) (db.UUID, bool) {
	id, ok := ctx.Value(VideoIDKey).(db.UUID)
	return id, ok
}

func AuthUserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(AuthUserIDKey).(string)
	return id, ok
}
