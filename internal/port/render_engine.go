package port

import (
	"context"

	"github.com/avassart/reels-ms-go/internal/model"
)

// RenderEngine produces a video file for a named composition and a property
// bag. Implementations are opaque to the pipeline; they either return the
// path of the finished file or an error.
type RenderEngine interface {
	Render(ctx context.Context, videoID, compositionID string, props model.Props) (string, error)
}
