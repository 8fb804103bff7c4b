package worker

import (
	"context"
	"log"

	"github.com/avassart/reels-ms-go/internal/db"
	"github.com/avassart/reels-ms-go/internal/port"
	"github.com/avassart/reels-ms-go/internal/task"
	"github.com/google/uuid"
)

// RenderVideoHandler handles a render-video task.
// It converts the incoming task payload to the input expected by
// the VideoRenderer service and delegates the call.
func RenderVideoHandler(ctx context.Context, p task.RenderVideoPayload, svc port.VideoRenderer) error {
	id, err := uuid.Parse(p.VideoID)
	if err != nil {
		log.Printf("❌  Invalid video ID %q: %v", p.VideoID, err)
		return err
	}

	if err := svc.RenderVideo(ctx, db.UUID(id)); err != nil {
		log.Printf("❌  Failed to render video #%s: %v", id, err)
		return err
	}

	log.Printf("✅  Successfully rendered video #%s", id)
	return nil
}
