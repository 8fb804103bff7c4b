package task

import (
	"encoding/json"
	"fmt"

	"github.com/avassart/reels-ms-go/internal/model"
	"github.com/hibiken/asynq"
)

const TypeRenderVideo = "video:render"

// QueueRender is the queue all render jobs go through.
const QueueRender = "render"

// Render job retry policy: 3 attempts, exponential backoff starting at 10s.
const (
	RenderMaxRetry     = 2 // retries after the first attempt, 3 attempts total
	RenderBackoffStart = 10
)

type RenderVideoPayload struct {
	VideoID       string      `json:"video_id"`
	CompositionID string      `json:"composition_id"`
	Props         model.Props `json:"props"`
}

// NewRenderVideoTask creates an Asynq task for rendering a video by ID.
// The task id is the video id, so an outstanding job for the same video
// can never be enqueued twice.
func NewRenderVideoTask(videoID, compositionID string, props model.Props) (*asynq.Task, error) {
	p := RenderVideoPayload{VideoID: videoID, CompositionID: compositionID, Props: props}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("could not marshal render-video payload: %w", err)
	}
	return asynq.NewTask(TypeRenderVideo, data), nil
}

// ParseRenderVideoPayload parses the task payload to RenderVideoPayload.
func ParseRenderVideoPayload(t *asynq.Task) (RenderVideoPayload, error) {
	var p RenderVideoPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return RenderVideoPayload{}, fmt.Errorf("could not unmarshal payload: %w", err)
	}
	return p, nil
}
