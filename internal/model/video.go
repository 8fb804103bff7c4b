package model

import (
	"fmt"
	"time"

	"github.com/avassart/reels-ms-go/internal/db"
)

type VideoStatus string

const (
	VideoStatusPending   VideoStatus = "pending"
	VideoStatusRendering VideoStatus = "rendering"
	VideoStatusRendered  VideoStatus = "rendered"
	VideoStatusScheduled VideoStatus = "scheduled"
	VideoStatusPosting   VideoStatus = "posting"
	VideoStatusPosted    VideoStatus = "posted"
	VideoStatusFailed    VideoStatus = "failed"
)

// legalTransitions is the closed set of status moves the pipeline may take.
// "failed -> scheduled" is the operator retry path; "failed -> rendering"
// covers queued render attempts re-running after an earlier failure.
var legalTransitions = map[VideoStatus][]VideoStatus{
	VideoStatusPending:   {VideoStatusRendering, VideoStatusFailed},
	VideoStatusRendering: {VideoStatusRendered, VideoStatusFailed},
	VideoStatusRendered:  {VideoStatusScheduled, VideoStatusFailed},
	VideoStatusScheduled: {VideoStatusPosting, VideoStatusFailed},
	VideoStatusPosting:   {VideoStatusPosted, VideoStatusFailed},
	VideoStatusPosted:    {},
	VideoStatusFailed:    {VideoStatusRendering, VideoStatusScheduled},
}

func (s VideoStatus) IsValid() bool {
	_, ok := legalTransitions[s]
	return ok
}

func (s VideoStatus) CanTransitionTo(next VideoStatus) bool {
	for _, allowed := range legalTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Video struct {
	ID               db.UUID     `json:"id"`
	CompositionID    string      `json:"composition_id"`
	Title            string      `json:"title"`
	Caption          string      `json:"caption"`
	Hashtags         string      `json:"hashtags"`
	Props            Props       `json:"props"`
	Status           VideoStatus `json:"status"`
	FilePath         *string     `json:"file_path"`
	ObjectKey        *string     `json:"object_key"`
	FailureMessage   *string     `json:"failure_message"`
	ScheduledFor     *time.Time  `json:"scheduled_for"`
	PostedAt         *time.Time  `json:"posted_at"`
	InstagramMediaID *string     `json:"instagram_media_id"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// TransitionTo mutates the status, rejecting moves the lifecycle does not allow.
func (v *Video) TransitionTo(next VideoStatus) error {
	if !v.Status.CanTransitionTo(next) {
		return fmt.Errorf("illegal status transition %q -> %q for video #%s", v.Status, next, v.ID)
	}
	v.Status = next
	return nil
}

// MarkFailed records the terminal failure reason alongside the status change.
func (v *Video) MarkFailed(reason string) error {
	if err := v.TransitionTo(VideoStatusFailed); err != nil {
		return err
	}
	v.FailureMessage = &reason
	return nil
}

// FullCaption joins caption and hashtags the way they are posted.
func (v *Video) FullCaption() string {
	switch {
	case v.Caption != "" && v.Hashtags != "":
		return v.Caption + "\n\n" + v.Hashtags
	case v.Caption != "":
		return v.Caption
	default:
		return v.Hashtags
	}
}
