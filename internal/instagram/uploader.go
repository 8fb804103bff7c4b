package instagram

import (
	"context"
	"errors"
	"time"

	"github.com/avassart/reels-ms-go/internal/logger"
	"github.com/avassart/reels-ms-go/internal/port"
)

// Protocol errors surfaced by the poll step. Both are terminal for one run;
// the operator retry pass may trigger a fresh run later.
var (
	ErrProcessingFailed  = errors.New("instagram: video processing failed")
	ErrProcessingTimeout = errors.New("instagram: video processing timeout")
)

// Default poll policy: every 5s, at most 60 attempts (about 5 minutes).
const (
	DefaultPollInterval = 5 * time.Second
	DefaultMaxAttempts  = 60
)

// Uploader drives the three-step publish protocol: create a container, poll
// its processing status until it reports FINISHED, then publish. The poll is
// a deliberate blocking wait, bounded by maxAttempts.
type Uploader struct {
	api          port.PlatformAPI
	pollInterval time.Duration
	maxAttempts  int
}

// compile-time check: *Uploader must satisfy port.MediaPublisher
var _ port.MediaPublisher = (*Uploader)(nil)

func NewUploader(api port.PlatformAPI) *Uploader {
	return &Uploader{api: api, pollInterval: DefaultPollInterval, maxAttempts: DefaultMaxAttempts}
}

// NewUploaderWithPolicy is used by tests to shrink the poll policy.
func NewUploaderWithPolicy(api port.PlatformAPI, pollInterval time.Duration, maxAttempts int) *Uploader {
	return &Uploader{api: api, pollInterval: pollInterval, maxAttempts: maxAttempts}
}

// NewPublisher adapts the uploader to the factory signature the use cases
// consume.
func NewPublisher(accessToken, accountID string) port.MediaPublisher {
	return NewUploader(NewClient(accessToken, accountID))
}

func (u *Uploader) PublishVideo(ctx context.Context, videoURL, caption string) (string, error) {
	logger.Infof(ctx, "starting instagram upload: %s", truncateCaption(caption))

	containerID, err := u.api.CreateMediaContainer(ctx, videoURL, caption)
	if err != nil {
		return "", err
	}

	if err := u.waitForContainer(ctx, containerID); err != nil {
		return "", err
	}

	return u.api.PublishMedia(ctx, containerID)
}

func (u *Uploader) waitForContainer(ctx context.Context, containerID string) error {
	for attempt := 1; attempt <= u.maxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(u.pollInterval):
		}

		status, err := u.api.CheckContainerStatus(ctx, containerID)
		if err != nil {
			return err
		}

		logger.Infof(ctx, "container status check %d/%d: %s", attempt, u.maxAttempts, status)

		switch status {
		case port.ContainerFinished:
			return nil
		case port.ContainerError:
			return ErrProcessingFailed
		}
	}

	return ErrProcessingTimeout
}

func truncateCaption(caption string) string {
	if len(caption) <= 50 {
		return caption
	}
	return caption[:50] + "..."
}
