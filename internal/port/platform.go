package port

import "context"

// ContainerStatus is the platform-side processing state of a media container.
type ContainerStatus string

const (
	ContainerInProgress ContainerStatus = "IN_PROGRESS"
	ContainerFinished   ContainerStatus = "FINISHED"
	ContainerError      ContainerStatus = "ERROR"
)

// MediaInsight is one metric returned by the platform for a published media.
type MediaInsight struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// PlatformAPI is the raw three-call surface of the social platform's
// asynchronous publish protocol, plus the account-level helpers the
// settings endpoints use.
type PlatformAPI interface {
	CreateMediaContainer(ctx context.Context, videoURL, caption string) (string, error)
	CheckContainerStatus(ctx context.Context, containerID string) (ContainerStatus, error)
	PublishMedia(ctx context.Context, containerID string) (string, error)
	ValidateToken(ctx context.Context) error
	GetMediaInsights(ctx context.Context, mediaID string) ([]MediaInsight, error)
}

// MediaPublisher drives the full publish protocol (create container, poll
// until finished, publish) and returns the platform-assigned media id.
type MediaPublisher interface {
	PublishVideo(ctx context.Context, videoURL, caption string) (string, error)
}

// PlatformAPIFactory builds a PlatformAPI bound to the given credentials.
type PlatformAPIFactory func(accessToken, accountID string) PlatformAPI

// PublisherFactory builds a protocol driver bound to the given credentials.
type PublisherFactory func(accessToken, accountID string) MediaPublisher
