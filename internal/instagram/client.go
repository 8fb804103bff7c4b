package instagram

import (
	"context"
	"fmt"

	"github.com/avassart/reels-ms-go/internal/logger"
	"github.com/avassart/reels-ms-go/internal/port"
	"resty.dev/v3"
)

const (
	graphAPIVersion = "v21.0"
	graphAPIBase    = "https://graph.facebook.com/" + graphAPIVersion
)

// Client talks to the Instagram Graph API for one account.
type Client struct {
	client      *resty.Client
	accessToken string
	accountID   string
}

// compile-time check: *Client must satisfy port.PlatformAPI
var _ port.PlatformAPI = (*Client)(nil)

func NewClient(accessToken, accountID string) *Client {
	c := resty.New().
		SetBaseURL(graphAPIBase).
		SetQueryParam("access_token", accessToken)

	return &Client{client: c, accessToken: accessToken, accountID: accountID}
}

// NewAPI adapts NewClient to the factory signature the use cases consume.
func NewAPI(accessToken, accountID string) port.PlatformAPI {
	return NewClient(accessToken, accountID)
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    int    `json:"code"`
	} `json:"error"`
}

func (e *apiError) message() string {
	return e.Error.Message
}

type idResponse struct {
	ID string `json:"id"`
}

// CreateMediaContainer submits the public video URL and caption and returns
// the platform container id.
func (c *Client) CreateMediaContainer(ctx context.Context, videoURL, caption string) (string, error) {
	var out idResponse
	var apiErr apiError

	resp, err := c.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"media_type":    "REELS",
			"video_url":     videoURL,
			"caption":       caption,
			"share_to_feed": "true",
		}).
		SetResult(&out).
		SetError(&apiErr).
		Post("/" + c.accountID + "/media")
	if err != nil {
		return "", fmt.Errorf("instagram api error: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("instagram api error: %s", errMessage(&apiErr, resp))
	}

	logger.Infof(ctx, "media container created: %s", out.ID)
	return out.ID, nil
}

type statusResponse struct {
	Status     string `json:"status"`
	StatusCode string `json:"status_code"`
}

// CheckContainerStatus queries the container's processing status.
func (c *Client) CheckContainerStatus(ctx context.Context, containerID string) (port.ContainerStatus, error) {
	var out statusResponse
	var apiErr apiError

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("fields", "status,status_code").
		SetResult(&out).
		SetError(&apiErr).
		Get("/" + containerID)
	if err != nil {
		return "", fmt.Errorf("instagram api error: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("instagram api error: %s", errMessage(&apiErr, resp))
	}

	return port.ContainerStatus(out.StatusCode), nil
}

// PublishMedia publishes a finished container and returns the permanent
// media id.
func (c *Client) PublishMedia(ctx context.Context, containerID string) (string, error) {
	var out idResponse
	var apiErr apiError

	resp, err := c.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{"creation_id": containerID}).
		SetResult(&out).
		SetError(&apiErr).
		Post("/" + c.accountID + "/media_publish")
	if err != nil {
		return "", fmt.Errorf("instagram api error: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("instagram api error: %s", errMessage(&apiErr, resp))
	}

	logger.Infof(ctx, "media published: %s", out.ID)
	return out.ID, nil
}

// ValidateToken checks the credentials by reading the account's username.
func (c *Client) ValidateToken(ctx context.Context) error {
	var apiErr apiError

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("fields", "username").
		SetError(&apiErr).
		Get("/" + c.accountID)
	if err != nil {
		return fmt.Errorf("instagram api error: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("instagram api error: %s", errMessage(&apiErr, resp))
	}
	return nil
}

type insightsResponse struct {
	Data []struct {
		Name   string `json:"name"`
		Values []struct {
			Value int64 `json:"value"`
		} `json:"values"`
	} `json:"data"`
}

// GetMediaInsights fetches engagement metrics for a published media.
func (c *Client) GetMediaInsights(ctx context.Context, mediaID string) ([]port.MediaInsight, error) {
	var out insightsResponse
	var apiErr apiError

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("metric", "likes,comments,saves,shares,plays,reach,total_interactions").
		SetResult(&out).
		SetError(&apiErr).
		Get("/" + mediaID + "/insights")
	if err != nil {
		return nil, fmt.Errorf("instagram api error: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("instagram api error: %s", errMessage(&apiErr, resp))
	}

	insights := make([]port.MediaInsight, 0, len(out.Data))
	for _, d := range out.Data {
		var v int64
		if len(d.Values) > 0 {
			v = d.Values[0].Value
		}
		insights = append(insights, port.MediaInsight{Name: d.Name, Value: v})
	}
	return insights, nil
}

func errMessage(apiErr *apiError, resp *resty.Response) string {
	if msg := apiErr.message(); msg != "" {
		return msg
	}
	return resp.Status()
}
