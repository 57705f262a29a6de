package avatar

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/interviewcoach/CoachAPI/internal/config"
	"github.com/interviewcoach/CoachAPI/internal/customHttpClient"
	"github.com/interviewcoach/CoachAPI/pkg/logger_i"
)

var (
	ErrRenderFailed       = errors.New("avatar render failed")
	ErrPollTimeout        = errors.New("avatar render timed out")
	ErrServiceUnavailable = errors.New("avatar service unavailable")
)

// Talk statuses reported by the remote API. done and error are terminal;
// everything else means keep polling.
const (
	statusDone  = "done"
	statusError = "error"
)

// Client talks to a D-ID style talks API: create a render job, poll it to a
// terminal state, download the result.
type Client interface {
	CreateTalk(ctx context.Context, text string, avatarId string) (string, error)
	WaitForVideo(ctx context.Context, talkId string) (string, error)
	DownloadVideo(ctx context.Context, videoURL string, destDir string) (string, error)
}

type client struct {
	baseURL      string
	apiKey       string
	httpClient   *http.Client
	pollInterval time.Duration
	maxAttempts  int
	logger       *logger_i.Logger
}

// NewClient constructor. A nil httpClient falls back to the shared pooled
// client.
func NewClient(baseURL string, apiKey string, httpClient *http.Client) Client {
	if baseURL == "" {
		baseURL = config.AvatarBaseURL
	}
	if httpClient == nil {
		httpClient = customHttpClient.NewPooledClient(30 * time.Second)
	}
	return &client{
		baseURL:      baseURL,
		apiKey:       apiKey,
		httpClient:   httpClient,
		pollInterval: config.AvatarPollInterval,
		maxAttempts:  config.AvatarPollAttempts,
		logger:       logger_i.NewLogger("Avatar Client :"),
	}
}

type talkScriptProvider struct {
	Type    string `json:"type"`
	VoiceId string `json:"voice_id"`
}

type talkScript struct {
	Type      string             `json:"type"`
	Input     string             `json:"input"`
	Subtitles bool               `json:"subtitles"`
	Provider  talkScriptProvider `json:"provider"`
}

type createTalkRequest struct {
	Script    talkScript `json:"script"`
	SourceURL string     `json:"source_url"`
}

type talkResponse struct {
	Id        string `json:"id"`
	Status    string `json:"status"`
	ResultURL string `json:"result_url"`
}

func (c *client) CreateTalk(ctx context.Context, text string, avatarId string) (string, error) {
	if avatarId == "" {
		avatarId = config.AvatarDefaultID
	}

	payload := createTalkRequest{
		Script: talkScript{
			Type:      "text",
			Input:     text,
			Subtitles: false,
			Provider:  talkScriptProvider{Type: "microsoft", VoiceId: "en-US-JennyNeural"},
		},
		SourceURL: fmt.Sprintf("https://d-id-talks-prod.s3.us-west-2.amazonaws.com/api-talks/%s.mp4", avatarId),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshaling talk request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/talks", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building talk request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: create talk returned %d", ErrServiceUnavailable, resp.StatusCode)
	}

	var talk talkResponse
	if err := json.NewDecoder(resp.Body).Decode(&talk); err != nil {
		return "", fmt.Errorf("decoding talk response: %w", err)
	}
	if talk.Id == "" {
		return "", fmt.Errorf("%w: create talk returned no id", ErrServiceUnavailable)
	}

	c.logger.Debug("Talk submitted", "talkId", talk.Id)
	return talk.Id, nil
}

// WaitForVideo polls the talk until it reaches a terminal state. The retry
// budget is bounded: maxAttempts polls at a fixed interval, then
// ErrPollTimeout. It never blocks past ctx cancellation.
func (c *client) WaitForVideo(ctx context.Context, talkId string) (string, error) {
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		talk, err := c.getTalk(ctx, talkId)
		if err != nil {
			return "", err
		}

		switch talk.Status {
		case statusDone:
			c.logger.Debug("Talk finished", "talkId", talkId, "attempts", attempt)
			return talk.ResultURL, nil
		case statusError:
			return "", fmt.Errorf("%w: talk %s", ErrRenderFailed, talkId)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(c.pollInterval):
		}
	}
	return "", fmt.Errorf("%w: talk %s after %d attempts", ErrPollTimeout, talkId, c.maxAttempts)
}

func (c *client) getTalk(ctx context.Context, talkId string) (talkResponse, error) {
	var talk talkResponse

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/talks/"+talkId, nil)
	if err != nil {
		return talk, fmt.Errorf("building poll request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return talk, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return talk, fmt.Errorf("%w: poll returned %d", ErrServiceUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(&talk); err != nil {
		return talk, fmt.Errorf("decoding poll response: %w", err)
	}
	return talk, nil
}

func (c *client) DownloadVideo(ctx context.Context, videoURL string, destDir string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, videoURL, nil)
	if err != nil {
		return "", fmt.Errorf("building download request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: download returned %d", ErrServiceUnavailable, resp.StatusCode)
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("creating video directory: %w", err)
	}
	file, err := os.CreateTemp(destDir, "avatar_*.mp4")
	if err != nil {
		return "", fmt.Errorf("creating video file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, resp.Body); err != nil {
		os.Remove(file.Name())
		return "", fmt.Errorf("writing video file: %w", err)
	}
	return filepath.Clean(file.Name()), nil
}

func (c *client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Basic "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
}
