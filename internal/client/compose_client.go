package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopstack/studio-api/internal/config"
	"github.com/shopstack/studio-api/internal/model"
)

// VideoComposer defines the interface for composition operations
type VideoComposer interface {
	Assemble(ctx context.Context, req *AssembleRequest) (*AssembleResponse, error)
	Download(ctx context.Context, productionID string) (io.ReadCloser, string, error)
	HealthCheck(ctx context.Context) error
}

// ComposeClient implements VideoComposer for the composition microservice
type ComposeClient struct {
	httpClient *http.Client
	baseURL    string
}

// AssembleRequest merges assets, audio and watermark into the final video
type AssembleRequest struct {
	ProductionID string                  `json:"productionId"`
	Assets       []model.ProductionAsset `json:"assets"`
	VoiceoverURL string                  `json:"voiceoverUrl"`
	MusicURL     string                  `json:"musicUrl,omitempty"`
	Watermark    *model.Watermark        `json:"watermark,omitempty"`
	SceneTimings []model.SceneTiming     `json:"sceneTimings"`
}

// AssembleResponse carries the rendered output. Services differ in which
// field they populate; DownloadURL is preferred.
type AssembleResponse struct {
	DownloadURL string `json:"downloadUrl,omitempty"`
	VideoURL    string `json:"videoUrl,omitempty"`
	PreviewHTML string `json:"previewHtml,omitempty"`
}

// OutputURL returns the first populated URL field.
func (r *AssembleResponse) OutputURL() string {
	if r.DownloadURL != "" {
		return r.DownloadURL
	}
	return r.VideoURL
}

// NewComposeClient creates a new composition service client
func NewComposeClient(cfg *config.ComposerConfig) *ComposeClient {
	timeout := 300
	if cfg.Timeout > 0 {
		timeout = cfg.Timeout
	}
	return &ComposeClient{
		httpClient: &http.Client{
			Timeout: time.Duration(timeout) * time.Second,
		},
		baseURL: cfg.ServiceURL,
	}
}

// Assemble submits the final asset set for composition
func (c *ComposeClient) Assemble(ctx context.Context, req *AssembleRequest) (*AssembleResponse, error) {
	var result AssembleResponse
	if err := c.post(ctx, "/assemble", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Download streams the rendered video for a production. The caller must
// close the returned body. The second return value is the content type.
func (c *ComposeClient) Download(ctx context.Context, productionID string) (io.ReadCloser, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/download/"+productionID, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to send request: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, "", fmt.Errorf("composer error (status %d): %s", resp.StatusCode, string(body))
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "video/mp4"
	}
	return resp.Body, contentType, nil
}

// HealthCheck checks if the composition service is available
func (c *ComposeClient) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("composer unhealthy: status %d", resp.StatusCode)
	}

	return nil
}

// post sends a POST request with JSON body and parses the response
func (c *ComposeClient) post(ctx context.Context, endpoint string, body interface{}, result interface{}) error {
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("composer error (status %d): %s", resp.StatusCode, string(respBody))
	}

	if err := json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return nil
}

// IsConfigured returns true if the client has valid configuration
func (c *ComposeClient) IsConfigured() bool {
	return c.baseURL != ""
}
