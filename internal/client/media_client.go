package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/shopstack/studio-api/internal/config"
)

// MediaGenerator defines the interface for media generation operations
type MediaGenerator interface {
	Voiceover(ctx context.Context, req *VoiceoverRequest) (*VoiceoverResponse, error)
	GenerateImage(ctx context.Context, req *GenerateImageRequest) (*GenerateImageResponse, error)
	GenerateVideo(ctx context.Context, req *GenerateVideoRequest) (*GenerateVideoResponse, error)
	GenerateMusic(ctx context.Context, req *GenerateMusicRequest) (*GenerateMusicResponse, error)
}

// MediaClient implements MediaGenerator for the media generation service
type MediaClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// VoiceoverRequest represents a voiceover synthesis request. VoiceID takes
// precedence over Voice when both are set.
type VoiceoverRequest struct {
	Script  string `json:"script"`
	Voice   string `json:"voice,omitempty"`
	VoiceID string `json:"voiceId,omitempty"`
}

// VoiceoverResponse represents a synthesized voiceover
type VoiceoverResponse struct {
	URL      string  `json:"url"`
	Duration float64 `json:"duration"`
}

// GenerateImageRequest represents an image generation request for one scene
type GenerateImageRequest struct {
	Section      string `json:"section"`
	SceneContent string `json:"sceneContent"`
	Direction    string `json:"direction,omitempty"`
	Style        string `json:"style,omitempty"`
	Variation    string `json:"variation,omitempty"`
}

// GenerateImageResponse represents a generated image
type GenerateImageResponse struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Source string `json:"source"`
}

// GenerateVideoRequest represents a video clip generation request
type GenerateVideoRequest struct {
	Section      string  `json:"section"`
	SceneContent string  `json:"sceneContent"`
	Direction    string  `json:"direction,omitempty"`
	Style        string  `json:"style,omitempty"`
	Duration     float64 `json:"duration,omitempty"`
}

// GenerateVideoResponse represents a generated video clip
type GenerateVideoResponse struct {
	URL      string  `json:"url"`
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	Duration float64 `json:"duration"`
	Source   string  `json:"source"`
}

// GenerateMusicRequest represents a music track generation request
type GenerateMusicRequest struct {
	Prompt            string `json:"prompt"`
	DurationMs        int    `json:"durationMs"`
	ForceInstrumental bool   `json:"forceInstrumental,omitempty"`
}

// GenerateMusicResponse represents a generated music track
type GenerateMusicResponse struct {
	URL      string  `json:"url"`
	Duration float64 `json:"duration"`
}

// NewMediaClient creates a new media generation service client
func NewMediaClient(cfg *config.MediaConfig) *MediaClient {
	timeout := 180
	if cfg.Timeout > 0 {
		timeout = cfg.Timeout
	}
	return &MediaClient{
		httpClient: &http.Client{
			Timeout: time.Duration(timeout) * time.Second,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
	}
}

// Voiceover synthesizes a voiceover for the full script
func (c *MediaClient) Voiceover(ctx context.Context, req *VoiceoverRequest) (*VoiceoverResponse, error) {
	endpoint := "/voiceover"
	if req.VoiceID != "" {
		endpoint = "/voiceover-with-id"
	}
	var result VoiceoverResponse
	if err := c.post(ctx, endpoint, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GenerateImage requests one image for a scene
func (c *MediaClient) GenerateImage(ctx context.Context, req *GenerateImageRequest) (*GenerateImageResponse, error) {
	var result GenerateImageResponse
	if err := c.post(ctx, "/generate-image", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GenerateVideo requests one video clip for a scene
func (c *MediaClient) GenerateVideo(ctx context.Context, req *GenerateVideoRequest) (*GenerateVideoResponse, error) {
	var result GenerateVideoResponse
	if err := c.post(ctx, "/generate-video", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GenerateMusic requests one background music track
func (c *MediaClient) GenerateMusic(ctx context.Context, req *GenerateMusicRequest) (*GenerateMusicResponse, error) {
	var result GenerateMusicResponse
	if err := c.post(ctx, "/generate-music", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// post sends a POST request with JSON body
func (c *MediaClient) post(ctx context.Context, endpoint string, body interface{}, result interface{}) error {
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	return c.doRequest(req, result)
}

// doRequest executes an HTTP request and parses the response
func (c *MediaClient) doRequest(req *http.Request, result interface{}) error {
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	log.Printf("[Media API] → %s %s", req.Method, req.URL.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[Media API] ✗ %s %s — request failed: %v", req.Method, req.URL.String(), err)
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[Media API] ✗ %s %s — failed to read response: %v", req.Method, req.URL.String(), err)
		return fmt.Errorf("failed to read response: %w", err)
	}

	log.Printf("[Media API] ← %d %s %s", resp.StatusCode, req.Method, req.URL.String())

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("media service error (status %d): %s", resp.StatusCode, string(respBody))
	}

	if err := json.Unmarshal(respBody, result); err != nil {
		log.Printf("[Media API] ✗ unmarshal error for %s %s: %v", req.Method, req.URL.String(), err)
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return nil
}

// IsConfigured returns true if the client has valid configuration
func (c *MediaClient) IsConfigured() bool {
	return c.apiKey != ""
}
