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
)

// ScriptClient handles communication with the script/LLM service used for
// script generation, visual suggestions and asset evaluation.
type ScriptClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

// GenerateScriptRequest represents a script generation request
type GenerateScriptRequest struct {
	Topic    string   `json:"topic"`
	Keywords []string `json:"keywords,omitempty"`
	Duration int      `json:"duration,omitempty"`
	Style    string   `json:"style,omitempty"`
	Model    string   `json:"model,omitempty"`
}

// GenerateScriptResponse represents a generated script with an optional
// scene-by-scene visual plan.
type GenerateScriptResponse struct {
	Script     string          `json:"script"`
	VisualPlan *VisualPlanWire `json:"visualPlan,omitempty"`
}

// SuggestVisualsRequest represents a visual suggestion request
type SuggestVisualsRequest struct {
	Script   string `json:"script"`
	Title    string `json:"title,omitempty"`
	Style    string `json:"style,omitempty"`
	Platform string `json:"platform,omitempty"`
	Model    string `json:"model,omitempty"`
}

// SuggestVisualsResponse carries the suggested plan
type SuggestVisualsResponse struct {
	VisualPlan *VisualPlanWire `json:"visualPlan"`
}

// VisualPlanWire is the plan shape on the wire: one entry per scene with
// the suggested visual-direction alternatives.
type VisualPlanWire struct {
	Sections []VisualSectionWire `json:"sections"`
}

// VisualSectionWire is one scene of the suggested plan
type VisualSectionWire struct {
	Section      string                  `json:"section"`
	Content      string                  `json:"content"`
	Alternatives []VisualAlternativeWire `json:"alternatives"`
}

// VisualAlternativeWire is one suggested visual direction
type VisualAlternativeWire struct {
	Direction string `json:"direction"`
	Mood      string `json:"mood,omitempty"`
}

// EvaluateRequest submits the accumulated assets of a run for scoring
type EvaluateRequest struct {
	ProductionID string          `json:"productionId"`
	Brief        string          `json:"brief,omitempty"`
	Assets       []AssetForEval  `json:"assets"`
	Model        string          `json:"model,omitempty"`
}

// AssetForEval is the asset subset the evaluator needs
type AssetForEval struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Section string `json:"section"`
	URL     string `json:"url"`
	Prompt  string `json:"prompt,omitempty"`
}

// EvaluateResponse carries per-section scores on a 0-100 scale
type EvaluateResponse struct {
	OverallScore int               `json:"overallScore"`
	Evaluations  []AssetEvaluation `json:"evaluations"`
}

// AssetEvaluation is one scored section
type AssetEvaluation struct {
	Section          string `json:"section"`
	Score            int    `json:"score"`
	Relevance        int    `json:"relevance,omitempty"`
	TechnicalQuality int    `json:"technicalQuality,omitempty"`
}

// NewScriptClient creates a new script service client
func NewScriptClient(cfg *config.ScriptConfig) *ScriptClient {
	return &ScriptClient{
		httpClient: &http.Client{
			Timeout: 90 * time.Second,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
	}
}

// GenerateScript asks the service to write a script for the given topic
func (c *ScriptClient) GenerateScript(ctx context.Context, req *GenerateScriptRequest) (*GenerateScriptResponse, error) {
	if req.Model == "" {
		req.Model = c.model
	}
	var result GenerateScriptResponse
	if err := c.post(ctx, "/generate-script", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SuggestVisuals asks the service for visual-direction alternatives per scene
func (c *ScriptClient) SuggestVisuals(ctx context.Context, req *SuggestVisualsRequest) (*SuggestVisualsResponse, error) {
	if req.Model == "" {
		req.Model = c.model
	}
	var result SuggestVisualsResponse
	if err := c.post(ctx, "/suggest-visuals", req, &result); err != nil {
		return nil, err
	}
	if result.VisualPlan == nil {
		return nil, fmt.Errorf("no visual plan in response")
	}
	return &result, nil
}

// Evaluate scores the accumulated assets of a production run
func (c *ScriptClient) Evaluate(ctx context.Context, req *EvaluateRequest) (*EvaluateResponse, error) {
	if req.Model == "" {
		req.Model = c.model
	}
	var result EvaluateResponse
	if err := c.post(ctx, "/evaluate", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *ScriptClient) post(ctx context.Context, endpoint string, body interface{}, result interface{}) error {
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

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
		return fmt.Errorf("script service error (status %d): %s", resp.StatusCode, string(respBody))
	}

	if err := json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return nil
}

// IsConfigured returns true if the client has valid configuration
func (c *ScriptClient) IsConfigured() bool {
	return c.apiKey != ""
}
