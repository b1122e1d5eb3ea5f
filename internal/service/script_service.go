package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopstack/studio-api/internal/client"
	"github.com/shopstack/studio-api/internal/model"
)

// ScriptService handles script generation and visual suggestions via the
// script/LLM service, with deterministic mock fallbacks for development.
type ScriptService struct {
	scriptClient *client.ScriptClient
}

// NewScriptService creates a new script service
func NewScriptService(scriptClient *client.ScriptClient) *ScriptService {
	return &ScriptService{scriptClient: scriptClient}
}

// GenerateScript writes a promotional script for the given topic. The
// returned wire plan, when present, has not been persisted yet.
func (s *ScriptService) GenerateScript(ctx context.Context, req *model.ScriptGenerateRequest) (string, *client.VisualPlanWire, error) {
	if s.scriptClient == nil || !s.scriptClient.IsConfigured() {
		script := s.generateMockScript(req)
		return script, s.suggestMockVisuals(script), nil
	}

	resp, err := s.scriptClient.GenerateScript(ctx, &client.GenerateScriptRequest{
		Topic:    req.Topic,
		Keywords: req.Keywords,
		Duration: req.Duration,
		Style:    string(req.Style),
	})
	if err != nil {
		return "", nil, fmt.Errorf("script generation failed: %w", err)
	}

	return resp.Script, resp.VisualPlan, nil
}

// SuggestVisuals asks for visual-direction alternatives per scene of the
// given script.
func (s *ScriptService) SuggestVisuals(ctx context.Context, req *model.SuggestVisualsRequest) (*client.VisualPlanWire, error) {
	if s.scriptClient == nil || !s.scriptClient.IsConfigured() {
		return s.suggestMockVisuals(req.Script), nil
	}

	resp, err := s.scriptClient.SuggestVisuals(ctx, &client.SuggestVisualsRequest{
		Script:   req.Script,
		Title:    req.Title,
		Style:    string(req.Style),
		Platform: string(req.Platform),
	})
	if err != nil {
		return nil, fmt.Errorf("visual suggestion failed: %w", err)
	}

	return resp.VisualPlan, nil
}

// generateMockScript produces a deterministic three-paragraph script so the
// rest of the pipeline can be exercised without the script service.
func (s *ScriptService) generateMockScript(req *model.ScriptGenerateRequest) string {
	keywords := "quality, value"
	if len(req.Keywords) > 0 {
		keywords = strings.Join(req.Keywords, ", ")
	}

	paragraphs := []string{
		fmt.Sprintf("Meet %s. Built around what matters most: %s.", req.Topic, keywords),
		fmt.Sprintf("Every detail of %s was designed with you in mind, from first look to daily use.", req.Topic),
		fmt.Sprintf("Try %s today and see the difference for yourself.", req.Topic),
	}
	return strings.Join(paragraphs, "\n\n")
}

// suggestMockVisuals derives one scene per paragraph with two fixed
// alternatives each.
func (s *ScriptService) suggestMockVisuals(script string) *client.VisualPlanWire {
	var sections []client.VisualSectionWire
	for _, para := range strings.Split(script, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		i := len(sections)
		excerpt := para
		if words := strings.Fields(para); len(words) > 6 {
			excerpt = strings.Join(words[:6], " ")
		}
		sections = append(sections, client.VisualSectionWire{
			Section: fmt.Sprintf("scene-%d", i+1),
			Content: para,
			Alternatives: []client.VisualAlternativeWire{
				{Direction: fmt.Sprintf("Product close-up while narration covers: %s", excerpt), Mood: "focused"},
				{Direction: fmt.Sprintf("Lifestyle wide shot while narration covers: %s", excerpt), Mood: "aspirational"},
			},
		})
	}
	if len(sections) == 0 {
		sections = []client.VisualSectionWire{{
			Section:      "scene-1",
			Content:      script,
			Alternatives: []client.VisualAlternativeWire{{Direction: "Product hero shot", Mood: "focused"}},
		}}
	}
	return &client.VisualPlanWire{Sections: sections}
}
