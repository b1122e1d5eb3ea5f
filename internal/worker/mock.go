package worker

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	"github.com/shopstack/studio-api/internal/client"
)

// mockMedia generates deterministic placeholder media when no media
// service is configured. Short sleeps keep the progress stream readable
// in local development.
type mockMedia struct{}

func (m *mockMedia) Voiceover(ctx context.Context, req *client.VoiceoverRequest) (*client.VoiceoverResponse, error) {
	if err := mockWork(ctx, 300*time.Millisecond); err != nil {
		return nil, err
	}
	// Roughly 2.5 words per second of narration
	words := len(strings.Fields(req.Script))
	duration := float64(words) / 2.5
	if duration < 2 {
		duration = 2
	}
	return &client.VoiceoverResponse{
		URL:      fmt.Sprintf("https://cdn.shopstack.dev/mock/voiceover/%d.mp3", mockSeed(req.Script)),
		Duration: duration,
	}, nil
}

func (m *mockMedia) GenerateImage(ctx context.Context, req *client.GenerateImageRequest) (*client.GenerateImageResponse, error) {
	if err := mockWork(ctx, 150*time.Millisecond); err != nil {
		return nil, err
	}
	return &client.GenerateImageResponse{
		URL:    fmt.Sprintf("https://cdn.shopstack.dev/mock/images/%s-%s.jpg", req.Section, req.Variation),
		Width:  1280,
		Height: 720,
		Source: "mock",
	}, nil
}

func (m *mockMedia) GenerateVideo(ctx context.Context, req *client.GenerateVideoRequest) (*client.GenerateVideoResponse, error) {
	if err := mockWork(ctx, 250*time.Millisecond); err != nil {
		return nil, err
	}
	duration := req.Duration
	if duration <= 0 {
		duration = 4
	}
	return &client.GenerateVideoResponse{
		URL:      fmt.Sprintf("https://cdn.shopstack.dev/mock/clips/%s.mp4", req.Section),
		Width:    1280,
		Height:   720,
		Duration: duration,
		Source:   "mock",
	}, nil
}

func (m *mockMedia) GenerateMusic(ctx context.Context, req *client.GenerateMusicRequest) (*client.GenerateMusicResponse, error) {
	if err := mockWork(ctx, 200*time.Millisecond); err != nil {
		return nil, err
	}
	return &client.GenerateMusicResponse{
		URL:      fmt.Sprintf("https://cdn.shopstack.dev/mock/music/%d.mp3", mockSeed(req.Prompt)),
		Duration: float64(req.DurationMs) / 1000,
	}, nil
}

// mockEvaluator hands out section scores spread across the quality
// threshold so local runs exercise the regeneration path now and then.
type mockEvaluator struct{}

func (m *mockEvaluator) Evaluate(ctx context.Context, req *client.EvaluateRequest) (*client.EvaluateResponse, error) {
	if err := mockWork(ctx, 200*time.Millisecond); err != nil {
		return nil, err
	}

	sections := make(map[string]bool)
	var evaluations []client.AssetEvaluation
	total := 0
	for _, asset := range req.Assets {
		if sections[asset.Section] {
			continue
		}
		sections[asset.Section] = true
		score := 65 + int(mockSeed(asset.Section)%35)
		evaluations = append(evaluations, client.AssetEvaluation{
			Section:          asset.Section,
			Score:            score,
			Relevance:        score,
			TechnicalQuality: score,
		})
		total += score
	}

	overall := 0
	if len(evaluations) > 0 {
		overall = total / len(evaluations)
	}

	return &client.EvaluateResponse{
		OverallScore: overall,
		Evaluations:  evaluations,
	}, nil
}

// mockComposer pretends to render the final cut and returns a stable
// output URL per production.
type mockComposer struct{}

func (m *mockComposer) Assemble(ctx context.Context, req *client.AssembleRequest) (*client.AssembleResponse, error) {
	if err := mockWork(ctx, 400*time.Millisecond); err != nil {
		return nil, err
	}
	return &client.AssembleResponse{
		DownloadURL: fmt.Sprintf("https://cdn.shopstack.dev/productions/%s/output.mp4", req.ProductionID),
	}, nil
}

func mockWork(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

func mockSeed(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}
