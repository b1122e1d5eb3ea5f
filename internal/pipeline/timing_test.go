package pipeline

import (
	"math"
	"testing"

	"github.com/shopstack/studio-api/internal/model"
)

func makeAssets(n int) []model.ProductionAsset {
	assets := make([]model.ProductionAsset, n)
	for i := range assets {
		assets[i] = model.ProductionAsset{ID: string(rune('a' + i)), Section: "scene-1"}
	}
	return assets
}

func TestSceneTimings_EvenDivision(t *testing.T) {
	timings := SceneTimings(30, makeAssets(5))

	if len(timings) != 5 {
		t.Fatalf("expected 5 timings, got %d", len(timings))
	}
	for i, tm := range timings {
		if math.Abs(tm.Duration-6) > 1e-9 {
			t.Errorf("timing %d: expected duration 6, got %f", i, tm.Duration)
		}
		if math.Abs(tm.Start-float64(i)*6) > 1e-9 {
			t.Errorf("timing %d: expected start %f, got %f", i, float64(i)*6, tm.Start)
		}
	}
}

func TestSceneTimings_FloorApplied(t *testing.T) {
	// 10 seconds over 12 assets would be 0.83s per slot; the floor wins.
	timings := SceneTimings(10, makeAssets(12))

	total := 0.0
	for _, tm := range timings {
		if tm.Duration < MinSceneSeconds {
			t.Errorf("duration %f below floor", tm.Duration)
		}
		total += tm.Duration
	}
	if total < 10 {
		t.Errorf("timeline shorter than voiceover: %f", total)
	}
	if math.Abs(total-24) > 1e-9 {
		t.Errorf("expected 24s total with floor applied, got %f", total)
	}
}

func TestSceneTimings_ZeroVoiceover(t *testing.T) {
	timings := SceneTimings(0, makeAssets(3))
	for _, tm := range timings {
		if tm.Duration != MinSceneSeconds {
			t.Errorf("expected floor duration %f, got %f", MinSceneSeconds, tm.Duration)
		}
	}
}

func TestSceneTimings_NoAssets(t *testing.T) {
	if timings := SceneTimings(30, nil); timings != nil {
		t.Errorf("expected nil timings for empty asset list, got %v", timings)
	}
}

func TestSceneTimings_BackToBack(t *testing.T) {
	timings := SceneTimings(9, makeAssets(3))
	for i := 1; i < len(timings); i++ {
		expected := timings[i-1].Start + timings[i-1].Duration
		if math.Abs(timings[i].Start-expected) > 1e-9 {
			t.Errorf("slot %d: expected start %f, got %f", i, expected, timings[i].Start)
		}
	}
}
