package pipeline

import (
	"strings"
	"testing"

	"github.com/shopstack/studio-api/internal/model"
)

func TestAnalyzeScript_TwoParagraphs(t *testing.T) {
	script := "Our new blender crushes ice in seconds.\n\nOrder today and get free shipping."

	scenes, err := AnalyzeScript(script, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(scenes) != 2 {
		t.Fatalf("expected 2 scenes, got %d", len(scenes))
	}
	if scenes[0].Section != "scene-1" || scenes[1].Section != "scene-2" {
		t.Errorf("unexpected section tags: %s, %s", scenes[0].Section, scenes[1].Section)
	}
	if scenes[0].Content != "Our new blender crushes ice in seconds." {
		t.Errorf("unexpected first scene content: %q", scenes[0].Content)
	}
	for _, s := range scenes {
		if !strings.HasPrefix(s.Direction, "B-roll footage matching:") {
			t.Errorf("expected placeholder direction for scene %s, got %q", s.Section, s.Direction)
		}
	}
}

func TestAnalyzeScript_PairedDirections(t *testing.T) {
	script := "First line about the product.\nSecond line with a call to action."
	directions := []string{"Close-up of the product", "Customer smiling at checkout"}

	scenes, err := AnalyzeScript(script, directions, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(scenes) != 2 {
		t.Fatalf("expected 2 scenes, got %d", len(scenes))
	}
	if scenes[0].Direction != "Close-up of the product" {
		t.Errorf("expected paired direction, got %q", scenes[0].Direction)
	}
	if scenes[1].Direction != "Customer smiling at checkout" {
		t.Errorf("expected paired direction, got %q", scenes[1].Direction)
	}
}

func TestAnalyzeScript_DirectionCountMismatchFallsBack(t *testing.T) {
	// Three lines but only two directions: pairing is abandoned and the
	// script is segmented on blank lines instead.
	script := "Line one.\nLine two.\nLine three."
	directions := []string{"only", "two"}

	scenes, err := AnalyzeScript(script, directions, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// No blank lines, so the whole script is one scene.
	if len(scenes) != 1 {
		t.Fatalf("expected 1 scene, got %d", len(scenes))
	}
	if !strings.HasPrefix(scenes[0].Direction, "B-roll footage matching:") {
		t.Errorf("expected placeholder direction, got %q", scenes[0].Direction)
	}
}

func TestAnalyzeScript_SingleSceneFallback(t *testing.T) {
	scenes, err := AnalyzeScript("One short pitch with no breaks.", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(scenes) != 1 {
		t.Fatalf("expected 1 scene, got %d", len(scenes))
	}
	if scenes[0].Section != "scene-1" {
		t.Errorf("expected section scene-1, got %s", scenes[0].Section)
	}
}

func TestAnalyzeScript_EmptyScript(t *testing.T) {
	if _, err := AnalyzeScript("   \n  ", nil, nil); err == nil {
		t.Fatal("expected error for empty script")
	}
}

func TestAnalyzeScript_PlanWins(t *testing.T) {
	plan := &model.VisualPlan{
		ID:     "plan-1",
		Status: model.PlanStatusApproved,
		Sections: []model.VisualSection{
			{
				Index:   0,
				Content: "Opening shot of the store",
				Alternatives: []model.VisualAlternative{
					{ID: "a1", Direction: "Slow pan across shelves"},
					{ID: "a2", Direction: "Drone shot of the storefront"},
				},
				SelectedID: "a2",
			},
			{
				Index:   1,
				Content: "Closing call to action",
			},
		},
	}

	// Script would split into one paragraph; the plan overrides segmentation
	// entirely.
	scenes, err := AnalyzeScript("Anything at all.", nil, plan)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(scenes) != 2 {
		t.Fatalf("expected 2 scenes from plan, got %d", len(scenes))
	}
	if scenes[0].Direction != "Drone shot of the storefront" {
		t.Errorf("expected selected alternative's direction, got %q", scenes[0].Direction)
	}
	if !strings.HasPrefix(scenes[1].Direction, "B-roll footage matching:") {
		t.Errorf("expected placeholder for section without alternatives, got %q", scenes[1].Direction)
	}
}

func TestAnalyzeScript_PlanFallsBackToFirstAlternative(t *testing.T) {
	plan := &model.VisualPlan{
		ID: "plan-2",
		Sections: []model.VisualSection{
			{
				Index:   0,
				Content: "Product demo",
				Alternatives: []model.VisualAlternative{
					{ID: "a1", Direction: "Hands-on demo at the counter"},
					{ID: "a2", Direction: "Split screen comparison"},
				},
			},
		},
	}

	scenes, err := AnalyzeScript("ignored", nil, plan)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scenes[0].Direction != "Hands-on demo at the counter" {
		t.Errorf("expected first alternative when nothing selected, got %q", scenes[0].Direction)
	}
}
