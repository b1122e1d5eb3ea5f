package pipeline

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopstack/studio-api/internal/model"
)

var paragraphSplit = regexp.MustCompile(`\n\s*\n`)

// AnalyzeScript breaks the input script into an ordered list of scenes.
// Resolution order: an approved visual plan wins; otherwise script lines are
// paired 1:1 with visual-direction lines when both are provided and the
// counts match; otherwise the script is split on blank lines; as a last
// resort the whole script becomes a single scene.
func AnalyzeScript(script string, directions []string, plan *model.VisualPlan) ([]model.Scene, error) {
	if plan != nil && len(plan.Sections) > 0 {
		scenes := make([]model.Scene, 0, len(plan.Sections))
		for i, sec := range plan.Sections {
			direction := ""
			if alt := sec.Selected(); alt != nil {
				direction = alt.Direction
			}
			if direction == "" {
				direction = placeholderDirection(sec.Content)
			}
			scenes = append(scenes, model.Scene{
				Index:     i,
				Section:   sectionTag(i),
				Content:   sec.Content,
				Direction: direction,
			})
		}
		return scenes, nil
	}

	trimmed := strings.TrimSpace(script)
	if trimmed == "" {
		return nil, fmt.Errorf("script is empty")
	}

	if len(directions) > 0 {
		lines := nonEmptyLines(trimmed)
		if len(lines) == len(directions) {
			scenes := make([]model.Scene, 0, len(lines))
			for i, line := range lines {
				scenes = append(scenes, model.Scene{
					Index:     i,
					Section:   sectionTag(i),
					Content:   line,
					Direction: strings.TrimSpace(directions[i]),
				})
			}
			return scenes, nil
		}
	}

	paragraphs := paragraphSplit.Split(trimmed, -1)
	var scenes []model.Scene
	for _, para := range paragraphs {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		i := len(scenes)
		scenes = append(scenes, model.Scene{
			Index:     i,
			Section:   sectionTag(i),
			Content:   para,
			Direction: placeholderDirection(para),
		})
	}

	if len(scenes) == 0 {
		scenes = []model.Scene{{
			Index:     0,
			Section:   sectionTag(0),
			Content:   trimmed,
			Direction: placeholderDirection(trimmed),
		}}
	}
	return scenes, nil
}

func sectionTag(index int) string {
	return fmt.Sprintf("scene-%d", index+1)
}

// placeholderDirection builds a generic visual direction from the scene
// text, used when neither a plan nor explicit directions are available.
func placeholderDirection(content string) string {
	words := strings.Fields(content)
	if len(words) > 8 {
		words = words[:8]
	}
	return fmt.Sprintf("B-roll footage matching: %s", strings.Join(words, " "))
}

func nonEmptyLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
