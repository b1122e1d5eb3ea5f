package pipeline

import "github.com/shopstack/studio-api/internal/model"

// MinSceneSeconds is the floor applied to every composed scene slot.
const MinSceneSeconds = 2.0

// SceneTimings divides the voiceover duration evenly across all assets,
// flooring each slot at MinSceneSeconds. Slots are laid out back to back,
// so the composed timeline may run longer than the voiceover when the
// floor kicks in.
func SceneTimings(voiceoverDuration float64, assets []model.ProductionAsset) []model.SceneTiming {
	if len(assets) == 0 {
		return nil
	}

	per := voiceoverDuration / float64(len(assets))
	if per < MinSceneSeconds {
		per = MinSceneSeconds
	}

	timings := make([]model.SceneTiming, 0, len(assets))
	start := 0.0
	for _, asset := range assets {
		timings = append(timings, model.SceneTiming{
			Section:  asset.Section,
			Start:    start,
			Duration: per,
		})
		start += per
	}
	return timings
}
