package pipeline

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/shopstack/studio-api/internal/client"
	"github.com/shopstack/studio-api/internal/model"
)

// QualityThreshold is the fixed score gate applied to every evaluated
// asset, regardless of type.
const QualityThreshold = 70

// NeedsRegeneration is the literal quality-gate contract.
func NeedsRegeneration(score int) bool {
	return score < QualityThreshold
}

// ErrCanceled is returned by Run when the production was canceled at a
// step boundary.
var ErrCanceled = errors.New("production canceled")

// Evaluator scores the accumulated assets of a run.
type Evaluator interface {
	Evaluate(ctx context.Context, req *client.EvaluateRequest) (*client.EvaluateResponse, error)
}

// Assembler renders the final video from assets, audio and watermark.
type Assembler interface {
	Assemble(ctx context.Context, req *client.AssembleRequest) (*client.AssembleResponse, error)
}

// Options tunes a Runner. Zero values get sensible defaults.
type Options struct {
	// Provider name recorded on generated assets.
	Provider string
	// RegenDelay is the pause before each regeneration request.
	RegenDelay time.Duration
	// Rand drives replacement scores for regenerated assets.
	Rand *rand.Rand
	// Sleep is the delay hook; replaced in tests.
	Sleep func(ctx context.Context, d time.Duration) error
	// Canceled reports an external cancel signal, checked alongside ctx
	// at every suspension point. May be nil.
	Canceled func(ctx context.Context) bool
	// OnUpdate receives coarse progress after every mutation worth
	// showing the user. May be nil.
	OnUpdate func(p *model.VideoProduction, phase model.PhaseID, progress int, step string)
	// OnLog receives every appended audit line. May be nil.
	OnLog func(p *model.VideoProduction, entry model.ProductionLog)
}

// Runner drives one production run end to end through the five fixed
// phases. It owns the VideoProduction value for the duration of Run; all
// collaborators are invoked strictly sequentially, one request in flight
// at a time.
type Runner struct {
	media     client.MediaGenerator
	evaluator Evaluator
	composer  Assembler
	opts      Options
}

// NewRunner creates a pipeline runner. The media generator is required;
// evaluator and composer may be nil, degrading the way the matching phase
// documents.
func NewRunner(media client.MediaGenerator, evaluator Evaluator, composer Assembler, opts Options) *Runner {
	if opts.Provider == "" {
		opts.Provider = "media-service"
	}
	if opts.RegenDelay == 0 {
		opts.RegenDelay = 1500 * time.Millisecond
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Sleep == nil {
		opts.Sleep = func(ctx context.Context, d time.Duration) error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(d):
				return nil
			}
		}
	}
	return &Runner{
		media:     media,
		evaluator: evaluator,
		composer:  composer,
		opts:      opts,
	}
}

// Step is one entry of the run's step list. The list is finite, consumed
// once in order, and not restartable.
type Step struct {
	Phase    model.PhaseID
	Name     string
	Progress int // overall progress reached when the step completes
	Run      func(ctx context.Context) error
}

type run struct {
	r       *Runner
	p       *model.VideoProduction
	payload *model.ProductionJobPayload
	plan    *model.VisualPlan
	scenes  []model.Scene
}

// Steps builds the step list for one run. Exposed so tests can assert
// ordering without executing anything.
func (r *Runner) Steps(p *model.VideoProduction, payload *model.ProductionJobPayload, plan *model.VisualPlan) []Step {
	rn := &run{r: r, p: p, payload: payload, plan: plan}
	return []Step{
		{Phase: model.PhaseAnalyze, Name: "Analyzing script...", Progress: 10, Run: rn.analyze},
		{Phase: model.PhaseGenerate, Name: "Generating assets...", Progress: 70, Run: rn.generate},
		{Phase: model.PhaseEvaluate, Name: "Evaluating assets...", Progress: 80, Run: rn.evaluate},
		{Phase: model.PhaseIterate, Name: "Regenerating low-scoring assets...", Progress: 90, Run: rn.iterate},
		{Phase: model.PhaseAssemble, Name: "Assembling final video...", Progress: 100, Run: rn.assemble},
	}
}

// Run executes the full pipeline against the owned production value.
// Analyze failures abort the run; generation, evaluation and assembly
// failures degrade as documented per phase. Cancellation is honored at
// every step boundary and between individual generation requests.
func (r *Runner) Run(ctx context.Context, p *model.VideoProduction, payload *model.ProductionJobPayload, plan *model.VisualPlan) error {
	p.Status = model.ProductionStatusInProgress
	r.log(p, model.LogTypeInfo, model.PhaseAnalyze, "production started")

	reached := 0
	for _, step := range r.Steps(p, payload, plan) {
		if err := r.checkCancel(ctx); err != nil {
			r.log(p, model.LogTypeWarning, step.Phase, fmt.Sprintf("canceled before %s phase", step.Phase))
			p.Status = model.ProductionStatusFailed
			return err
		}

		r.beginPhase(p, step, reached)
		if err := step.Run(ctx); err != nil {
			if errors.Is(err, ErrCanceled) || errors.Is(err, context.Canceled) {
				r.log(p, model.LogTypeWarning, step.Phase, fmt.Sprintf("canceled during %s phase", step.Phase))
			} else {
				r.log(p, model.LogTypeError, step.Phase, fmt.Sprintf("%s phase failed: %v", step.Phase, err))
			}
			r.failPhase(p, step.Phase)
			p.Status = model.ProductionStatusFailed
			return err
		}
		// Phases may mark themselves skipped; anything still in progress
		// completed normally.
		if ph := p.Phase(step.Phase); ph != nil && ph.Status == model.PhaseStatusInProgress {
			r.completePhase(p, step.Phase)
		}
		reached = step.Progress
		r.update(p, step.Phase, step.Progress, step.Name)
	}

	now := time.Now()
	p.Status = model.ProductionStatusCompleted
	p.CompletedAt = &now
	r.log(p, model.LogTypeSuccess, model.PhaseAssemble,
		fmt.Sprintf("production completed with %d assets", len(p.Assets)))
	return nil
}

func (rn *run) analyze(ctx context.Context) error {
	scenes, err := AnalyzeScript(rn.payload.Script, rn.payload.VisualDirections, rn.plan)
	if err != nil {
		return err
	}
	rn.scenes = scenes
	rn.p.Scenes = scenes

	source := "blank-line segmentation"
	switch {
	case rn.plan != nil && len(rn.plan.Sections) > 0:
		source = "approved visual plan"
	case len(rn.payload.VisualDirections) > 0 && len(scenes) == len(rn.payload.VisualDirections):
		source = "paired visual directions"
	case len(scenes) == 1:
		source = "single-scene fallback"
	}
	rn.r.log(rn.p, model.LogTypeDecision, model.PhaseAnalyze,
		fmt.Sprintf("script analyzed into %d scenes (%s)", len(scenes), source))
	return nil
}

func (rn *run) generate(ctx context.Context) error {
	r, p := rn.r, rn.p

	// Voiceover first; the whole narration is one request.
	if err := r.checkCancel(ctx); err != nil {
		return err
	}
	vo, err := r.media.Voiceover(ctx, &client.VoiceoverRequest{
		Script:  rn.payload.Script,
		Voice:   rn.payload.Voice,
		VoiceID: rn.payload.VoiceID,
	})
	if err != nil {
		r.log(p, model.LogTypeWarning, model.PhaseGenerate,
			fmt.Sprintf("voiceover generation failed: %v — continuing without narration", err))
	} else {
		p.VoiceoverURL = vo.URL
		p.VoiceoverDuration = vo.Duration
		r.log(p, model.LogTypeGeneration, model.PhaseGenerate,
			fmt.Sprintf("voiceover generated (%.1fs)", vo.Duration))
	}

	// Per scene: three image variations, then one video clip. Requests go
	// out one at a time; a failed asset is logged and simply absent.
	clipDuration := MinSceneSeconds
	if p.VoiceoverDuration > 0 && len(rn.scenes) > 0 {
		if per := p.VoiceoverDuration / float64(len(rn.scenes)); per > clipDuration {
			clipDuration = per
		}
	}

	total := len(rn.scenes) * (len(model.ImageVariations) + 1)
	done := 0
	for _, scene := range rn.scenes {
		for _, variation := range model.ImageVariations {
			if err := r.checkCancel(ctx); err != nil {
				return err
			}
			img, err := r.media.GenerateImage(ctx, &client.GenerateImageRequest{
				Section:      scene.Section,
				SceneContent: scene.Content,
				Direction:    scene.Direction,
				Style:        string(rn.payload.Style),
				Variation:    string(variation),
			})
			done++
			if err != nil {
				r.log(p, model.LogTypeWarning, model.PhaseGenerate,
					fmt.Sprintf("%s image (%s) failed: %v", scene.Section, variation, err))
				continue
			}
			p.Assets = append(p.Assets, model.ProductionAsset{
				ID:       uuid.New().String(),
				Type:     imageAssetType(img.Source),
				Section:  scene.Section,
				URL:      img.URL,
				Provider: providerOr(img.Source, r.opts.Provider),
				Width:    img.Width,
				Height:   img.Height,
				Prompt:   imagePrompt(scene, variation),
				Status:   model.AssetStatusPending,
			})
			r.log(p, model.LogTypeGeneration, model.PhaseGenerate,
				fmt.Sprintf("%s image (%s) generated", scene.Section, variation))
			r.update(p, model.PhaseGenerate, 10+60*done/total, "Generating assets...")
		}

		if err := r.checkCancel(ctx); err != nil {
			return err
		}
		clip, err := r.media.GenerateVideo(ctx, &client.GenerateVideoRequest{
			Section:      scene.Section,
			SceneContent: scene.Content,
			Direction:    scene.Direction,
			Style:        string(rn.payload.Style),
			Duration:     clipDuration,
		})
		done++
		if err != nil {
			r.log(p, model.LogTypeWarning, model.PhaseGenerate,
				fmt.Sprintf("%s video clip failed: %v", scene.Section, err))
			continue
		}
		p.Assets = append(p.Assets, model.ProductionAsset{
			ID:       uuid.New().String(),
			Type:     model.AssetTypeVideo,
			Section:  scene.Section,
			URL:      clip.URL,
			Provider: providerOr(clip.Source, r.opts.Provider),
			Width:    clip.Width,
			Height:   clip.Height,
			Duration: clip.Duration,
			Prompt:   scene.Direction,
			Status:   model.AssetStatusPending,
		})
		r.log(p, model.LogTypeGeneration, model.PhaseGenerate,
			fmt.Sprintf("%s video clip generated", scene.Section))
		r.update(p, model.PhaseGenerate, 10+60*done/total, "Generating assets...")
	}

	if rn.payload.IncludeMusic {
		if err := r.checkCancel(ctx); err != nil {
			return err
		}
		prompt := rn.payload.MusicPrompt
		if prompt == "" {
			prompt = fmt.Sprintf("Background track for a %s promotional video", rn.payload.Style)
		}
		durationMs := 30000
		if p.VoiceoverDuration > 0 {
			durationMs = int(p.VoiceoverDuration * 1000)
		}
		music, err := r.media.GenerateMusic(ctx, &client.GenerateMusicRequest{
			Prompt:            prompt,
			DurationMs:        durationMs,
			ForceInstrumental: true,
		})
		if err != nil {
			r.log(p, model.LogTypeWarning, model.PhaseGenerate,
				fmt.Sprintf("music generation failed: %v — continuing without music", err))
		} else {
			p.MusicURL = music.URL
			r.log(p, model.LogTypeGeneration, model.PhaseGenerate, "music track generated")
		}
	}

	return nil
}

func (rn *run) evaluate(ctx context.Context) error {
	r, p := rn.r, rn.p

	if len(p.Assets) == 0 {
		r.log(p, model.LogTypeInfo, model.PhaseEvaluate, "no assets to evaluate")
		return nil
	}

	if r.evaluator == nil {
		r.log(p, model.LogTypeFallback, model.PhaseEvaluate,
			"no evaluator configured — continuing without scores")
		return nil
	}

	assets := make([]client.AssetForEval, 0, len(p.Assets))
	for _, a := range p.Assets {
		assets = append(assets, client.AssetForEval{
			ID:      a.ID,
			Type:    string(a.Type),
			Section: a.Section,
			URL:     a.URL,
			Prompt:  a.Prompt,
		})
	}

	resp, err := r.evaluator.Evaluate(ctx, &client.EvaluateRequest{
		ProductionID: p.ID,
		Brief:        rn.payload.Brief,
		Assets:       assets,
	})
	if err != nil {
		// Fail open: scoring is skipped, the phase still completes and no
		// iteration happens.
		r.log(p, model.LogTypeFallback, model.PhaseEvaluate,
			fmt.Sprintf("evaluation failed: %v — continuing without scores", err))
		return nil
	}

	scores := make(map[string]int, len(resp.Evaluations))
	for _, ev := range resp.Evaluations {
		scores[ev.Section] = ev.Score
	}

	for i := range p.Assets {
		score, ok := scores[p.Assets[i].Section]
		if !ok {
			continue
		}
		s := score
		p.Assets[i].Score = &s
		if !NeedsRegeneration(score) {
			p.Assets[i].Status = model.AssetStatusApproved
		}
	}

	r.log(p, model.LogTypeEvaluation, model.PhaseEvaluate,
		fmt.Sprintf("assets evaluated, overall score %d", resp.OverallScore))
	for _, ev := range resp.Evaluations {
		if NeedsRegeneration(ev.Score) {
			r.log(p, model.LogTypeDecision, model.PhaseEvaluate,
				fmt.Sprintf("%s scored %d — below quality gate, queued for regeneration", ev.Section, ev.Score))
		}
	}
	return nil
}

func (rn *run) iterate(ctx context.Context) error {
	r, p := rn.r, rn.p

	var failing []int
	for i := range p.Assets {
		if p.Assets[i].Score != nil && NeedsRegeneration(*p.Assets[i].Score) {
			failing = append(failing, i)
		}
	}

	if len(failing) == 0 {
		r.skipPhase(p, model.PhaseIterate)
		r.log(p, model.LogTypeDecision, model.PhaseIterate, "all assets passed the quality gate")
		return nil
	}

	scene := sceneByTag(rn.scenes)
	for _, i := range failing {
		if err := r.checkCancel(ctx); err != nil {
			return err
		}
		asset := p.Assets[i]
		if err := r.opts.Sleep(ctx, r.opts.RegenDelay); err != nil {
			return err
		}

		url, width, height, duration, err := rn.regenerate(ctx, asset, scene[asset.Section])
		if err != nil {
			r.log(p, model.LogTypeWarning, model.PhaseIterate,
				fmt.Sprintf("%s regeneration failed: %v — keeping original", asset.Section, err))
			continue
		}

		// One regeneration only; the replacement is accepted regardless of
		// its score, so it gets a fresh value above the gate.
		newScore := QualityThreshold + r.opts.Rand.Intn(100-QualityThreshold)
		replacement := asset
		replacement.URL = url
		replacement.Width = width
		replacement.Height = height
		if duration > 0 {
			replacement.Duration = duration
		}
		replacement.RegenCount = asset.RegenCount + 1
		replacement.Score = &newScore
		replacement.Status = model.AssetStatusApproved
		p.ReplaceAsset(asset.ID, replacement)

		r.log(p, model.LogTypeGeneration, model.PhaseIterate,
			fmt.Sprintf("%s regenerated, new score %d", asset.Section, newScore))
	}

	return nil
}

func (rn *run) regenerate(ctx context.Context, asset model.ProductionAsset, scene model.Scene) (url string, width, height int, duration float64, err error) {
	switch asset.Type {
	case model.AssetTypeVideo:
		clip, cerr := rn.r.media.GenerateVideo(ctx, &client.GenerateVideoRequest{
			Section:      asset.Section,
			SceneContent: scene.Content,
			Direction:    scene.Direction,
			Style:        string(rn.payload.Style),
			Duration:     asset.Duration,
		})
		if cerr != nil {
			return "", 0, 0, 0, cerr
		}
		return clip.URL, clip.Width, clip.Height, clip.Duration, nil
	default:
		img, cerr := rn.r.media.GenerateImage(ctx, &client.GenerateImageRequest{
			Section:      asset.Section,
			SceneContent: scene.Content,
			Direction:    scene.Direction,
			Style:        string(rn.payload.Style),
		})
		if cerr != nil {
			return "", 0, 0, 0, cerr
		}
		return img.URL, img.Width, img.Height, 0, nil
	}
}

func (rn *run) assemble(ctx context.Context) error {
	r, p := rn.r, rn.p

	if len(p.Assets) == 0 {
		r.log(p, model.LogTypeWarning, model.PhaseAssemble, "no assets available — nothing to assemble")
		return nil
	}

	// Unscored assets survive the run; approve them before composition.
	for i := range p.Assets {
		if p.Assets[i].Status == model.AssetStatusPending {
			p.Assets[i].Status = model.AssetStatusApproved
		}
	}

	if r.composer == nil {
		r.log(p, model.LogTypeFallback, model.PhaseAssemble,
			"no composer configured — assets remain available for manual download")
		return nil
	}

	timings := SceneTimings(p.VoiceoverDuration, p.Assets)
	resp, err := r.composer.Assemble(ctx, &client.AssembleRequest{
		ProductionID: p.ID,
		Assets:       p.Assets,
		VoiceoverURL: p.VoiceoverURL,
		MusicURL:     p.MusicURL,
		Watermark:    rn.payload.Watermark,
		SceneTimings: timings,
	})
	if err != nil {
		// Soft failure: the production still completes and the assets stay
		// visible for manual download.
		r.log(p, model.LogTypeWarning, model.PhaseAssemble,
			fmt.Sprintf("assembly failed: %v — assets remain available for manual download", err))
		return nil
	}

	p.OutputURL = resp.OutputURL()
	r.log(p, model.LogTypeSuccess, model.PhaseAssemble, "final video assembled")
	return nil
}

func (r *Runner) checkCancel(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	if r.opts.Canceled != nil && r.opts.Canceled(ctx) {
		return ErrCanceled
	}
	return nil
}

func (r *Runner) beginPhase(p *model.VideoProduction, step Step, reached int) {
	now := time.Now()
	status := model.PhaseStatusInProgress
	progress := 0
	p.AdvancePhase(step.Phase, model.PhaseUpdate{
		Status:    &status,
		Progress:  &progress,
		StartedAt: &now,
	})
	r.update(p, step.Phase, reached, step.Name)
}

func (r *Runner) completePhase(p *model.VideoProduction, id model.PhaseID) {
	now := time.Now()
	status := model.PhaseStatusCompleted
	progress := 100
	p.AdvancePhase(id, model.PhaseUpdate{
		Status:      &status,
		Progress:    &progress,
		CompletedAt: &now,
	})
}

func (r *Runner) skipPhase(p *model.VideoProduction, id model.PhaseID) {
	now := time.Now()
	status := model.PhaseStatusSkipped
	progress := 100
	p.AdvancePhase(id, model.PhaseUpdate{
		Status:      &status,
		Progress:    &progress,
		CompletedAt: &now,
	})
}

func (r *Runner) failPhase(p *model.VideoProduction, id model.PhaseID) {
	now := time.Now()
	status := model.PhaseStatusFailed
	p.AdvancePhase(id, model.PhaseUpdate{
		Status:      &status,
		CompletedAt: &now,
	})
}

func (r *Runner) log(p *model.VideoProduction, lt model.LogType, phase model.PhaseID, message string) {
	entry := model.ProductionLog{
		ID:        uuid.New().String(),
		Timestamp: time.Now(),
		Type:      lt,
		Message:   message,
		Phase:     phase,
	}
	p.AppendLog(entry)
	if r.opts.OnLog != nil {
		r.opts.OnLog(p, entry)
	}
}

func (r *Runner) update(p *model.VideoProduction, phase model.PhaseID, progress int, step string) {
	if r.opts.OnUpdate != nil {
		r.opts.OnUpdate(p, phase, progress, step)
	}
}

func imageAssetType(source string) model.AssetType {
	switch source {
	case "pexels", "unsplash", "stock":
		return model.AssetTypeImage
	default:
		return model.AssetTypeAIImage
	}
}

func providerOr(source, fallback string) string {
	if source != "" {
		return source
	}
	return fallback
}

func imagePrompt(scene model.Scene, variation model.ImageVariation) string {
	if variation == model.VariationBase {
		return scene.Direction
	}
	return fmt.Sprintf("%s (%s)", scene.Direction, variation)
}

func sceneByTag(scenes []model.Scene) map[string]model.Scene {
	m := make(map[string]model.Scene, len(scenes))
	for _, s := range scenes {
		m[s.Section] = s
	}
	return m
}
