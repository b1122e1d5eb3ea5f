package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/shopstack/studio-api/internal/client"
	"github.com/shopstack/studio-api/internal/model"
)

const planTTL = 7 * 24 * time.Hour

// PlanService owns the visual plan approval state machine and its
// persistence. Plans move none → generated → under_review → approved;
// receipt of AI suggestions advances generated plans into review
// automatically, approval is always an explicit user action.
type PlanService struct {
	redis   *redis.Client
	scripts *ScriptService
}

func NewPlanService(redisClient *redis.Client, scripts *ScriptService) *PlanService {
	return &PlanService{
		redis:   redisClient,
		scripts: scripts,
	}
}

// Suggest generates a fresh plan for the script and stores it already
// moved into review.
func (s *PlanService) Suggest(ctx context.Context, req *model.SuggestVisualsRequest) (*model.VisualPlan, error) {
	wire, err := s.scripts.SuggestVisuals(ctx, req)
	if err != nil {
		return nil, err
	}

	plan := s.planFromWire(req.Script, req.Title, req.Style, req.Platform, wire)
	plan.MarkUnderReview()

	if err := s.save(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// CreateFromWire persists a plan that arrived as part of another response
// (script generation can return one alongside the script).
func (s *PlanService) CreateFromWire(ctx context.Context, script, title string, style model.VideoStyle, platform model.Platform, wire *client.VisualPlanWire) (*model.VisualPlan, error) {
	plan := s.planFromWire(script, title, style, platform, wire)
	plan.MarkUnderReview()

	if err := s.save(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// Get loads a plan by ID
func (s *PlanService) Get(ctx context.Context, planID string) (*model.VisualPlan, error) {
	data, err := s.redis.Get(ctx, fmt.Sprintf("plan:%s", planID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("plan not found")
		}
		return nil, err
	}

	var plan model.VisualPlan
	if err := json.Unmarshal(data, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// Approve marks the plan approved. Re-approving an approved plan leaves
// section selections untouched.
func (s *PlanService) Approve(ctx context.Context, planID string) (*model.VisualPlan, error) {
	plan, err := s.Get(ctx, planID)
	if err != nil {
		return nil, err
	}

	if err := plan.Approve(); err != nil {
		return nil, err
	}

	if err := s.save(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// Select records the user's alternative pick for one section
func (s *PlanService) Select(ctx context.Context, planID string, req *model.PlanSelectRequest) (*model.VisualPlan, error) {
	plan, err := s.Get(ctx, planID)
	if err != nil {
		return nil, err
	}

	if err := plan.SelectAlternative(req.SectionIndex, req.AlternativeID); err != nil {
		return nil, err
	}

	if err := s.save(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// Regenerate replaces the whole plan with fresh suggestions, discarding
// prior edits, and moves it back into review.
func (s *PlanService) Regenerate(ctx context.Context, planID string) (*model.VisualPlan, error) {
	plan, err := s.Get(ctx, planID)
	if err != nil {
		return nil, err
	}

	wire, err := s.scripts.SuggestVisuals(ctx, &model.SuggestVisualsRequest{
		Script:   plan.Script,
		Title:    plan.Title,
		Style:    plan.Style,
		Platform: plan.Platform,
	})
	if err != nil {
		return nil, err
	}

	plan.Reset(sectionsFromWire(wire))
	plan.MarkUnderReview()

	if err := s.save(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *PlanService) planFromWire(script, title string, style model.VideoStyle, platform model.Platform, wire *client.VisualPlanWire) *model.VisualPlan {
	now := time.Now()
	return &model.VisualPlan{
		ID:        uuid.New().String(),
		Title:     title,
		Status:    model.PlanStatusGenerated,
		Script:    script,
		Style:     style,
		Platform:  platform,
		Sections:  sectionsFromWire(wire),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func sectionsFromWire(wire *client.VisualPlanWire) []model.VisualSection {
	if wire == nil {
		return nil
	}
	sections := make([]model.VisualSection, 0, len(wire.Sections))
	for i, sec := range wire.Sections {
		tag := sec.Section
		if tag == "" {
			tag = fmt.Sprintf("scene-%d", i+1)
		}
		alts := make([]model.VisualAlternative, 0, len(sec.Alternatives))
		for _, alt := range sec.Alternatives {
			alts = append(alts, model.VisualAlternative{
				ID:        uuid.New().String(),
				Direction: alt.Direction,
				Mood:      alt.Mood,
			})
		}
		sections = append(sections, model.VisualSection{
			Index:        i,
			Section:      tag,
			Content:      sec.Content,
			Alternatives: alts,
		})
	}
	return sections
}

func (s *PlanService) save(ctx context.Context, plan *model.VisualPlan) error {
	data, err := json.Marshal(plan)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, fmt.Sprintf("plan:%s", plan.ID), data, planTTL).Err()
}
