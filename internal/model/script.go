package model

// ScriptGenerateRequest represents the request body for script generation
type ScriptGenerateRequest struct {
	Topic    string     `json:"topic" validate:"required,min=3,max=300"`
	Keywords []string   `json:"keywords" validate:"omitempty,max=10,dive,min=1"`
	Duration int        `json:"duration" validate:"omitempty,min=15,max=600"`
	Style    VideoStyle `json:"style" validate:"omitempty,oneof=cinematic documentary energetic minimal retail"`
}

// ScriptGenerateResponse represents the generated script
type ScriptGenerateResponse struct {
	Script     string      `json:"script"`
	VisualPlan *VisualPlan `json:"visualPlan,omitempty"`
}

// SuggestVisualsRequest represents the request body for visual suggestions
type SuggestVisualsRequest struct {
	Script   string     `json:"script" validate:"required,min=1"`
	Title    string     `json:"title" validate:"omitempty,max=200"`
	Style    VideoStyle `json:"style" validate:"omitempty,oneof=cinematic documentary energetic minimal retail"`
	Platform Platform   `json:"platform" validate:"omitempty,oneof=youtube tiktok instagram web"`
}

// SuggestVisualsResponse carries the generated plan, already moved into
// review so the user can pick alternatives.
type SuggestVisualsResponse struct {
	VisualPlan *VisualPlan `json:"visualPlan"`
}

// PlanSelectRequest records the user's alternative pick for one section
type PlanSelectRequest struct {
	SectionIndex  int    `json:"sectionIndex" validate:"min=0"`
	AlternativeID string `json:"alternativeId" validate:"required"`
}

// PlanResponse wraps a visual plan
type PlanResponse struct {
	VisualPlan *VisualPlan `json:"visualPlan"`
}
