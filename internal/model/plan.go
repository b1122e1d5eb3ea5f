package model

import (
	"fmt"
	"time"
)

// VisualPlan maps script scenes to AI-suggested visual directions. The user
// must approve the plan before a production referencing it may start.
type VisualPlan struct {
	ID        string          `json:"id"`
	Title     string          `json:"title,omitempty"`
	Status    PlanStatus      `json:"status"`
	Script    string          `json:"script"`
	Style     VideoStyle      `json:"style,omitempty"`
	Platform  Platform        `json:"platform,omitempty"`
	Sections  []VisualSection `json:"sections"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// VisualSection is one scene of the plan with its suggested alternatives.
type VisualSection struct {
	Index        int                 `json:"index"`
	Section      string              `json:"section"`
	Content      string              `json:"content"`
	Alternatives []VisualAlternative `json:"alternatives"`
	SelectedID   string              `json:"selectedId,omitempty"`
}

// VisualAlternative is one AI-suggested visual direction for a scene.
type VisualAlternative struct {
	ID        string `json:"id"`
	Direction string `json:"direction"`
	Mood      string `json:"mood,omitempty"`
}

// Selected returns the chosen alternative for the section. Falls back to
// the first alternative when none was explicitly selected.
func (s *VisualSection) Selected() *VisualAlternative {
	for i := range s.Alternatives {
		if s.Alternatives[i].ID == s.SelectedID {
			return &s.Alternatives[i]
		}
	}
	if len(s.Alternatives) > 0 {
		return &s.Alternatives[0]
	}
	return nil
}

// MarkUnderReview moves a freshly generated plan into review. This happens
// automatically on receipt of AI suggestions.
func (p *VisualPlan) MarkUnderReview() {
	if p.Status == PlanStatusGenerated {
		p.Status = PlanStatusUnderReview
		p.UpdatedAt = time.Now()
	}
}

// Approve moves the plan to approved. Re-approving an already approved plan
// is a no-op so section selections are left unchanged.
func (p *VisualPlan) Approve() error {
	switch p.Status {
	case PlanStatusApproved:
		return nil
	case PlanStatusUnderReview:
		p.Status = PlanStatusApproved
		p.UpdatedAt = time.Now()
		return nil
	default:
		return fmt.Errorf("plan %s cannot be approved from status %s", p.ID, p.Status)
	}
}

// SelectAlternative records the user's pick for one section. Editing keeps
// the plan under review; an approved plan drops back to review and must be
// re-approved.
func (p *VisualPlan) SelectAlternative(sectionIndex int, alternativeID string) error {
	if sectionIndex < 0 || sectionIndex >= len(p.Sections) {
		return fmt.Errorf("section index %d out of range", sectionIndex)
	}
	sec := &p.Sections[sectionIndex]
	found := false
	for _, alt := range sec.Alternatives {
		if alt.ID == alternativeID {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("alternative %s not found in section %d", alternativeID, sectionIndex)
	}
	sec.SelectedID = alternativeID
	if p.Status == PlanStatusApproved {
		p.Status = PlanStatusUnderReview
	}
	p.UpdatedAt = time.Now()
	return nil
}

// Reset discards prior edits and replaces the sections, returning the plan
// to the generated state. Used when the whole plan is regenerated.
func (p *VisualPlan) Reset(sections []VisualSection) {
	p.Sections = sections
	p.Status = PlanStatusGenerated
	p.UpdatedAt = time.Now()
}
