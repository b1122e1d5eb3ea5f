package model

import "time"

// VideoProduction is the full record of one production run. It is owned by
// the worker goroutine driving the run; handlers only ever see snapshots
// loaded from Redis.
type VideoProduction struct {
	ID                string            `json:"id"`
	Title             string            `json:"title,omitempty"`
	Status            ProductionStatus  `json:"status"`
	Phases            []ProductionPhase `json:"phases"`
	Logs              []ProductionLog   `json:"logs"`
	Assets            []ProductionAsset `json:"assets"`
	Scenes            []Scene           `json:"scenes,omitempty"`
	VoiceoverURL      string            `json:"voiceoverUrl,omitempty"`
	VoiceoverDuration float64           `json:"voiceoverDuration,omitempty"`
	MusicURL          string            `json:"musicUrl,omitempty"`
	OutputURL         string            `json:"outputUrl,omitempty"`
	CreatedAt         time.Time         `json:"createdAt"`
	UpdatedAt         time.Time         `json:"updatedAt"`
	CompletedAt       *time.Time        `json:"completedAt,omitempty"`
}

// ProductionPhase tracks one of the five fixed stages of a run.
type ProductionPhase struct {
	ID          PhaseID     `json:"id"`
	Status      PhaseStatus `json:"status"`
	Progress    int         `json:"progress"`
	StartedAt   *time.Time  `json:"startedAt,omitempty"`
	CompletedAt *time.Time  `json:"completedAt,omitempty"`
}

// ProductionAsset is a generated image, clip or audio attached to a scene.
type ProductionAsset struct {
	ID         string      `json:"id"`
	Type       AssetType   `json:"type"`
	Section    string      `json:"section"`
	URL        string      `json:"url"`
	Provider   string      `json:"provider,omitempty"`
	Width      int         `json:"width,omitempty"`
	Height     int         `json:"height,omitempty"`
	Duration   float64     `json:"duration,omitempty"`
	Prompt     string      `json:"prompt,omitempty"`
	Status     AssetStatus `json:"status"`
	RegenCount int         `json:"regenCount"`
	Score      *int        `json:"score,omitempty"`
}

// ProductionLog is an append-only audit line; never mutated after creation.
type ProductionLog struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Type      LogType   `json:"type"`
	Message   string    `json:"message"`
	Phase     PhaseID   `json:"phase,omitempty"`
}

// Scene is one segment of the script paired with a visual direction.
type Scene struct {
	Index     int    `json:"index"`
	Section   string `json:"section"`
	Content   string `json:"content"`
	Direction string `json:"direction"`
}

// SceneTiming is the per-asset slot sent to the composer.
type SceneTiming struct {
	Section  string  `json:"section"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// Watermark is forwarded to the composer unmodified.
type Watermark struct {
	ImageURL string  `json:"imageUrl" validate:"required,url"`
	Position string  `json:"position" validate:"omitempty,oneof=top-left top-right bottom-left bottom-right center"`
	Opacity  float64 `json:"opacity" validate:"omitempty,gt=0,lte=1"`
}

// NewProduction builds a pending production with all five phases pending.
func NewProduction(id, title string) *VideoProduction {
	now := time.Now()
	phases := make([]ProductionPhase, 0, len(PhaseOrder))
	for _, pid := range PhaseOrder {
		phases = append(phases, ProductionPhase{ID: pid, Status: PhaseStatusPending})
	}
	return &VideoProduction{
		ID:        id,
		Title:     title,
		Status:    ProductionStatusPending,
		Phases:    phases,
		Logs:      []ProductionLog{},
		Assets:    []ProductionAsset{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// PhaseUpdate is a partial update merged into a phase by AdvancePhase.
// Nil fields are left untouched.
type PhaseUpdate struct {
	Status      *PhaseStatus
	Progress    *int
	StartedAt   *time.Time
	CompletedAt *time.Time
}

// AdvancePhase merges a partial update into the named phase and bumps the
// production's UpdatedAt. Ordering is caller-driven; no check is made that
// the previous phase completed.
func (p *VideoProduction) AdvancePhase(id PhaseID, upd PhaseUpdate) {
	for i := range p.Phases {
		if p.Phases[i].ID != id {
			continue
		}
		if upd.Status != nil {
			p.Phases[i].Status = *upd.Status
		}
		if upd.Progress != nil {
			p.Phases[i].Progress = *upd.Progress
		}
		if upd.StartedAt != nil {
			p.Phases[i].StartedAt = upd.StartedAt
		}
		if upd.CompletedAt != nil {
			p.Phases[i].CompletedAt = upd.CompletedAt
		}
		break
	}
	p.UpdatedAt = time.Now()
}

// Phase returns the phase record for the given id, or nil.
func (p *VideoProduction) Phase(id PhaseID) *ProductionPhase {
	for i := range p.Phases {
		if p.Phases[i].ID == id {
			return &p.Phases[i]
		}
	}
	return nil
}

// AppendLog adds an audit line. Existing entries are never touched.
func (p *VideoProduction) AppendLog(entry ProductionLog) {
	p.Logs = append(p.Logs, entry)
	p.UpdatedAt = time.Now()
}

// ReplaceAsset swaps the asset with the given ID for its regenerated
// version, keeping its position in the list.
func (p *VideoProduction) ReplaceAsset(assetID string, replacement ProductionAsset) bool {
	for i := range p.Assets {
		if p.Assets[i].ID == assetID {
			p.Assets[i] = replacement
			p.UpdatedAt = time.Now()
			return true
		}
	}
	return false
}
