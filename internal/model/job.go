package model

import "time"

// Job represents a background job in the system
type Job struct {
	ID          string     `json:"id"`
	Type        string     `json:"type"`
	Status      JobStatus  `json:"status"`
	Progress    int        `json:"progress"`
	CurrentStep string     `json:"currentStep,omitempty"`
	Error       *string    `json:"error,omitempty"`
	Payload     []byte     `json:"-"` // Stored as JSON
	Result      []byte     `json:"-"` // Stored as JSON
	CreatedAt   time.Time  `json:"createdAt"`
	StartedAt   *time.Time `json:"startedAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	RetryCount  int        `json:"retryCount"`
}

// Job types
const (
	JobTypeProduction = "production"
)

// ProductionJobPayload contains the data for a production run
type ProductionJobPayload struct {
	ProductionID     string     `json:"productionId"`
	Title            string     `json:"title,omitempty"`
	Script           string     `json:"script"`
	VisualDirections []string   `json:"visualDirections,omitempty"`
	PlanID           string     `json:"planId,omitempty"`
	Style            VideoStyle `json:"style,omitempty"`
	Platform         Platform   `json:"platform,omitempty"`
	Voice            string     `json:"voice,omitempty"`
	VoiceID          string     `json:"voiceId,omitempty"`
	IncludeMusic     bool       `json:"includeMusic"`
	MusicPrompt      string     `json:"musicPrompt,omitempty"`
	Watermark        *Watermark `json:"watermark,omitempty"`
	Brief            string     `json:"brief,omitempty"`
}
