package model

import "time"

// ProductionStartRequest represents the request body to start a production
type ProductionStartRequest struct {
	Title            string     `json:"title" validate:"omitempty,max=200"`
	Script           string     `json:"script" validate:"required,min=1"`
	VisualDirections []string   `json:"visualDirections" validate:"omitempty,dive,min=1"`
	PlanID           string     `json:"planId" validate:"omitempty,uuid"`
	Style            VideoStyle `json:"style" validate:"omitempty,oneof=cinematic documentary energetic minimal retail"`
	Platform         Platform   `json:"platform" validate:"omitempty,oneof=youtube tiktok instagram web"`
	Voice            string     `json:"voice" validate:"omitempty,max=100"`
	VoiceID          string     `json:"voiceId" validate:"omitempty,max=100"`
	IncludeMusic     bool       `json:"includeMusic"`
	MusicPrompt      string     `json:"musicPrompt" validate:"omitempty,max=500"`
	Watermark        *Watermark `json:"watermark" validate:"omitempty"`
	Brief            string     `json:"brief" validate:"omitempty,max=2000"`
}

// ProductionStartResponse represents the response after queuing a production
type ProductionStartResponse struct {
	ProductionID string    `json:"productionId"`
	JobID        string    `json:"jobId"`
	Status       JobStatus `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ProductionStatusResponse represents the status of a production run
type ProductionStatusResponse struct {
	ProductionID string            `json:"productionId"`
	JobID        string            `json:"jobId"`
	Status       ProductionStatus  `json:"status"`
	JobStatus    JobStatus         `json:"jobStatus"`
	Progress     int               `json:"progress"`
	CurrentStep  string            `json:"currentStep,omitempty"`
	Phases       []ProductionPhase `json:"phases"`
	Error        *string           `json:"error,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
	StartedAt    *time.Time        `json:"startedAt,omitempty"`
	CompletedAt  *time.Time        `json:"completedAt,omitempty"`
}

// ProductionResultResponse is the completed production record
type ProductionResultResponse struct {
	Production *VideoProduction `json:"production"`
}

// ProductionLogsResponse lists the audit trail of a run
type ProductionLogsResponse struct {
	ProductionID string          `json:"productionId"`
	Logs         []ProductionLog `json:"logs"`
}

// ProductionCancelResponse represents cancel confirmation
type ProductionCancelResponse struct {
	Success      bool      `json:"success"`
	ProductionID string    `json:"productionId"`
	Status       JobStatus `json:"status"`
}
