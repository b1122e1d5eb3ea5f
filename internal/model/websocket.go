package model

// WebSocket message types
const (
	WSMessageTypeProgress = "progress"
	WSMessageTypeLog      = "log"
	WSMessageTypeComplete = "complete"
	WSMessageTypeError    = "error"
	WSMessageTypePing     = "ping"
	WSMessageTypePong     = "pong"
)

// WSMessage represents a generic WebSocket message
type WSMessage struct {
	Type string `json:"type"`
}

// WSProgressMessage represents a progress update for a running production
type WSProgressMessage struct {
	Type         string    `json:"type"`
	ProductionID string    `json:"productionId"`
	Phase        PhaseID   `json:"phase,omitempty"`
	Progress     int       `json:"progress"`
	Status       JobStatus `json:"status"`
	CurrentStep  string    `json:"currentStep,omitempty"`
}

// WSLogMessage streams one audit line to the UI log panel
type WSLogMessage struct {
	Type         string        `json:"type"`
	ProductionID string        `json:"productionId"`
	Entry        ProductionLog `json:"entry"`
}

// WSCompleteMessage represents production completion
type WSCompleteMessage struct {
	Type         string      `json:"type"`
	ProductionID string      `json:"productionId"`
	Result       interface{} `json:"result"`
}

// WSErrorMessage represents a failed run
type WSErrorMessage struct {
	Type         string  `json:"type"`
	ProductionID string  `json:"productionId"`
	Error        WSError `json:"error"`
}

// WSError represents error details
type WSError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
