package model

// Production status
type ProductionStatus string

const (
	ProductionStatusPending    ProductionStatus = "pending"
	ProductionStatusInProgress ProductionStatus = "in_progress"
	ProductionStatusCompleted  ProductionStatus = "completed"
	ProductionStatusFailed     ProductionStatus = "failed"
)

// Phase identifiers
type PhaseID string

const (
	PhaseAnalyze  PhaseID = "analyze"
	PhaseGenerate PhaseID = "generate"
	PhaseEvaluate PhaseID = "evaluate"
	PhaseIterate  PhaseID = "iterate"
	PhaseAssemble PhaseID = "assemble"
)

// PhaseOrder is the fixed execution order of production phases.
var PhaseOrder = []PhaseID{
	PhaseAnalyze, PhaseGenerate, PhaseEvaluate, PhaseIterate, PhaseAssemble,
}

// Phase status
type PhaseStatus string

const (
	PhaseStatusPending    PhaseStatus = "pending"
	PhaseStatusInProgress PhaseStatus = "in_progress"
	PhaseStatusCompleted  PhaseStatus = "completed"
	PhaseStatusSkipped    PhaseStatus = "skipped"
	PhaseStatusFailed     PhaseStatus = "failed"
)

// Asset types
type AssetType string

const (
	AssetTypeImage   AssetType = "image"
	AssetTypeAIImage AssetType = "ai_image"
	AssetTypeVideo   AssetType = "video"
)

var ValidAssetTypes = []AssetType{
	AssetTypeImage, AssetTypeAIImage, AssetTypeVideo,
}

// Asset status
type AssetStatus string

const (
	AssetStatusPending  AssetStatus = "pending"
	AssetStatusApproved AssetStatus = "approved"
)

// Log entry types
type LogType string

const (
	LogTypeDecision   LogType = "decision"
	LogTypeGeneration LogType = "generation"
	LogTypeEvaluation LogType = "evaluation"
	LogTypeSuccess    LogType = "success"
	LogTypeError      LogType = "error"
	LogTypeFallback   LogType = "fallback"
	LogTypeWarning    LogType = "warning"
	LogTypeInfo       LogType = "info"
)

var ValidLogTypes = []LogType{
	LogTypeDecision, LogTypeGeneration, LogTypeEvaluation, LogTypeSuccess,
	LogTypeError, LogTypeFallback, LogTypeWarning, LogTypeInfo,
}

// Visual plan status
type PlanStatus string

const (
	PlanStatusNone        PlanStatus = "none"
	PlanStatusGenerated   PlanStatus = "generated"
	PlanStatusUnderReview PlanStatus = "under_review"
	PlanStatusApproved    PlanStatus = "approved"
)

// Image variations requested per scene during the generate phase
type ImageVariation string

const (
	VariationBase    ImageVariation = "base"
	VariationCloseUp ImageVariation = "close-up"
	VariationWide    ImageVariation = "wide"
)

// ImageVariations is the fixed set requested for every scene.
var ImageVariations = []ImageVariation{
	VariationBase, VariationCloseUp, VariationWide,
}

// Video styles
type VideoStyle string

const (
	StyleCinematic   VideoStyle = "cinematic"
	StyleDocumentary VideoStyle = "documentary"
	StyleEnergetic   VideoStyle = "energetic"
	StyleMinimal     VideoStyle = "minimal"
	StyleRetail      VideoStyle = "retail"
)

var ValidVideoStyles = []VideoStyle{
	StyleCinematic, StyleDocumentary, StyleEnergetic, StyleMinimal, StyleRetail,
}

// Target platforms
type Platform string

const (
	PlatformYouTube   Platform = "youtube"
	PlatformTikTok    Platform = "tiktok"
	PlatformInstagram Platform = "instagram"
	PlatformWeb       Platform = "web"
)

// Job status
type JobStatus string

const (
	JobStatusQueued    JobStatus = "queued"
	JobStatusRunning   JobStatus = "running"
	JobStatusSucceeded JobStatus = "succeeded"
	JobStatusFailed    JobStatus = "failed"
	JobStatusCanceled  JobStatus = "canceled"
)
