package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/shopstack/studio-api/internal/model"
)

const (
	TaskTypeProduction = "production:process"

	jobTTL        = 24 * time.Hour
	productionTTL = 24 * time.Hour
)

// ProductionService handles production job management
type ProductionService struct {
	redis       *redis.Client
	asynqClient *asynq.Client
	plans       *PlanService
}

func NewProductionService(redisClient *redis.Client, asynqClient *asynq.Client, plans *PlanService) *ProductionService {
	return &ProductionService{
		redis:       redisClient,
		asynqClient: asynqClient,
		plans:       plans,
	}
}

// StartProduction queues a new production run. If the request references a
// visual plan, the plan must have been explicitly approved.
func (s *ProductionService) StartProduction(ctx context.Context, req *model.ProductionStartRequest) (*model.ProductionStartResponse, error) {
	if req.PlanID != "" {
		plan, err := s.plans.Get(ctx, req.PlanID)
		if err != nil {
			return nil, err
		}
		if plan.Status != model.PlanStatusApproved {
			return nil, fmt.Errorf("visual plan not approved")
		}
	}

	productionID := uuid.New().String()
	now := time.Now()

	job := &model.Job{
		ID:        productionID,
		Type:      model.JobTypeProduction,
		Status:    model.JobStatusQueued,
		Progress:  0,
		CreatedAt: now,
	}

	payload := &model.ProductionJobPayload{
		ProductionID:     productionID,
		Title:            req.Title,
		Script:           req.Script,
		VisualDirections: req.VisualDirections,
		PlanID:           req.PlanID,
		Style:            req.Style,
		Platform:         req.Platform,
		Voice:            req.Voice,
		VoiceID:          req.VoiceID,
		IncludeMusic:     req.IncludeMusic,
		MusicPrompt:      req.MusicPrompt,
		Watermark:        req.Watermark,
		Brief:            req.Brief,
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}
	job.Payload = payloadBytes

	production := model.NewProduction(productionID, req.Title)
	if err := s.SaveProduction(ctx, production); err != nil {
		return nil, fmt.Errorf("failed to save production: %w", err)
	}
	if err := s.saveJob(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to save job: %w", err)
	}

	task, err := newProductionTask(productionID, payloadBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	// A failed run is terminal; re-running is a user action, so no retries.
	_, err = s.asynqClient.Enqueue(task,
		asynq.Queue("production"),
		asynq.MaxRetry(0),
		asynq.Retention(jobTTL),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue task: %w", err)
	}

	return &model.ProductionStartResponse{
		ProductionID: productionID,
		JobID:        productionID,
		Status:       model.JobStatusQueued,
		CreatedAt:    now,
	}, nil
}

// GetStatus returns the current status of a production run
func (s *ProductionService) GetStatus(ctx context.Context, productionID string) (*model.ProductionStatusResponse, error) {
	job, err := s.getJob(ctx, productionID)
	if err != nil {
		return nil, err
	}

	resp := &model.ProductionStatusResponse{
		ProductionID: productionID,
		JobID:        job.ID,
		Status:       model.ProductionStatusPending,
		JobStatus:    job.Status,
		Progress:     job.Progress,
		CurrentStep:  job.CurrentStep,
		Error:        job.Error,
		CreatedAt:    job.CreatedAt,
		StartedAt:    job.StartedAt,
		CompletedAt:  job.CompletedAt,
	}

	if production, err := s.GetProduction(ctx, productionID); err == nil {
		resp.Status = production.Status
		resp.Phases = production.Phases
	}

	return resp, nil
}

// GetResult returns the full record of a completed production
func (s *ProductionService) GetResult(ctx context.Context, productionID string) (*model.ProductionResultResponse, error) {
	production, err := s.GetProduction(ctx, productionID)
	if err != nil {
		return nil, err
	}

	if production.Status != model.ProductionStatusCompleted {
		return nil, fmt.Errorf("production not completed")
	}

	return &model.ProductionResultResponse{Production: production}, nil
}

// GetLogs returns the audit trail of a run, regardless of its status
func (s *ProductionService) GetLogs(ctx context.Context, productionID string) (*model.ProductionLogsResponse, error) {
	production, err := s.GetProduction(ctx, productionID)
	if err != nil {
		return nil, err
	}

	return &model.ProductionLogsResponse{
		ProductionID: productionID,
		Logs:         production.Logs,
	}, nil
}

// Cancel marks a queued or running production as canceled. The worker
// observes the flag at its next step boundary; partial assets remain on
// the production record.
func (s *ProductionService) Cancel(ctx context.Context, productionID string) (*model.ProductionCancelResponse, error) {
	job, err := s.getJob(ctx, productionID)
	if err != nil {
		return nil, err
	}

	if job.Status == model.JobStatusSucceeded || job.Status == model.JobStatusFailed {
		return nil, fmt.Errorf("production already completed")
	}

	job.Status = model.JobStatusCanceled
	now := time.Now()
	job.CompletedAt = &now

	if err := s.saveJob(ctx, job); err != nil {
		return nil, err
	}

	return &model.ProductionCancelResponse{
		Success:      true,
		ProductionID: productionID,
		Status:       model.JobStatusCanceled,
	}, nil
}

// IsCanceled reports whether the job was canceled out-of-band. Used by the
// worker as its cancel signal between steps.
func (s *ProductionService) IsCanceled(ctx context.Context, productionID string) bool {
	job, err := s.getJob(ctx, productionID)
	if err != nil {
		return false
	}
	return job.Status == model.JobStatusCanceled
}

// UpdateJobProgress updates job progress (called by worker)
func (s *ProductionService) UpdateJobProgress(ctx context.Context, productionID string, progress int, step string) error {
	job, err := s.getJob(ctx, productionID)
	if err != nil {
		return err
	}

	job.Progress = progress
	job.CurrentStep = step

	if job.Status == model.JobStatusQueued {
		job.Status = model.JobStatusRunning
		now := time.Now()
		job.StartedAt = &now
	}

	return s.saveJob(ctx, job)
}

// CompleteJob marks the job as succeeded (called by worker)
func (s *ProductionService) CompleteJob(ctx context.Context, productionID string, result interface{}) error {
	job, err := s.getJob(ctx, productionID)
	if err != nil {
		return err
	}

	resultBytes, err := json.Marshal(result)
	if err != nil {
		return err
	}

	job.Status = model.JobStatusSucceeded
	job.Progress = 100
	job.Result = resultBytes
	now := time.Now()
	job.CompletedAt = &now

	return s.saveJob(ctx, job)
}

// FailJob marks the job as failed (called by worker)
func (s *ProductionService) FailJob(ctx context.Context, productionID string, errMsg string) error {
	job, err := s.getJob(ctx, productionID)
	if err != nil {
		return err
	}

	job.Status = model.JobStatusFailed
	job.Error = &errMsg
	now := time.Now()
	job.CompletedAt = &now

	return s.saveJob(ctx, job)
}

// SaveProduction persists a production snapshot (called by worker after
// every observable mutation)
func (s *ProductionService) SaveProduction(ctx context.Context, production *model.VideoProduction) error {
	data, err := json.Marshal(production)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, fmt.Sprintf("production:%s", production.ID), data, productionTTL).Err()
}

// GetProduction loads a production snapshot
func (s *ProductionService) GetProduction(ctx context.Context, productionID string) (*model.VideoProduction, error) {
	data, err := s.redis.Get(ctx, fmt.Sprintf("production:%s", productionID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("production not found")
		}
		return nil, err
	}

	var production model.VideoProduction
	if err := json.Unmarshal(data, &production); err != nil {
		return nil, err
	}
	return &production, nil
}

// Helper methods

func (s *ProductionService) saveJob(ctx context.Context, job *model.Job) error {
	data, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, fmt.Sprintf("job:%s", job.ID), data, jobTTL).Err()
}

func (s *ProductionService) getJob(ctx context.Context, jobID string) (*model.Job, error) {
	data, err := s.redis.Get(ctx, fmt.Sprintf("job:%s", jobID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("production not found")
		}
		return nil, err
	}

	var job model.Job
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func newProductionTask(productionID string, payload []byte) (*asynq.Task, error) {
	taskPayload := map[string]interface{}{
		"productionId": productionID,
		"payload":      payload,
	}
	data, err := json.Marshal(taskPayload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTypeProduction, data), nil
}
