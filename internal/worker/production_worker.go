package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/hibiken/asynq"

	"github.com/shopstack/studio-api/internal/client"
	"github.com/shopstack/studio-api/internal/model"
	"github.com/shopstack/studio-api/internal/pipeline"
	"github.com/shopstack/studio-api/internal/service"
	"github.com/shopstack/studio-api/internal/websocket"
)

// ProductionWorker processes video production jobs
type ProductionWorker struct {
	productions *service.ProductionService
	plans       *service.PlanService
	media       *client.MediaClient
	script      *client.ScriptClient
	composer    *client.ComposeClient
	storage     client.StorageClient
	hub         *websocket.Hub
}

// NewProductionWorker creates a new production worker. Media, script,
// composer and storage clients may be unconfigured; mock collaborators
// take over for each one that is.
func NewProductionWorker(
	productions *service.ProductionService,
	plans *service.PlanService,
	mediaClient *client.MediaClient,
	scriptClient *client.ScriptClient,
	composeClient *client.ComposeClient,
	storage client.StorageClient,
	hub *websocket.Hub,
) *ProductionWorker {
	return &ProductionWorker{
		productions: productions,
		plans:       plans,
		media:       mediaClient,
		script:      scriptClient,
		composer:    composeClient,
		storage:     storage,
		hub:         hub,
	}
}

// ProcessTask handles production task processing
func (w *ProductionWorker) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var taskPayload struct {
		ProductionID string          `json:"productionId"`
		Payload      json.RawMessage `json:"payload"`
	}

	if err := json.Unmarshal(t.Payload(), &taskPayload); err != nil {
		return fmt.Errorf("failed to unmarshal task payload: %w", err)
	}

	productionID := taskPayload.ProductionID
	log.Printf("Starting production: %s", productionID)

	var payload model.ProductionJobPayload
	if err := json.Unmarshal(taskPayload.Payload, &payload); err != nil {
		w.failJob(ctx, productionID, "Invalid payload")
		return fmt.Errorf("failed to unmarshal production payload: %w", err)
	}

	production, err := w.productions.GetProduction(ctx, productionID)
	if err != nil {
		w.failJob(ctx, productionID, "Production record not found")
		return fmt.Errorf("failed to load production %s: %w", productionID, err)
	}

	var plan *model.VisualPlan
	if payload.PlanID != "" {
		plan, err = w.plans.Get(ctx, payload.PlanID)
		if err != nil {
			w.failJob(ctx, productionID, "Visual plan not found")
			return fmt.Errorf("failed to load plan %s: %w", payload.PlanID, err)
		}
	}

	runner := pipeline.NewRunner(w.mediaGenerator(), w.evaluator(), w.assembler(), pipeline.Options{
		Canceled: func(ctx context.Context) bool {
			return w.productions.IsCanceled(ctx, productionID)
		},
		OnUpdate: func(p *model.VideoProduction, phase model.PhaseID, progress int, step string) {
			if err := w.productions.SaveProduction(ctx, p); err != nil {
				log.Printf("Failed to save production snapshot: %v", err)
			}
			if err := w.productions.UpdateJobProgress(ctx, p.ID, progress, step); err != nil {
				log.Printf("Failed to update progress: %v", err)
			}
			w.hub.BroadcastProgress(p.ID, phase, progress, model.JobStatusRunning, step)
		},
		OnLog: func(p *model.VideoProduction, entry model.ProductionLog) {
			w.hub.BroadcastLog(p.ID, entry)
		},
	})

	runErr := runner.Run(ctx, production, &payload, plan)

	// Persist the final state regardless of how the run ended
	if err := w.productions.SaveProduction(ctx, production); err != nil {
		log.Printf("Failed to save final production state: %v", err)
	}

	if runErr != nil {
		if errors.Is(runErr, pipeline.ErrCanceled) || errors.Is(runErr, context.Canceled) {
			log.Printf("Production %s canceled", productionID)
			return nil
		}
		w.failJob(ctx, productionID, runErr.Error())
		return runErr
	}

	w.archiveOutput(ctx, production)

	result := &model.ProductionResultResponse{Production: production}
	if err := w.productions.CompleteJob(ctx, productionID, result); err != nil {
		w.failJob(ctx, productionID, "Failed to save result")
		return err
	}

	w.hub.BroadcastComplete(productionID, result)

	log.Printf("Production %s completed", productionID)
	return nil
}

// archiveOutput copies the assembled video from the composer into R2 so
// the output outlives the composer's scratch storage. Best effort; the
// composer URL stays on the record when archival is unavailable.
func (w *ProductionWorker) archiveOutput(ctx context.Context, production *model.VideoProduction) {
	if production.OutputURL == "" {
		return
	}
	if w.storage == nil {
		return
	}
	if w.composer == nil || !w.composer.IsConfigured() {
		return
	}

	body, contentType, err := w.composer.Download(ctx, production.ID)
	if err != nil {
		log.Printf("Failed to download output for %s: %v", production.ID, err)
		return
	}
	defer body.Close()

	url, err := w.storage.Upload(ctx, client.OutputKey(production.ID), body, contentType)
	if err != nil {
		log.Printf("Failed to archive output for %s: %v", production.ID, err)
		return
	}

	production.OutputURL = url
	if err := w.productions.SaveProduction(ctx, production); err != nil {
		log.Printf("Failed to save archived output URL: %v", err)
	}
}

func (w *ProductionWorker) mediaGenerator() client.MediaGenerator {
	if w.media != nil && w.media.IsConfigured() {
		return w.media
	}
	log.Printf("Media service not configured, using mock generator")
	return &mockMedia{}
}

func (w *ProductionWorker) evaluator() pipeline.Evaluator {
	if w.script != nil && w.script.IsConfigured() {
		return w.script
	}
	log.Printf("Script service not configured, using mock evaluator")
	return &mockEvaluator{}
}

func (w *ProductionWorker) assembler() pipeline.Assembler {
	if w.composer != nil && w.composer.IsConfigured() {
		return w.composer
	}
	log.Printf("Composer service not configured, using mock assembler")
	return &mockComposer{}
}

func (w *ProductionWorker) failJob(ctx context.Context, productionID, errMsg string) {
	if err := w.productions.FailJob(ctx, productionID, errMsg); err != nil {
		log.Printf("Failed to mark job as failed: %v", err)
	}
	w.hub.BroadcastError(productionID, "PRODUCTION_FAILED", errMsg)
}
