package handler

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/shopstack/studio-api/internal/client"
	"github.com/shopstack/studio-api/internal/model"
	"github.com/shopstack/studio-api/internal/service"
	"github.com/shopstack/studio-api/pkg/response"
)

type ProductionHandler struct {
	service   *service.ProductionService
	composer  *client.ComposeClient
	storage   client.StorageClient
	validator *validator.Validate
}

func NewProductionHandler(svc *service.ProductionService, composer *client.ComposeClient, storage client.StorageClient, v *validator.Validate) *ProductionHandler {
	return &ProductionHandler{
		service:   svc,
		composer:  composer,
		storage:   storage,
		validator: v,
	}
}

// Start handles POST /api/productions/start
// @Summary      Start production
// @Description  Queue an asynchronous video production run for a script. A referenced visual plan must be approved.
// @Tags         Productions
// @Accept       json
// @Produce      json
// @Param        request body model.ProductionStartRequest true "Production start request"
// @Success      202 {object} model.ProductionStartResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      401 {object} response.ErrorResponse
// @Failure      409 {object} response.ErrorResponse
// @Failure      429 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Security     BearerAuth
// @Router       /api/productions/start [post]
func (h *ProductionHandler) Start(c *fiber.Ctx) error {
	var req model.ProductionStartRequest
	if err := c.BodyParser(&req); err != nil {
		return response.ValidationError(c, "Invalid request body", nil)
	}

	if err := h.validator.Struct(&req); err != nil {
		return response.ValidationError(c, "Validation failed", formatValidationErrors(err))
	}

	result, err := h.service.StartProduction(c.Context(), &req)
	if err != nil {
		if err.Error() == "plan not found" {
			return response.NotFound(c, "Plan not found")
		}
		if err.Error() == "visual plan not approved" {
			return response.Conflict(c, "Visual plan not approved")
		}
		return response.ServiceError(c, err.Error())
	}

	return response.Accepted(c, result)
}

// Status handles GET /api/productions/status/:productionId
// @Summary      Get production status
// @Description  Get the phase breakdown and progress of a production run
// @Tags         Productions
// @Produce      json
// @Param        productionId path string true "Production ID"
// @Success      200 {object} model.ProductionStatusResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      401 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Security     BearerAuth
// @Router       /api/productions/status/{productionId} [get]
func (h *ProductionHandler) Status(c *fiber.Ctx) error {
	productionID := c.Params("productionId")
	if productionID == "" {
		return response.ValidationError(c, "Production ID is required", nil)
	}

	result, err := h.service.GetStatus(c.Context(), productionID)
	if err != nil {
		if err.Error() == "production not found" {
			return response.NotFound(c, "Production not found")
		}
		return response.ServiceError(c, err.Error())
	}

	return response.OK(c, result)
}

// Result handles GET /api/productions/result/:productionId
// @Summary      Get production result
// @Description  Get the full record of a completed production including assets, timings and output URL
// @Tags         Productions
// @Produce      json
// @Param        productionId path string true "Production ID"
// @Success      200 {object} model.ProductionResultResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      401 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Security     BearerAuth
// @Router       /api/productions/result/{productionId} [get]
func (h *ProductionHandler) Result(c *fiber.Ctx) error {
	productionID := c.Params("productionId")
	if productionID == "" {
		return response.ValidationError(c, "Production ID is required", nil)
	}

	result, err := h.service.GetResult(c.Context(), productionID)
	if err != nil {
		if err.Error() == "production not found" {
			return response.NotFound(c, "Production not found")
		}
		if err.Error() == "production not completed" {
			return response.ValidationError(c, "Production not completed yet", nil)
		}
		return response.ServiceError(c, err.Error())
	}

	return response.OK(c, result)
}

// Logs handles GET /api/productions/logs/:productionId
// @Summary      Get production logs
// @Description  Get the full audit trail of a production run, regardless of its status
// @Tags         Productions
// @Produce      json
// @Param        productionId path string true "Production ID"
// @Success      200 {object} model.ProductionLogsResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      401 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Security     BearerAuth
// @Router       /api/productions/logs/{productionId} [get]
func (h *ProductionHandler) Logs(c *fiber.Ctx) error {
	productionID := c.Params("productionId")
	if productionID == "" {
		return response.ValidationError(c, "Production ID is required", nil)
	}

	result, err := h.service.GetLogs(c.Context(), productionID)
	if err != nil {
		if err.Error() == "production not found" {
			return response.NotFound(c, "Production not found")
		}
		return response.ServiceError(c, err.Error())
	}

	return response.OK(c, result)
}

// Cancel handles POST /api/productions/cancel/:productionId
// @Summary      Cancel production
// @Description  Cancel a running or queued production. The worker stops at the next step boundary; generated assets stay on the record.
// @Tags         Productions
// @Produce      json
// @Param        productionId path string true "Production ID"
// @Success      200 {object} model.ProductionCancelResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      401 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      409 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Security     BearerAuth
// @Router       /api/productions/cancel/{productionId} [post]
func (h *ProductionHandler) Cancel(c *fiber.Ctx) error {
	productionID := c.Params("productionId")
	if productionID == "" {
		return response.ValidationError(c, "Production ID is required", nil)
	}

	result, err := h.service.Cancel(c.Context(), productionID)
	if err != nil {
		if err.Error() == "production not found" {
			return response.NotFound(c, "Production not found")
		}
		if err.Error() == "production already completed" {
			return response.Conflict(c, "Production already completed")
		}
		return response.ServiceError(c, err.Error())
	}

	return response.OK(c, result)
}

// Download handles GET /api/productions/download/:productionId
// @Summary      Download final video
// @Description  Stream the assembled video through the composer, or redirect to the stored output URL
// @Tags         Productions
// @Produce      video/mp4
// @Param        productionId path string true "Production ID"
// @Success      200 {file} binary
// @Success      302
// @Failure      400 {object} response.ErrorResponse
// @Failure      401 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      429 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Security     BearerAuth
// @Router       /api/productions/download/{productionId} [get]
func (h *ProductionHandler) Download(c *fiber.Ctx) error {
	productionID := c.Params("productionId")
	if productionID == "" {
		return response.ValidationError(c, "Production ID is required", nil)
	}

	production, err := h.service.GetProduction(c.Context(), productionID)
	if err != nil {
		return response.NotFound(c, "Production not found")
	}

	if production.OutputURL == "" {
		return response.NotFound(c, "No output available for this production")
	}

	if h.composer != nil && h.composer.IsConfigured() {
		body, contentType, err := h.composer.Download(c.Context(), productionID)
		if err == nil {
			if contentType == "" {
				contentType = "video/mp4"
			}
			c.Set("Content-Type", contentType)
			c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.mp4"`, productionID))
			return c.SendStream(body)
		}
	}

	// Archived outputs live in R2; hand out a short-lived signed URL
	key := client.OutputKey(productionID)
	if h.storage != nil && production.OutputURL == h.storage.GetPublicURL(key) {
		if url, err := h.storage.GetSignedURL(c.Context(), key, time.Hour); err == nil {
			return c.Redirect(url, fiber.StatusFound)
		}
	}

	return c.Redirect(production.OutputURL, fiber.StatusFound)
}
