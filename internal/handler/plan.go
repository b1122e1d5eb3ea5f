package handler

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/shopstack/studio-api/internal/model"
	"github.com/shopstack/studio-api/internal/service"
	"github.com/shopstack/studio-api/pkg/response"
)

type PlanHandler struct {
	service   *service.PlanService
	validator *validator.Validate
}

func NewPlanHandler(svc *service.PlanService, v *validator.Validate) *PlanHandler {
	return &PlanHandler{
		service:   svc,
		validator: v,
	}
}

// Get handles GET /api/plans/:planId
// @Summary      Get visual plan
// @Description  Get a visual plan with its sections, alternatives and approval status
// @Tags         Plans
// @Produce      json
// @Param        planId path string true "Plan ID"
// @Success      200 {object} model.PlanResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      401 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Security     BearerAuth
// @Router       /api/plans/{planId} [get]
func (h *PlanHandler) Get(c *fiber.Ctx) error {
	planID := c.Params("planId")
	if planID == "" {
		return response.ValidationError(c, "Plan ID is required", nil)
	}

	plan, err := h.service.Get(c.Context(), planID)
	if err != nil {
		if err.Error() == "plan not found" {
			return response.NotFound(c, "Plan not found")
		}
		return response.ServiceError(c, err.Error())
	}

	return response.OK(c, &model.PlanResponse{VisualPlan: plan})
}

// Approve handles POST /api/plans/:planId/approve
// @Summary      Approve visual plan
// @Description  Approve a plan under review so productions can reference it. Approving an already approved plan is a no-op.
// @Tags         Plans
// @Produce      json
// @Param        planId path string true "Plan ID"
// @Success      200 {object} model.PlanResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      401 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      409 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Security     BearerAuth
// @Router       /api/plans/{planId}/approve [post]
func (h *PlanHandler) Approve(c *fiber.Ctx) error {
	planID := c.Params("planId")
	if planID == "" {
		return response.ValidationError(c, "Plan ID is required", nil)
	}

	plan, err := h.service.Approve(c.Context(), planID)
	if err != nil {
		if err.Error() == "plan not found" {
			return response.NotFound(c, "Plan not found")
		}
		if strings.Contains(err.Error(), "cannot be approved") {
			return response.Conflict(c, err.Error())
		}
		return response.ServiceError(c, err.Error())
	}

	return response.OK(c, &model.PlanResponse{VisualPlan: plan})
}

// Select handles POST /api/plans/:planId/select
// @Summary      Select plan alternative
// @Description  Pick an alternative for one section. Editing an approved plan moves it back under review.
// @Tags         Plans
// @Accept       json
// @Produce      json
// @Param        planId path string true "Plan ID"
// @Param        request body model.PlanSelectRequest true "Alternative selection"
// @Success      200 {object} model.PlanResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      401 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Security     BearerAuth
// @Router       /api/plans/{planId}/select [post]
func (h *PlanHandler) Select(c *fiber.Ctx) error {
	planID := c.Params("planId")
	if planID == "" {
		return response.ValidationError(c, "Plan ID is required", nil)
	}

	var req model.PlanSelectRequest
	if err := c.BodyParser(&req); err != nil {
		return response.ValidationError(c, "Invalid request body", nil)
	}

	if err := h.validator.Struct(&req); err != nil {
		return response.ValidationError(c, "Validation failed", formatValidationErrors(err))
	}

	plan, err := h.service.Select(c.Context(), planID, &req)
	if err != nil {
		if err.Error() == "plan not found" {
			return response.NotFound(c, "Plan not found")
		}
		if strings.Contains(err.Error(), "out of range") || strings.Contains(err.Error(), "not found in section") {
			return response.ValidationError(c, err.Error(), nil)
		}
		return response.ServiceError(c, err.Error())
	}

	return response.OK(c, &model.PlanResponse{VisualPlan: plan})
}

// Regenerate handles POST /api/plans/:planId/regenerate
// @Summary      Regenerate visual plan
// @Description  Replace all sections with freshly suggested alternatives and move the plan back under review
// @Tags         Plans
// @Produce      json
// @Param        planId path string true "Plan ID"
// @Success      200 {object} model.PlanResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      401 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      502 {object} response.ErrorResponse
// @Security     BearerAuth
// @Router       /api/plans/{planId}/regenerate [post]
func (h *PlanHandler) Regenerate(c *fiber.Ctx) error {
	planID := c.Params("planId")
	if planID == "" {
		return response.ValidationError(c, "Plan ID is required", nil)
	}

	plan, err := h.service.Regenerate(c.Context(), planID)
	if err != nil {
		if err.Error() == "plan not found" {
			return response.NotFound(c, "Plan not found")
		}
		return response.AIError(c, err.Error())
	}

	return response.OK(c, &model.PlanResponse{VisualPlan: plan})
}
