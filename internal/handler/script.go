package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/shopstack/studio-api/internal/model"
	"github.com/shopstack/studio-api/internal/service"
	"github.com/shopstack/studio-api/pkg/response"
)

type ScriptHandler struct {
	scripts   *service.ScriptService
	plans     *service.PlanService
	validator *validator.Validate
}

func NewScriptHandler(scripts *service.ScriptService, plans *service.PlanService, v *validator.Validate) *ScriptHandler {
	return &ScriptHandler{
		scripts:   scripts,
		plans:     plans,
		validator: v,
	}
}

// Generate handles POST /api/script/generate
// @Summary      Generate script
// @Description  Generate a product video script from a topic, with an optional visual plan draft
// @Tags         Script
// @Accept       json
// @Produce      json
// @Param        request body model.ScriptGenerateRequest true "Script generation request"
// @Success      200 {object} model.ScriptGenerateResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      401 {object} response.ErrorResponse
// @Failure      429 {object} response.ErrorResponse
// @Failure      502 {object} response.ErrorResponse
// @Security     BearerAuth
// @Router       /api/script/generate [post]
func (h *ScriptHandler) Generate(c *fiber.Ctx) error {
	var req model.ScriptGenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return response.ValidationError(c, "Invalid request body", nil)
	}

	if err := h.validator.Struct(&req); err != nil {
		return response.ValidationError(c, "Validation failed", formatValidationErrors(err))
	}

	script, wire, err := h.scripts.GenerateScript(c.Context(), &req)
	if err != nil {
		return response.AIError(c, err.Error())
	}

	result := &model.ScriptGenerateResponse{Script: script}
	if wire != nil {
		plan, err := h.plans.CreateFromWire(c.Context(), script, req.Topic, req.Style, "", wire)
		if err != nil {
			return response.ServiceError(c, err.Error())
		}
		result.VisualPlan = plan
	}

	return response.OK(c, result)
}

// SuggestVisuals handles POST /api/script/suggest-visuals
// @Summary      Suggest visuals
// @Description  Generate a visual plan with per-scene alternatives for an existing script
// @Tags         Script
// @Accept       json
// @Produce      json
// @Param        request body model.SuggestVisualsRequest true "Visual suggestion request"
// @Success      200 {object} model.SuggestVisualsResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      401 {object} response.ErrorResponse
// @Failure      429 {object} response.ErrorResponse
// @Failure      502 {object} response.ErrorResponse
// @Security     BearerAuth
// @Router       /api/script/suggest-visuals [post]
func (h *ScriptHandler) SuggestVisuals(c *fiber.Ctx) error {
	var req model.SuggestVisualsRequest
	if err := c.BodyParser(&req); err != nil {
		return response.ValidationError(c, "Invalid request body", nil)
	}

	if err := h.validator.Struct(&req); err != nil {
		return response.ValidationError(c, "Validation failed", formatValidationErrors(err))
	}

	plan, err := h.plans.Suggest(c.Context(), &req)
	if err != nil {
		return response.AIError(c, err.Error())
	}

	return response.OK(c, &model.SuggestVisualsResponse{VisualPlan: plan})
}

// formatValidationErrors formats validator errors for response
func formatValidationErrors(err error) interface{} {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		errors := make(map[string]string)
		for _, e := range validationErrors {
			errors[e.Field()] = e.Tag()
		}
		return errors
	}
	return nil
}
