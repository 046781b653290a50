// Package planhdl chứa HTTP handler cho domain Plan.
// File: handler.plan.go - giữ tên cấu trúc cũ (handler.<domain>.<entity>.go).
package planhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "campaign_planner/internal/api/base/handler"
	plandto "campaign_planner/internal/api/plan/dto"
	planmodels "campaign_planner/internal/api/plan/models"
	plansvc "campaign_planner/internal/api/plan/service"
	"campaign_planner/internal/common"
	"campaign_planner/internal/logger"
)

// PlanHandler xử lý các request liên quan đến Plan
type PlanHandler struct {
	basehdl.BaseHandler[planmodels.Plan, plandto.PlanCreateInput, plandto.PlanUpdateInput]
	planService *plansvc.PlanService
}

// NewPlanHandler tạo mới PlanHandler
func NewPlanHandler() (*PlanHandler, error) {
	planService, err := plansvc.NewPlanService()
	if err != nil {
		return nil, fmt.Errorf("failed to create plan service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[planmodels.Plan, plandto.PlanCreateInput, plandto.PlanUpdateInput](planService)
	h := &PlanHandler{
		BaseHandler: *baseHandler,
		planService: planService,
	}
	return h, nil
}

// requestScope lấy id từ params và user id từ token đã xác thực.
func (h *PlanHandler) requestScope(c fiber.Ctx) (primitive.ObjectID, primitive.ObjectID, error) {
	planID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID,
			common.NewError(common.ErrCodeValidationFormat, "ID không đúng định dạng ObjectID", common.StatusBadRequest, err)
	}
	userIDStr, _ := c.Locals("user_id").(string)
	userID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, common.ErrTokenInvalid
	}
	return planID, userID, nil
}

// UpdateById che phương thức generic: metadata đi qua service để giữ các ràng buộc
// (chặn plan completed, tính lại endDate).
func (h *PlanHandler) UpdateById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		planID, userID, err := h.requestScope(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input plandto.PlanUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.planService.UpdateMetadata(c.Context(), planID, userID, &input)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// DeleteById che phương thức generic: xóa plan kèm toàn bộ calendar entry.
func (h *PlanHandler) DeleteById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		planID, userID, err := h.requestScope(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.planService.DeleteWithCalendar(c.Context(), planID, userID)
		h.HandleResponse(c, fiber.Map{"deleted": err == nil}, err)
		return nil
	})
}

// HandleGenerateStructure xử lý POST /plans/:id/generate-structure
func (h *PlanHandler) HandleGenerateStructure(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		planID, userID, err := h.requestScope(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.planService.GenerateStructure(c.Context(), planID, userID)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleActivate xử lý POST /plans/:id/activate
func (h *PlanHandler) HandleActivate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		planID, userID, err := h.requestScope(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.planService.Activate(c.Context(), planID, userID)
		if err == nil {
			logger.LogLifecycle("plan", planID.Hex(), planmodels.PlanStatusDraft, planmodels.PlanStatusActive, c)
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleConvertToCalendar xử lý POST /plans/:id/convert-to-calendar
func (h *PlanHandler) HandleConvertToCalendar(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		planID, userID, err := h.requestScope(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.planService.ConvertToCalendar(c.Context(), planID, userID)
		if err == nil {
			logger.LogAction("plan_convert_calendar", c, map[string]interface{}{
				"plan_id":     planID.Hex(),
				"entry_count": len(data),
			})
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleRegenerate xử lý POST /plans/:id/regenerate
func (h *PlanHandler) HandleRegenerate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		planID, userID, err := h.requestScope(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.planService.Regenerate(c.Context(), planID, userID)
		if err == nil {
			logger.LogAction("plan_regenerate", c, map[string]interface{}{"plan_id": planID.Hex()})
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleGetCalendar xử lý GET /plans/:id/calendar
func (h *PlanHandler) HandleGetCalendar(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		planID, userID, err := h.requestScope(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.planService.GetCalendar(c.Context(), planID, userID)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleUpdateCampaignCopy xử lý PATCH /plans/:id/campaign-copy
func (h *PlanHandler) HandleUpdateCampaignCopy(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		planID, userID, err := h.requestScope(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input plandto.CampaignCopyInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.planService.UpdateCampaignCopy(c.Context(), planID, userID, &input)
		h.HandleResponse(c, data, err)
		return nil
	})
}
