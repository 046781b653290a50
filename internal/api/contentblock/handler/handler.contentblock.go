// Package blockhdl chứa HTTP handler cho domain ContentBlock.
// File: handler.contentblock.go - giữ tên cấu trúc cũ (handler.<domain>.<entity>.go).
package blockhdl

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "campaign_planner/internal/api/base/handler"
	blockdto "campaign_planner/internal/api/contentblock/dto"
	blockmodels "campaign_planner/internal/api/contentblock/models"
	blocksvc "campaign_planner/internal/api/contentblock/service"
	"campaign_planner/internal/common"
	"campaign_planner/internal/logger"
)

// ContentBlockHandler xử lý các request liên quan đến ContentBlock
type ContentBlockHandler struct {
	basehdl.BaseHandler[blockmodels.ContentBlock, blockdto.ContentBlockCreateInput, blockdto.ContentBlockUpdateInput]
	blockService *blocksvc.ContentBlockService
}

// NewContentBlockHandler tạo mới ContentBlockHandler
func NewContentBlockHandler() (*ContentBlockHandler, error) {
	blockService, err := blocksvc.NewContentBlockService()
	if err != nil {
		return nil, fmt.Errorf("failed to create content block service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[blockmodels.ContentBlock, blockdto.ContentBlockCreateInput, blockdto.ContentBlockUpdateInput](blockService)
	h := &ContentBlockHandler{
		BaseHandler:  *baseHandler,
		blockService: blockService,
	}
	return h, nil
}

// requestScope lấy id từ params và user id từ token đã xác thực.
func (h *ContentBlockHandler) requestScope(c fiber.Ctx) (primitive.ObjectID, primitive.ObjectID, error) {
	blockID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID,
			common.NewError(common.ErrCodeValidationFormat, "ID không đúng định dạng ObjectID", common.StatusBadRequest, err)
	}
	userIDStr, _ := c.Locals("user_id").(string)
	userID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, common.ErrTokenInvalid
	}
	return blockID, userID, nil
}

// HandleUpdateStatus xử lý PATCH /content-blocks/:id/status
func (h *ContentBlockHandler) HandleUpdateStatus(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		blockID, userID, err := h.requestScope(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input blockdto.UpdateStatusInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, prevStatus, err := h.blockService.UpdateStatus(c.Context(), blockID, userID, input.Status)
		if err == nil {
			logger.LogLifecycle("content_block", blockID.Hex(), prevStatus, input.Status, c)
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleAttachPlan xử lý PATCH /content-blocks/:id/attach-plan
func (h *ContentBlockHandler) HandleAttachPlan(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		blockID, userID, err := h.requestScope(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input blockdto.AttachPlanInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		planID, err := primitive.ObjectIDFromHex(input.PlanID)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "planId không đúng định dạng ObjectID", common.StatusBadRequest, err))
			return nil
		}
		var phaseID *primitive.ObjectID
		if input.PlanPhaseID != "" {
			id, err := primitive.ObjectIDFromHex(input.PlanPhaseID)
			if err != nil {
				h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "planPhaseId không đúng định dạng ObjectID", common.StatusBadRequest, err))
				return nil
			}
			phaseID = &id
		}

		data, err := h.blockService.AttachPlan(c.Context(), blockID, userID, planID, phaseID, input.PhaseLabel)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleSchedule xử lý PATCH /content-blocks/:id/schedule
func (h *ContentBlockHandler) HandleSchedule(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		blockID, userID, err := h.requestScope(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input blockdto.ScheduleInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		scheduledAt, err := time.Parse(time.RFC3339, input.ScheduledAt)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "scheduledAt phải theo định dạng RFC3339", common.StatusBadRequest, err))
			return nil
		}

		data, err := h.blockService.Schedule(c.Context(), blockID, userID, scheduledAt.UnixMilli())
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleReplaceFrom xử lý POST /content-blocks/:id/replace-from/:sourceId
func (h *ContentBlockHandler) HandleReplaceFrom(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		targetID, userID, err := h.requestScope(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		sourceID, err := primitive.ObjectIDFromHex(c.Params("sourceId"))
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "sourceId không đúng định dạng ObjectID", common.StatusBadRequest, err))
			return nil
		}

		data, err := h.blockService.ReplaceFrom(c.Context(), targetID, sourceID, userID)
		h.HandleResponse(c, data, err)
		return nil
	})
}
