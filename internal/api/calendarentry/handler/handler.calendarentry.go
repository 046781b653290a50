// Package calhdl chứa HTTP handler cho domain CalendarEntry.
// File: handler.calendarentry.go - giữ tên cấu trúc cũ (handler.<domain>.<entity>.go).
package calhdl

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "campaign_planner/internal/api/base/handler"
	calmodels "campaign_planner/internal/api/calendarentry/models"
	calsvc "campaign_planner/internal/api/calendarentry/service"
	"campaign_planner/internal/common"
)

// CalendarEntryHandler xử lý các request liên quan đến CalendarEntry.
// Entry do scheduler tạo, API chỉ đọc; model dùng luôn làm kiểu input cho base handler.
type CalendarEntryHandler struct {
	basehdl.BaseHandler[calmodels.CalendarEntry, calmodels.CalendarEntry, calmodels.CalendarEntry]
	entryService *calsvc.CalendarEntryService
}

// NewCalendarEntryHandler tạo mới CalendarEntryHandler
func NewCalendarEntryHandler() (*CalendarEntryHandler, error) {
	entryService, err := calsvc.NewCalendarEntryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar entry service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[calmodels.CalendarEntry, calmodels.CalendarEntry, calmodels.CalendarEntry](entryService)
	h := &CalendarEntryHandler{
		BaseHandler:  *baseHandler,
		entryService: entryService,
	}
	return h, nil
}

// HandleDashboardAlerts xử lý GET /calendar-entries/dashboard/alerts?brandId=...&at=<RFC3339>
// Phân loại entry scheduled của brand thành upcoming (48h tới) và missed theo mốc at.
func (h *CalendarEntryHandler) HandleDashboardAlerts(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		brandID, err := primitive.ObjectIDFromHex(c.Query("brandId"))
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "brandId không đúng định dạng ObjectID", common.StatusBadRequest, err))
			return nil
		}

		at, err := time.Parse(time.RFC3339, c.Query("at"))
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "Tham số at phải theo định dạng RFC3339", common.StatusBadRequest, err))
			return nil
		}

		userIDStr, _ := c.Locals("user_id").(string)
		userID, err := primitive.ObjectIDFromHex(userIDStr)
		if err != nil {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		entries, err := h.entryService.FindScheduledByBrand(c.Context(), brandID, userID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, calsvc.ClassifyEntries(entries, at.UTC()), nil)
		return nil
	})
}
