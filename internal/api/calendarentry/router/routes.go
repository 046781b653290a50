// Package router đăng ký các route thuộc domain CalendarEntry (chỉ đọc + dashboard).
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	calhdl "campaign_planner/internal/api/calendarentry/handler"
	"campaign_planner/internal/api/middleware"
	apirouter "campaign_planner/internal/api/router"
)

// Register đăng ký tất cả route CalendarEntry lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	entryHandler, err := calhdl.NewCalendarEntryHandler()
	if err != nil {
		return fmt.Errorf("create calendar entry handler: %w", err)
	}

	prefix := "/calendar-entries"
	r.RegisterCRUDRoutes(v1, prefix, entryHandler, apirouter.ReadOnlyConfig)

	auth := []fiber.Handler{middleware.AuthMiddleware()}
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "GET", "/dashboard/alerts", auth, entryHandler.HandleDashboardAlerts)

	return nil
}
