// Package router đăng ký các route thuộc domain Plan: CRUD giới hạn
// và các endpoint vòng đời (generate-structure, activate, convert, regenerate...).
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"campaign_planner/internal/api/middleware"
	planhdl "campaign_planner/internal/api/plan/handler"
	apirouter "campaign_planner/internal/api/router"
)

// planCRUDConfig giới hạn CRUD generic: update và delete chỉ đi qua các route
// theo id đã được che bằng logic vòng đời, không mở update/delete hàng loạt.
var planCRUDConfig = apirouter.CRUDConfig{
	InsOne: true,
	Find:   true, FindOne: true, FindById: true,
	FindIds: true, Paginate: true,
	UpdById: true,
	DelById: true,
	Count:   true, Exists: true,
}

// Register đăng ký tất cả route Plan lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	planHandler, err := planhdl.NewPlanHandler()
	if err != nil {
		return fmt.Errorf("create plan handler: %w", err)
	}

	prefix := "/plans"
	r.RegisterCRUDRoutes(v1, prefix, planHandler, planCRUDConfig)

	auth := []fiber.Handler{middleware.AuthMiddleware()}
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "POST", "/:id/generate-structure", auth, planHandler.HandleGenerateStructure)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "POST", "/:id/activate", auth, planHandler.HandleActivate)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "POST", "/:id/convert-to-calendar", auth, planHandler.HandleConvertToCalendar)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "POST", "/:id/regenerate", auth, planHandler.HandleRegenerate)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "GET", "/:id/calendar", auth, planHandler.HandleGetCalendar)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "PATCH", "/:id/campaign-copy", auth, planHandler.HandleUpdateCampaignCopy)

	return nil
}
