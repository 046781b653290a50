// Package router đăng ký các route thuộc domain ContentBlock:
// CRUD chung và các endpoint vòng đời (status, attach-plan, schedule, replace-from).
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	blockhdl "campaign_planner/internal/api/contentblock/handler"
	"campaign_planner/internal/api/middleware"
	apirouter "campaign_planner/internal/api/router"
)

// Register đăng ký tất cả route ContentBlock lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	blockHandler, err := blockhdl.NewContentBlockHandler()
	if err != nil {
		return fmt.Errorf("create content block handler: %w", err)
	}

	prefix := "/content-blocks"
	r.RegisterCRUDRoutes(v1, prefix, blockHandler, apirouter.ReadWriteConfig)

	auth := []fiber.Handler{middleware.AuthMiddleware()}
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "PATCH", "/:id/status", auth, blockHandler.HandleUpdateStatus)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "PATCH", "/:id/attach-plan", auth, blockHandler.HandleAttachPlan)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "PATCH", "/:id/schedule", auth, blockHandler.HandleSchedule)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "POST", "/:id/replace-from/:sourceId", auth, blockHandler.HandleReplaceFrom)

	return nil
}
