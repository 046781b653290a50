// Package router đăng ký các route thuộc domain Brand (CRUD).
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	brandhdl "campaign_planner/internal/api/brand/handler"
	apirouter "campaign_planner/internal/api/router"
)

// Register đăng ký tất cả route Brand lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	brandHandler, err := brandhdl.NewBrandHandler()
	if err != nil {
		return fmt.Errorf("create brand handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/brands", brandHandler, apirouter.ReadWriteConfig)
	return nil
}
