// Package brandhdl chứa HTTP handler cho domain Brand.
// File: handler.brand.go - giữ tên cấu trúc cũ (handler.<domain>.<entity>.go).
package brandhdl

import (
	"fmt"

	basehdl "campaign_planner/internal/api/base/handler"
	branddto "campaign_planner/internal/api/brand/dto"
	brandmodels "campaign_planner/internal/api/brand/models"
	brandsvc "campaign_planner/internal/api/brand/service"
)

// BrandHandler xử lý các request liên quan đến Brand
type BrandHandler struct {
	basehdl.BaseHandler[brandmodels.Brand, branddto.BrandCreateInput, branddto.BrandUpdateInput]
}

// NewBrandHandler tạo mới BrandHandler
func NewBrandHandler() (*BrandHandler, error) {
	brandService, err := brandsvc.NewBrandService()
	if err != nil {
		return nil, fmt.Errorf("failed to create brand service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[brandmodels.Brand, branddto.BrandCreateInput, branddto.BrandUpdateInput](brandService)
	h := &BrandHandler{
		BaseHandler: *baseHandler,
	}
	return h, nil
}
