// Package branddto chứa DTO cho domain Brand.
// File: dto.brand.go - giữ tên cấu trúc cũ (dto.<domain>.<entity>.go).
package branddto

import (
	brandmodels "campaign_planner/internal/api/brand/models"
)

// BrandCreateInput là input để tạo Brand
type BrandCreateInput struct {
	UserID             string                       `json:"userId" validate:"required" transform:"str_objectid,map=UserID"` // Chủ sở hữu brand
	Name               string                       `json:"name" validate:"required,max=200"`                               // Tên brand (unique theo user)
	Description        string                       `json:"description,omitempty" validate:"omitempty,max=1000"`
	Tone               string                       `json:"tone" validate:"required,oneof=professional friendly bold educational luxury playful"` // Giọng điệu
	Audience           brandmodels.BrandAudience    `json:"audience,omitempty"`
	Platforms          []string                     `json:"platforms" validate:"omitempty,dive,oneof=tiktok instagram youtube facebook linkedin"` // Nền tảng mục tiêu
	ContentPillars     []string                     `json:"contentPillars" validate:"omitempty,max=5,dive,max=100"`                               // Tối đa 5 pillar
	MainGoal           string                       `json:"mainGoal,omitempty" validate:"omitempty,max=200"`
	ContentMix         brandmodels.BrandContentMix  `json:"contentMix,omitempty"`
	PromotionIntensity string                       `json:"promotionIntensity,omitempty" validate:"omitempty,oneof=low balanced aggressive"`
	SmartRotation      brandmodels.RotationPolicy   `json:"smartRotation,omitempty"`
}

// BrandUpdateInput là input để cập nhật Brand
type BrandUpdateInput struct {
	Name               *string                      `json:"name,omitempty" validate:"omitempty,max=200"`
	Description        *string                      `json:"description,omitempty" validate:"omitempty,max=1000"`
	Tone               *string                      `json:"tone,omitempty" validate:"omitempty,oneof=professional friendly bold educational luxury playful"`
	Audience           *brandmodels.BrandAudience   `json:"audience,omitempty"`
	Platforms          *[]string                    `json:"platforms,omitempty" validate:"omitempty,dive,oneof=tiktok instagram youtube facebook linkedin"`
	ContentPillars     *[]string                    `json:"contentPillars,omitempty" validate:"omitempty,max=5,dive,max=100"`
	MainGoal           *string                      `json:"mainGoal,omitempty" validate:"omitempty,max=200"`
	ContentMix         *brandmodels.BrandContentMix `json:"contentMix,omitempty"`
	PromotionIntensity *string                      `json:"promotionIntensity,omitempty" validate:"omitempty,oneof=low balanced aggressive"`
	SmartRotation      *brandmodels.RotationPolicy  `json:"smartRotation,omitempty"`
}
