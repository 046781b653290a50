// Package plandto chứa DTO cho domain Plan.
// File: dto.plan.go - giữ tên cấu trúc cũ (dto.<domain>.<entity>.go).
package plandto

import (
	planmodels "campaign_planner/internal/api/plan/models"
)

// PlanCreateInput là input để tạo Plan
type PlanCreateInput struct {
	UserID  string `json:"userId" validate:"required" transform:"str_objectid,map=UserID"`
	BrandID string `json:"brandId" validate:"required" transform:"str_objectid,map=BrandID"`

	Name      string `json:"name" validate:"required,max=200"`
	Objective string `json:"objective" validate:"required,oneof=brand_awareness lead_generation sales_conversion audience_growth product_launch seasonal_campaign"`

	// "YYYY-MM-DD"; endDate do server suy ra, không nhận từ client
	StartDate     string `json:"startDate" validate:"required" transform:"str_time,map=StartDate,format=2006-01-02"`
	DurationWeeks int    `json:"durationWeeks" validate:"required,min=1,max=52"`

	PromotionIntensity   string                          `json:"promotionIntensity,omitempty" validate:"omitempty,oneof=low balanced aggressive"`
	PostingFrequency     int                             `json:"postingFrequency,omitempty" validate:"omitempty,min=1,max=14"`
	Platforms            []string                        `json:"platforms" validate:"required,min=1,dive,oneof=tiktok instagram youtube facebook linkedin"`
	ProductIDs           []string                        `json:"productIds,omitempty"`
	ContentMixPreference planmodels.ContentMixPreference `json:"contentMixPreference,omitempty"`
}

// PlanUpdateInput là input để cập nhật metadata của Plan.
// Không nhận endDate, status hay phases: endDate luôn suy ra, status và phases
// đi qua các endpoint vòng đời riêng.
type PlanUpdateInput struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,max=200"`
	Objective *string `json:"objective,omitempty" validate:"omitempty,oneof=brand_awareness lead_generation sales_conversion audience_growth product_launch seasonal_campaign"`

	StartDate     *string `json:"startDate,omitempty"` // "YYYY-MM-DD"
	DurationWeeks *int    `json:"durationWeeks,omitempty" validate:"omitempty,min=1,max=52"`

	PromotionIntensity   *string                          `json:"promotionIntensity,omitempty" validate:"omitempty,oneof=low balanced aggressive"`
	PostingFrequency     *int                             `json:"postingFrequency,omitempty" validate:"omitempty,min=1,max=14"`
	Platforms            *[]string                        `json:"platforms,omitempty" validate:"omitempty,min=1,dive,oneof=tiktok instagram youtube facebook linkedin"`
	ProductIDs           *[]string                        `json:"productIds,omitempty"`
	ContentMixPreference *planmodels.ContentMixPreference `json:"contentMixPreference,omitempty"`
}

// CampaignCopyInput là input cho PATCH /:id/campaign-copy
type CampaignCopyInput struct {
	CampaignSlogan *string `json:"campaignSlogan,omitempty" validate:"omitempty,max=300"`
	LaunchHeadline *string `json:"launchHeadline,omitempty" validate:"omitempty,max=300"`
}
