// Package models - Plan, Phase và ContentItem nhúng thuộc domain Plan.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái vòng đời của Plan
const (
	PlanStatusDraft     = "draft"
	PlanStatusActive    = "active"
	PlanStatusCompleted = "completed"
)

// Mục tiêu chiến dịch
const (
	ObjectiveBrandAwareness   = "brand_awareness"
	ObjectiveLeadGeneration   = "lead_generation"
	ObjectiveSalesConversion  = "sales_conversion"
	ObjectiveAudienceGrowth   = "audience_growth"
	ObjectiveProductLaunch    = "product_launch"
	ObjectiveSeasonalCampaign = "seasonal_campaign"
)

// Cường độ quảng bá
const (
	IntensityLow        = "low"
	IntensityBalanced   = "balanced"
	IntensityAggressive = "aggressive"
)

// Format của content item nhúng trong plan
const (
	ItemFormatReel     = "reel"
	ItemFormatCarousel = "carousel"
	ItemFormatStory    = "story"
	ItemFormatPost     = "post"
)

// Loại CTA
const (
	CtaTypeSoft        = "soft"
	CtaTypeHard        = "hard"
	CtaTypeEducational = "educational"
)

// Trạng thái nhẹ của content item nhúng (khác vòng đời của ContentBlock độc lập)
const (
	ItemStatusDraft     = "draft"
	ItemStatusScheduled = "scheduled"
	ItemStatusEdited    = "edited"
)

// ContentMixPreference - Tỷ lệ phần trăm mong muốn cho từng nhóm nội dung.
// Không bắt buộc tổng bằng 100.
type ContentMixPreference struct {
	Educational  int `json:"educational" bson:"educational" validate:"min=0,max=100"`
	Promotional  int `json:"promotional" bson:"promotional" validate:"min=0,max=100"`
	Storytelling int `json:"storytelling" bson:"storytelling" validate:"min=0,max=100"`
	Authority    int `json:"authority" bson:"authority" validate:"min=0,max=100"`
}

// ContentItem - Một ý tưởng nội dung nhúng trong Phase, không có danh tính ngoài Plan.
type ContentItem struct {
	ID                   primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title                string             `json:"title" bson:"title"`
	Pillar               string             `json:"pillar" bson:"pillar"`
	ProductID            string             `json:"productId,omitempty" bson:"productId,omitempty"`
	Format               string             `json:"format" bson:"format"`
	CtaType              string             `json:"ctaType" bson:"ctaType"`
	EmotionalTrigger     string             `json:"emotionalTrigger,omitempty" bson:"emotionalTrigger,omitempty"`
	RecommendedDayOffset int                `json:"recommendedDayOffset" bson:"recommendedDayOffset"` // 0-6 trong tuần
	RecommendedTime      string             `json:"recommendedTime,omitempty" bson:"recommendedTime,omitempty"` // "HH:MM"
	Status               string             `json:"status" bson:"status"`
}

// IsPromotional - bài quảng bá là bài có CTA hard.
func (i *ContentItem) IsPromotional() bool {
	return i.CtaType == CtaTypeHard
}

// Phase - Một tuần chiến lược có tên trong Plan.
type Phase struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	WeekNumber   int                `json:"weekNumber" bson:"weekNumber"` // 1-based
	Description  string             `json:"description,omitempty" bson:"description,omitempty"`
	ContentItems []ContentItem      `json:"contentItems" bson:"contentItems"`
}

// Plan - Tài liệu chiến lược nội dung nhiều tuần của một brand.
type Plan struct {
	ID      primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID  primitive.ObjectID `json:"userId" bson:"userId" index:"single:1"`
	BrandID primitive.ObjectID `json:"brandId" bson:"brandId" index:"single:1"`

	Name      string `json:"name" bson:"name"`
	Objective string `json:"objective" bson:"objective"`

	// UnixMilli tại 00:00 UTC; endDate luôn được suy ra từ startDate + durationWeeks*7
	StartDate     int64 `json:"startDate" bson:"startDate"`
	EndDate       int64 `json:"endDate" bson:"endDate"`
	DurationWeeks int   `json:"durationWeeks" bson:"durationWeeks"`

	PromotionIntensity   string               `json:"promotionIntensity" bson:"promotionIntensity" default:"balanced"`
	PostingFrequency     int                  `json:"postingFrequency" bson:"postingFrequency" default:"3"` // bài/tuần
	Platforms            []string             `json:"platforms" bson:"platforms"`
	ProductIDs           []string             `json:"productIds" bson:"productIds"`
	ContentMixPreference ContentMixPreference `json:"contentMixPreference" bson:"contentMixPreference"`

	Status string  `json:"status" bson:"status" default:"draft"`
	Phases []Phase `json:"phases" bson:"phases"`

	CampaignSlogan string `json:"campaignSlogan,omitempty" bson:"campaignSlogan,omitempty"`
	LaunchHeadline string `json:"launchHeadline,omitempty" bson:"launchHeadline,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// ComputeEndDate suy ra endDate từ startDate và số tuần.
func ComputeEndDate(start time.Time, durationWeeks int) time.Time {
	return start.AddDate(0, 0, durationWeeks*7)
}

// HasContent kiểm tra plan có ít nhất một phase chứa ít nhất một content item.
func (p *Plan) HasContent() bool {
	for _, phase := range p.Phases {
		if len(phase.ContentItems) > 0 {
			return true
		}
	}
	return false
}

// MissingWeeks trả về các tuần trong 1..durationWeeks chưa có phase nào phủ.
// Thiếu tuần chỉ là cảnh báo, không phải lỗi.
func (p *Plan) MissingWeeks() []int {
	covered := make(map[int]bool, len(p.Phases))
	for _, phase := range p.Phases {
		covered[phase.WeekNumber] = true
	}
	var missing []int
	for week := 1; week <= p.DurationWeeks; week++ {
		if !covered[week] {
			missing = append(missing, week)
		}
	}
	return missing
}
