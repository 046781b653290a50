// Package models - Brand thuộc domain Brand.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tone của brand
const (
	ToneProfessional = "professional"
	ToneFriendly     = "friendly"
	ToneBold         = "bold"
	ToneEducational  = "educational"
	ToneLuxury       = "luxury"
	TonePlayful      = "playful"
)

// BrandAudience - Chân dung khán giả mục tiêu của brand
type BrandAudience struct {
	AgeRange  string   `json:"ageRange,omitempty" bson:"ageRange,omitempty"`
	Gender    string   `json:"gender,omitempty" bson:"gender,omitempty"`
	Interests []string `json:"interests,omitempty" bson:"interests,omitempty"`
}

// BrandContentMix - Tỷ lệ phần trăm mục tiêu cho từng nhóm nội dung
type BrandContentMix struct {
	Educational  int `json:"educational" bson:"educational" validate:"min=0,max=100"`
	Promotional  int `json:"promotional" bson:"promotional" validate:"min=0,max=100"`
	Storytelling int `json:"storytelling" bson:"storytelling" validate:"min=0,max=100"`
	Authority    int `json:"authority" bson:"authority" validate:"min=0,max=100"`
}

// RotationPolicy - Ràng buộc xoay vòng bài quảng bá của brand
type RotationPolicy struct {
	MaxConsecutivePromoPosts int `json:"maxConsecutivePromoPosts" bson:"maxConsecutivePromoPosts"`
	MinGapBetweenPromotions  int `json:"minGapBetweenPromotions" bson:"minGapBetweenPromotions"`
}

// Giá trị mặc định khi brand chưa cấu hình rotation
const (
	DefaultMaxConsecutivePromoPosts = 2
	DefaultMinGapBetweenPromotions  = 3
)

// Brand - Hồ sơ thương hiệu: giọng điệu, pillar nội dung, nền tảng mục tiêu
// và chính sách xoay vòng quảng bá mà scheduler đọc khi dựng lịch.
type Brand struct {
	ID                 primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID             primitive.ObjectID `json:"userId" bson:"userId" index:"single:1,compound:brand_user_name_unique"`
	Name               string             `json:"name" bson:"name" index:"compound:brand_user_name_unique"`
	Description        string             `json:"description,omitempty" bson:"description,omitempty"`
	Tone               string             `json:"tone" bson:"tone"`
	Audience           BrandAudience      `json:"audience,omitempty" bson:"audience,omitempty"`
	Platforms          []string           `json:"platforms" bson:"platforms"`
	ContentPillars     []string           `json:"contentPillars" bson:"contentPillars"`
	MainGoal           string             `json:"mainGoal,omitempty" bson:"mainGoal,omitempty"`
	ContentMix         BrandContentMix    `json:"contentMix" bson:"contentMix"`
	PromotionIntensity string             `json:"promotionIntensity" bson:"promotionIntensity" default:"balanced"`
	SmartRotation      RotationPolicy     `json:"smartRotation" bson:"smartRotation"`
	CreatedAt          int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt          int64              `json:"updatedAt" bson:"updatedAt"`
}

// EffectiveRotation trả về rotation policy của brand, thay giá trị thiếu
// bằng mặc định {2, 3}.
func (b *Brand) EffectiveRotation() RotationPolicy {
	policy := b.SmartRotation
	if policy.MaxConsecutivePromoPosts < 1 {
		policy.MaxConsecutivePromoPosts = DefaultMaxConsecutivePromoPosts
	}
	if policy.MinGapBetweenPromotions < 1 {
		policy.MinGapBetweenPromotions = DefaultMinGapBetweenPromotions
	}
	return policy
}

// EffectiveContentMix trả về content mix của brand, 25/25/25/25 khi chưa cấu hình.
func (b *Brand) EffectiveContentMix() BrandContentMix {
	mix := b.ContentMix
	if mix.Educational == 0 && mix.Promotional == 0 && mix.Storytelling == 0 && mix.Authority == 0 {
		return BrandContentMix{Educational: 25, Promotional: 25, Storytelling: 25, Authority: 25}
	}
	return mix
}
